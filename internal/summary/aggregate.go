// Package summary reduces transactions into the figures shown on the dashboard.
package summary

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Transaction is a single expense.
type Transaction struct {
	Date     time.Time       `json:"date" example:"2024-03-01T00:00:00Z"` // Day of the expense
	Category string          `json:"category" example:"Food"`             // Category of the expense
	Amount   decimal.Decimal `json:"amount" example:"12.50"`              // Amount spent, never negative
}

// CategorySummary is the total spent in one category.
type CategorySummary struct {
	Category   string          `json:"category" example:"Food"`  // Name of the category
	Total      decimal.Decimal `json:"total" example:"150"`      // Sum of all amounts in the category
	Percentage decimal.Decimal `json:"percentage" example:"75"` // Share of the grand total in percent
}

// DatePoint is the sum of all amounts on one day.
type DatePoint struct {
	Date   time.Time       `json:"date" example:"2024-03-01T00:00:00Z"` // The day
	Amount decimal.Decimal `json:"amount" example:"42.10"`              // Sum of all amounts on this day
}

// Summarize groups transactions by category.
//
// Categories without transactions are not part of the result. The result is
// sorted by category name. If the grand total is zero, all percentages are zero.
func Summarize(transactions []Transaction) (decimal.Decimal, []CategorySummary) {
	grandTotal := decimal.Zero
	totals := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		grandTotal = grandTotal.Add(t.Amount)
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}

	summaries := make([]CategorySummary, 0, len(totals))
	for category, total := range totals {
		percentage := decimal.Zero
		if !grandTotal.IsZero() {
			percentage = total.Mul(hundred).Div(grandTotal)
		}

		summaries = append(summaries, CategorySummary{
			Category:   category,
			Total:      total,
			Percentage: percentage,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Category < summaries[j].Category
	})

	return grandTotal, summaries
}

// TimeSeries sums up the amounts per calendar day in ascending order.
func TimeSeries(transactions []Transaction) []DatePoint {
	sums := make(map[time.Time]decimal.Decimal)

	for _, t := range transactions {
		day := Day(t.Date)
		sums[day] = sums[day].Add(t.Amount)
	}

	points := make([]DatePoint, 0, len(sums))
	for day, amount := range sums {
		points = append(points, DatePoint{Date: day, Amount: amount})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points
}

// Day truncates a time to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
