package summary

import (
	"fmt"
	"math"

	"github.com/expense-planner/backend/internal/budget"
	"github.com/shopspring/decimal"
)

// Comparison is the actual share of a category next to its budget goal.
type Comparison struct {
	Category   string          `json:"category" example:"Food"`           // Name of the category
	Amount     decimal.Decimal `json:"amount" example:"150"`              // Total spent in the category
	Percentage decimal.Decimal `json:"percentage" example:"25"`           // Actual share of all spending in percent
	Goal       float64         `json:"goal" example:"20"`                 // Budget goal in percent, 0 if the category has no goal
	Progress   int             `json:"progress" example:"100"`            // Actual share relative to the goal in percent, capped at 100
	Status     Status          `json:"status" example:"overBudget"`       // Is the actual share above the goal?
	Message    string          `json:"message" example:"25.0% vs 20.0%"` // Message for display
}

// Compare puts the actual share of every summarized category next to its goal.
func Compare(summaries []CategorySummary, goals budget.Allocation) []Comparison {
	comparisons := make([]Comparison, 0, len(summaries))

	for _, s := range summaries {
		goal, _ := goals.Get(s.Category)
		percentage := s.Percentage.InexactFloat64()

		c := Comparison{
			Category:   s.Category,
			Amount:     s.Total,
			Percentage: s.Percentage,
			Goal:       goal,
			Status:     WithinBudget,
			Message:    fmt.Sprintf("%.1f%% vs %.1f%%", percentage, goal),
		}

		// Capped before the conversion, tiny goals overflow int otherwise
		if goal > 0 {
			c.Progress = int(math.Min(percentage/goal*100, 100))
		}

		if percentage > goal {
			c.Status = OverBudget
		}

		comparisons = append(comparisons, c)
	}

	return comparisons
}
