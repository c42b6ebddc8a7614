package summary

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Status tells if spending is within a limit.
type Status string

const (
	WithinBudget Status = "withinBudget"
	OverBudget   Status = "overBudget"
)

// DefaultThreshold applies to categories that are not in the threshold table.
var DefaultThreshold = decimal.NewFromInt(20)

// Thresholds maps categories to the recommended maximum share of all spending, in percent.
type Thresholds map[string]decimal.Decimal

// DefaultThresholds returns the recommended maximum shares.
func DefaultThresholds() Thresholds {
	return Thresholds{
		"Food":          decimal.NewFromInt(20),
		"Travel":        decimal.NewFromInt(15),
		"Shopping":      decimal.NewFromInt(15),
		"Entertainment": decimal.NewFromInt(10),
		"Bills":         decimal.NewFromInt(20),
		"Rent":          decimal.NewFromInt(40),
	}
}

// For returns the threshold for a category, falling back to DefaultThreshold.
func (t Thresholds) For(category string) decimal.Decimal {
	if v, ok := t[category]; ok {
		return v
	}
	return DefaultThreshold
}

// Merge returns a copy of t with all values from overrides applied.
func (t Thresholds) Merge(overrides Thresholds) Thresholds {
	merged := make(Thresholds, len(t)+len(overrides))
	for k, v := range t {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// Advice is the evaluation of the spending in one category.
type Advice struct {
	Category   string          `json:"category" example:"Food"`                                             // Name of the category
	Percentage decimal.Decimal `json:"percentage" example:"25"`                                            // Share of all spending in percent
	Threshold  decimal.Decimal `json:"threshold" example:"20"`                                             // Recommended maximum share in percent
	Status     Status          `json:"status" example:"overBudget"`                                        // Is the share within the recommendation?
	Message    string          `json:"message" example:"Food: 25.0% of total (above recommended 20%)."` // Message for display
}

// Evaluate compares the share of every category with its threshold.
func Evaluate(summaries []CategorySummary, thresholds Thresholds) []Advice {
	advice := make([]Advice, 0, len(summaries))

	for _, s := range summaries {
		threshold := thresholds.For(s.Category)

		a := Advice{
			Category:   s.Category,
			Percentage: s.Percentage,
			Threshold:  threshold,
			Status:     WithinBudget,
		}

		if s.Percentage.GreaterThan(threshold) {
			a.Status = OverBudget
			a.Message = fmt.Sprintf("%s: %s%% of total (above recommended %s%%).", s.Category, s.Percentage.StringFixed(1), threshold)
		} else {
			a.Message = fmt.Sprintf("%s: %s%% of total (within recommended %s%%).", s.Category, s.Percentage.StringFixed(1), threshold)
		}

		advice = append(advice, a)
	}

	return advice
}
