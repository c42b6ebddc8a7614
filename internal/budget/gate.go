package budget

import (
	"fmt"
	"math"
)

// GateStatus describes how far manually entered percentages are from 100 %.
type GateStatus string

const (
	GateRemaining GateStatus = "remaining" // Less than 100 % allocated
	GateExceeded  GateStatus = "exceeded"  // More than 100 % allocated
	GateComplete  GateStatus = "complete"  // Exactly 100 % allocated
)

// GateResult is the outcome of checking manually entered percentages.
type GateResult struct {
	Status     GateStatus `json:"status" example:"remaining"`                               // Status of the allocation
	Total      float64    `json:"total" example:"80"`                                       // Sum of all percentages
	Difference float64    `json:"difference" example:"20"`                                  // Absolute distance to 100
	Message    string     `json:"message" example:"You still have 20% left to allocate."` // Message for display
}

// Complete reports whether the checked allocation sums to 100.
func (r GateResult) Complete() bool {
	return r.Status == GateComplete
}

// Check verifies manually entered percentages before they may be used as
// budget goals.
func Check(inputs Allocation) (GateResult, error) {
	if inputs.IsZero() {
		return GateResult{}, fmt.Errorf("%w: no percentages were entered", ErrInvalidInput)
	}

	for _, e := range inputs.Entries() {
		if err := checkValue(e.Percentage); err != nil {
			return GateResult{}, fmt.Errorf("%w for category %q", err, e.Category)
		}
	}

	total := inputs.Sum()
	r := GateResult{
		Total:      total,
		Difference: math.Abs(100 - total),
	}

	switch {
	case r.Difference <= Tolerance:
		r.Status = GateComplete
		r.Difference = 0
		r.Message = "Perfect! Your allocations add up to 100%."
	case total < 100:
		r.Status = GateRemaining
		r.Message = fmt.Sprintf("You still have %g%% left to allocate.", r.Difference)
	default:
		r.Status = GateExceeded
		r.Message = fmt.Sprintf("You have exceeded the 100%% limit by %g%%. Please adjust.", r.Difference)
	}

	return r, nil
}
