package budget

import (
	"fmt"
	"math"
)

// Adjust sets the percentage of one category and redistributes the difference
// over all other categories so that the allocation sums to 100 again.
//
// The difference is subtracted evenly from the other categories, each result
// is clamped to [0,100] and finally all categories, including the adjusted
// one, are scaled by the same factor so that their sum is 100.
//
// If every category ends up at 0, 100 % is distributed evenly instead.
//
// On error, the allocation is not modified.
func (a *Allocation) Adjust(category string, value float64) error {
	current, ok := a.values[category]
	if !ok {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
	}

	if err := checkValue(value); err != nil {
		return err
	}

	delta := value - current
	a.values[category] = value

	if delta == 0 {
		return nil
	}

	share := delta / float64(len(a.categories)-1)
	for _, other := range a.categories {
		if other == category {
			continue
		}

		a.values[other] = clamp(a.values[other] - share)
	}

	a.renormalize()
	return nil
}

// renormalize scales all values so that they sum to 100.
func (a *Allocation) renormalize() {
	total := a.Sum()
	if total == 0 {
		a.distributeEvenly()
		return
	}

	for _, category := range a.categories {
		a.values[category] = a.values[category] / total * 100
	}
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
