// Package budget implements budget goal allocations and their redistribution.
package budget

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Tolerance is the maximum deviation from 100 that an allocation sum may have
// and still be considered complete.
const Tolerance = 1e-6

// DefaultCategories are the categories offered when a session does not
// specify its own.
var DefaultCategories = []string{"Food", "Travel", "Shopping", "Rent", "Entertainment", "Bills"}

// Entry is a single category with its percentage.
type Entry struct {
	Category   string  `json:"category" example:"Food"`    // Name of the category
	Percentage float64 `json:"percentage" example:"16.67"` // Share of the budget in percent
}

// Allocation maps a fixed, ordered set of categories to percentages.
//
// The zero value is an empty allocation. Use NewAllocation or Equal to
// create a usable one.
type Allocation struct {
	categories []string
	values     map[string]float64
}

// NewAllocation creates an allocation over the given categories.
//
// Categories missing from values start at 0. Values for categories that are not
// in the category list are rejected.
func NewAllocation(categories []string, values map[string]float64) (Allocation, error) {
	if len(categories) < 2 {
		return Allocation{}, fmt.Errorf("%w: an allocation needs at least 2 categories, got %d", ErrInvalidInput, len(categories))
	}

	a := Allocation{
		categories: make([]string, 0, len(categories)),
		values:     make(map[string]float64, len(categories)),
	}

	for _, category := range categories {
		category = strings.TrimSpace(category)
		if category == "" {
			return Allocation{}, fmt.Errorf("%w: category names must not be empty", ErrInvalidInput)
		}

		if _, ok := a.values[category]; ok {
			return Allocation{}, fmt.Errorf("%w: category %q is listed more than once", ErrInvalidInput, category)
		}

		a.categories = append(a.categories, category)
		a.values[category] = 0
	}

	for category, value := range values {
		if _, ok := a.values[category]; !ok {
			return Allocation{}, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
		}

		if err := checkValue(value); err != nil {
			return Allocation{}, fmt.Errorf("%w for category %q", err, category)
		}

		a.values[category] = value
	}

	return a, nil
}

// Equal returns an allocation that distributes 100 % evenly over the categories.
func Equal(categories []string) (Allocation, error) {
	a, err := NewAllocation(categories, nil)
	if err != nil {
		return Allocation{}, err
	}

	a.distributeEvenly()
	return a, nil
}

// Categories returns the categories in their defined order.
func (a Allocation) Categories() []string {
	return append([]string(nil), a.categories...)
}

// Len returns the number of categories.
func (a Allocation) Len() int {
	return len(a.categories)
}

// IsZero reports whether the allocation has no categories.
func (a Allocation) IsZero() bool {
	return len(a.categories) == 0
}

// Get returns the percentage for a category and whether the category exists.
func (a Allocation) Get(category string) (float64, bool) {
	v, ok := a.values[category]
	return v, ok
}

// Sum returns the sum of all percentages.
func (a Allocation) Sum() float64 {
	var sum float64
	for _, category := range a.categories {
		sum += a.values[category]
	}
	return sum
}

// Entries returns all categories with their percentages in order.
func (a Allocation) Entries() []Entry {
	entries := make([]Entry, 0, len(a.categories))
	for _, category := range a.categories {
		entries = append(entries, Entry{Category: category, Percentage: a.values[category]})
	}
	return entries
}

// Map returns a copy of the percentages keyed by category.
func (a Allocation) Map() map[string]float64 {
	m := make(map[string]float64, len(a.values))
	for k, v := range a.values {
		m[k] = v
	}
	return m
}

// Clone returns a deep copy of the allocation.
func (a Allocation) Clone() Allocation {
	return Allocation{
		categories: a.Categories(),
		values:     a.Map(),
	}
}

// Valid checks that every percentage is within [0,100] and that the
// percentages sum to 100.
func (a Allocation) Valid() error {
	if a.IsZero() {
		return fmt.Errorf("%w: the allocation has no categories", ErrInvalidInput)
	}

	for _, category := range a.categories {
		if err := checkValue(a.values[category]); err != nil {
			return fmt.Errorf("%w for category %q", err, category)
		}
	}

	if sum := a.Sum(); math.Abs(sum-100) > Tolerance {
		return fmt.Errorf("%w: percentages sum to %g, not 100", ErrInvalidInput, sum)
	}

	return nil
}

// MarshalJSON encodes the allocation as an ordered list of entries.
func (a Allocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Entries())
}

// UnmarshalJSON decodes an ordered list of entries.
func (a *Allocation) UnmarshalJSON(data []byte) error {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	if len(entries) == 0 {
		*a = Allocation{}
		return nil
	}

	categories := make([]string, 0, len(entries))
	values := make(map[string]float64, len(entries))
	for _, e := range entries {
		categories = append(categories, e.Category)
		values[e.Category] = e.Percentage
	}

	parsed, err := NewAllocation(categories, values)
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}

func (a *Allocation) distributeEvenly() {
	share := 100 / float64(len(a.categories))
	for _, category := range a.categories {
		a.values[category] = share
	}
}

func checkValue(value float64) error {
	if math.IsNaN(value) || value < 0 || value > 100 {
		return fmt.Errorf("%w: percentage %g is not between 0 and 100", ErrInvalidInput, value)
	}
	return nil
}
