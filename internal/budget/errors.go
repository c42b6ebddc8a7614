package budget

import "errors"

// ErrInvalidInput is returned for unknown categories and out of range percentages.
var ErrInvalidInput = errors.New("invalid input")
