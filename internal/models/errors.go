package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrCategoriesEmpty  = errors.New("a session needs at least 2 categories")
	ErrCurrencyTooLong  = errors.New("the currency symbol must not be longer than 8 characters")
	ErrLocaleInvalid    = errors.New("the locale is not a valid BCP 47 language tag")
	ErrThresholdRange   = errors.New("thresholds must be between 0 and 100")
)
