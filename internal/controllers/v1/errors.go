package v1

import (
	"errors"
	"net/http"

	"github.com/expense-planner/backend/internal/models"
	"github.com/expense-planner/backend/internal/session"
)

// status returns the HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, session.ErrInvalidTransition) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)

// Session errors
var (
	errNoGoals           = errors.New("there are no budget goals yet, start the experiment first")
	errCategoriesChanged = errors.New("categories can only be changed while no percentages are entered")
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}
