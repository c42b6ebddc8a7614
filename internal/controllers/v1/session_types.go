package v1

import (
	"fmt"
	"time"

	"github.com/expense-planner/backend/internal/budget"
	"github.com/expense-planner/backend/internal/importer"
	"github.com/expense-planner/backend/internal/models"
	"github.com/expense-planner/backend/internal/session"
	"github.com/expense-planner/backend/internal/summary"
	"github.com/gin-gonic/gin"
)

type SessionEditable struct {
	Categories    []string                `json:"categories" example:"Food,Travel,Shopping,Rent,Entertainment,Bills"` // Categories to plan with. Defaults to Food, Travel, Shopping, Rent, Entertainment and Bills
	Currency      string                  `json:"currency" example:"₹" default:""`                                     // Currency symbol used for formatted amounts
	Locale        string                  `json:"locale" example:"en-IN" default:""`                                   // BCP 47 language tag used for formatted amounts. Defaults to English
	Thresholds    summary.Thresholds      `json:"thresholds" swaggertype:"object,number"`                              // Recommended maximum share per category in percent. Overrides the default thresholds
	CategoryRules []importer.CategoryRule `json:"categoryRules"`                                                       // Rules to rename categories of uploaded transactions. The first matching rule is applied
}

// model returns the database resource for the API representation of the editable fields
func (editable SessionEditable) model() models.Session {
	return models.Session{
		Categories:    editable.Categories,
		Currency:      editable.Currency,
		Locale:        editable.Locale,
		Thresholds:    editable.Thresholds,
		CategoryRules: editable.CategoryRules,
	}
}

type SessionLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/sessions/3b1ea324-d438-4419-9a1e-87af4cfb1a0c"`                     // The session itself
	Allocation   string `json:"allocation" example:"https://example.com/api/v1/sessions/3b1ea324-d438-4419-9a1e-87af4cfb1a0c/allocation"`    // Submit manually entered percentages
	Experiment   string `json:"experiment" example:"https://example.com/api/v1/sessions/3b1ea324-d438-4419-9a1e-87af4cfb1a0c/experiment"`    // Start adjusting budget goals
	Adjustments  string `json:"adjustments" example:"https://example.com/api/v1/sessions/3b1ea324-d438-4419-9a1e-87af4cfb1a0c/adjustments"`  // Adjust a budget goal
	Reset        string `json:"reset" example:"https://example.com/api/v1/sessions/3b1ea324-d438-4419-9a1e-87af4cfb1a0c/reset"`              // Discard percentages and goals
	Transactions string `json:"transactions" example:"https://example.com/api/v1/sessions/3b1ea324-d438-4419-9a1e-87af4cfb1a0c/transactions"` // Upload and list transactions
	Summary      string `json:"summary" example:"https://example.com/api/v1/sessions/3b1ea324-d438-4419-9a1e-87af4cfb1a0c/summary"`          // Spending per category
	TimeSeries   string `json:"timeSeries" example:"https://example.com/api/v1/sessions/3b1ea324-d438-4419-9a1e-87af4cfb1a0c/time-series"`   // Spending per day
	Advice       string `json:"advice" example:"https://example.com/api/v1/sessions/3b1ea324-d438-4419-9a1e-87af4cfb1a0c/advice"`            // Overspending advice
	Comparison   string `json:"comparison" example:"https://example.com/api/v1/sessions/3b1ea324-d438-4419-9a1e-87af4cfb1a0c/comparison"`    // Budget goals compared to actual spending
}

// Session is the representation of a Session in API v1.
type Session struct {
	models.DefaultModel
	SessionEditable
	State     session.State      `json:"state" example:"awaitingAllocation"`              // State of the session
	Inputs    budget.Allocation  `json:"inputs"`                                          // Manually entered percentages
	Goals     budget.Allocation  `json:"goals"`                                           // Budget goals, set once the experiment was started
	Gate      *budget.GateResult `json:"gate"`                                            // Check of the manually entered percentages, null if none were entered
	ExpiresAt time.Time          `json:"expiresAt" example:"2024-03-02T19:28:44.491514Z"` // Time after which the session is discarded
	Links     SessionLinks       `json:"links"`
}

// newSession returns the API v1 representation of the resource
func newSession(c *gin.Context, model models.Session) Session {
	url := fmt.Sprintf("%s/v1/sessions/%s", c.GetString(string(models.DBContextURL)), model.ID)

	rules := model.CategoryRules
	if rules == nil {
		rules = []importer.CategoryRule{}
	}

	thresholds := model.Thresholds
	if thresholds == nil {
		thresholds = summary.Thresholds{}
	}

	s := Session{
		DefaultModel: model.DefaultModel,
		SessionEditable: SessionEditable{
			Categories:    model.Categories,
			Currency:      model.Currency,
			Locale:        model.Locale,
			Thresholds:    thresholds,
			CategoryRules: rules,
		},
		State:     model.State,
		Inputs:    model.Inputs,
		Goals:     model.Goals,
		ExpiresAt: model.ExpiresAt,
		Links: SessionLinks{
			Self:         url,
			Allocation:   url + "/allocation",
			Experiment:   url + "/experiment",
			Adjustments:  url + "/adjustments",
			Reset:        url + "/reset",
			Transactions: url + "/transactions",
			Summary:      url + "/summary",
			TimeSeries:   url + "/time-series",
			Advice:       url + "/advice",
			Comparison:   url + "/comparison",
		},
	}

	if !model.Inputs.IsZero() {
		gate, err := budget.Check(model.Inputs)
		if err == nil {
			s.Gate = &gate
		}
	}

	return s
}

type SessionResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Session `json:"data"`                                                          // Data for the session
}

type SessionListResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []Session `json:"data"`                                                          // List of sessions
}

type AllocationEditable struct {
	Percentages map[string]float64 `json:"percentages" swaggertype:"object,number" example:"Food:30,Rent:40,Travel:30"` // Percentage per category. Categories that are not listed are set to 0
}

type AdjustmentEditable struct {
	Category string   `json:"category" binding:"required" example:"Food"` // Category to adjust
	Value    *float64 `json:"value" binding:"required" example:"50"`      // New goal for the category in percent
}
