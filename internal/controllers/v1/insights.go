package v1

import (
	"fmt"
	"net/http"

	"github.com/expense-planner/backend/internal/httputil"
	"github.com/expense-planner/backend/internal/models"
	"github.com/expense-planner/backend/internal/session"
	"github.com/expense-planner/backend/internal/summary"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CategoryTotal struct {
	summary.CategorySummary
	FormattedTotal string `json:"formattedTotal" example:"₹1,234.50"` // Total formatted with the currency and locale of the session
}

type Summary struct {
	GrandTotal     decimal.Decimal `json:"grandTotal" example:"1234.5"`         // Sum of all transactions
	FormattedTotal string          `json:"formattedTotal" example:"₹1,234.50"` // Grand total formatted with the currency and locale of the session
	Categories     []CategoryTotal `json:"categories"`                          // Spending per category, ordered by name
}

type SummaryResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Summary `json:"data"`                                                          // Spending summary
}

type TimeSeriesResponse struct {
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []summary.DatePoint `json:"data"`                                                          // Spending per day in ascending order
}

type AdviceResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []summary.Advice `json:"data"`                                                          // Advice per category
}

type ComparisonResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []summary.Comparison `json:"data"`                                                          // Budget goals compared to actual spending
}

// sessionTransactions loads the session and its transactions.
func sessionTransactions(c *gin.Context) (models.Session, []summary.Transaction, error) {
	s, err := getSession(c)
	if err != nil {
		return models.Session{}, nil, err
	}

	transactions, err := s.Transactions(models.DB)
	if err != nil {
		return models.Session{}, nil, err
	}

	return s, models.SummaryTransactions(transactions), nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Insights
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id}/summary [options]
// @Router			/v1/sessions/{id}/time-series [options]
// @Router			/v1/sessions/{id}/advice [options]
// @Router			/v1/sessions/{id}/comparison [options]
func OptionsInsights(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns the total spending and the spending per category
// @Tags			Insights
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		400	{object}	SummaryResponse
// @Failure		404	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id}/summary [get]
func GetSummary(c *gin.Context) {
	s, transactions, err := sessionTransactions(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	locale := s.LanguageTag()
	grandTotal, summaries := summary.Summarize(transactions)

	categories := make([]CategoryTotal, 0, len(summaries))
	for _, cs := range summaries {
		categories = append(categories, CategoryTotal{
			CategorySummary: cs,
			FormattedTotal:  summary.FormatAmount(cs.Total, s.Currency, locale),
		})
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &Summary{
		GrandTotal:     grandTotal,
		FormattedTotal: summary.FormatAmount(grandTotal, s.Currency, locale),
		Categories:     categories,
	}})
}

// @Summary		Get time series
// @Description	Returns the spending per calendar day
// @Tags			Insights
// @Produce		json
// @Success		200	{object}	TimeSeriesResponse
// @Failure		400	{object}	TimeSeriesResponse
// @Failure		404	{object}	TimeSeriesResponse
// @Failure		500	{object}	TimeSeriesResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id}/time-series [get]
func GetTimeSeries(c *gin.Context) {
	_, transactions, err := sessionTransactions(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TimeSeriesResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, TimeSeriesResponse{Data: summary.TimeSeries(transactions)})
}

// @Summary		Get advice
// @Description	Compares the share of every category with its recommended maximum
// @Tags			Insights
// @Produce		json
// @Success		200	{object}	AdviceResponse
// @Failure		400	{object}	AdviceResponse
// @Failure		404	{object}	AdviceResponse
// @Failure		500	{object}	AdviceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id}/advice [get]
func GetAdvice(c *gin.Context) {
	s, transactions, err := sessionTransactions(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AdviceResponse{
			Error: &e,
		})
		return
	}

	_, summaries := summary.Summarize(transactions)
	c.JSON(http.StatusOK, AdviceResponse{Data: summary.Evaluate(summaries, s.EffectiveThresholds())})
}

// @Summary		Get comparison
// @Description	Compares the actual share of every category with its budget goal. Needs budget goals, see the experiment endpoint
// @Tags			Insights
// @Produce		json
// @Success		200	{object}	ComparisonResponse
// @Failure		400	{object}	ComparisonResponse
// @Failure		404	{object}	ComparisonResponse
// @Failure		409	{object}	ComparisonResponse
// @Failure		500	{object}	ComparisonResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id}/comparison [get]
func GetComparison(c *gin.Context) {
	s, transactions, err := sessionTransactions(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ComparisonResponse{
			Error: &e,
		})
		return
	}

	if s.Goals.IsZero() {
		e := fmt.Errorf("%w: %w", session.ErrInvalidTransition, errNoGoals).Error()
		c.JSON(http.StatusConflict, ComparisonResponse{
			Error: &e,
		})
		return
	}

	_, summaries := summary.Summarize(transactions)
	c.JSON(http.StatusOK, ComparisonResponse{Data: summary.Compare(summaries, s.Goals)})
}
