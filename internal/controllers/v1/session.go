package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/expense-planner/backend/internal/httputil"
	"github.com/expense-planner/backend/internal/models"
	"github.com/expense-planner/backend/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// RegisterSessionRoutes registers the routes for sessions with
// the RouterGroup that is passed.
func RegisterSessionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSessions)
		r.GET("", GetSessions)
		r.POST("", CreateSession)
	}

	// Session with ID
	{
		r.OPTIONS("/:id", OptionsSessionDetail)
		r.GET("/:id", GetSession)
		r.PATCH("/:id", UpdateSession)
		r.DELETE("/:id", DeleteSession)
	}

	// Budget goals
	{
		r.OPTIONS("/:id/allocation", OptionsAllocation)
		r.PUT("/:id/allocation", SubmitAllocation)
		r.OPTIONS("/:id/experiment", OptionsExperiment)
		r.POST("/:id/experiment", StartExperiment)
		r.OPTIONS("/:id/adjustments", OptionsAdjustments)
		r.POST("/:id/adjustments", CreateAdjustment)
		r.OPTIONS("/:id/reset", OptionsReset)
		r.POST("/:id/reset", ResetSession)
	}

	// Transactions and insights
	{
		r.OPTIONS("/:id/transactions", OptionsTransactions)
		r.GET("/:id/transactions", GetTransactions)
		r.POST("/:id/transactions", CreateTransactions)
		r.OPTIONS("/:id/summary", OptionsInsights)
		r.GET("/:id/summary", GetSummary)
		r.OPTIONS("/:id/time-series", OptionsInsights)
		r.GET("/:id/time-series", GetTimeSeries)
		r.OPTIONS("/:id/advice", OptionsInsights)
		r.GET("/:id/advice", GetAdvice)
		r.OPTIONS("/:id/comparison", OptionsInsights)
		r.GET("/:id/comparison", GetComparison)
	}
}

// getSession loads the session referenced by the id URI parameter.
//
// Expired sessions are treated as if they did not exist.
func getSession(c *gin.Context) (models.Session, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", httputil.ErrInvalidUUID, err)
	}

	var s models.Session
	err = models.DB.Where("expires_at >= ?", time.Now().In(time.UTC)).First(&s, "id = ?", uri.ID.UUID).Error
	if err != nil {
		return models.Session{}, err
	}

	return s, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sessions
// @Success		204
// @Router			/v1/sessions [options]
func OptionsSessions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sessions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id} [options]
func OptionsSessionDetail(c *gin.Context) {
	_, err := getSession(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create session
// @Description	Creates a new session. All fields are optional, an empty body creates a session with the default categories
// @Tags			Sessions
// @Accept			json
// @Produce		json
// @Success		201		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		500		{object}	SessionResponse
// @Param			session	body		SessionEditable	false	"Session"
// @Router			/v1/sessions [post]
func CreateSession(c *gin.Context) {
	var editable SessionEditable

	err := httputil.BindData(c, &editable)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	purged, err := models.PurgeExpiredSessions(models.DB, time.Now().In(time.UTC))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	if purged > 0 {
		log.Info().Int64("sessions", purged).Msg("purged expired sessions")
	}

	s := editable.model()
	err = models.DB.Create(&s).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	data := newSession(c, s)
	c.JSON(http.StatusCreated, SessionResponse{Data: &data})
}

// @Summary		Get sessions
// @Description	Returns a list of all sessions that have not expired
// @Tags			Sessions
// @Produce		json
// @Success		200	{object}	SessionListResponse
// @Failure		500	{object}	SessionListResponse
// @Router			/v1/sessions [get]
func GetSessions(c *gin.Context) {
	var sessions []models.Session
	err := models.DB.Where("expires_at >= ?", time.Now().In(time.UTC)).Order("created_at ASC").Find(&sessions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionListResponse{
			Error: &e,
		})
		return
	}

	// When there are no resources, we want an empty list, not null
	// Therefore, we use make to create a slice with zero elements
	// which will be marshalled to an empty JSON array
	data := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		data = append(data, newSession(c, s))
	}

	c.JSON(http.StatusOK, SessionListResponse{Data: data})
}

// @Summary		Get session
// @Description	Returns a specific session
// @Tags			Sessions
// @Produce		json
// @Success		200	{object}	SessionResponse
// @Failure		400	{object}	SessionResponse
// @Failure		404	{object}	SessionResponse
// @Failure		500	{object}	SessionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id} [get]
func GetSession(c *gin.Context) {
	s, err := getSession(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	data := newSession(c, s)
	c.JSON(http.StatusOK, SessionResponse{Data: &data})
}

// @Summary		Update session
// @Description	Updates an existing session. Only values to be updated need to be specified. Categories can only be changed while no percentages are entered
// @Tags			Sessions
// @Accept			json
// @Produce		json
// @Success		200		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		404		{object}	SessionResponse
// @Failure		409		{object}	SessionResponse
// @Failure		500		{object}	SessionResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			session	body		SessionEditable	true	"Session"
// @Router			/v1/sessions/{id} [patch]
func UpdateSession(c *gin.Context) {
	s, err := getSession(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, SessionEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	var update SessionEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, "Categories") && !slices.Equal(update.Categories, s.Categories) {
		if s.State != session.AwaitingAllocation || !s.Inputs.IsZero() {
			e := fmt.Errorf("%w: %w", session.ErrInvalidTransition, errCategoriesChanged).Error()
			c.JSON(http.StatusConflict, SessionResponse{
				Error: &e,
			})
			return
		}
		s.Categories = update.Categories
	}

	if slices.Contains(updateFields, "Currency") {
		s.Currency = update.Currency
	}

	if slices.Contains(updateFields, "Locale") {
		s.Locale = update.Locale
	}

	if slices.Contains(updateFields, "Thresholds") {
		s.Thresholds = update.Thresholds
	}

	if slices.Contains(updateFields, "CategoryRules") {
		s.CategoryRules = update.CategoryRules
	}

	err = models.DB.Save(&s).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	data := newSession(c, s)
	c.JSON(http.StatusOK, SessionResponse{Data: &data})
}

// @Summary		Delete session
// @Description	Discards a session together with its transactions
// @Tags			Sessions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id} [delete]
func DeleteSession(c *gin.Context) {
	s, err := getSession(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&s).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
