package v1

import (
	"net/http"

	"github.com/expense-planner/backend/internal/budget"
	"github.com/expense-planner/backend/internal/httputil"
	"github.com/expense-planner/backend/internal/models"
	"github.com/expense-planner/backend/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget goals
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id}/allocation [options]
func OptionsAllocation(c *gin.Context) {
	httputil.OptionsPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget goals
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id}/experiment [options]
func OptionsExperiment(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget goals
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id}/adjustments [options]
func OptionsAdjustments(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget goals
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id}/reset [options]
func OptionsReset(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Submit percentages
// @Description	Stores manually entered percentages for the categories of the session. If they add up to 100, the session moves to the allocationValid state. The gate field of the response describes how far the percentages are from 100
// @Tags			Budget goals
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		404			{object}	SessionResponse
// @Failure		409			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			allocation	body		AllocationEditable	true	"Percentages"
// @Router			/v1/sessions/{id}/allocation [put]
func SubmitAllocation(c *gin.Context) {
	s, err := getSession(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	var editable AllocationEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	inputs, err := budget.NewAllocation(s.Categories, editable.Percentages)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	m := s.Machine()
	_, err = m.SubmitAllocation(inputs)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	saveMachine(c, s, m)
}

// @Summary		Start experiment
// @Description	Uses the entered percentages as budget goals, unless goals exist already, and allows adjusting them
// @Tags			Budget goals
// @Produce		json
// @Success		200	{object}	SessionResponse
// @Failure		400	{object}	SessionResponse
// @Failure		404	{object}	SessionResponse
// @Failure		409	{object}	SessionResponse
// @Failure		500	{object}	SessionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id}/experiment [post]
func StartExperiment(c *gin.Context) {
	s, err := getSession(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	m := s.Machine()
	err = m.StartExperiment()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	saveMachine(c, s, m)
}

// @Summary		Adjust budget goal
// @Description	Sets the goal of one category. The difference is taken from or given to all other categories so that the goals still add up to 100
// @Tags			Budget goals
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		404			{object}	SessionResponse
// @Failure		409			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			adjustment	body		AdjustmentEditable	true	"Adjustment"
// @Router			/v1/sessions/{id}/adjustments [post]
func CreateAdjustment(c *gin.Context) {
	s, err := getSession(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	var editable AdjustmentEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	m := s.Machine()
	err = m.Adjust(editable.Category, *editable.Value)
	adjustmentCount.WithLabelValues(result(err)).Inc()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	log.Debug().Str("category", editable.Category).Float64("value", *editable.Value).Str("session", s.ID.String()).Msg("adjusted budget goal")
	saveMachine(c, s, m)
}

// @Summary		Reset session
// @Description	Discards the entered percentages and the budget goals. Uploaded transactions are kept
// @Tags			Budget goals
// @Produce		json
// @Success		200	{object}	SessionResponse
// @Failure		400	{object}	SessionResponse
// @Failure		404	{object}	SessionResponse
// @Failure		500	{object}	SessionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id}/reset [post]
func ResetSession(c *gin.Context) {
	s, err := getSession(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	m := s.Machine()
	m.Reset()
	saveMachine(c, s, m)
}

// saveMachine stores the state of the machine in the session and
// responds with the updated session.
func saveMachine(c *gin.Context, s models.Session, m session.Machine) {
	s.SetMachine(m)

	err := models.DB.Save(&s).Error
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
