package v1_test

import (
	"net/http"
	"strings"

	v1 "github.com/expense-planner/backend/internal/controllers/v1"
	"github.com/expense-planner/backend/internal/importer"
	"github.com/expense-planner/backend/internal/models"
	"github.com/expense-planner/backend/internal/session"
	"github.com/expense-planner/backend/internal/summary"
	"github.com/expense-planner/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSessionsCreateDefaults() {
	s := suite.createTestSession(v1.SessionEditable{})

	suite.Assert().Equal([]string{"Food", "Travel", "Shopping", "Rent", "Entertainment", "Bills"}, s.Data.Categories)
	suite.Assert().Equal(session.AwaitingAllocation, s.Data.State)
	suite.Assert().True(s.Data.Inputs.IsZero())
	suite.Assert().True(s.Data.Goals.IsZero())
	suite.Assert().Nil(s.Data.Gate)
	suite.Assert().Equal([]importer.CategoryRule{}, s.Data.CategoryRules)
	suite.Assert().True(strings.HasPrefix(s.Data.Links.Self, "http://example.com/v1/sessions/"))
	suite.Assert().Equal(s.Data.Links.Self+"/comparison", s.Data.Links.Comparison)
}

func (suite *TestSuiteStandard) TestSessionsCreateEmptyBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/sessions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestSessionsCreateFails() {
	tests := []struct {
		name     string
		body     any
		contains string
	}{
		{"Broken body", `{ "currency": "€ }`, "un-parseable"},
		{"One category", v1.SessionEditable{Categories: []string{"Food"}}, "at least 2 categories"},
		{"Duplicate categories", v1.SessionEditable{Categories: []string{"Food", "Food"}}, "more than once"},
		{"Long currency", v1.SessionEditable{Currency: "Indian Rupees"}, "8 characters"},
		{"Invalid locale", v1.SessionEditable{Locale: "this is no locale"}, "BCP 47"},
		{"Threshold out of range", v1.SessionEditable{Thresholds: summary.Thresholds{"Food": decimal.NewFromInt(-1)}}, "between 0 and 100"},
		{"Rule without pattern", v1.SessionEditable{CategoryRules: []importer.CategoryRule{{Category: "Food"}}}, "match pattern"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/sessions", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
			suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), tt.contains)
		})
	}
}

func (suite *TestSuiteStandard) TestSessionsGet() {
	s := suite.createTestSession(v1.SessionEditable{Currency: "₹", Locale: "en-IN"})

	r := test.Request(suite.T(), http.MethodGet, s.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(s.Data.ID, response.Data.ID)
	suite.Assert().Equal("₹", response.Data.Currency)
	suite.Assert().Equal("en-IN", response.Data.Locale)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/sessions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.SessionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 1)
}

func (suite *TestSuiteStandard) TestSessionsGetFails() {
	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"Invalid UUID", "http://example.com/v1/sessions/not-a-uuid", http.StatusBadRequest},
		{"Unknown session", "http://example.com/v1/sessions/d0b94e4a-5faf-4c3b-9c5d-2a6a2f4c04a2", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestSessionsExpired() {
	s := suite.createTestSession(v1.SessionEditable{})

	err := models.DB.Model(&models.Session{}).Where("id = ?", s.Data.ID).UpdateColumn("expires_at", s.Data.CreatedAt.Add(-models.SessionTTL)).Error
	suite.Require().Nil(err)

	r := test.Request(suite.T(), http.MethodGet, s.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Creating a new session purges the expired one
	_ = suite.createTestSession(v1.SessionEditable{})

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Session{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestSessionsUpdate() {
	s := suite.createTestSession(v1.SessionEditable{Currency: "€"})

	r := test.Request(suite.T(), http.MethodPatch, s.Data.Links.Self, map[string]any{
		"categories":    []string{"Needs", "Wants", "Savings"},
		"locale":        "de-DE",
		"thresholds":    map[string]any{"Wants": 30},
		"categoryRules": []map[string]string{{"match": "Restaurant*", "category": "Wants"}},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal([]string{"Needs", "Wants", "Savings"}, response.Data.Categories)
	suite.Assert().Equal("de-DE", response.Data.Locale)
	suite.Assert().Equal("€", response.Data.Currency, "Currency was not part of the update and must be kept")
	suite.Assert().True(response.Data.Thresholds["Wants"].Equal(decimal.NewFromInt(30)))
	suite.Assert().Equal([]importer.CategoryRule{{Match: "Restaurant*", Category: "Wants"}}, response.Data.CategoryRules)
}

func (suite *TestSuiteStandard) TestSessionsUpdateFails() {
	s := suite.createTestSession(v1.SessionEditable{})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty body", "", http.StatusBadRequest},
		{"Broken body", `{ "locale": "de }`, http.StatusBadRequest},
		{"Invalid locale", map[string]any{"locale": "not a locale"}, http.StatusBadRequest},
		{"Single category", map[string]any{"categories": []string{"Food"}}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPatch, s.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/sessions/d0b94e4a-5faf-4c3b-9c5d-2a6a2f4c04a2", map[string]any{"locale": "de"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSessionsUpdateCategoriesWithInputs() {
	s := suite.createTestSession(v1.SessionEditable{Categories: []string{"Needs", "Wants"}})
	_ = suite.submitAllocation(s, map[string]float64{"Needs": 70, "Wants": 30})

	r := test.Request(suite.T(), http.MethodPatch, s.Data.Links.Self, map[string]any{"categories": []string{"Needs", "Wants", "Savings"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	// Sending the same categories is not a change
	r = test.Request(suite.T(), http.MethodPatch, s.Data.Links.Self, map[string]any{"categories": []string{"Needs", "Wants"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestSessionsDelete() {
	s := suite.createTestSession(v1.SessionEditable{})
	_ = suite.uploadCSV(s, "Date,Category,Amount\n2024-03-01,Food,12.50\n")

	r := test.Request(suite.T(), http.MethodDelete, s.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, s.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count, "Transactions of deleted sessions must be deleted")

	r = test.Request(suite.T(), http.MethodDelete, s.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSessionsOptions() {
	s := suite.createTestSession(v1.SessionEditable{})

	tests := []struct {
		url   string
		allow string
	}{
		{s.Data.Links.Self, "OPTIONS, GET, PATCH, DELETE"},
		{s.Data.Links.Allocation, "OPTIONS, PUT"},
		{s.Data.Links.Experiment, "OPTIONS, POST"},
		{s.Data.Links.Adjustments, "OPTIONS, POST"},
		{s.Data.Links.Reset, "OPTIONS, POST"},
		{s.Data.Links.Transactions, "OPTIONS, GET, POST"},
		{s.Data.Links.Summary, "OPTIONS, GET"},
		{s.Data.Links.TimeSeries, "OPTIONS, GET"},
		{s.Data.Links.Advice, "OPTIONS, GET"},
		{s.Data.Links.Comparison, "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.Run(tt.url, func() {
			r := test.Request(suite.T(), http.MethodOptions, tt.url, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
			suite.Assert().Equal(tt.allow, r.Header().Get("allow"))
		})
	}

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/sessions/d0b94e4a-5faf-4c3b-9c5d-2a6a2f4c04a2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSessionsDBError() {
	s := suite.createTestSession(v1.SessionEditable{})
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, s.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/sessions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/sessions", v1.SessionEditable{})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
