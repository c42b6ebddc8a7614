package models_test

import (
	"time"

	"github.com/expense-planner/backend/internal/budget"
	"github.com/expense-planner/backend/internal/importer"
	"github.com/expense-planner/backend/internal/models"
	"github.com/expense-planner/backend/internal/session"
	"github.com/expense-planner/backend/internal/summary"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

func (suite *TestSuiteStandard) TestSessionDefaults() {
	s := suite.createTestSession(models.Session{})

	suite.Assert().NotEqual(uuid.Nil, s.ID, "Sessions get an ID on creation")
	suite.Assert().Equal(budget.DefaultCategories, s.Categories)
	suite.Assert().Equal(session.AwaitingAllocation, s.State)
	suite.Assert().True(s.ExpiresAt.After(time.Now()))
	suite.Assert().Equal(language.English, s.LanguageTag())
}

func (suite *TestSuiteStandard) TestSessionValidation() {
	tests := []struct {
		name    string
		session models.Session
		err     error
	}{
		{"Single category", models.Session{Categories: []string{"Food"}}, models.ErrCategoriesEmpty},
		{"Duplicate category", models.Session{Categories: []string{"Food", "Food"}}, models.ErrCategoriesEmpty},
		{"Long currency", models.Session{Currency: "Rupees and more"}, models.ErrCurrencyTooLong},
		{"Invalid locale", models.Session{Locale: "not a locale!"}, models.ErrLocaleInvalid},
		{"Threshold above 100", models.Session{Thresholds: summary.Thresholds{"Food": decimal.NewFromInt(101)}}, models.ErrThresholdRange},
		{"Invalid rule", models.Session{CategoryRules: []importer.CategoryRule{{Match: "", Category: "Food"}}}, importer.ErrRuleInvalid},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := models.DB.Create(&tt.session).Error
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestSessionRoundTrip() {
	m := session.New()
	inputs, err := budget.NewAllocation([]string{"Needs", "Wants"}, map[string]float64{"Needs": 70, "Wants": 30})
	suite.Require().Nil(err)

	_, err = m.SubmitAllocation(inputs)
	suite.Require().Nil(err)
	suite.Require().Nil(m.StartExperiment())
	suite.Require().Nil(m.Adjust("Wants", 40))

	s := models.Session{
		Categories: []string{"Needs", "Wants"},
		Thresholds: summary.Thresholds{"Wants": decimal.NewFromInt(30)},
		Locale:     "de-DE",
	}
	s.SetMachine(m)
	s = suite.createTestSession(s)

	var loaded models.Session
	suite.Require().Nil(models.DB.First(&loaded, "id = ?", s.ID).Error)

	suite.Assert().Equal(session.ExperimentActive, loaded.State)
	suite.Assert().Equal([]string{"Needs", "Wants"}, loaded.Goals.Categories())
	wants, _ := loaded.Goals.Get("Wants")
	suite.Assert().InDelta(40, wants, 1e-9)
	suite.Assert().Equal(inputs.Entries(), loaded.Inputs.Entries())
	suite.Assert().True(loaded.EffectiveThresholds().For("Wants").Equal(decimal.NewFromInt(30)))
	suite.Assert().True(loaded.EffectiveThresholds().For("Rent").Equal(decimal.NewFromInt(40)))
	suite.Assert().Equal(language.MustParse("de-DE"), loaded.LanguageTag())
}

func (suite *TestSuiteStandard) TestSessionNotFound() {
	var s models.Session
	err := models.DB.First(&s, "id = ?", "00000000-0000-0000-0000-000000000001").Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "there is no session matching your query")
}

func (suite *TestSuiteStandard) TestReplaceTransactions() {
	s := suite.createTestSession(models.Session{})
	other := suite.createTestSession(models.Session{})

	parsed := []importer.Transaction{
		{Transaction: summary.Transaction{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Category: "Food", Amount: decimal.NewFromInt(10)}, RawCategory: "Food"},
		{Transaction: summary.Transaction{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Category: "Rent", Amount: decimal.NewFromInt(500)}, RawCategory: "Rent"},
	}

	_, err := s.ReplaceTransactions(models.DB, parsed)
	suite.Require().Nil(err)
	_, err = other.ReplaceTransactions(models.DB, parsed[:1])
	suite.Require().Nil(err)

	transactions, err := s.Transactions(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 2)
	suite.Assert().Equal("Rent", transactions[0].Category, "Transactions are ordered by date")
	suite.Assert().True(transactions[1].Amount.Equal(decimal.NewFromInt(10)))

	// Replacing removes the previous transactions of the session only
	_, err = s.ReplaceTransactions(models.DB, parsed[:1])
	suite.Require().Nil(err)

	transactions, err = s.Transactions(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Len(transactions, 1)

	transactions, err = other.Transactions(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Len(transactions, 1)
}

func (suite *TestSuiteStandard) TestReplaceTransactionsExtendsExpiry() {
	s := suite.createTestSession(models.Session{})

	soon := time.Now().In(time.UTC).Add(time.Minute)
	suite.Require().Nil(models.DB.Model(&s).UpdateColumn("expires_at", soon).Error)

	_, err := s.ReplaceTransactions(models.DB, []importer.Transaction{
		{Transaction: summary.Transaction{Date: time.Now(), Category: "Food", Amount: decimal.NewFromInt(1)}},
	})
	suite.Require().Nil(err)

	var loaded models.Session
	suite.Require().Nil(models.DB.First(&loaded, "id = ?", s.ID).Error)
	suite.Assert().True(loaded.ExpiresAt.After(soon.Add(time.Hour)), "Replacing transactions must extend the expiry, got %s", loaded.ExpiresAt)
}

func (suite *TestSuiteStandard) TestReplaceTransactionsAtomic() {
	s := suite.createTestSession(models.Session{})
	_, err := s.ReplaceTransactions(models.DB, []importer.Transaction{
		{Transaction: summary.Transaction{Date: time.Now(), Category: "Food", Amount: decimal.NewFromInt(1)}},
	})
	suite.Require().Nil(err)

	// The session cannot be saved, so nothing must be replaced
	s.Currency = "Rupees and more"
	_, err = s.ReplaceTransactions(models.DB, []importer.Transaction{
		{Transaction: summary.Transaction{Date: time.Now(), Category: "Rent", Amount: decimal.NewFromInt(2)}},
		{Transaction: summary.Transaction{Date: time.Now(), Category: "Bills", Amount: decimal.NewFromInt(3)}},
	})
	suite.Assert().ErrorIs(err, models.ErrCurrencyTooLong)

	transactions, err := s.Transactions(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal("Food", transactions[0].Category)
}

func (suite *TestSuiteStandard) TestPurgeExpiredSessions() {
	s := suite.createTestSession(models.Session{})
	_, err := s.ReplaceTransactions(models.DB, []importer.Transaction{
		{Transaction: summary.Transaction{Date: time.Now(), Category: "Food", Amount: decimal.NewFromInt(1)}},
	})
	suite.Require().Nil(err)

	purged, err := models.PurgeExpiredSessions(models.DB, time.Now())
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(0), purged, "Fresh sessions must not be purged")

	purged, err = models.PurgeExpiredSessions(models.DB, time.Now().Add(models.SessionTTL+time.Minute))
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), purged)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count, "Transactions of purged sessions must be deleted")
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	err := models.DB.Create(&models.Session{}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
