package v1_test

import (
	"net/http"
	"strings"

	v1 "github.com/expense-planner/backend/internal/controllers/v1"
	"github.com/expense-planner/backend/internal/importer"
	"github.com/expense-planner/backend/test"
	"github.com/shopspring/decimal"
)

const expenses = `Date,Category,Amount
2024-03-02,Restaurant Bella,12.50
2024-03-01,Rent,800
2024-03-02,Groceries,37.5
`

func (suite *TestSuiteStandard) TestTransactionsUpload() {
	s := suite.createTestSession(v1.SessionEditable{})

	response := suite.uploadCSV(s, expenses)
	suite.Require().Len(response.Data, 3)

	r := test.Request(suite.T(), http.MethodGet, s.Data.Links.Transactions, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 3)
	suite.Assert().Equal("Rent", list.Data[0].Category, "Transactions must be ordered by date")
	suite.Assert().True(list.Data[0].Amount.Equal(decimal.NewFromInt(800)))
	suite.Assert().NotEmpty(list.Data[0].ImportHash)

	// A second upload replaces the transactions
	_ = suite.uploadCSV(s, "Date,Category,Amount\n2024-03-05,Food,5\n")

	r = test.Request(suite.T(), http.MethodGet, s.Data.Links.Transactions, "")
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 1)
}

func (suite *TestSuiteStandard) TestTransactionsCategoryRules() {
	s := suite.createTestSession(v1.SessionEditable{
		CategoryRules: []importer.CategoryRule{
			{Match: "restaurant*", Category: "Food"},
			{Match: "Groceries", Category: "Food"},
		},
	})

	response := suite.uploadCSV(s, expenses)
	suite.Require().Len(response.Data, 3)

	categories := map[string]string{}
	for _, t := range response.Data {
		categories[t.RawCategory] = t.Category
	}

	suite.Assert().Equal("Food", categories["Restaurant Bella"])
	suite.Assert().Equal("Food", categories["Groceries"])
	suite.Assert().Equal("Rent", categories["Rent"])
}

func (suite *TestSuiteStandard) TestTransactionsUploadFails() {
	s := suite.createTestSession(v1.SessionEditable{})
	_ = suite.uploadCSV(s, expenses)

	tests := []struct {
		name     string
		fileName string
		content  string
		contains string
	}{
		{"Wrong suffix", "expenses.txt", expenses, "only supports files of the following types: .csv"},
		{"Missing column", "expenses.csv", "Date,Amount\n2024-03-01,5\n", "CSV must have columns"},
		{"Negative amount", "expenses.csv", "Date,Category,Amount\n2024-03-01,Food,5\n2024-03-02,Food,-5\n", "error in line 3 of the CSV"},
		{"Invalid date", "expenses.csv", "Date,Category,Amount\nyesterday,Food,5\n", "error in line 2 of the CSV"},
		{"Empty category", "expenses.csv", "Date,Category,Amount\n2024-03-01, ,5\n", "the category must not be empty"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			body, headers := test.CSVUpload(suite.T(), tt.fileName, tt.content)
			r := test.Request(suite.T(), http.MethodPost, s.Data.Links.Transactions, body, headers)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
			suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), tt.contains)
		})
	}

	// No file at all
	r := test.Request(suite.T(), http.MethodPost, s.Data.Links.Transactions, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// The transactions of the first upload are kept
	r = test.Request(suite.T(), http.MethodGet, s.Data.Links.Transactions, "")
	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 3)
}

func (suite *TestSuiteStandard) TestTransactionsUnknownSession() {
	url := "http://example.com/v1/sessions/d0b94e4a-5faf-4c3b-9c5d-2a6a2f4c04a2/transactions"

	r := test.Request(suite.T(), http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	body, headers := test.CSVUpload(suite.T(), "expenses.csv", expenses)
	r = test.Request(suite.T(), http.MethodPost, url, body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodOptions, strings.TrimSuffix(url, "/transactions"), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
