package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/expense-planner/backend/internal/httputil"
	"github.com/expense-planner/backend/internal/importer"
	"github.com/expense-planner/backend/internal/importer/parser/expensecsv"
	"github.com/expense-planner/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	Date        time.Time       `json:"date" example:"2024-03-01T00:00:00Z"`                                                               // Day of the expense
	Category    string          `json:"category" example:"Food"`                                                                           // Category after category rules were applied
	RawCategory string          `json:"rawCategory" example:"Restaurant"`                                                                  // Category as found in the uploaded file
	Amount      decimal.Decimal `json:"amount" example:"14.03"`                                                                            // Amount spent
	ImportHash  string          `json:"importHash" example:"867e3a26dc0baf73f4bff506f31a97f6c32088917e9e5cf1a5ed6f3f84a6fa70" default:""` // The SHA256 hash of the source record
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		Date:         model.Date,
		Category:     model.Category,
		RawCategory:  model.RawCategory,
		Amount:       model.Amount,
		ImportHash:   model.ImportHash,
	}
}

type TransactionListResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []Transaction `json:"data"`                                                          // List of transactions
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(strings.ToLower(formFile.Filename), suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id}/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Upload transactions
// @Description	Replaces the transactions of the session with the ones in the uploaded CSV file. The file needs the columns Date, Category and Amount. If any row is invalid, nothing is stored
// @Tags			Transactions
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	TransactionListResponse
// @Failure		400		{object}	TransactionListResponse
// @Failure		404		{object}	TransactionListResponse
// @Failure		500		{object}	TransactionListResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/sessions/{id}/transactions [post]
func CreateTransactions(c *gin.Context) {
	s, err := getSession(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	parsed, err := parseUpload(c)
	if err != nil {
		uploadCount.WithLabelValues(result(err)).Inc()
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	importer.ApplyRules(parsed, s.CategoryRules)

	transactions, err := s.ReplaceTransactions(models.DB, parsed)
	uploadCount.WithLabelValues(result(err)).Inc()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}
	uploadedTransactions.Add(float64(len(transactions)))

	log.Debug().Str("session", s.ID.String()).Int("transactions", len(transactions)).Msg("stored uploaded transactions")

	data := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		data = append(data, newTransaction(t))
	}

	c.JSON(http.StatusCreated, TransactionListResponse{Data: data})
}

// parseUpload parses the uploaded CSV file.
func parseUpload(c *gin.Context) ([]importer.Transaction, error) {
	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return expensecsv.Parse(f)
}

// @Summary		Get transactions
// @Description	Returns the transactions of the session ordered by date
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		404	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/sessions/{id}/transactions [get]
func GetTransactions(c *gin.Context) {
	s, err := getSession(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	transactions, err := s.Transactions(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		data = append(data, newTransaction(t))
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}
