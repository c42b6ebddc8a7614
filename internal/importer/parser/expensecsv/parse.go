// Package expensecsv parses expense CSV files with the columns Date, Category and Amount.
package expensecsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/expense-planner/backend/internal/importer"
	"github.com/expense-planner/backend/internal/importer/helpers"
	"github.com/expense-planner/backend/internal/summary"
	"github.com/shopspring/decimal"
)

const (
	ColumnDate     = "Date"
	ColumnCategory = "Category"
	ColumnAmount   = "Amount"
)

var (
	ErrMissingColumns   = errors.New("CSV must have columns: Date, Category, Amount")
	ErrCategoryEmpty    = errors.New("the category must not be empty")
	ErrAmountNegative   = errors.New("the amount must not be negative")
	ErrAmountUnparsable = errors.New("the amount could not be parsed to a decimal")
)

// dateLayouts are tried in order when parsing the Date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02.01.2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

type columns struct {
	date, category, amount int
}

// Parse parses an expense CSV file.
//
// The first line must be a header containing the Date, Category and Amount
// columns. Other columns are ignored. Parsing stops at the first line that
// cannot be parsed, no transactions are returned in that case.
func Parse(f io.Reader) ([]importer.Transaction, error) {
	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []importer.Transaction{}, nil
	}
	if err != nil {
		return []importer.Transaction{}, fmt.Errorf("could not read the CSV header: %w", err)
	}

	cols, err := findColumns(header)
	if err != nil {
		return []importer.Transaction{}, err
	}

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	transactions := []importer.Transaction{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return []importer.Transaction{}, fmt.Errorf("could not read line in CSV: %w", err)
		}

		date, err := parseDate(record[cols.date])
		if err != nil {
			return csvReadError(reader, err)
		}

		category := strings.TrimSpace(record[cols.category])
		if category == "" {
			return csvReadError(reader, ErrCategoryEmpty)
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(record[cols.amount]))
		if err != nil {
			return csvReadError(reader, ErrAmountUnparsable)
		}

		if amount.IsNegative() {
			return csvReadError(reader, ErrAmountNegative)
		}

		transactions = append(transactions, importer.Transaction{
			Transaction: summary.Transaction{
				Date:     date,
				Category: category,
				Amount:   amount,
			},
			RawCategory: category,
			ImportHash:  helpers.Sha256Record(record),
		})
	}

	return transactions, nil
}

// findColumns returns the indices of the required columns in the header.
func findColumns(header []string) (columns, error) {
	cols := columns{-1, -1, -1}

	for i, name := range header {
		// Excel likes to prepend a byte order mark
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}

		switch strings.TrimSpace(name) {
		case ColumnDate:
			cols.date = i
		case ColumnCategory:
			cols.category = i
		case ColumnAmount:
			cols.amount = i
		}
	}

	if cols.date == -1 || cols.category == -1 || cols.amount == -1 {
		return columns{}, ErrMissingColumns
	}

	return cols, nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return summary.Day(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("could not parse date %q", value)
}

// csvReadError returns the an error with the format string, including the line of the input
// the error occurred in in the message.
func csvReadError(r *csv.Reader, err error) ([]importer.Transaction, error) {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(0)

	return []importer.Transaction{}, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
