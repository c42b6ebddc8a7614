package models

import (
	"strings"
	"time"

	"github.com/expense-planner/backend/internal/summary"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is an expense uploaded for a session.
type Transaction struct {
	DefaultModel
	Session     Session         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	SessionID   uuid.UUID       `gorm:"type:uuid;index"`
	Date        time.Time       // Day of the expense
	Category    string          // Category after category rules were applied
	RawCategory string          // Category as found in the uploaded file
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ImportHash  string          // SHA256 hash of the source record
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Category = strings.TrimSpace(t.Category)
	t.Date = summary.Day(t.Date)

	return nil
}

// Summary returns the transaction as used for calculations.
func (t Transaction) Summary() summary.Transaction {
	return summary.Transaction{
		Date:     t.Date,
		Category: t.Category,
		Amount:   t.Amount,
	}
}

// SummaryTransactions converts a list of transactions for calculations.
func SummaryTransactions(transactions []Transaction) []summary.Transaction {
	s := make([]summary.Transaction, 0, len(transactions))
	for _, t := range transactions {
		s = append(s, t.Summary())
	}
	return s
}
