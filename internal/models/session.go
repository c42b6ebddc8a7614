package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/expense-planner/backend/internal/budget"
	"github.com/expense-planner/backend/internal/importer"
	"github.com/expense-planner/backend/internal/session"
	"github.com/expense-planner/backend/internal/summary"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// SessionTTL is the time a session is kept after its last update.
var SessionTTL = 24 * time.Hour

// Session is the budget planning state of one user.
type Session struct {
	DefaultModel
	State         session.State           `gorm:"default:awaitingAllocation"`
	Categories    []string                `gorm:"serializer:json"`
	Inputs        budget.Allocation       `gorm:"serializer:json"` // Manually entered percentages
	Goals         budget.Allocation       `gorm:"serializer:json"` // Budget goals
	Thresholds    summary.Thresholds      `gorm:"serializer:json"` // Overrides for the default thresholds
	CategoryRules []importer.CategoryRule `gorm:"serializer:json"`
	Currency      string
	Locale        string
	ExpiresAt     time.Time `gorm:"index"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if err := s.DefaultModel.BeforeCreate(tx); err != nil {
		return err
	}

	if len(s.Categories) == 0 {
		s.Categories = append([]string(nil), budget.DefaultCategories...)
	}

	if s.State == "" {
		s.State = session.AwaitingAllocation
	}

	return nil
}

func (s *Session) BeforeSave(_ *gorm.DB) error {
	s.Currency = strings.TrimSpace(s.Currency)
	s.Locale = strings.TrimSpace(s.Locale)
	s.ExpiresAt = time.Now().In(time.UTC).Add(SessionTTL)

	return s.validate()
}

func (s *Session) validate() error {
	if len(s.Categories) > 0 {
		if _, err := budget.NewAllocation(s.Categories, nil); err != nil {
			return fmt.Errorf("%w: %w", ErrCategoriesEmpty, err)
		}
	}

	if utf8.RuneCountInString(s.Currency) > 8 {
		return ErrCurrencyTooLong
	}

	if s.Locale != "" {
		if _, err := language.Parse(s.Locale); err != nil {
			return ErrLocaleInvalid
		}
	}

	for _, v := range s.Thresholds {
		if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(100)) {
			return ErrThresholdRange
		}
	}

	for _, r := range s.CategoryRules {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Machine returns the state machine for the session.
func (s Session) Machine() session.Machine {
	return session.Machine{
		State:  s.State,
		Inputs: s.Inputs.Clone(),
		Goals:  s.Goals.Clone(),
	}
}

// SetMachine stores the state of the machine in the session.
func (s *Session) SetMachine(m session.Machine) {
	s.State = m.State
	s.Inputs = m.Inputs
	s.Goals = m.Goals
}

// LanguageTag returns the locale used to format amounts, English if unset.
func (s Session) LanguageTag() language.Tag {
	tag, err := language.Parse(s.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// EffectiveThresholds returns the default thresholds with the overrides of
// the session applied.
func (s Session) EffectiveThresholds() summary.Thresholds {
	return summary.DefaultThresholds().Merge(s.Thresholds)
}

// Transactions returns all transactions of the session ordered by date.
func (s Session) Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction
	err := db.Where("session_id = ?", s.ID).Order("date ASC, created_at ASC").Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// ReplaceTransactions deletes all transactions of the session and creates the new ones.
//
// The session is saved in the same database transaction, which extends its
// expiry. If saving fails, the previous transactions are kept.
func (s *Session) ReplaceTransactions(db *gorm.DB, parsed []importer.Transaction) ([]Transaction, error) {
	transactions := make([]Transaction, 0, len(parsed))
	for _, p := range parsed {
		transactions = append(transactions, Transaction{
			SessionID:   s.ID,
			Date:        p.Date,
			Category:    p.Category,
			RawCategory: p.RawCategory,
			Amount:      p.Amount,
			ImportHash:  p.ImportHash,
		})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", s.ID).Delete(&Transaction{}).Error; err != nil {
			return err
		}

		if len(transactions) > 0 {
			if err := tx.CreateInBatches(&transactions, 100).Error; err != nil {
				return err
			}
		}

		return tx.Save(s).Error
	})
	if err != nil {
		return nil, generalError(err)
	}

	return transactions, nil
}

// PurgeExpiredSessions deletes all sessions that expired before now together
// with their transactions.
func PurgeExpiredSessions(db *gorm.DB, now time.Time) (int64, error) {
	var purged int64
	now = now.In(time.UTC)

	err := db.Transaction(func(tx *gorm.DB) error {
		expired := tx.Model(&Session{}).Select("id").Where("expires_at < ?", now)

		if err := tx.Where("session_id IN (?)", expired).Delete(&Transaction{}).Error; err != nil {
			return err
		}

		res := tx.Where("expires_at < ?", now).Delete(&Session{})
		purged = res.RowsAffected
		return res.Error
	})

	return purged, generalError(err)
}
