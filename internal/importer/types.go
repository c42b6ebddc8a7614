package importer

import (
	"github.com/expense-planner/backend/internal/summary"
)

// Transaction is a transaction parsed from an import file.
type Transaction struct {
	summary.Transaction
	RawCategory string // Category as it was found in the file, before rules were applied
	ImportHash  string // The SHA256 hash of the source record
}

// Transactions returns the plain transactions.
func Transactions(parsed []Transaction) []summary.Transaction {
	transactions := make([]summary.Transaction, 0, len(parsed))
	for _, p := range parsed {
		transactions = append(transactions, p.Transaction)
	}
	return transactions
}
