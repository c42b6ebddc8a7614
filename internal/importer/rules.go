package importer

import (
	"errors"
	"strings"

	"github.com/ryanuber/go-glob"
	"golang.org/x/text/cases"
)

var ErrRuleInvalid = errors.New("category rules need a match pattern and a category")

// CategoryRule renames the category of imported transactions.
type CategoryRule struct {
	Match    string `json:"match" example:"Restaurant*"` // Glob pattern matched against the category in the file, case insensitive
	Category string `json:"category" example:"Food"`     // Category to use for matching transactions
}

// Validate checks that the rule can be applied.
func (r CategoryRule) Validate() error {
	if strings.TrimSpace(r.Match) == "" || strings.TrimSpace(r.Category) == "" {
		return ErrRuleInvalid
	}
	return nil
}

// ApplyRules sets the category of every transaction to the category of the
// first rule that matches it. Transactions no rule matches are left as they are.
func ApplyRules(transactions []Transaction, rules []CategoryRule) {
	if len(rules) == 0 {
		return
	}

	fold := cases.Fold()
	patterns := make([]string, len(rules))
	for i, rule := range rules {
		patterns[i] = fold.String(rule.Match)
	}

	for i := range transactions {
		name := fold.String(transactions[i].RawCategory)

		for j, rule := range rules {
			if glob.Glob(patterns[j], name) {
				transactions[i].Category = rule.Category
				break
			}
		}
	}
}
