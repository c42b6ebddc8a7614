package summary

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatAmount formats an amount with two decimals and the grouping rules of
// the locale, prefixed by the currency symbol.
func FormatAmount(amount decimal.Decimal, currency string, locale language.Tag) string {
	p := message.NewPrinter(locale)
	return currency + p.Sprintf("%.2f", amount.Round(2).InexactFloat64())
}
