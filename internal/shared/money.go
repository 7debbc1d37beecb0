package shared

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	// Money travels as a JSON number, not a quoted string.
	decimal.MarshalJSONWithoutQuotes = true
}

// FormatCurrency renders an amount in US dollars with grouping, e.g. $1,234.50.
// Negative amounts are written -$12.00.
func FormatCurrency(amount decimal.Decimal) string {
	amount = amount.Round(2)
	if amount.IsNegative() {
		return "-" + FormatCurrency(amount.Neg())
	}
	f, _ := amount.Float64()
	return message.NewPrinter(language.AmericanEnglish).Sprintf("$%.2f", f)
}
