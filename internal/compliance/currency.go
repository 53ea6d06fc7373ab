// File path: internal/compliance/currency.go
package compliance

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders an amount as Brazilian Real with pt-BR grouping and
// two decimals, e.g. 1234.5 -> "R$ 1.234,50".
func FormatBRL(v float64) string {
	return brl.Sprintf("R$ %v", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatBRLRange renders a "low to high" impact band.
func FormatBRLRange(low, high float64) string {
	return FormatBRL(low) + " a " + FormatBRL(high)
}
