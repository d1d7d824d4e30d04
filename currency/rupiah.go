// Package currency formats amounts for display. Presentation only; all
// computation happens on the raw numbers.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount with Indonesian digit grouping, e.g.
// 15000 -> "Rp 15.000". Rupiah has no sub-unit in practice, so fractions
// are rounded away.
func FormatRupiah(amount float64) string {
	return printer.Sprintf("Rp %v", number.Decimal(amount, number.MaxFractionDigits(0)))
}
