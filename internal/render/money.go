package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// pt-BR is the single supported locale.
var printer = message.NewPrinter(language.BrazilianPortuguese)

// Currency formats a value as BRL with two decimals and pt-BR grouping.
// Formatting is presentation-only; stored amounts are never rounded.
func Currency(v float64) string {
	return printer.Sprintf("R$ %v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Percent formats a rate the way the proposal shows it, without a unit.
func Percent(v float64) string {
	return printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(2)))
}
