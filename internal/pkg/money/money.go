package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders a rupee amount with Indian digit grouping, e.g. ₹1,50,000.00.
func FormatINR(v float64) string {
	return printer.Sprintf("₹%.2f", v)
}
