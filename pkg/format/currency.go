// Package format provides string formatting helpers for monetary values.
package format

import (
	"fmt"

	"github.com/lendwell/mortgage-engine/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56"). Values pass through mathutil.Round so
// halves round away from zero rather than to even.
func Currency(amount float64) string {
	amount = mathutil.Round(amount)
	if amount < 0 {
		return "-$" + printer.Sprintf("%.2f", -amount)
	}
	return "$" + printer.Sprintf("%.2f", amount)
}

// Percent returns a percentage string with two decimals (e.g., "6.50%").
func Percent(ratePercent float64) string {
	return fmt.Sprintf("%.2f%%", ratePercent)
}
