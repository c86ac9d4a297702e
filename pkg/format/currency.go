// Package format renders monetary and ratio values for display.
package format

import (
	"github.com/iwvelando/break-even/pkg/constants"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
// Amounts are rounded half away from zero before printing.
func Currency(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(constants.DecimalPlaces)
	formatted := message.NewPrinter(language.English).Sprintf("%.2f", d.Abs().InexactFloat64())
	if d.IsNegative() {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Percent renders a ratio as a percentage with two decimals (0.6 -> "60.00%").
func Percent(ratio float64) string {
	return decimal.NewFromFloat(ratio).
		Mul(decimal.NewFromFloat(constants.PercentageMultiplier)).
		StringFixed(constants.DecimalPlaces) + "%"
}

// Units renders a unit count rounded to a whole number with thousands separators.
func Units(units float64) string {
	d := decimal.NewFromFloat(units).Round(0)
	return message.NewPrinter(language.English).Sprintf("%d", d.IntPart())
}
