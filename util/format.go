package util

import (
	"fmt"
	"math"
	"strconv"
)

// NotAvailable is rendered in place of any value that is NaN. Reporting
// tables use it so a missing statistic never shows up as "NaN".
const NotAvailable = "-"

// ToPercent renders x as a percentage with two fractional digits,
// e.g. 0.1234 -> "12.34%".
func ToPercent(x float64) string {
	if math.IsNaN(x) {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f%%", x*100)
}

// ToPercentNum is ToPercent without the "%" suffix, e.g. 0.1234 -> "12.34".
func ToPercentNum(x float64) string {
	if math.IsNaN(x) {
		return NotAvailable
	}
	return strconv.FormatFloat(x*100, 'f', 2, 64)
}

// ToFloat renders x with a fixed number of fractional digits.
func ToFloat(x float64, decimals int) string {
	if math.IsNaN(x) {
		return NotAvailable
	}
	return strconv.FormatFloat(x, 'f', decimals, 64)
}
