package util

import "strings"

// freqNames maps short period codes to their descriptive names. Pure
// immutable data; lookups go through FreqName.
var freqNames = map[string]string{
	"B":    "business day",
	"C":    "custom business day",
	"D":    "daily",
	"WE":   "weekly",
	"ME":   "monthly",
	"YE":   "Yearly",
	"BM":   "business month end",
	"CBM":  "custom business month end",
	"MS":   "month start",
	"BMS":  "business month start",
	"CBMS": "custom business month start",
	"Q":    "quarterly",
	"BQ":   "business quarter end",
	"QS":   "quarter start",
	"BQS":  "business quarter start",
	"Y":    "yearly",
	"A":    "yearly",
	"BA":   "business year end",
	"AS":   "year start",
	"BAS":  "business year start",
	"H":    "hourly",
	"T":    "minutely",
	"S":    "secondly",
	"L":    "milliseconds",
	"U":    "microseconds",
}

// FreqName returns the descriptive name for a period code. The lookup is
// case-insensitive; an unknown code returns ok=false rather than an error.
func FreqName(code string) (string, bool) {
	name, ok := freqNames[strings.ToUpper(code)]
	return name, ok
}
