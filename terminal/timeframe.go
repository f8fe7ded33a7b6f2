package terminal

// Timeframe is a bar-granularity code in the terminal's notation:
// Mn for minutes, Hn for hours, D1, W1 and MN1.
type Timeframe string

const (
	M1  Timeframe = "M1"
	M2  Timeframe = "M2"
	M3  Timeframe = "M3"
	M4  Timeframe = "M4"
	M5  Timeframe = "M5"
	M6  Timeframe = "M6"
	M10 Timeframe = "M10"
	M12 Timeframe = "M12"
	M15 Timeframe = "M15"
	M20 Timeframe = "M20"
	M30 Timeframe = "M30"
	H1  Timeframe = "H1"
	H2  Timeframe = "H2"
	H3  Timeframe = "H3"
	H4  Timeframe = "H4"
	H6  Timeframe = "H6"
	H8  Timeframe = "H8"
	H12 Timeframe = "H12"
	D1  Timeframe = "D1"
	W1  Timeframe = "W1"
	MN1 Timeframe = "MN1"
)

// The terminal encodes timeframes as packed integers: minutes verbatim,
// hours as 0x4000|hours (a day is 24 hours), weeks as 0x8000|1 and months
// as 0xC000|1. The table below is the wire contract and must not drift.
var barCodes = map[Timeframe]int{
	M1:  1,
	M2:  2,
	M3:  3,
	M4:  4,
	M5:  5,
	M6:  6,
	M10: 10,
	M12: 12,
	M15: 15,
	M20: 20,
	M30: 30,
	H1:  0x4000 | 1,
	H2:  0x4000 | 2,
	H3:  0x4000 | 3,
	H4:  0x4000 | 4,
	H6:  0x4000 | 6,
	H8:  0x4000 | 8,
	H12: 0x4000 | 12,
	D1:  0x4000 | 24,
	W1:  0x8000 | 1,
	MN1: 0xC000 | 1,
}

// BarCode resolves a timeframe to the terminal's internal bar code.
func BarCode(tf Timeframe) (int, bool) {
	code, ok := barCodes[tf]
	return code, ok
}
