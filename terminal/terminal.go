// Package terminal adapts bar history pulled from a trading-terminal
// session into canonical price frames. The session itself — connection,
// login, authorization — lives behind the Terminal interface; this package
// only translates requests and normalizes results.
package terminal

import "time"

// Rate is one raw history row as the terminal returns it. Time is the bar
// open in epoch seconds.
type Rate struct {
	Time       int64
	Open       float64
	High       float64
	Low        float64
	Close      float64
	TickVolume int64
	Spread     int32
	RealVolume int64
}

// Terminal is the history-request capability of a connected terminal
// session. Implementations are expected to block; the adapter adds no
// timeouts or retries of its own.
type Terminal interface {
	// RatesRange returns the bars for symbol between from and to.
	RatesRange(symbol string, barCode int, from, to time.Time) ([]Rate, error)

	// RatesFromPos returns count bars starting start bars back from the
	// most recent one.
	RatesFromPos(symbol string, barCode int, start, count int) ([]Rate, error)
}
