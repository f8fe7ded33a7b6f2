package terminal

import (
	"log/slog"
	"time"

	"github.com/rustyeddy/pricefeed/series"
)

// RangeSelector picks which kind of history request Fetch issues. Exactly
// two kinds exist: a date range or a position range. The two cannot be
// combined, which the type system enforces.
type RangeSelector interface {
	valid() bool
}

// DateRange requests the bars between From and To. An inverted range is
// passed to the terminal as-is; it answers with no rows.
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) valid() bool {
	return !r.From.IsZero() && !r.To.IsZero()
}

// PositionRange requests Count bars starting Start bars back from the most
// recent bar.
type PositionRange struct {
	Start int
	Count int
}

func (r PositionRange) valid() bool {
	return r.Start >= 0 && r.Count > 0
}

// Fetch pulls bar history from the terminal and normalizes it into a
// canonical frame: epoch-seconds bar times become the index, the close
// becomes the Price column, and when reduce is set everything else is
// dropped and gaps are filled.
//
// Fetch degrades rather than fails: an unauthorized session, an unknown
// timeframe, a nil or malformed selector, a terminal error, or an empty
// result all yield nil. Callers check for nil instead of an error, so the
// call is safe even when no session is connected.
func Fetch(term Terminal, authorized bool, symbol string, tf Timeframe, sel RangeSelector, reduce bool) *series.Frame {
	if !authorized {
		slog.Warn("terminal fetch skipped: not authorized", "symbol", symbol)
		return nil
	}

	barCode, ok := BarCode(tf)
	if !ok {
		slog.Warn("terminal fetch skipped: invalid timeframe", "timeframe", string(tf))
		return nil
	}

	if sel == nil || !sel.valid() {
		slog.Warn("terminal fetch skipped: no usable range selector", "symbol", symbol)
		return nil
	}

	var (
		rates []Rate
		err   error
	)
	switch s := sel.(type) {
	case DateRange:
		rates, err = term.RatesRange(symbol, barCode, s.From, s.To)
	case PositionRange:
		rates, err = term.RatesFromPos(symbol, barCode, s.Start, s.Count)
	default:
		return nil
	}
	if err != nil {
		slog.Warn("terminal fetch failed", "symbol", symbol, "error", err)
		return nil
	}
	if len(rates) == 0 {
		slog.Debug("terminal fetch returned no rows", "symbol", symbol)
		return nil
	}

	index := make([]time.Time, len(rates))
	open := make([]float64, len(rates))
	high := make([]float64, len(rates))
	low := make([]float64, len(rates))
	price := make([]float64, len(rates))
	tickVol := make([]float64, len(rates))
	spread := make([]float64, len(rates))
	realVol := make([]float64, len(rates))
	for i, r := range rates {
		index[i] = time.Unix(r.Time, 0).UTC()
		open[i] = r.Open
		high[i] = r.High
		low[i] = r.Low
		price[i] = r.Close
		tickVol[i] = float64(r.TickVolume)
		spread[i] = float64(r.Spread)
		realVol[i] = float64(r.RealVolume)
	}

	f := series.New(index)
	for _, col := range []struct {
		name string
		vals []float64
	}{
		{"Open", open},
		{"High", high},
		{"Low", low},
		{series.PriceColumn, price},
		{"TickVolume", tickVol},
		{"Spread", spread},
		{"RealVolume", realVol},
	} {
		if err := f.AddColumn(col.name, col.vals); err != nil {
			slog.Warn("terminal fetch failed", "symbol", symbol, "error", err)
			return nil
		}
	}

	if reduce {
		reduced, err := series.Reduce(f, series.PriceColumn)
		if err != nil {
			return nil
		}
		return reduced
	}
	return f
}
