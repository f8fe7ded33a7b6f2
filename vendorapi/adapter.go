package vendorapi

import (
	"context"
	"fmt"
	"time"

	"github.com/rustyeddy/pricefeed/series"
)

// HistorySource is the capability Fetch needs from a vendor connection.
// *Client satisfies it.
type HistorySource interface {
	GetHistory(ctx context.Context, req HistoryRequest) ([]Bar, error)
}

// Fetch pulls the full bar history for symbol over [start, end] at the given
// interval and normalizes it into a canonical frame: the close price becomes
// the Price column, and when reduce is set every other column is dropped and
// gaps are filled.
//
// A range the vendor has no data for yields an EMPTY frame, not an error —
// callers must handle zero-row frames explicitly. An inverted range is
// passed through to the vendor, which treats it the same way. Errors are
// reserved for transport and decoding failures.
func Fetch(ctx context.Context, src HistorySource, symbol string, start, end time.Time, interval Interval, reduce bool) (*series.Frame, error) {
	bars, err := src.GetHistory(ctx, HistoryRequest{
		Symbol:   symbol,
		Start:    start,
		End:      end,
		Interval: interval,
	})
	if err != nil {
		return nil, fmt.Errorf("vendor history %s: %w", symbol, err)
	}

	index := make([]time.Time, len(bars))
	open := make([]float64, len(bars))
	high := make([]float64, len(bars))
	low := make([]float64, len(bars))
	price := make([]float64, len(bars))
	volume := make([]float64, len(bars))
	for i, b := range bars {
		index[i] = b.Time
		open[i] = b.Open
		high[i] = b.High
		low[i] = b.Low
		price[i] = b.Close
		volume[i] = b.Volume
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
		{"Volume", volume},
	} {
		if err := f.AddColumn(col.name, col.vals); err != nil {
			return nil, fmt.Errorf("vendor history %s: %w", symbol, err)
		}
	}

	if reduce {
		return series.Reduce(f, series.PriceColumn)
	}
	return f, nil
}
