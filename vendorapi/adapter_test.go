package vendorapi

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/pricefeed/series"
)

type fakeSource struct {
	bars    []Bar
	err     error
	lastReq HistoryRequest
}

func (f *fakeSource) GetHistory(ctx context.Context, req HistoryRequest) ([]Bar, error) {
	f.lastReq = req
	return f.bars, f.err
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestFetch_Reduced(t *testing.T) {
	t.Parallel()

	src := &fakeSource{bars: []Bar{
		{Time: day(1), Open: 1.0, High: 1.2, Low: 0.9, Close: 1.1, Volume: 100},
		{Time: day(2), Open: 1.1, High: 1.3, Low: 1.0, Close: math.NaN(), Volume: 110},
		{Time: day(3), Open: 1.2, High: 1.4, Low: 1.1, Close: 1.3, Volume: 120},
	}}

	f, err := Fetch(context.Background(), src, "EURUSD", day(1), day(3), I1d, true)
	require.NoError(t, err)

	assert.Equal(t, []string{series.PriceColumn}, f.Columns())
	assert.Equal(t, []time.Time{day(1), day(2), day(3)}, f.Index())
	// The missing close was backward-filled from day 3.
	assert.Equal(t, []float64{1.1, 1.3, 1.3}, f.Prices())

	assert.Equal(t, "EURUSD", src.lastReq.Symbol)
	assert.Equal(t, I1d, src.lastReq.Interval)
}

func TestFetch_Unreduced(t *testing.T) {
	t.Parallel()

	src := &fakeSource{bars: []Bar{
		{Time: day(1), Open: 1.0, High: 1.2, Low: 0.9, Close: 1.1, Volume: 100},
	}}

	f, err := Fetch(context.Background(), src, "EURUSD", day(1), day(1), I1d, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Open", "High", "Low", series.PriceColumn, "Volume"}, f.Columns())

	// The close never appears under its source name, only as Price.
	_, hasClose := f.Column("Close")
	assert.False(t, hasClose)
	assert.Equal(t, []float64{1.1}, f.Prices())
}

func TestFetch_NoDataYieldsEmptyFrame(t *testing.T) {
	t.Parallel()

	src := &fakeSource{} // no bars, no error

	f, err := Fetch(context.Background(), src, "EURUSD", day(3), day(1), I1d, true)
	require.NoError(t, err)
	require.NotNil(t, f, "empty range must yield an empty frame, not nil")
	assert.Equal(t, 0, f.Len())
	assert.Equal(t, []string{series.PriceColumn}, f.Columns())
}

func TestFetch_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	src := &fakeSource{err: boom}

	_, err := Fetch(context.Background(), src, "EURUSD", day(1), day(2), I1d, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
