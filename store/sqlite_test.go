package store

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/pricefeed/series"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "feed.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func testFrame(t *testing.T, n int) *series.Frame {
	t.Helper()
	index := make([]time.Time, n)
	prices := make([]float64, n)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := range index {
		index[i] = base.AddDate(0, 0, i)
		prices[i] = 100 + float64(i)
	}
	f := series.New(index)
	require.NoError(t, f.AddColumn(series.PriceColumn, prices))
	return f
}

func TestStore_RoundTrip(t *testing.T) {
	st := openTestStore(t)

	f := testFrame(t, 5)
	recID, err := st.Save("MSFT", "vendor", "1d", f)
	require.NoError(t, err)
	require.NotEmpty(t, recID)

	got, err := st.Load(recID)
	require.NoError(t, err)

	require.Equal(t, f.Len(), got.Len())
	for i, want := range f.Index() {
		assert.True(t, want.Equal(got.Index()[i]), "index[%d]: %v != %v", i, want, got.Index()[i])
	}
	assert.Equal(t, f.Prices(), got.Prices())
}

func TestStore_SaveRejectsUnnormalizedFrame(t *testing.T) {
	st := openTestStore(t)

	f := series.New([]time.Time{time.Now()})
	require.NoError(t, f.AddColumn("Close", []float64{1.0}))

	_, err := st.Save("MSFT", "vendor", "1d", f)
	assert.Error(t, err)
}

func TestStore_List(t *testing.T) {
	st := openTestStore(t)

	id1, err := st.Save("MSFT", "vendor", "1d", testFrame(t, 3))
	require.NoError(t, err)
	id2, err := st.Save("EURUSD", "terminal", "H1", testFrame(t, 2))
	require.NoError(t, err)

	recs, err := st.List()
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// ULIDs sort by creation time, so newest first means id2 leads.
	assert.Equal(t, id2, recs[0].ID)
	assert.Equal(t, "EURUSD", recs[0].Symbol)
	assert.Equal(t, 2, recs[0].Rows)
	assert.Equal(t, id1, recs[1].ID)
	assert.Equal(t, 3, recs[1].Rows)
}

func TestStore_Delete(t *testing.T) {
	st := openTestStore(t)

	recID, err := st.Save("MSFT", "vendor", "1d", testFrame(t, 3))
	require.NoError(t, err)
	require.NoError(t, st.Delete(recID))

	recs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, recs)

	got, err := st.Load(recID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	f := testFrame(t, 2)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, f))

	want := "time,price\n" +
		"2024-03-01T00:00:00Z,100.000000\n" +
		"2024-03-02T00:00:00Z,101.000000\n"
	assert.Equal(t, want, buf.String())
}
