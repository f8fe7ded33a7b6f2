package store

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/rustyeddy/pricefeed/series"
)

// WriteCSV renders a canonical frame as two-column CSV (time, price) with a
// header row. Times are RFC3339.
func WriteCSV(w io.Writer, f *series.Frame) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"time", "price"}); err != nil {
		return err
	}

	prices := f.Prices()
	for i, t := range f.Index() {
		rec := []string{
			t.Format(time.RFC3339),
			strconv.FormatFloat(prices[i], 'f', 6, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
