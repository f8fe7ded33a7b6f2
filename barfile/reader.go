// Package barfile reads bar-history exports: delimited text files with a
// fixed positional schema, one bar per line, as written by trading-terminal
// history exports. Files may be stored compressed (.gz or .xz).
package barfile

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ulikunitz/xz"

	"github.com/rustyeddy/pricefeed/series"
)

// Column layout is positional: the first line is discarded as a header and
// every following line must have exactly the schema's width. Whatever the
// header says, columns are reassigned by position.
var (
	dailySchema    = []string{"Date", "Open", "High", "Low", "Price", "TickVolume", "Volume", "Spread"}
	intradaySchema = []string{"Date", "Time", "Open", "High", "Low", "Price", "TickVolume", "Volume", "Spread"}
)

var dateLayouts = []string{"2006.01.02", "2006-01-02", "2006/01/02"}
var timeLayouts = []string{"15:04:05", "15:04"}

// FormatError reports a file that cannot be read as a bar export: an
// unreadable path, a line whose field count does not match the schema
// width, or a malformed date, time, or number.
type FormatError struct {
	Path string
	Line int // 1-based, 0 when the file itself is unreadable
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Read parses the bar export at path into a frame indexed by the bar
// timestamps, in file order. daily selects the daily schema (timestamp from
// the Date field alone); otherwise the intraday schema is used and the
// timestamp combines Date and Time. When reduce is set only the Price
// column survives, gap-filled.
func Read(path string, delim rune, daily, reduce bool) (*series.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FormatError{Path: path, Msg: "open: " + err.Error(), Err: err}
	}
	defer f.Close()

	r, err := decompress(path, f)
	if err != nil {
		return nil, &FormatError{Path: path, Msg: "decompress: " + err.Error(), Err: err}
	}

	schema := intradaySchema
	if daily {
		schema = dailySchema
	}

	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1 // width is validated against the schema below

	var (
		index   []time.Time
		numeric = make([][]float64, len(schema)) // positions holding Date/Time stay nil
		line    int
	)

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &FormatError{Path: path, Line: line + 1, Msg: "read: " + err.Error(), Err: err}
		}
		line++

		if len(rec) != len(schema) {
			return nil, &FormatError{Path: path, Line: line,
				Msg: fmt.Sprintf("%d columns, schema has %d", len(rec), len(schema))}
		}
		if line == 1 {
			// Header line. Its names are ignored; only the width counts.
			continue
		}

		var ts time.Time
		if daily {
			ts, err = parseDate(rec[0])
		} else {
			ts, err = parseDateTime(rec[0], rec[1])
		}
		if err != nil {
			return nil, &FormatError{Path: path, Line: line, Msg: err.Error(), Err: err}
		}
		index = append(index, ts)

		for i := range schema {
			if schema[i] == "Date" || schema[i] == "Time" {
				continue
			}
			v, err := parseField(rec[i])
			if err != nil {
				return nil, &FormatError{Path: path, Line: line,
					Msg: fmt.Sprintf("column %s: %v", schema[i], err), Err: err}
			}
			numeric[i] = append(numeric[i], v)
		}
	}

	frame := series.New(index)
	for i, name := range schema {
		if name == "Date" || name == "Time" {
			continue
		}
		col := numeric[i]
		if col == nil {
			col = []float64{}
		}
		if err := frame.AddColumn(name, col); err != nil {
			return nil, fmt.Errorf("assemble %s: %w", path, err)
		}
	}

	if reduce {
		return series.Reduce(frame, series.PriceColumn)
	}
	return frame, nil
}

// decompress wraps r when the path indicates a compressed export.
func decompress(path string, r io.Reader) (io.Reader, error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return gzip.NewReader(r)
	case strings.HasSuffix(path, ".xz"):
		return xz.NewReader(r)
	default:
		return r, nil
	}
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("bad date %q", s)
}

func parseDateTime(d, tm string) (time.Time, error) {
	day, err := parseDate(d)
	if err != nil {
		return time.Time{}, err
	}
	tm = strings.TrimSpace(tm)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, tm, time.UTC); err == nil {
			return time.Date(day.Year(), day.Month(), day.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("bad time %q", tm)
}

// parseField converts one numeric field. An empty field is a gap, left for
// the reducer to fill.
func parseField(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
