package series

import (
	"fmt"
	"math"
	"time"
)

// PriceColumn is the canonical name of the single price column every
// adapter produces. Sources that call their close price something else
// rename it to this before reduction.
const PriceColumn = "Price"

// Frame is an ordered tabular record set: a shared datetime index plus one
// float64 column per name. Missing values are NaN. Row order is whatever the
// source delivered; the frame never reorders rows.
type Frame struct {
	index   []time.Time
	columns []string
	data    map[string][]float64
}

// New creates a frame over the given index with no columns. The index slice
// is retained, not copied.
func New(index []time.Time) *Frame {
	return &Frame{
		index: index,
		data:  make(map[string][]float64),
	}
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.index)
}

// Index returns the datetime index. Callers must not modify it.
func (f *Frame) Index() []time.Time {
	return f.index
}

// Columns returns the column names in insertion order.
func (f *Frame) Columns() []string {
	return f.columns
}

// AddColumn attaches values under name. The length must match the index.
func (f *Frame) AddColumn(name string, values []float64) error {
	if len(values) != len(f.index) {
		return fmt.Errorf("column %s: %d values for %d rows", name, len(values), len(f.index))
	}
	if _, dup := f.data[name]; dup {
		return fmt.Errorf("column %s already present", name)
	}
	f.columns = append(f.columns, name)
	f.data[name] = values
	return nil
}

// Column returns the values stored under name.
func (f *Frame) Column(name string) ([]float64, bool) {
	v, ok := f.data[name]
	return v, ok
}

// Prices returns the canonical price column, or nil if the frame has not
// been normalized yet.
func (f *Frame) Prices() []float64 {
	return f.data[PriceColumn]
}

// Rename changes a column's name in place. Renaming to an existing name or
// from a missing one is an error.
func (f *Frame) Rename(from, to string) error {
	if _, ok := f.data[from]; !ok {
		return fmt.Errorf("no column %s", from)
	}
	if _, clash := f.data[to]; clash {
		return fmt.Errorf("column %s already present", to)
	}
	f.data[to] = f.data[from]
	delete(f.data, from)
	for i, c := range f.columns {
		if c == from {
			f.columns[i] = to
			break
		}
	}
	return nil
}

// Missing reports whether v is the missing-value sentinel.
func Missing(v float64) bool {
	return math.IsNaN(v)
}
