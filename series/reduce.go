package series

import (
	"fmt"
	"math"
)

// Reduce drops every column except keep and closes the gaps in the kept
// column with a two-pass fill: a backward pass first (each missing entry
// takes the next chronologically later value), then a forward pass for
// whatever is still missing, which after the backward pass can only be a
// run at the tail. Only a column with no values at all stays missing.
//
// The frame is mutated in place and returned for chaining. Callers must
// treat their pre-call reference as invalidated.
func Reduce(f *Frame, keep string) (*Frame, error) {
	col, ok := f.data[keep]
	if !ok {
		return nil, fmt.Errorf("reduce: no column %s", keep)
	}

	for _, name := range f.columns {
		if name != keep {
			delete(f.data, name)
		}
	}
	f.columns = []string{keep}

	fillBackward(col)
	fillForward(col)
	return f, nil
}

func fillBackward(col []float64) {
	next := math.NaN()
	for i := len(col) - 1; i >= 0; i-- {
		if math.IsNaN(col[i]) {
			col[i] = next
		} else {
			next = col[i]
		}
	}
}

func fillForward(col []float64) {
	prev := math.NaN()
	for i := range col {
		if math.IsNaN(col[i]) {
			col[i] = prev
		} else {
			prev = col[i]
		}
	}
}
