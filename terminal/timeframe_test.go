package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarCode_WireValues(t *testing.T) {
	t.Parallel()

	// These values are the terminal's wire encoding and must never change.
	cases := []struct {
		tf   Timeframe
		code int
	}{
		{M1, 1}, {M2, 2}, {M3, 3}, {M4, 4}, {M5, 5}, {M6, 6},
		{M10, 10}, {M12, 12}, {M15, 15}, {M20, 20}, {M30, 30},
		{H1, 16385}, {H2, 16386}, {H3, 16387}, {H4, 16388},
		{H6, 16390}, {H8, 16392}, {H12, 16396},
		{D1, 16408}, {W1, 32769}, {MN1, 49153},
	}

	for _, c := range cases {
		got, ok := BarCode(c.tf)
		assert.True(t, ok, "timeframe %s", c.tf)
		assert.Equal(t, c.code, got, "timeframe %s", c.tf)
	}
}

func TestBarCode_Unknown(t *testing.T) {
	t.Parallel()

	_, ok := BarCode("M7")
	assert.False(t, ok)

	_, ok = BarCode("")
	assert.False(t, ok)

	// Codes are case-sensitive, matching the terminal's notation.
	_, ok = BarCode("m1")
	assert.False(t, ok)
}
