package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, quot, rem int64
	}{
		{1001, 2, 500, 1},
		{10, 3, 3, 1},
		{9, 3, 3, 0},
		{0, 5, 0, 0},
		{-5, 2, -3, 1},
		{-6, 2, -3, 0},
		{-1, 4, -1, 3},
	}
	for _, c := range cases {
		quot, rem := FloorDiv(c.a, c.b)
		assert.Equal(t, c.quot, quot, "FloorDiv(%d, %d) quotient", c.a, c.b)
		assert.Equal(t, c.rem, rem, "FloorDiv(%d, %d) remainder", c.a, c.b)
		assert.Equal(t, c.a, quot*c.b+rem, "FloorDiv(%d, %d) identity", c.a, c.b)
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{0.5, 1},
		{1.5, 2},
		{2.4, 2},
		{2.6, 3},
		{-0.5, 0},
		{-1.5, -1},
		{-2.5, -2},
		{-2.6, -3},
		{0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RoundHalfUp(c.in), "RoundHalfUp(%v)", c.in)
	}
}
