package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillPercent(t *testing.T) {
	cases := []struct {
		name      string
		star      int
		selection float64
		want      int
	}{
		{"integer full", 3, 3, 100},
		{"integer beyond", 4, 3, 0},
		{"half at whole index", 3, 3.5, 50},
		{"fraction under threshold", 3, 3.05, 0},
		{"below whole", 2, 3.5, 100},
		{"beyond half", 4, 3.5, 0},
		{"near-integer above", 4, 3.9995, 100},
		{"near-integer below", 3, 3.0005, 100},
		{"threshold exactly", 3, 3.1, 50},
		{"zero selection", 1, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FillPercent(tc.star, tc.selection))
		})
	}
}
