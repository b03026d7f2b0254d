package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cssb/record"
)

// TestNew verifies the factory stores both inputs as-is.
func TestNew(t *testing.T) {
	t.Parallel()

	d := record.New(20, 30)
	assert.Equal(t, 20.0, d.Width, "Width must hold the first input")
	assert.Equal(t, 30.0, d.Height, "Height must hold the second input")
}

// TestDimensions_Area checks the derived product over a value table,
// including zero and fractional extents.
func TestDimensions_Area(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		width, height float64
		want          float64
	}{
		{name: "integers", width: 20, height: 30, want: 600},
		{name: "fractional", width: 2.5, height: 4, want: 10},
		{name: "zero width", width: 0, height: 7, want: 0},
		{name: "negative extent", width: -3, height: 2, want: -6},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, record.New(tc.width, tc.height).Area())
		})
	}
}

// TestDimensions_AreaIsDerived confirms Area tracks field mutation —
// the product is computed on demand, never cached.
func TestDimensions_AreaIsDerived(t *testing.T) {
	t.Parallel()

	d := record.New(2, 3)
	assert.Equal(t, 6.0, d.Area())

	d.Width = 10
	assert.Equal(t, 30.0, d.Area(), "Area must reflect the mutated width")
}
