// Package record provides the Dimensions record factory: a plain
// two-field numeric value whose area is derived on demand rather than
// stored.
//
// Records are ordinary Go values with no hidden state, which makes them
// the natural payload for the codec package's round-trip helpers: a
// rehydrated *Dimensions answers Area() exactly like a freshly
// constructed one.
package record

// Dimensions is a width/height pair. Both fields are exported and
// JSON-tagged so the value survives a codec round trip unchanged.
type Dimensions struct {
	// Width is the horizontal extent.
	Width float64 `json:"width"`

	// Height is the vertical extent.
	Height float64 `json:"height"`
}

// New constructs a Dimensions record from its two inputs.
// Complexity: O(1).
func New(width, height float64) *Dimensions {
	return &Dimensions{Width: width, Height: height}
}

// Area returns the product Width × Height, computed on demand — the
// record stores only its two inputs.
// Complexity: O(1).
func (d *Dimensions) Area() float64 {
	return d.Width * d.Height
}
