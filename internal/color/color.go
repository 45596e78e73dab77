// Package color provides the color primitives for theme resolution: absolute
// HSLA colors, 12-step ramps, ramp sets, and ramp catalogs.
package color

import "fmt"

// Hsla is an absolute color with hue, saturation, lightness, and alpha
// channels. Each channel is clamped to [0, 1] at construction and the value
// is never modified afterwards. Equality is exact field comparison.
type Hsla struct {
	H float64
	S float64
	L float64
	A float64
}

// New returns an Hsla with every channel clamped to [0, 1].
func New(h, s, l, a float64) Hsla {
	return Hsla{
		H: clamp(h),
		S: clamp(s),
		L: clamp(l),
		A: clamp(a),
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// String renders the color as an hsla() tuple, mostly for logs and errors.
func (c Hsla) String() string {
	return fmt.Sprintf("hsla(%g, %g, %g, %g)", c.H, c.S, c.L, c.A)
}
