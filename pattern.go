package textual

import "math"

// Pattern generates a color for each absolute pixel coordinate.
// Implementations must be stateless per call: ColorAt is a pure function of
// its inputs, so a single pattern can be shared by many glyph draws and read
// from concurrent renders.
type Pattern interface {
	// ColorAt returns the color at the given pixel coordinates.
	ColorAt(x, y int) Color
}

// Solid is a pattern that is the same color everywhere.
type Solid struct {
	Color Color
}

// NewSolid creates a solid color pattern.
func NewSolid(c Color) *Solid {
	return &Solid{Color: c}
}

// ColorAt implements Pattern.
func (s *Solid) ColorAt(x, y int) Color {
	return s.Color
}

// Stripes fills with diagonal bands that cycle through a color list.
// A slope of 0 produces vertical stripes; a slope of 1 produces 45-degree
// diagonals.
type Stripes struct {
	colors []Color
	width  int
	slope  float64
}

// NewStripes creates a stripe pattern. width is the band thickness in pixels
// measured along the x axis; slope shifts each row by slope pixels.
func NewStripes(colors []Color, width int, slope float64) *Stripes {
	return &Stripes{colors: colors, width: width, slope: slope}
}

// ColorAt implements Pattern.
func (s *Stripes) ColorAt(x, y int) Color {
	if len(s.colors) == 0 || s.width <= 0 {
		return Transparent
	}

	band := int(math.Floor((float64(x) + s.slope*float64(y)) / float64(s.width)))
	i := band % len(s.colors)
	if i < 0 {
		i += len(s.colors)
	}
	return s.colors[i]
}
