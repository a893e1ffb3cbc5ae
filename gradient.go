package textual

import (
	"math"
	"sort"
)

// ColorStop pairs a position along a gradient, in the range [0, 1], with
// the color at that position.
type ColorStop struct {
	Offset float64
	Color  Color
}

// LinearGradient is a Pattern that transitions between color stops along
// the line from (x0, y0) to (x1, y1). Points beyond either end take the
// nearest stop's color.
type LinearGradient struct {
	x0, y0 float64
	x1, y1 float64
	stops  []ColorStop
}

// NewLinearGradient creates a linear gradient between two points. Stops are
// sorted by offset; with no stops the gradient is transparent everywhere.
func NewLinearGradient(x0, y0, x1, y1 float64, stops ...ColorStop) *LinearGradient {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return &LinearGradient{x0: x0, y0: y0, x1: x1, y1: y1, stops: sorted}
}

// ColorAt projects the point onto the gradient line and interpolates
// between the surrounding stops.
func (g *LinearGradient) ColorAt(x, y int) Color {
	if len(g.stops) == 0 {
		return Transparent
	}

	dx := g.x1 - g.x0
	dy := g.y1 - g.y0
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return g.stops[0].Color
	}

	t := ((float64(x)-g.x0)*dx + (float64(y)-g.y0)*dy) / lengthSq

	if t <= g.stops[0].Offset {
		return g.stops[0].Color
	}
	last := g.stops[len(g.stops)-1]
	if t >= last.Offset {
		return last.Color
	}

	for i := 1; i < len(g.stops); i++ {
		if t > g.stops[i].Offset {
			continue
		}
		lo, hi := g.stops[i-1], g.stops[i]
		span := hi.Offset - lo.Offset
		if span == 0 {
			return hi.Color
		}
		return lerpColor(lo.Color, hi.Color, (t-lo.Offset)/span)
	}
	return last.Color
}

// lerpColor interpolates each channel linearly.
func lerpColor(a, b Color, t float64) Color {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return Color{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}
