package textual

import "testing"

func TestLinearGradientColorAt(t *testing.T) {
	g := NewLinearGradient(0, 0, 100, 0,
		ColorStop{Offset: 0, Color: Black},
		ColorStop{Offset: 1, Color: White},
	)

	tests := []struct {
		name string
		x, y int
		want Color
	}{
		{"start", 0, 0, Black},
		{"end", 100, 0, White},
		{"before start clamps", -50, 0, Black},
		{"after end clamps", 200, 0, White},
		{"midpoint", 50, 0, Color{128, 128, 128, 255}},
		{"perpendicular axis ignored", 50, 500, Color{128, 128, 128, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ColorAt(tt.x, tt.y); got != tt.want {
				t.Errorf("ColorAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLinearGradientUnsortedStops(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0,
		ColorStop{Offset: 1, Color: White},
		ColorStop{Offset: 0, Color: Black},
	)
	if got := g.ColorAt(0, 0); got != Black {
		t.Errorf("ColorAt(0, 0) = %v, want %v", got, Black)
	}
}

func TestLinearGradientDegenerate(t *testing.T) {
	if got := NewLinearGradient(0, 0, 10, 0).ColorAt(5, 0); got != Transparent {
		t.Errorf("no stops: got %v, want transparent", got)
	}

	g := NewLinearGradient(5, 5, 5, 5, ColorStop{Offset: 0, Color: Red})
	if got := g.ColorAt(0, 0); got != Red {
		t.Errorf("zero-length gradient: got %v, want %v", got, Red)
	}
}
