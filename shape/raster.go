package shape

import (
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/nyble/textual/layout"
)

// glyphKey identifies one rasterized character in the glyph cache.
type glyphKey struct {
	font int
	r    rune
	size float64
}

// rasterGlyph is a cached rasterization result.
type rasterGlyph struct {
	metrics  layout.Metrics
	coverage []byte
}

// Rasterize renders one character into a greyscale coverage buffer sized
// exactly to the glyph's bounding box. The buffer's top-left corner
// corresponds to the position Shape reported for the glyph. Characters the
// font has no glyph for, and glyphs with an empty box (spaces), return zero
// metrics and no buffer.
//
// Results are cached per engine; callers must not modify the returned
// buffer.
func (e *Engine) Rasterize(font int, r rune, size float64) (layout.Metrics, []byte, error) {
	key := glyphKey{font: font, r: r, size: size}
	if g, ok := e.glyphs[key]; ok {
		return g.metrics, g.coverage, nil
	}

	metrics, coverage, err := e.rasterize(font, r, size)
	if err != nil {
		return layout.Metrics{}, nil, err
	}

	e.glyphs[key] = rasterGlyph{metrics: metrics, coverage: coverage}
	return metrics, coverage, nil
}

func (e *Engine) rasterize(font int, r rune, size float64) (layout.Metrics, []byte, error) {
	f, err := e.face(font, size)
	if err != nil {
		return layout.Metrics{}, nil, err
	}

	bounds, _, ok := f.GlyphBounds(r)
	if !ok {
		return layout.Metrics{}, nil, nil
	}

	width := bounds.Max.X.Ceil() - bounds.Min.X.Floor()
	height := bounds.Max.Y.Ceil() - bounds.Min.Y.Floor()
	if width <= 0 || height <= 0 {
		return layout.Metrics{}, nil, nil
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	drawer := xfont.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: f,
		Dot: fixed.Point26_6{
			X: -fixed.I(bounds.Min.X.Floor()),
			Y: -fixed.I(bounds.Min.Y.Floor()),
		},
	}
	drawer.DrawString(string(r))

	return layout.Metrics{Width: width, Height: height}, dst.Pix, nil
}
