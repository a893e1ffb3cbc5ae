package shape

import (
	"bytes"
	"fmt"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/nyble/textual/layout"
)

// Engine shapes and rasterizes text over one set of resolved fonts. Every
// font payload is parsed twice on construction: once for go-text shaping
// and once for x/image rasterization; both parsed forms are read-only and
// shared for the engine's lifetime.
//
// An Engine belongs to a single render and is not safe for concurrent use;
// layout.Renderer builds one per request via NewEngine.
type Engine struct {
	fonts  []*parsedFont
	shaper shaping.HarfbuzzShaper
	faces  map[faceKey]xfont.Face
	glyphs map[glyphKey]rasterGlyph
}

// parsedFont holds the two parsed forms of one font payload.
type parsedFont struct {
	ot *sfnt.Font
	gt *gtfont.Font
}

// faceKey identifies a sized face in the face cache.
type faceKey struct {
	font int
	size float64
}

// NewEngine parses the resolved font payloads and returns an engine over
// them. It satisfies layout.EngineFactory.
func NewEngine(payloads [][]byte) (layout.Engine, error) {
	fonts := make([]*parsedFont, len(payloads))

	for i, data := range payloads {
		ot, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("shape: parsing font %d: %w", i, err)
		}

		gtFace, err := gtfont.ParseTTF(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("shape: parsing font %d: %w", i, err)
		}

		fonts[i] = &parsedFont{ot: ot, gt: gtFace.Font}
	}

	return &Engine{
		fonts:  fonts,
		faces:  make(map[faceKey]xfont.Face),
		glyphs: make(map[glyphKey]rasterGlyph),
	}, nil
}

// face returns a sized x/image face for a font, caching it for reuse
// across metrics, bounds, and rasterization calls within one render.
func (e *Engine) face(font int, size float64) (xfont.Face, error) {
	key := faceKey{font: font, size: size}
	if f, ok := e.faces[key]; ok {
		return f, nil
	}

	f, err := opentype.NewFace(e.fonts[font].ot, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("shape: creating face for font %d at %g: %w", font, size, err)
	}

	e.faces[key] = f
	return f, nil
}

// metrics returns the font metrics of a font at a size.
func (e *Engine) metrics(font int, size float64) (xfont.Metrics, error) {
	f, err := e.face(font, size)
	if err != nil {
		return xfont.Metrics{}, err
	}
	return f.Metrics(), nil
}

// glyphBox returns the top-left corner of a character's coverage buffer
// relative to its baseline origin, in pixels. ok is false when the font has
// no glyph for the rune.
func (e *Engine) glyphBox(font int, r rune, size float64) (minX, minY int, ok bool) {
	f, err := e.face(font, size)
	if err != nil {
		return 0, 0, false
	}

	bounds, _, ok := f.GlyphBounds(r)
	if !ok {
		return 0, 0, false
	}

	return bounds.Min.X.Floor(), bounds.Min.Y.Floor(), true
}
