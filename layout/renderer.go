package layout

import (
	"context"
	"fmt"
	"math"

	"github.com/nyble/textual"
	"github.com/nyble/textual/font"
)

// Renderer reduces an Operation to a finished pixmap. One renderer is
// shared by all requests; the resolver and engine factory it holds are safe
// for concurrent use, and every render works on its own pixmap.
type Renderer struct {
	fonts     *font.Resolver
	newEngine EngineFactory
}

// NewRenderer creates a renderer over a font resolver and an engine
// factory (typically shape.NewEngine).
func NewRenderer(resolver *font.Resolver, factory EngineFactory) *Renderer {
	return &Renderer{fonts: resolver, newEngine: factory}
}

// fontKey de-duplicates resolution requests across spans.
type fontKey struct {
	family  string
	variant font.Variant
}

// Render resolves the operation's fonts, shapes the runs, and composites
// every glyph onto a canvas filled with the operation's background. The
// returned pixmap is owned by the caller.
//
// Spans with empty text still resolve their font, so a trailing empty run
// after an incremental edit does not fail the request.
func (r *Renderer) Render(ctx context.Context, op Operation) (*textual.Pixmap, error) {
	payloads, runs, err := r.resolveSpans(ctx, op.Spans)
	if err != nil {
		return nil, err
	}

	engine, err := r.newEngine(payloads)
	if err != nil {
		return nil, fmt.Errorf("layout: building text engine: %w", err)
	}

	glyphs, extent := engine.Shape(runs, Settings{Align: op.Align, LineHeight: op.LineHeight})

	contentW := math.Ceil(extent.Width)
	contentH := math.Ceil(extent.Height)
	padW, padH := padFor(contentW, contentH, op.Padding, op.AspectRatio)

	width := int(contentW) + int(math.Ceil(padW))
	height := int(contentH) + int(math.Ceil(padH))
	canvas := background(width, height, op.Background)

	// Content sits centered inside the padded canvas.
	shiftX := int(math.Ceil(padW)) / 2
	shiftY := int(math.Ceil(padH)) / 2

	for _, g := range glyphs {
		span := op.Spans[g.Run]

		metrics, coverage, err := engine.Rasterize(g.Font, g.Rune, span.Size)
		if err != nil {
			return nil, fmt.Errorf("layout: rasterizing %q: %w", g.Rune, err)
		}
		if metrics.Width == 0 || metrics.Height == 0 {
			continue
		}

		offX := int(math.Ceil(g.X)) + shiftX
		offY := int(math.Ceil(g.Y)) + shiftY

		if err := drawGlyph(canvas, span.Visual, metrics, coverage, offX, offY); err != nil {
			return nil, err
		}
	}

	textual.Logger().Debug("rendered operation",
		"spans", len(op.Spans), "glyphs", len(glyphs), "width", width, "height", height)

	return canvas, nil
}

// resolveSpans resolves each distinct (family, variant) pair exactly once
// and maps every span onto a ShapeRun carrying its font index.
func (r *Renderer) resolveSpans(ctx context.Context, spans []Span) ([][]byte, []ShapeRun, error) {
	indexOf := make(map[fontKey]int)
	var payloads [][]byte
	runs := make([]ShapeRun, 0, len(spans))

	for i, span := range spans {
		key := fontKey{family: span.Family, variant: span.Variant}

		idx, ok := indexOf[key]
		if !ok {
			data, err := r.fonts.Resolve(ctx, span.Family, span.Variant)
			if err != nil {
				return nil, nil, err
			}
			idx = len(payloads)
			payloads = append(payloads, data)
			indexOf[key] = idx
		}

		runs = append(runs, ShapeRun{Text: span.Text, Font: idx, Size: span.Size, Run: i})
	}

	return payloads, runs, nil
}

// background allocates the canvas and fills it with the operation's
// background: a replicated fill for solids, a per-pixel evaluation for
// patterns, transparent when nil.
func background(width, height int, p textual.Pattern) *textual.Pixmap {
	switch bg := p.(type) {
	case nil:
		return textual.NewPixmap(width, height, textual.Transparent)
	case *textual.Solid:
		return textual.NewPixmap(width, height, bg.Color)
	default:
		return textual.NewPatternPixmap(width, height, bg, 0, 0)
	}
}

// drawGlyph composites one rasterized glyph onto the canvas. Solid visuals
// take the coverage-as-alpha fast path; everything else builds a coverage
// mask over a pattern fill evaluated at the glyph's canvas position.
func drawGlyph(canvas *textual.Pixmap, visual textual.Pattern, m Metrics, coverage []byte, offX, offY int) error {
	solid, ok := visual.(*textual.Solid)
	if visual == nil {
		solid, ok = textual.NewSolid(textual.White), true
	}

	if ok {
		img, err := textual.FromBuffer(m.Width, m.Height, coverage, textual.GreyAsAlpha(solid.Color))
		if err != nil {
			return fmt.Errorf("layout: building glyph image: %w", err)
		}
		canvas.DrawImage(img, offX, offY)
		return nil
	}

	mask, err := textual.FromCoverage(m.Width, m.Height, coverage)
	if err != nil {
		return fmt.Errorf("layout: building glyph mask: %w", err)
	}

	img := textual.NewPatternPixmap(m.Width, m.Height, visual, offX, offY)
	img.ApplyMask(mask, 0, 0)
	canvas.DrawImage(img, offX, offY)
	return nil
}
