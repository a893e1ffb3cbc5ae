package shape

import (
	"math"
	"strings"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/nyble/textual/layout"
)

// segment is the part of one run that sits on a single line.
type segment struct {
	text string
	font int
	size float64
	run  int
}

// pendingGlyph is a shaped glyph whose line baseline is not yet known.
// x is the coverage buffer's left edge relative to the line origin; yRel is
// its top edge relative to the baseline.
type pendingGlyph struct {
	r    rune
	font int
	run  int
	x    float64
	yRel float64
}

// shapedLine is one laid-out line before vertical placement.
type shapedLine struct {
	glyphs  []pendingGlyph
	width   float64
	ascent  float64
	descent float64
	gap     float64
}

// Shape implements layout.Shaper. Runs are broken into lines on '\n';
// within a line, segments advance one shared pen. Each glyph's position is
// the top-left corner of the coverage buffer Rasterize produces for it, so
// the two stay consistent through the shared glyph bounds.
func (e *Engine) Shape(runs []layout.ShapeRun, settings layout.Settings) ([]layout.PlacedGlyph, layout.Extent) {
	lines := splitLines(runs)

	shaped := make([]shapedLine, 0, len(lines))
	var maxWidth float64
	for _, line := range lines {
		sl := e.shapeLine(line)
		maxWidth = math.Max(maxWidth, sl.width)
		shaped = append(shaped, sl)
	}

	var placed []layout.PlacedGlyph
	var y float64

	for _, sl := range shaped {
		baseline := y + sl.ascent

		var shift float64
		switch settings.Align {
		case layout.AlignCenter:
			shift = (maxWidth - sl.width) / 2
		case layout.AlignRight:
			shift = maxWidth - sl.width
		}

		for _, g := range sl.glyphs {
			placed = append(placed, layout.PlacedGlyph{
				Rune: g.r,
				Font: g.font,
				Run:  g.run,
				X:    g.x + shift,
				Y:    baseline + g.yRel,
			})
		}

		height := sl.ascent + sl.descent
		if settings.LineHeight == layout.LineHeightFont {
			height += sl.gap
		}
		y += height
	}

	return placed, layout.Extent{Width: maxWidth, Height: y}
}

// splitLines distributes the runs over lines, breaking on '\n'. A run with
// empty text still lands on the current line so its font metrics count
// toward the line height.
func splitLines(runs []layout.ShapeRun) [][]segment {
	lines := [][]segment{nil}

	for _, run := range runs {
		parts := strings.Split(run.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			cur := len(lines) - 1
			lines[cur] = append(lines[cur], segment{
				text: part,
				font: run.Font,
				size: run.Size,
				run:  run.Run,
			})
		}
	}

	return lines
}

// shapeLine shapes every segment of one line against a shared pen.
func (e *Engine) shapeLine(segs []segment) shapedLine {
	var sl shapedLine
	var penX float64

	for _, seg := range segs {
		if m, err := e.metrics(seg.font, seg.size); err == nil {
			ascent := fixedToFloat(m.Ascent)
			descent := fixedToFloat(m.Descent)
			gap := fixedToFloat(m.Height) - ascent - descent
			sl.ascent = math.Max(sl.ascent, ascent)
			sl.descent = math.Max(sl.descent, descent)
			sl.gap = math.Max(sl.gap, math.Max(gap, 0))
		}

		if seg.text == "" {
			continue
		}

		runes := []rune(seg.text)
		input := shaping.Input{
			Text:      runes,
			RunStart:  0,
			RunEnd:    len(runes),
			Direction: baseDirection(seg.text),
			Face:      gtfont.NewFace(e.fonts[seg.font].gt),
			Size:      floatToFixed(seg.size),
			Script:    detectScript(runes),
			Language:  language.NewLanguage("en"),
		}

		output := e.shaper.Shape(input)

		for _, g := range output.Glyphs {
			var r rune
			if g.ClusterIndex >= 0 && g.ClusterIndex < len(runes) {
				r = runes[g.ClusterIndex]
			}

			if minX, minY, ok := e.glyphBox(seg.font, r, seg.size); ok {
				sl.glyphs = append(sl.glyphs, pendingGlyph{
					r:    r,
					font: seg.font,
					run:  seg.run,
					x:    penX + fixedToFloat(g.XOffset) + float64(minX),
					yRel: float64(minY) - fixedToFloat(g.YOffset),
				})
			}

			penX += fixedToFloat(g.XAdvance)
		}
	}

	sl.width = penX
	return sl
}

// baseDirection determines the paragraph direction of a piece of text.
func baseDirection(text string) di.Direction {
	p := &bidi.Paragraph{}
	if _, err := p.SetString(text); err != nil {
		return di.DirectionLTR
	}
	if p.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. This is a simple heuristic; mixed-script text shapes
// under the first script it encounters.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
