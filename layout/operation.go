package layout

import (
	"github.com/nyble/textual"
	"github.com/nyble/textual/font"
)

// Alignment specifies horizontal text alignment within the content width.
type Alignment int

const (
	// AlignLeft aligns lines to the left edge (default).
	AlignLeft Alignment = iota
	// AlignCenter centers lines horizontally.
	AlignCenter
	// AlignRight aligns lines to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// LineHeight selects how far apart consecutive baselines sit.
type LineHeight int

const (
	// LineHeightFont uses the font's natural line height:
	// ascent + descent + line gap.
	LineHeightFont LineHeight = iota
	// LineHeightTight drops the line gap and packs lines at
	// ascent + descent.
	LineHeightTight
)

// String returns the string representation of the line height mode.
func (lh LineHeight) String() string {
	switch lh {
	case LineHeightFont:
		return "Font"
	case LineHeightTight:
		return "Tight"
	default:
		return "Unknown"
	}
}

// Span is one styled text run: a piece of text with its own font, size and
// visual. A nil Visual renders solid white.
type Span struct {
	Text    string
	Family  string
	Variant font.Variant
	Size    float64
	Visual  textual.Pattern
}

// Operation is a full render request: the ordered runs plus the page-level
// parameters. It is built once by the caller and never mutated after layout
// begins.
type Operation struct {
	// Spans are the styled runs, in order.
	Spans []Span

	// Background fills the canvas before any glyph is drawn.
	// A nil background is transparent.
	Background textual.Pattern

	// Padding is the flat padding applied to both axes, in pixels. When an
	// aspect ratio is set it acts as the minimum for either axis.
	Padding float64

	// Align is the horizontal alignment of lines.
	Align Alignment

	// LineHeight selects the baseline spacing mode.
	LineHeight LineHeight

	// AspectRatio is the target width/height ratio of the padded canvas.
	// Zero means no target; the flat padding applies to both axes.
	AspectRatio float64
}
