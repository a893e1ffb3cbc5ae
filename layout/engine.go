package layout

// ShapeRun is one run handed to the shaping engine: the text, the index of
// its resolved font, the font size, and the index of the Span it came from.
type ShapeRun struct {
	Text string
	Font int
	Size float64
	Run  int
}

// Settings carries the page-level shaping parameters.
type Settings struct {
	Align      Alignment
	LineHeight LineHeight
}

// PlacedGlyph is one glyph position produced by shaping. X and Y are the
// top-left corner of the glyph's rasterized coverage buffer in content
// coordinates, before padding is applied. Run indexes the originating Span.
type PlacedGlyph struct {
	Rune rune
	Font int
	Run  int
	X    float64
	Y    float64
}

// Extent is the raw content size of a shaped layout, before padding.
type Extent struct {
	Width  float64
	Height float64
}

// Metrics is the pixel size of a rasterized glyph's coverage buffer.
type Metrics struct {
	Width  int
	Height int
}

// Shaper converts styled runs into positioned glyphs.
type Shaper interface {
	// Shape lays out the ordered runs and returns the glyph placements
	// along with the raw content extent.
	Shape(runs []ShapeRun, settings Settings) ([]PlacedGlyph, Extent)
}

// Rasterizer renders a single character of a font at a size into a
// byte-per-pixel coverage buffer of length Width*Height.
type Rasterizer interface {
	Rasterize(font int, r rune, size float64) (Metrics, []byte, error)
}

// Engine is the external text collaborator: shaping plus rasterization over
// one set of resolved fonts.
type Engine interface {
	Shaper
	Rasterizer
}

// EngineFactory builds an Engine over resolved font file payloads. The
// Font index in ShapeRun and PlacedGlyph refers to positions in this slice.
type EngineFactory func(fonts [][]byte) (Engine, error)
