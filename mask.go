package textual

// Mask is a single-byte-per-pixel coverage buffer. Values range from 0
// (fully transparent) to 255 (fully opaque). Masks are intermediates: the
// coverage output of glyph rasterization, or an alpha channel accumulated to
// later gate a pattern fill.
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates an empty mask with the given dimensions.
// All values are initialized to 0 (fully transparent).
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// FromCoverage wraps a raw coverage buffer in a Mask. The buffer is used
// directly, not copied; the caller must not modify it afterwards. The buffer
// length must be width*height.
func FromCoverage(width, height int, data []uint8) (*Mask, error) {
	if len(data) != width*height {
		return nil, &SizeMismatchError{Want: width * height, Got: len(data)}
	}
	return &Mask{width: width, height: height, data: data}, nil
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the coverage value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the coverage value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Data returns the underlying coverage data slice.
func (m *Mask) Data() []uint8 {
	return m.data
}
