package textual

import (
	"image"
	"image/color"
)

// Format describes how FromBuffer interprets a raw byte buffer.
type Format struct {
	kind    formatKind
	color   Color
	pattern Pattern
	offX    int
	offY    int
}

type formatKind int

const (
	formatRGBA formatKind = iota
	formatRGB
	formatGrey
	formatGreyAsAlpha
	formatGreyAsMask
)

// RGBA passes 4-byte pixels through untouched.
func RGBA() Format { return Format{kind: formatRGBA} }

// RGB reads 3-byte pixels and appends a fully opaque alpha channel.
func RGB() Format { return Format{kind: formatRGB} }

// Grey broadcasts the single channel to R, G, B and A alike.
func Grey() Format { return Format{kind: formatGrey} }

// GreyAsAlpha paints every pixel with the given color and uses the grey byte
// as alpha. This is how a glyph's anti-aliased coverage becomes a
// solid-color glyph image.
func GreyAsAlpha(c Color) Format {
	return Format{kind: formatGreyAsAlpha, color: c}
}

// GreyAsMask is GreyAsAlpha with the RGB channels supplied by a pattern
// instead of a fixed color. The pattern is evaluated at each pixel's
// coordinates offset by (offX, offY), so a buffer destined for position
// (offX, offY) on a canvas samples the pattern in canvas space. This is how
// a patterned glyph is produced.
func GreyAsMask(p Pattern, offX, offY int) Format {
	return Format{kind: formatGreyAsMask, pattern: p, offX: offX, offY: offY}
}

// channels returns the number of source bytes per pixel for the format.
func (f Format) channels() int {
	switch f.kind {
	case formatRGBA:
		return 4
	case formatRGB:
		return 3
	default:
		return 1
	}
}

// Pixmap is a width x height RGBA pixel buffer, row-major with 4 bytes per
// pixel. A pixmap is created once per render, mutated in place by the
// drawing primitives, and consumed exactly once by the encoder.
//
// Pixmaps are not safe for concurrent use; each render task owns its own.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a pixmap filled with a single color, replicating the
// 4-byte pixel pattern across the buffer.
func NewPixmap(width, height int, c Color) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	data := make([]uint8, width*height*4)
	px := [4]uint8{c.R, c.G, c.B, c.A}
	for i := 0; i < len(data); i += 4 {
		copy(data[i:i+4], px[:])
	}
	return &Pixmap{width: width, height: height, data: data}
}

// NewPatternPixmap creates a pixmap filled by evaluating a pattern at each
// pixel. The pattern sees coordinates offset by (offX, offY), so a pixmap
// destined for position (offX, offY) on a canvas samples the pattern in
// canvas space.
func NewPatternPixmap(width, height int, p Pattern, offX, offY int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	pm := &Pixmap{width: width, height: height, data: make([]uint8, width*height*4)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := p.ColorAt(offX+x, offY+y)
			i := pm.index(x, y)
			pm.data[i+0] = c.R
			pm.data[i+1] = c.G
			pm.data[i+2] = c.B
			pm.data[i+3] = c.A
		}
	}
	return pm
}

// FromBuffer converts a raw byte buffer into an RGBA pixmap under the given
// format. The buffer length must be width*height*channels for the format;
// otherwise a SizeMismatchError is returned. RGBA buffers are used directly
// without copying.
func FromBuffer(width, height int, data []uint8, f Format) (*Pixmap, error) {
	want := width * height * f.channels()
	if len(data) != want {
		return nil, &SizeMismatchError{Want: want, Got: len(data)}
	}

	switch f.kind {
	case formatRGBA:
		return &Pixmap{width: width, height: height, data: data}, nil

	case formatRGB:
		out := make([]uint8, 0, width*height*4)
		for i := 0; i+2 < len(data); i += 3 {
			out = append(out, data[i], data[i+1], data[i+2], 255)
		}
		return &Pixmap{width: width, height: height, data: out}, nil

	case formatGrey:
		out := make([]uint8, 0, width*height*4)
		for _, b := range data {
			out = append(out, b, b, b, b)
		}
		return &Pixmap{width: width, height: height, data: out}, nil

	case formatGreyAsAlpha:
		out := make([]uint8, 0, width*height*4)
		for _, b := range data {
			out = append(out, f.color.R, f.color.G, f.color.B, b)
		}
		return &Pixmap{width: width, height: height, data: out}, nil

	default: // formatGreyAsMask
		out := make([]uint8, 0, width*height*4)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := f.pattern.ColorAt(f.offX+x, f.offY+y)
				out = append(out, c.R, c.G, c.B, data[y*width+x])
			}
		}
		return &Pixmap{width: width, height: height, data: out}, nil
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 { return p.data }

// index returns the byte offset of the pixel at (x, y).
func (p *Pixmap) index(x, y int) int {
	return (y*p.width + x) * 4
}

// SetPixel sets the color of a single pixel.
// Coordinates outside the pixmap bounds are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := p.index(x, y)
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// PixelAt returns the color of a single pixel.
// Returns Transparent for coordinates outside the pixmap bounds.
func (p *Pixmap) PixelAt(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := p.index(x, y)
	return Color{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// DrawImage composites src onto the pixmap at (offX, offY) with source-over
// alpha blending. Offsets may be negative or beyond the far edge; pixels
// outside the destination are skipped, and a row or column loop ends as soon
// as it passes the far edge. The destination is mutated in place.
func (p *Pixmap) DrawImage(src *Pixmap, offX, offY int) {
	for sy := 0; sy < src.height; sy++ {
		y := offY + sy
		if y < 0 {
			// Could still come into bounds further down.
			continue
		}
		if y >= p.height {
			return
		}

		for sx := 0; sx < src.width; sx++ {
			x := offX + sx
			if x < 0 {
				continue
			}
			if x >= p.width {
				break
			}

			si := src.index(sx, sy)
			p.composite(p.index(x, y), src.data[si+0], src.data[si+1], src.data[si+2], src.data[si+3])
		}
	}
}

// composite blends one source pixel over the destination pixel at byte
// offset di. Channels are mixed in byte space after normalizing the alphas,
// truncating back to a byte.
func (p *Pixmap) composite(di int, r, g, b, a uint8) {
	// A fully transparent source leaves the destination untouched, and a
	// fully opaque one replaces it; both are the limits of the blend math.
	if a == 0 {
		return
	}
	if a == 255 || p.data[di+3] == 0 {
		p.data[di+0] = r
		p.data[di+1] = g
		p.data[di+2] = b
		p.data[di+3] = a
		return
	}

	sa := float64(a) / 255
	da := float64(p.data[di+3]) / 255
	ma := sa + da*(1-sa)

	mix := func(dst, src uint8) uint8 {
		return uint8((float64(src)*sa + float64(dst)*da*(1-sa)) / ma)
	}

	p.data[di+0] = mix(p.data[di+0], r)
	p.data[di+1] = mix(p.data[di+1], g)
	p.data[di+2] = mix(p.data[di+2], b)
	p.data[di+3] = uint8(ma * 255)
}

// ApplyMask overwrites the alpha channel of the covered region with the
// mask's coverage values, clipped the same way as DrawImage. The RGB
// channels are untouched.
func (p *Pixmap) ApplyMask(m *Mask, offX, offY int) {
	for sy := 0; sy < m.height; sy++ {
		y := offY + sy
		if y < 0 {
			continue
		}
		if y >= p.height {
			return
		}

		for sx := 0; sx < m.width; sx++ {
			x := offX + sx
			if x < 0 {
				continue
			}
			if x >= p.width {
				break
			}

			p.data[p.index(x, y)+3] = m.data[sy*m.width+sx]
		}
	}
}

// Overlay composites img onto the pixmap at (offX, offY), taking each
// pixel's alpha from the inverse of the mask (255 - coverage) instead of
// from img itself. The image and mask must have identical dimensions;
// otherwise a DimensionMismatchError is returned and the pixmap is left
// untouched.
func (p *Pixmap) Overlay(img *Pixmap, m *Mask, offX, offY int) error {
	if img.width != m.width || img.height != m.height {
		return &DimensionMismatchError{
			ImageWidth:  img.width,
			ImageHeight: img.height,
			MaskWidth:   m.width,
			MaskHeight:  m.height,
		}
	}

	for sy := 0; sy < img.height; sy++ {
		y := offY + sy
		if y < 0 {
			continue
		}
		if y >= p.height {
			return nil
		}

		for sx := 0; sx < img.width; sx++ {
			x := offX + sx
			if x < 0 {
				continue
			}
			if x >= p.width {
				break
			}

			si := img.index(sx, sy)
			a := 255 - m.data[sy*m.width+sx]
			p.composite(p.index(x, y), img.data[si+0], img.data[si+1], img.data[si+2], a)
		}
	}

	return nil
}

// ToImage converts the pixmap to an image.RGBA for handing to an encoder.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c := p.PixelAt(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
