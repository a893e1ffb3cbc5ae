package textual

import (
	"fmt"
	"strings"
)

// Color is an 8-bit-per-channel RGBA color.
// An alpha of 0 means fully transparent regardless of the RGB channels.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Transparent = Color{0, 0, 0, 0}
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Yellow      = Color{255, 255, 0, 255}
	Fuchsia     = Color{255, 0, 255, 255}
	Aqua        = Color{0, 255, 255, 255}
)

// ScaleRGB multiplies the RGB channels by factor, clamping each to [0, 255].
// The alpha channel is left untouched. This is not how color is mixed, but
// it is enough to tint a glyph's coverage value into a swatch.
func (c Color) ScaleRGB(factor float64) Color {
	return Color{
		R: uint8(clamp255(float64(c.R) * factor)),
		G: uint8(clamp255(float64(c.G) * factor)),
		B: uint8(clamp255(float64(c.B) * factor)),
		A: c.A,
	}
}

// Hex returns the color as an RRGGBBAA hex string.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ParseColor interprets s as a color. It accepts the common color names
// (white, black, red, green, blue, yellow, fuchsia/magenta, aqua/cyan,
// transparent) and hex triplets in RGB, RGBA, RRGGBB and RRGGBBAA form,
// with or without a leading '#'.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "transparent":
		return Transparent, true
	case "black":
		return Black, true
	case "white":
		return White, true
	case "red":
		return Red, true
	case "green":
		return Green, true
	case "blue":
		return Blue, true
	case "yellow":
		return Yellow, true
	case "fuchsia", "magenta":
		return Fuchsia, true
	case "aqua", "cyan":
		return Aqua, true
	}

	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b, a uint8
	var ok bool
	a = 255

	switch len(s) {
	case 3: // RGB
		r, g, b, ok = shortHex(s[0]), shortHex(s[1]), shortHex(s[2]), validHex(s)
	case 4: // RGBA
		r, g, b, a = shortHex(s[0]), shortHex(s[1]), shortHex(s[2]), shortHex(s[3])
		ok = validHex(s)
	case 6: // RRGGBB
		r, g, b, ok = hexPair(s[0:2]), hexPair(s[2:4]), hexPair(s[4:6]), validHex(s)
	case 8: // RRGGBBAA
		r, g, b, a = hexPair(s[0:2]), hexPair(s[2:4]), hexPair(s[4:6]), hexPair(s[6:8])
		ok = validHex(s)
	}

	if !ok {
		return Color{}, false
	}
	return Color{R: r, G: g, B: b, A: a}, true
}

// validHex reports whether every byte of s is a hex digit.
func validHex(s string) bool {
	for i := 0; i < len(s); i++ {
		if hexDigit(s[i]) < 0 {
			return false
		}
	}
	return true
}

// shortHex expands a single hex digit to a byte (e.g. 'e' -> 0xEE).
func shortHex(c byte) uint8 {
	d := hexDigit(c)
	if d < 0 {
		return 0
	}
	return uint8(d * 17)
}

// hexPair parses a two-digit hex byte.
func hexPair(s string) uint8 {
	hi, lo := hexDigit(s[0]), hexDigit(s[1])
	if hi < 0 || lo < 0 {
		return 0
	}
	return uint8(hi*16 + lo)
}

// hexDigit returns the value of a hex digit, or -1 if c is not one.
func hexDigit(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
