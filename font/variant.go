package font

import "strings"

// Weight is a named font weight. The constants are ordered Thin through
// ExtraBlack with Regular as the zero value, following the convention of
// golang.org/x/image/font.Weight.
type Weight int

// Font weights, mapping to the CSS numeric weights 100 through 950.
const (
	Thin       Weight = iota - 3 // 100
	ExtraLight                   // 200
	Light                        // 300
	Regular                      // 400
	Medium                       // 500
	SemiBold                     // 600
	Bold                         // 700
	ExtraBold                    // 800
	Black                        // 900
	ExtraBlack                   // 950
)

// Number returns the CSS numeric weight, 100 through 950.
func (w Weight) Number() int {
	switch w {
	case Thin:
		return 100
	case ExtraLight:
		return 200
	case Light:
		return 300
	case Regular:
		return 400
	case Medium:
		return 500
	case SemiBold:
		return 600
	case Bold:
		return 700
	case ExtraBold:
		return 800
	case Black:
		return 900
	case ExtraBlack:
		return 950
	default:
		return 400
	}
}

// String returns the canonical lowercase name of the weight.
func (w Weight) String() string {
	switch w {
	case Thin:
		return "thin"
	case ExtraLight:
		return "extralight"
	case Light:
		return "light"
	case Regular:
		return "regular"
	case Medium:
		return "medium"
	case SemiBold:
		return "semibold"
	case Bold:
		return "bold"
	case ExtraBold:
		return "extrabold"
	case Black:
		return "black"
	case ExtraBlack:
		return "extrablack"
	default:
		return "unknown"
	}
}

// ParseWeight parses a weight from its name, common aliases, or CSS numeric
// value. Matching is case-insensitive.
func ParseWeight(s string) (Weight, error) {
	switch strings.ToLower(s) {
	case "thin", "100":
		return Thin, nil
	case "extralight", "extra-light", "ultralight", "ultra-light", "200":
		return ExtraLight, nil
	case "light", "300":
		return Light, nil
	case "normal", "regular", "400":
		return Regular, nil
	case "medium", "500":
		return Medium, nil
	case "semibold", "semi-bold", "demibold", "demi-bold", "600":
		return SemiBold, nil
	case "bold", "700":
		return Bold, nil
	case "extrabold", "extra-bold", "ultrabold", "ultra-bold", "800":
		return ExtraBold, nil
	case "black", "heavy", "900":
		return Black, nil
	case "extrablack", "extra-black", "ultrablack", "ultra-black", "950":
		return ExtraBlack, nil
	}
	return Regular, &UnknownWeightError{Weight: s}
}

// Style is a font style.
type Style int

// Font styles. Normal is the zero value.
const (
	Normal Style = iota
	Italic
	Oblique
)

// String returns the canonical lowercase name of the style.
func (s Style) String() string {
	switch s {
	case Normal:
		return "normal"
	case Italic:
		return "italic"
	case Oblique:
		return "oblique"
	default:
		return "unknown"
	}
}

// ParseStyle parses a style from its name. Matching is case-insensitive.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "normal":
		return Normal, nil
	case "italic":
		return Italic, nil
	case "oblique":
		return Oblique, nil
	}
	return Normal, &UnknownStyleError{Style: s}
}

// Variant identifies one renderable instance of a font family: a weight and
// style pair. Variant is a comparable value type; the zero value is
// (Regular, Normal).
type Variant struct {
	Weight Weight
	Style  Style
}

// String returns the variant as "weight style", e.g. "bold italic".
// The format round-trips through ParseVariant.
func (v Variant) String() string {
	return v.Weight.String() + " " + v.Style.String()
}

// ParseVariant parses a variant from "weight style" form. A bare weight is
// accepted and implies the normal style.
func ParseVariant(s string) (Variant, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		w, err := ParseWeight(fields[0])
		if err != nil {
			return Variant{}, err
		}
		return Variant{Weight: w}, nil
	case 2:
		w, err := ParseWeight(fields[0])
		if err != nil {
			return Variant{}, err
		}
		st, err := ParseStyle(fields[1])
		if err != nil {
			return Variant{}, err
		}
		return Variant{Weight: w, Style: st}, nil
	}
	return Variant{}, &UnknownVariantError{Variant: s}
}
