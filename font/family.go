package font

// Family is a named font family with an ordered list of variants and their
// locators. A locator is a filesystem path or a URL depending on the role:
// Cache stores paths, Catalog stores URLs. A single family never mixes the
// two.
type Family struct {
	Name     string
	variants []variantLocator
}

type variantLocator struct {
	variant Variant
	locator string
}

// NewFamily creates an empty family.
func NewFamily(name string) *Family {
	return &Family{Name: name}
}

// Add appends a variant and its locator to the family.
func (f *Family) Add(v Variant, locator string) {
	f.variants = append(f.variants, variantLocator{variant: v, locator: locator})
}

// Locator returns the locator for an exact variant match. There is no
// nearest-weight fallback.
func (f *Family) Locator(v Variant) (string, bool) {
	for _, vl := range f.variants {
		if vl.variant == v {
			return vl.locator, true
		}
	}
	return "", false
}

// Variants returns the family's variants in insertion order.
func (f *Family) Variants() []Variant {
	out := make([]Variant, len(f.variants))
	for i, vl := range f.variants {
		out[i] = vl.variant
	}
	return out
}

// Len returns the number of variants in the family.
func (f *Family) Len() int {
	return len(f.variants)
}
