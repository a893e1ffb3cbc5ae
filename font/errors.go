package font

import "fmt"

// NotFoundError reports a (family, variant) pair that is absent from both
// the cache and the catalog. It is not retried; the caller surfaces it as
// "not found".
type NotFoundError struct {
	Family  string
	Variant Variant
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("font: %s %s is not in the cache or the catalog", e.Family, e.Variant)
}

// UnknownWeightError reports a weight name that could not be parsed.
type UnknownWeightError struct {
	Weight string
}

func (e *UnknownWeightError) Error() string {
	return fmt.Sprintf("font: the weight %q is not recognised", e.Weight)
}

// UnknownStyleError reports a style name that could not be parsed.
type UnknownStyleError struct {
	Style string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("font: the style %q is not recognised", e.Style)
}

// UnknownVariantError reports a variant string that is not in
// "weight style" form.
type UnknownVariantError struct {
	Variant string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("font: the variant %q is not recognised", e.Variant)
}
