package font

import "testing"

func TestFamilyLocator(t *testing.T) {
	f := NewFamily("Roboto")
	f.Add(Variant{}, "regular.ttf")
	f.Add(Variant{Weight: Bold}, "bold.ttf")

	loc, ok := f.Locator(Variant{Weight: Bold})
	if !ok || loc != "bold.ttf" {
		t.Errorf("Locator(bold) = %q, %v", loc, ok)
	}

	// Exact match only; no nearest-weight fallback.
	if _, ok := f.Locator(Variant{Weight: Light}); ok {
		t.Error("Locator(light) matched, want miss")
	}
	if _, ok := f.Locator(Variant{Weight: Bold, Style: Italic}); ok {
		t.Error("Locator(bold italic) matched, want miss")
	}
}

func TestFamilyVariantsOrder(t *testing.T) {
	f := NewFamily("Roboto")
	f.Add(Variant{Weight: Bold}, "b")
	f.Add(Variant{}, "r")

	got := f.Variants()
	if len(got) != 2 || got[0] != (Variant{Weight: Bold}) || got[1] != (Variant{}) {
		t.Errorf("Variants() = %v, want insertion order", got)
	}
	if f.Len() != 2 {
		t.Errorf("Len() = %d, want 2", f.Len())
	}
}
