package layout

// padFor computes the horizontal and vertical padding for a content box.
// Without a target aspect ratio both axes get the flat padding. With one,
// the axis that falls short grows until the padded canvas hits the ratio;
// the other keeps the flat padding. Neither axis ever drops below the flat
// padding, and the computed padding never goes negative.
func padFor(contentW, contentH, flat, aspect float64) (padW, padH float64) {
	if flat < 0 {
		flat = 0
	}
	padW, padH = flat, flat

	if aspect <= 0 || contentW <= 0 || contentH <= 0 {
		return padW, padH
	}

	switch current := contentW / contentH; {
	case current < aspect:
		// Too tall for the target; widen.
		padW = aspect*(contentH+flat) - contentW
		if padW < flat {
			padW = flat
		}
	case current > aspect:
		// Too wide for the target; heighten.
		padH = (contentW+flat)/aspect - contentH
		if padH < flat {
			padH = flat
		}
	}

	return padW, padH
}
