package viewport

import "math"

// PanBy translates the window by deltaPixels on a surface surfaceWidth
// pixels (or cells) wide. Positive deltas move the window toward later
// years, so a drag from x0 to x1 pans by x0-x1.
//
// A non-positive surface width or a non-finite delta is a no-op. The range is
// unchanged and the position is not bounded: the user may pan into empty
// years beyond the dataset.
func PanBy(v Viewport, deltaPixels, surfaceWidth float64) Viewport {
	if !(surfaceWidth > 0) || math.IsInf(surfaceWidth, 0) {
		return v
	}
	if math.IsNaN(deltaPixels) || math.IsInf(deltaPixels, 0) {
		return v
	}
	yearsPerPixel := v.Range() / surfaceWidth
	return PanYears(v, deltaPixels*yearsPerPixel)
}

// PanYears shifts both bounds by deltaYears.
func PanYears(v Viewport, deltaYears float64) Viewport {
	if math.IsNaN(deltaYears) || math.IsInf(deltaYears, 0) {
		return v
	}
	return Viewport{
		StartYear: v.StartYear + deltaYears,
		EndYear:   v.EndYear + deltaYears,
	}
}

// CenterOn moves the window so year sits at its midpoint, keeping the range.
func CenterOn(v Viewport, year float64) Viewport {
	if math.IsNaN(year) || math.IsInf(year, 0) {
		return v
	}
	return PanYears(v, year-v.Center())
}
