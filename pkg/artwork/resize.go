package artwork

import (
	"image"

	"github.com/disintegration/imaging"
)

// Fallback cell size in pixels when the terminal does not report one.
const (
	defaultCellW = 8
	defaultCellH = 16
)

// Sharpening applied after downscaling. Half blocks have a much lower
// effective resolution and need more.
const (
	sharpenInline     = 0.5
	sharpenHalfblocks = 0.9
)

// FitCells scales img to fit a box of widthCells x heightCells terminal
// cells, preserving aspect ratio. For half blocks each cell holds one
// pixel across and two down; otherwise the cell pixel size is used. Images
// that already fit are not upscaled. A nil image returns nil.
func FitCells(img image.Image, widthCells, heightCells, cellW, cellH int, halfblocks bool) image.Image {
	if img == nil {
		return nil
	}
	widthCells = max(widthCells, 1)
	heightCells = max(heightCells, 1)

	var maxW, maxH int
	sigma := sharpenInline
	if halfblocks {
		maxW, maxH = widthCells, heightCells*2
		sigma = sharpenHalfblocks
	} else {
		if cellW <= 0 {
			cellW = defaultCellW
		}
		if cellH <= 0 {
			cellH = defaultCellH
		}
		maxW, maxH = widthCells*cellW, heightCells*cellH
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return img
	}
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return img
	}
	fitted := imaging.Fit(img, maxW, maxH, imaging.Lanczos)
	return imaging.Sharpen(fitted, sigma)
}
