package sheet

import (
	"image"
	"image/color"
)

// Threshold is the channel value every one of R, G and B must exceed for a
// pixel to count as background.
const Threshold = 240

// IsNearWhite reports whether c is background.
func IsNearWhite(c color.NRGBA) bool {
	return c.R > Threshold && c.G > Threshold && c.B > Threshold
}

// KeyNearWhite makes every near-white pixel of img fully transparent. The
// color channels are left as they were. It returns the number of pixels
// that were keyed.
func KeyNearWhite(img *image.NRGBA) int {
	keyed := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		// Pix is R, G, B, A per pixel.
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			if row[i] > Threshold && row[i+1] > Threshold && row[i+2] > Threshold {
				row[i+3] = 0
				keyed++
			}
		}
	}
	return keyed
}
