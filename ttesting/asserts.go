// Package ttesting contains assertion helpers shared by tests.
package ttesting

import (
	"image"
	"image/color"
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualString(t *testing.T, name string, got, want string) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %q; want %q", got, want)
		}
	})
}

func AssertEqualPoint(t *testing.T, name string, got, want image.Point) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %v; want %v", got, want)
		}
	})
}

// AssertEqualNRGBA compares the pixel at (x, y) of img with want.
func AssertEqualNRGBA(t *testing.T, name string, img *image.NRGBA, x, y int, want color.NRGBA) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got := img.NRGBAAt(x, y); got != want {
			t.Errorf("pixel (%d,%d): got %v; want %v", x, y, got, want)
		}
	})
}
