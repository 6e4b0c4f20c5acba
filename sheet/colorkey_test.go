package sheet

import (
	"image"
	"image/color"
	"testing"

	"badc0de.net/pkg/spritesplit/ttesting"
)

func TestKeyNearWhite(t *testing.T) {
	px := []color.NRGBA{
		{255, 255, 255, 255},
		{241, 241, 241, 255},
		{240, 240, 240, 255},
		{255, 255, 240, 255},
		{12, 34, 56, 255},
		{250, 245, 243, 128},
	}
	img := image.NewNRGBA(image.Rect(0, 0, len(px), 1))
	for x, c := range px {
		img.SetNRGBA(x, 0, c)
	}

	ttesting.AssertEqualInt(t, "keyed", KeyNearWhite(img), 3)

	ttesting.AssertEqualNRGBA(t, "white", img, 0, 0, color.NRGBA{255, 255, 255, 0})
	ttesting.AssertEqualNRGBA(t, "241", img, 1, 0, color.NRGBA{241, 241, 241, 0})
	ttesting.AssertEqualNRGBA(t, "240 stays opaque", img, 2, 0, color.NRGBA{240, 240, 240, 255})
	ttesting.AssertEqualNRGBA(t, "one channel at threshold", img, 3, 0, color.NRGBA{255, 255, 240, 255})
	ttesting.AssertEqualNRGBA(t, "dark untouched", img, 4, 0, color.NRGBA{12, 34, 56, 255})
	ttesting.AssertEqualNRGBA(t, "translucent white", img, 5, 0, color.NRGBA{250, 245, 243, 0})
}

func TestKeyNearWhiteIdempotent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})
	img.SetNRGBA(1, 1, color.NRGBA{10, 200, 30, 255})

	KeyNearWhite(img)
	first := append([]byte(nil), img.Pix...)
	KeyNearWhite(img)
	if string(first) != string(img.Pix) {
		t.Errorf("second pass changed pixels: %v -> %v", first, img.Pix)
	}
}

func TestKeyNearWhiteSubImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	for x := 0; x < 4; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{255, 255, 255, 255})
	}
	sub := img.SubImage(image.Rect(1, 0, 3, 1)).(*image.NRGBA)

	ttesting.AssertEqualInt(t, "keyed", KeyNearWhite(sub), 2)
	ttesting.AssertEqualNRGBA(t, "left of sub", img, 0, 0, color.NRGBA{255, 255, 255, 255})
	ttesting.AssertEqualNRGBA(t, "inside sub", img, 2, 0, color.NRGBA{255, 255, 255, 0})
	ttesting.AssertEqualNRGBA(t, "right of sub", img, 3, 0, color.NRGBA{255, 255, 255, 255})
}

func TestIsNearWhite(t *testing.T) {
	if !IsNearWhite(color.NRGBA{241, 241, 241, 255}) {
		t.Error("241,241,241 should be near white")
	}
	if IsNearWhite(color.NRGBA{240, 255, 255, 255}) {
		t.Error("240,255,255 should not be near white")
	}
}
