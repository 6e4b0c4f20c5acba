package imageprint

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"badc0de.net/pkg/spritesplit/ttesting"
)

func TestPrintNoColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{255, 255, 255, 255})
	img.SetNRGBA(2, 0, color.NRGBA{255, 255, 255, 0})
	img.SetNRGBA(0, 1, color.NRGBA{40, 40, 40, 255})
	img.SetNRGBA(1, 1, color.NRGBA{100, 100, 100, 255})
	img.SetNRGBA(2, 1, color.NRGBA{0, 0, 0, 0})

	b := &bytes.Buffer{}
	PrintNoColor(b, img, false)
	ttesting.AssertEqualString(t, "ascii", b.String(), "..##  \n--==  \n")

	b.Reset()
	PrintNoColor(b, img, true)
	ttesting.AssertEqualString(t, "blanks", b.String(), "      \n      \n")
}

func TestPrint24bit(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{1, 2, 3, 255})

	b := &bytes.Buffer{}
	if err := Print(b, img, Mode24bit, true, "frame.png"); err != nil {
		t.Fatalf("Print: %v", err)
	}
	ttesting.AssertEqualString(t, "24bit", b.String(), "\x1b[48;2;1;2;3m  \x1b[0m\x1b[0m  \x1b[0m\n")
}

func TestParseMode(t *testing.T) {
	for s, want := range modeNames {
		got, err := ParseMode(s)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", s, got, err, want)
		}
	}
	if _, err := ParseMode("sixel"); err == nil {
		t.Error("ParseMode(\"sixel\") succeeded; want error")
	}
}
