package sheet

// This file contains the image I/O used by Split: decoding the sheet,
// cropping frames out of it and encoding them.

import (
	"image"
	"image/png"
	"os"

	// Formats accepted for the sheet. PNG is also the output format.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Decode opens and decodes the sheet at path. It returns the image and the
// name of the format it was decoded from.
func Decode(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "opening sheet %q", path)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", errors.Wrapf(err, "decoding sheet %q", path)
	}
	glog.V(1).Infof("sheet.Decode(%q): %s %dx%d, %T", path, format, img.Bounds().Dx(), img.Bounds().Dy(), img)
	return img, format, nil
}

// Crop copies the part of src covered by r into a new 4-channel image
// whose bounds start at (0, 0). Pixels of sources without an alpha channel
// come out fully opaque.
//
// The returned image shares no memory with src.
func Crop(src image.Image, r image.Rectangle) *image.NRGBA {
	return imaging.Crop(src, r)
}

// WriteFrame encodes img as PNG into path, replacing any existing file.
func WriteFrame(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating frame %q", path)
	}
	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			err = errors.Wrapf(cErr, "closing frame %q", path)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "encoding frame %q", path)
	}
	return nil
}
