package main

import (
	"image"
	"io"

	"github.com/nfnt/resize"

	"badc0de.net/pkg/spritesplit/imageprint"
)

func out(w io.Writer, img image.Image, mode imageprint.Mode, name string) error {
	if *downsize {
		termSize, err := GetTermSize()
		if err == nil {
			if (termSize.WSXPixel != 0 && termSize.WSYPixel != 0) && (mode == imageprint.ModeRasTerm || mode == imageprint.ModeITerm) {
				// Image protocols get pixels; cell modes get two columns per pixel.
				img = resize.Thumbnail(termSize.WSXPixel/2, termSize.WSYPixel/2, img, resize.NearestNeighbor)
			} else if termSize.WSCol != 0 && termSize.WSRow != 0 {
				img = resize.Thumbnail(termSize.WSCol/2, termSize.WSRow, img, resize.NearestNeighbor)
			}
		}
	}
	return imageprint.Print(w, img, mode, *blanks, name)
}
