package sheet

import (
	"fmt"
	"image"
	"io"
	"io/ioutil"
	"path/filepath"

	"github.com/bradfitz/iter"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Frame is a single cell of the sheet, cropped, keyed and already written
// to Path.
type Frame struct {
	Index    int // 1-based, row-major
	Row, Col int
	Image    *image.NRGBA
	Path     string
}

// Options controls reporting during Split. A nil *Options is valid.
type Options struct {
	// Out receives one progress line for the grid, one per saved frame and
	// a final summary. Nothing is printed when nil.
	Out io.Writer

	// OnFrame, if set, is called after each frame has been written. The
	// frame's image must not be retained after OnFrame returns.
	OnFrame func(f *Frame)
}

func (o *Options) out() io.Writer {
	if o == nil || o.Out == nil {
		return ioutil.Discard
	}
	return o.Out
}

func (o *Options) onFrame(f *Frame) {
	if o != nil && o.OnFrame != nil {
		o.OnFrame(f)
	}
}

// Result summarizes a completed Split.
type Result struct {
	Width, Height int
	Grid          Grid
	FrameSize     image.Point
	Paths         []string
}

// Split cuts the sheet at path into g.Count() frames and writes each of them
// as PNG into the sheet's directory, named after Prefix(path) and the
// frame's 1-based row-major index. Existing files are overwritten.
//
// Decoding and grid validation happen before anything is written. A write
// failure stops the split; frames written up to that point stay on disk.
func Split(path string, g Grid, o *Options) (*Result, error) {
	src, _, err := Decode(path)
	if err != nil {
		return nil, err
	}
	bounds := src.Bounds()
	if err := g.Validate(bounds); err != nil {
		return nil, errors.Wrapf(err, "splitting %q", path)
	}

	res := &Result{
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		Grid:      g,
		FrameSize: g.FrameSize(bounds),
		Paths:     make([]string, 0, g.Count()),
	}
	w := o.out()
	fmt.Fprintf(w, "Image: %dx%d -> %s grid -> frame %dx%d\n", res.Width, res.Height, g, res.FrameSize.X, res.FrameSize.Y)

	dir := filepath.Dir(path)
	prefix := Prefix(path)
	for row := range iter.N(g.Rows) {
		for col := range iter.N(g.Columns) {
			f := &Frame{
				Index: g.Index(row, col),
				Row:   row,
				Col:   col,
			}
			f.Path = FramePath(dir, prefix, f.Index)
			f.Image = Crop(src, g.FrameRect(bounds, row, col))
			keyed := KeyNearWhite(f.Image)
			glog.V(2).Infof("frame %d (row %d, col %d): keyed %d of %d pixels", f.Index, row, col, keyed, res.FrameSize.X*res.FrameSize.Y)

			if err := WriteFrame(f.Path, f.Image); err != nil {
				return res, errors.Wrapf(err, "saving frame %d of %d", f.Index, g.Count())
			}
			res.Paths = append(res.Paths, f.Path)
			fmt.Fprintf(w, "  Saved: %s (transparent)\n", filepath.Base(f.Path))
			o.onFrame(f)
		}
	}

	fmt.Fprintf(w, "Done! %d frames saved.\n", len(res.Paths))
	return res, nil
}
