package sheet

import (
	"fmt"
	"image"

	"github.com/pkg/errors"
)

// ErrInvalidGrid is the cause of all errors returned by Grid.Validate.
var ErrInvalidGrid = errors.New("invalid grid")

// Grid describes how a sheet is partitioned into frames.
type Grid struct {
	Columns int
	Rows    int
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Columns, g.Rows)
}

// Count returns the number of frames the grid produces.
func (g Grid) Count() int {
	return g.Columns * g.Rows
}

// Validate checks that the grid produces at least one non-empty frame on a
// sheet with the passed bounds.
func (g Grid) Validate(bounds image.Rectangle) error {
	if g.Columns < 1 || g.Rows < 1 {
		return errors.Wrapf(ErrInvalidGrid, "columns and rows must be positive; got %s", g)
	}
	if g.Columns > bounds.Dx() || g.Rows > bounds.Dy() {
		return errors.Wrapf(ErrInvalidGrid, "grid %s does not fit a %dx%d image", g, bounds.Dx(), bounds.Dy())
	}
	return nil
}

// FrameSize returns the size of a single frame. Remainder pixels on the
// right and bottom edges of the sheet belong to no frame.
func (g Grid) FrameSize(bounds image.Rectangle) image.Point {
	return image.Pt(bounds.Dx()/g.Columns, bounds.Dy()/g.Rows)
}

// FrameRect returns the rectangle in sheet coordinates covered by the frame
// at the passed cell.
func (g Grid) FrameRect(bounds image.Rectangle, row, col int) image.Rectangle {
	fs := g.FrameSize(bounds)
	r := image.Rect(col*fs.X, row*fs.Y, (col+1)*fs.X, (row+1)*fs.Y)
	return r.Add(bounds.Min)
}

// Cell maps a 1-based frame index to its cell in row-major order.
func (g Grid) Cell(index int) (row, col int) {
	return (index - 1) / g.Columns, (index - 1) % g.Columns
}

// Index is the inverse of Cell.
func (g Grid) Index(row, col int) int {
	return row*g.Columns + col + 1
}
