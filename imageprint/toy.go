// Package imageprint prints images on terminal. UNSUPPORTED debug package.
//
// This package has an API with no stability guarantees. It is used to
// preview frames as they are cut from a sheet; transparent pixels are
// printed as blanks so the keyed background shows up as holes.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"io"

	"github.com/gookit/color"
	"github.com/pkg/errors"
)

// Mode selects how an image is drawn.
type Mode int

const (
	Mode24bit Mode = iota
	Mode256Color
	ModeNoColor
	ModeITerm
	ModeRasTerm
)

var modeNames = map[string]Mode{
	"24bit":   Mode24bit,
	"256":     Mode256Color,
	"ascii":   ModeNoColor,
	"iterm":   ModeITerm,
	"rasterm": ModeRasTerm,
}

// ParseMode maps the flag spelling of a mode ("24bit", "256", "ascii",
// "iterm" or "rasterm") to a Mode.
func ParseMode(s string) (Mode, error) {
	m, ok := modeNames[s]
	if !ok {
		return 0, errors.Errorf("unknown preview mode %q", s)
	}
	return m, nil
}

// Print draws i to w using the passed mode. blanks only matters for the
// character-cell modes.
func Print(w io.Writer, i image.Image, mode Mode, blanks bool, name string) error {
	switch mode {
	case Mode256Color:
		Print256Color(w, i, blanks)
	case ModeNoColor:
		PrintNoColor(w, i, blanks)
	case ModeITerm:
		return PrintITerm(w, i, name)
	case ModeRasTerm:
		return PrintRasTerm(w, i)
	default:
		Print24bit(w, i, blanks)
	}
	return nil
}

func shade(w io.Writer, col ic.Color, escapesTrueColor, blanks, noColor bool) {
	c := ic.NRGBAModel.Convert(col).(ic.NRGBA)
	if c.A == 0 {
		if noColor {
			fmt.Fprint(w, "  ")
		} else {
			fmt.Fprint(w, "\x1b[0m  ")
		}
		return
	}

	cell := "  "
	if !blanks {
		a := (int(c.R) + int(c.G) + int(c.B)) / 3
		switch {
		case a < 32:
			cell = ".."
		case a < 64:
			cell = "--"
		case a < 128:
			cell = "=="
		default:
			cell = "##"
		}
	}

	switch {
	case noColor:
		fmt.Fprint(w, cell)
	case escapesTrueColor:
		fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm%s\x1b[0m", c.R, c.G, c.B, cell)
	default:
		fmt.Fprint(w, color.RGB(c.R, c.G, c.B, true).Sprint(cell))
	}
}

func printCells(w io.Writer, i image.Image, escapesTrueColor, blanks, noColor bool) {
	for y := i.Bounds().Min.Y; y < i.Bounds().Max.Y; y++ {
		for x := i.Bounds().Min.X; x < i.Bounds().Max.X; x++ {
			shade(w, i.At(x, y), escapesTrueColor, blanks, noColor)
		}
		if !noColor {
			fmt.Fprint(w, "\x1b[0m")
		}
		fmt.Fprint(w, "\n")
	}
}

// Print256Color draws an image using 256color'd ascii art.
func Print256Color(w io.Writer, i image.Image, blanks bool) {
	printCells(w, i, false, blanks, false)
}

// Print24bit draws an image using 24bit color escape sequences by changing background.
func Print24bit(w io.Writer, i image.Image, blanks bool) {
	printCells(w, i, true, blanks, false)
}

// PrintNoColor draws an image without using color escape sequences. Only
// makes sense with blanks=false, as everything else is blank.
func PrintNoColor(w io.Writer, i image.Image, blanks bool) {
	printCells(w, i, false, blanks, true)
}

// PrintITerm draws an image using iTerm2's escape sequences.
//
// https://www.iterm2.com/documentation-images.html
func PrintITerm(w io.Writer, i image.Image, fn string) error {
	if !isTermItermWez() {
		return nil
	}
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	if err := png.Encode(bEnc, i); err != nil {
		return errors.Wrap(err, "encoding iterm preview")
	}
	bEnc.Close()
	_, err := fmt.Fprintf(w, "\n\033]1337;File=name=%s;inline=1;size=%d,width=%dpx;height=%dpx:%s\a\n", name, b.Len(), i.Bounds().Size().X, i.Bounds().Size().Y, b.String())
	return err
}
