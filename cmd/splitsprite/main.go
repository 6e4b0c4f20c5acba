// Command splitsprite cuts a sprite sheet into per-frame transparent PNGs.
//
//	splitsprite [flags] <image_path> <cols> <rows>
//
// Frames are written next to the sheet as <name>_1.png .. <name>_N.png,
// where <name> is the sheet's base name without a trailing "_total".
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/spritesplit/imageprint"
	"badc0de.net/pkg/spritesplit/sheet"
)

var (
	preview     = flag.Bool("preview", false, "whether to print each saved frame on the terminal")
	previewMode = flag.String("preview_mode", "24bit", "preview renderer: 24bit, 256, ascii, iterm or rasterm")
	blanks      = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize    = flag.Bool("downsize", true, "whether to shrink previews to fit the terminal")
)

const (
	exitOK    = 0
	exitError = 1
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: splitsprite <image_path> <cols> <rows>")
	fmt.Fprintln(w, "Example: splitsprite Idle/Idle_total.png 3 2")
}

// parseArgs turns the positional arguments into a sheet path and grid.
func parseArgs(args []string) (string, sheet.Grid, error) {
	if len(args) < 3 {
		return "", sheet.Grid{}, fmt.Errorf("want 3 arguments, got %d", len(args))
	}
	cols, err := strconv.Atoi(args[1])
	if err != nil {
		return "", sheet.Grid{}, fmt.Errorf("cols: %v", err)
	}
	rows, err := strconv.Atoi(args[2])
	if err != nil {
		return "", sheet.Grid{}, fmt.Errorf("rows: %v", err)
	}
	return args[0], sheet.Grid{Columns: cols, Rows: rows}, nil
}

func run(args []string, stdout io.Writer) int {
	path, g, err := parseArgs(args)
	if err != nil {
		glog.V(1).Infof("bad arguments: %v", err)
		usage(stdout)
		return exitError
	}

	opts := &sheet.Options{Out: stdout}
	if *preview {
		mode, err := imageprint.ParseMode(*previewMode)
		if err != nil {
			glog.Errorf("%v", err)
			return exitError
		}
		opts.OnFrame = func(f *sheet.Frame) {
			if err := out(stdout, f.Image, mode, filepath.Base(f.Path)); err != nil {
				glog.Warningf("previewing frame %d: %v", f.Index, err)
			}
		}
	}

	if _, err := sheet.Split(path, g, opts); err != nil {
		glog.Errorf("%v", err)
		return exitError
	}
	return exitOK
}

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	code := run(flag.Args(), os.Stdout)
	glog.Flush()
	os.Exit(code)
}
