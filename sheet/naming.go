package sheet

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Only these two spellings are recognized; "_TOTAL" is kept as is.
var totalSuffixes = []string{"_total", "_Total"}

// Prefix returns the name frames cut from the sheet at path are named
// after: the base name without extension, minus a trailing "_total".
func Prefix(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	for _, s := range totalSuffixes {
		if strings.HasSuffix(name, s) {
			return strings.TrimSuffix(name, s)
		}
	}
	return name
}

// FrameName returns the file name of the frame with the passed 1-based
// index.
func FrameName(prefix string, index int) string {
	return fmt.Sprintf("%s_%d.png", prefix, index)
}

// FramePath joins dir and FrameName.
func FramePath(dir, prefix string, index int) string {
	return filepath.Join(dir, FrameName(prefix, index))
}
