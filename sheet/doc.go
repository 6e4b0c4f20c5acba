// Package sheet slices sprite sheets into individual frames.
//
// A sprite sheet is a single bitmap holding same-sized animation frames
// packed in a regular grid. Split cuts the sheet into Columns*Rows frames,
// keys the near-white background of every frame to full transparency, and
// writes each frame next to the sheet as <prefix>_<n>.png, numbered from 1
// in row-major order.
//
// Frames are always written as PNG, whatever the input format was.
package sheet
