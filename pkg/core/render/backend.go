// Package render draws a laid-out plot onto a [Backend].
//
// The package knows nothing about output formats. A backend receives
// paths, rectangles, circles and text in canvas pixels (origin at the top
// left, Y growing downwards) and turns them into SVG, a raster image or a
// geometry record; see the sink subpackage. Backends also measure text,
// which makes every backend a [layout.Measurer].
package render

import (
	"github.com/matzehuels/stackplot/pkg/core/axis"
)

// Op is a path command.
type Op uint8

const (
	MoveTo Op = iota
	LineTo
	ClosePath
)

// Cmd is one path command with its target point.
type Cmd struct {
	Op   Op
	X, Y float64
}

// Path is a sequence of drawing commands in canvas pixels.
type Path []Cmd

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) { *p = append(*p, Cmd{Op: MoveTo, X: x, Y: y}) }

// LineTo draws a straight line to (x, y).
func (p *Path) LineTo(x, y float64) { *p = append(*p, Cmd{Op: LineTo, X: x, Y: y}) }

// Close closes the current subpath.
func (p *Path) Close() { *p = append(*p, Cmd{Op: ClosePath}) }

// Style is the paint used for a shape. Empty colours mean "none".
type Style struct {
	Stroke      string
	StrokeWidth float64
	Fill        string
	LineJoin    string
}

// Anchor is the horizontal alignment of text around its position.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// TextStyle describes how a line of text is drawn.
type TextStyle struct {
	Font   axis.Font
	Color  string
	Anchor Anchor
}

// Backend is a drawing surface.
type Backend interface {
	// Size returns the canvas size in pixels.
	Size() (w, h float64)

	// Clear discards everything drawn so far.
	Clear()

	Path(p Path, s Style)
	Rect(x, y, w, h float64, s Style)
	Circle(cx, cy, r float64, s Style)

	// Text draws a single line. y is the vertical centre of the line.
	Text(x, y float64, text string, ts TextStyle)

	MeasureText(text string, f axis.Font) (w, h float64)
}
