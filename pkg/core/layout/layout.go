// Package layout measures tick labels and reserves room for axes around
// the plot area.
//
// Allocation runs in three phases over the axes that reserve space:
//
//  1. Outermost first, each axis takes a band on its side of the canvas
//     wide enough for its labels plus the label margin and tick length.
//  2. Margins grow so that labels and point markers at the plot edges are
//     not cut off.
//  3. Each axis box is stretched along the plot area, overhanging it by
//     half a label on both ends.
//
// The result is an [Offset]: the distance from each canvas edge to the
// plot area.
package layout

import (
	"math"
	"regexp"

	"github.com/matzehuels/stackplot/pkg/core/axis"
)

// Measurer reports the rendered size of a single line of text.
type Measurer interface {
	MeasureText(text string, f axis.Font) (w, h float64)
}

// Offset is the gap between each canvas edge and the plot area.
type Offset struct {
	Top, Right, Bottom, Left float64
}

// Grid carries the grid options that influence allocation.
type Grid struct {
	Show            bool
	BorderWidth     float64
	LabelMargin     float64
	AxisMargin      float64
	MinBorderMargin *float64
}

// DefaultGrid returns the built-in grid spacing.
func DefaultGrid() Grid {
	return Grid{Show: true, BorderWidth: 2, LabelMargin: 5, AxisMargin: 8}
}

// Config describes one allocation pass.
type Config struct {
	Width, Height float64
	Grid          Grid

	// MarkerMargin is how far point markers reach past their centre,
	// over all series. It is ignored when Grid.MinBorderMargin is set.
	MarkerMargin float64
}

var lineBreak = regexp.MustCompile(`(?i)<br\s*/?>|\r\n|\r|\n`)

// SplitLines breaks a label into its lines.
func SplitLines(label string) []string {
	return lineBreak.Split(label, -1)
}

// MeasureLabels measures every tick label of a and sets a.LabelWidth and
// a.LabelHeight to the largest label, rounded up. Options.LabelWidth and
// Options.LabelHeight pin the results.
func MeasureLabels(a *axis.Axis, m Measurer, f axis.Font) {
	var w, h float64
	for i := range a.Ticks {
		t := &a.Ticks[i]
		t.Lines = t.Lines[:0]
		t.Width, t.Height = 0, 0
		if t.Label == "" {
			continue
		}
		for _, text := range SplitLines(t.Label) {
			lw, lh := m.MeasureText(text, f)
			lh += math.Round(f.Size * 0.15)
			t.Lines = append(t.Lines, axis.Line{Text: text, Width: lw, Height: lh})
			t.Width = math.Max(t.Width, lw)
			t.Height += lh
		}
		w = math.Max(w, t.Width)
		h = math.Max(h, t.Height)
	}

	if p := a.Options.LabelWidth; p != nil {
		w = *p
	}
	if p := a.Options.LabelHeight; p != nil {
		h = *p
	}
	a.LabelWidth = math.Ceil(w)
	a.LabelHeight = math.Ceil(h)
}

// Allocate reserves space for the given axes and returns the plot offset.
// Only axes with ReserveSpace set take part; their Box, TickLength,
// FullTicks and Innermost fields are assigned. Positions must already be
// resolved.
func Allocate(axes []*axis.Axis, cfg Config) Offset {
	var off Offset
	if !cfg.Grid.Show {
		return off
	}
	b := cfg.Grid.BorderWidth
	off = Offset{Top: b, Right: b, Bottom: b, Left: b}

	var reserved []*axis.Axis
	for _, a := range axes {
		if a.ReserveSpace {
			reserved = append(reserved, a)
		}
	}

	for i := len(reserved) - 1; i >= 0; i-- {
		off = reserve(reserved[i], reserved, off, cfg)
	}
	off = stickOut(reserved, off, cfg)
	for _, a := range reserved {
		span(a, off, cfg)
	}
	return off
}

func reserve(a *axis.Axis, reserved []*axis.Axis, off Offset, cfg Config) Offset {
	var samePos, sameDir []*axis.Axis
	for _, o := range reserved {
		if o.Direction != a.Direction {
			continue
		}
		sameDir = append(sameDir, o)
		if o.Position == a.Position {
			samePos = append(samePos, o)
		}
	}

	margin := cfg.Grid.AxisMargin
	if indexOf(samePos, a) == len(samePos)-1 {
		margin = 0
	}

	a.Innermost = indexOf(sameDir, a) == 0
	switch tl := a.Options.TickLength; {
	case tl != nil && *tl >= 0:
		a.TickLength, a.FullTicks = *tl, false
	case tl != nil || a.Innermost:
		a.TickLength, a.FullTicks = 0, true
	default:
		a.TickLength, a.FullTicks = 5, false
	}

	padding := cfg.Grid.LabelMargin
	if !a.FullTicks {
		padding += a.TickLength
	}

	if a.Direction == axis.X {
		h := a.LabelHeight + padding
		if a.Position == axis.Bottom {
			off.Bottom += h + margin
			a.Box = axis.Box{Top: cfg.Height - off.Bottom, Height: h}
		} else {
			a.Box = axis.Box{Top: off.Top + margin, Height: h}
			off.Top += h + margin
		}
	} else {
		w := a.LabelWidth + padding
		if a.Position == axis.Left {
			a.Box = axis.Box{Left: off.Left + margin, Width: w}
			off.Left += w + margin
		} else {
			off.Right += w + margin
			a.Box = axis.Box{Left: cfg.Width - off.Right, Width: w}
		}
	}
	a.Box.Padding = padding
	return off
}

func stickOut(reserved []*axis.Axis, off Offset, cfg Config) Offset {
	minMargin := cfg.MarkerMargin
	if p := cfg.Grid.MinBorderMargin; p != nil {
		minMargin = *p
	}

	mx, my := math.Ceil(minMargin), math.Ceil(minMargin)
	for _, a := range reserved {
		if a.Direction == axis.X {
			mx = math.Ceil(math.Max(mx, a.LabelWidth/2))
		} else {
			my = math.Ceil(math.Max(my, a.LabelHeight/2))
		}
	}

	off.Left = math.Max(mx, off.Left)
	off.Right = math.Max(mx, off.Right)
	off.Top = math.Max(my, off.Top)
	off.Bottom = math.Max(my, off.Bottom)
	return off
}

func span(a *axis.Axis, off Offset, cfg Config) {
	if a.Direction == axis.X {
		a.Box.Left = off.Left - a.LabelWidth/2
		a.Box.Width = cfg.Width - off.Left - off.Right + a.LabelWidth
	} else {
		a.Box.Top = off.Top - a.LabelHeight/2
		a.Box.Height = cfg.Height - off.Bottom - off.Top + a.LabelHeight
	}
}

func indexOf(axes []*axis.Axis, a *axis.Axis) int {
	for i, o := range axes {
		if o == a {
			return i
		}
	}
	return -1
}
