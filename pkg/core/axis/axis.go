package axis

import (
	"math"
	"strconv"
)

// Sentinel stands in for infinity in point buffers. Inputs of ±Inf are
// stored as ±Sentinel so comparisons stay total; sentinel values never
// contribute to an axis extent.
const Sentinel = math.MaxFloat64

// Direction tells horizontal axes from vertical ones.
type Direction int

const (
	X Direction = iota
	Y
)

func (d Direction) String() string {
	if d == Y {
		return "y"
	}
	return "x"
}

// Position is the side of the plot area an axis is attached to.
type Position string

const (
	Bottom Position = "bottom"
	Top    Position = "top"
	Left   Position = "left"
	Right  Position = "right"
)

// Valid reports whether p can be used with direction d.
func (p Position) Valid(d Direction) bool {
	if d == X {
		return p == Bottom || p == Top
	}
	return p == Left || p == Right
}

// Box is the rectangle reserved for an axis' ticks and labels.
type Box struct {
	Left, Top     float64
	Width, Height float64
	Padding       float64
}

// Line is one line of a tick label after splitting and measuring.
type Line struct {
	Text          string
	Width, Height float64
}

// Tick is a resolved tick: its value, formatted label and measured lines.
type Tick struct {
	Value         float64
	Label         string
	Lines         []Line
	Width, Height float64
}

// Axis is one horizontal or vertical axis of a plot.
type Axis struct {
	Direction Direction
	N         int // 1-based number within its direction
	Options   Options

	DataMin, DataMax float64
	Min, Max         float64

	// Used is set when at least one series refers to the axis.
	Used         bool
	Show         bool
	ReserveSpace bool
	Position     Position

	Ticks        []Tick
	TickStep     Step
	TickDecimals int

	LabelWidth, LabelHeight float64
	TickLength              float64
	FullTicks               bool // ticks span the whole plot area
	Innermost               bool
	Box                     Box

	Scale float64

	p2c func(float64) float64
	c2p func(float64) float64
}

func newAxis(dir Direction, n int, opts Options) *Axis {
	a := &Axis{Direction: dir, N: n, Options: opts}
	a.ResetExtent()
	return a
}

// Name returns the conventional axis name, "xaxis", "y2axis" and so on.
func (a *Axis) Name() string {
	if a.N <= 1 {
		return a.Direction.String() + "axis"
	}
	return a.Direction.String() + strconv.Itoa(a.N) + "axis"
}

// IsHorizontal reports whether the axis runs along the X direction.
func (a *Axis) IsHorizontal() bool { return a.Direction == X }

// HasData reports whether any finite value was folded into the extent.
func (a *Axis) HasData() bool { return a.DataMin <= a.DataMax }

// ResolvePosition settles the position from the options, falling back to
// bottom for X axes and left for Y axes.
func (a *Axis) ResolvePosition() Position {
	p := a.Options.Position
	if !p.Valid(a.Direction) {
		if a.Direction == X {
			p = Bottom
		} else {
			p = Left
		}
	}
	a.Position = p
	return p
}
