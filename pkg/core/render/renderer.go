package render

import (
	"math"

	"github.com/matzehuels/stackplot/pkg/core/axis"
	"github.com/matzehuels/stackplot/pkg/core/layout"
)

// Grid holds the appearance of the plot frame.
type Grid struct {
	Show      bool
	AboveData bool

	// Color is the default for labels, ticks and the border.
	Color           string
	BackgroundColor string
	BorderColor     string
	BorderWidth     float64

	Markings          []Marking
	MarkingsColor     string
	MarkingsLineWidth float64
}

// Marking highlights a range in data space. A nil bound extends to the
// edge of the axis; reversed bounds are swapped. A marking whose X or Y
// range collapses to a single value is drawn as a line.
type Marking struct {
	XAxis, YAxis int // 1-based; zero means 1
	XFrom, XTo   *float64
	YFrom, YTo   *float64
	Color        string
	LineWidth    float64
}

// Frame is everything the renderer needs to know about a laid-out plot.
type Frame struct {
	Offset        layout.Offset
	Width, Height float64 // plot area
	Axes          []*axis.Axis
	Grid          Grid
	Font          axis.Font
}

func (f Frame) lookup(dir axis.Direction, n int) *axis.Axis {
	if n < 1 {
		n = 1
	}
	for _, a := range f.Axes {
		if a.Direction == dir && a.N == n {
			return a
		}
	}
	return nil
}

// Renderer draws onto one backend.
type Renderer struct {
	b Backend
}

// New returns a renderer drawing onto b.
func New(b Backend) *Renderer { return &Renderer{b: b} }

// Background fills the plot area with the grid background colour.
func (r *Renderer) Background(f Frame) {
	if f.Grid.BackgroundColor == "" {
		return
	}
	r.b.Rect(f.Offset.Left, f.Offset.Top, f.Width, f.Height, Style{Fill: f.Grid.BackgroundColor})
}

// Grid draws markings, tick lines and the border.
func (r *Renderer) Grid(f Frame) {
	r.markings(f)
	for _, a := range f.Axes {
		if a.Show && len(a.Ticks) > 0 {
			r.tickLines(f, a)
		}
	}
	r.border(f)
}

func (r *Renderer) markings(f Frame) {
	for _, m := range f.Grid.Markings {
		xa, ya := f.lookup(axis.X, m.XAxis), f.lookup(axis.Y, m.YAxis)
		if xa == nil || ya == nil {
			continue
		}
		x1, x2, okx := markingRange(xa, m.XFrom, m.XTo)
		y1, y2, oky := markingRange(ya, m.YFrom, m.YTo)
		if !okx || !oky {
			continue
		}

		color := m.Color
		if color == "" {
			color = f.Grid.MarkingsColor
		}
		cx1, cx2 := f.Offset.Left+xa.P2C(x1), f.Offset.Left+xa.P2C(x2)
		cy1, cy2 := f.Offset.Top+ya.P2C(y1), f.Offset.Top+ya.P2C(y2)

		if x1 == x2 || y1 == y2 {
			lw := m.LineWidth
			if lw == 0 {
				lw = f.Grid.MarkingsLineWidth
			}
			var p Path
			p.MoveTo(cx1, cy1)
			p.LineTo(cx2, cy2)
			r.b.Path(p, Style{Stroke: color, StrokeWidth: lw})
			continue
		}
		r.b.Rect(math.Min(cx1, cx2), math.Min(cy1, cy2), math.Abs(cx2-cx1), math.Abs(cy2-cy1), Style{Fill: color})
	}
}

// markingRange orders and clips a marking range to the axis. The boolean
// is false when the range lies outside the axis.
func markingRange(a *axis.Axis, from, to *float64) (float64, float64, bool) {
	lo, hi := a.Min, a.Max
	if from != nil {
		lo = *from
	}
	if to != nil {
		hi = *to
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi < a.Min || lo > a.Max {
		return 0, 0, false
	}
	return math.Max(lo, a.Min), math.Min(hi, a.Max), true
}

func tickColor(f Frame, a *axis.Axis) string {
	if a.Options.TickColor != "" {
		return a.Options.TickColor
	}
	return WithAlpha(axisColor(f, a), 0.22)
}

func axisColor(f Frame, a *axis.Axis) string {
	if a.Options.Color != "" {
		return a.Options.Color
	}
	return f.Grid.Color
}

func (r *Renderer) tickLines(f Frame, a *axis.Axis) {
	ox, oy := f.Offset.Left, f.Offset.Top
	var x, y float64
	if a.Direction == axis.X {
		switch {
		case a.FullTicks && a.Position == axis.Top:
			y = 0
		case a.FullTicks:
			y = f.Height
		default:
			y = a.Box.Top - oy
			if a.Position == axis.Top {
				y += a.Box.Height
			}
		}
	} else {
		switch {
		case a.FullTicks && a.Position == axis.Left:
			x = 0
		case a.FullTicks:
			x = f.Width
		default:
			x = a.Box.Left - ox
			if a.Position != axis.Right {
				x += a.Box.Width
			}
		}
	}

	var p Path
	if !a.Innermost {
		p.MoveTo(ox+x, oy+y)
		if a.Direction == axis.X {
			p.LineTo(ox+x+f.Width, oy+y)
		} else {
			p.LineTo(ox+x, oy+y+f.Height)
		}
	}

	bw := f.Grid.BorderWidth
	for _, t := range a.Ticks {
		v := t.Value
		if v < a.Min || v > a.Max || (a.FullTicks && bw > 0 && (v == a.Min || v == a.Max)) {
			continue
		}
		var dx, dy float64
		if a.Direction == axis.X {
			x = a.P2C(v)
			dy = a.TickLength
			if a.FullTicks {
				dy = -f.Height
			}
			if a.Position == axis.Top {
				dy = -dy
			}
		} else {
			y = a.P2C(v)
			dx = a.TickLength
			if a.FullTicks {
				dx = -f.Width
			}
			if a.Position == axis.Left {
				dx = -dx
			}
		}
		p.MoveTo(ox+x, oy+y)
		p.LineTo(ox+x+dx, oy+y+dy)
	}

	if len(p) > 0 {
		r.b.Path(p, Style{Stroke: tickColor(f, a), StrokeWidth: 1})
	}
}

func (r *Renderer) border(f Frame) {
	bw := f.Grid.BorderWidth
	if !f.Grid.Show || bw <= 0 {
		return
	}
	color := f.Grid.BorderColor
	if color == "" {
		color = f.Grid.Color
	}
	r.b.Rect(f.Offset.Left-bw/2, f.Offset.Top-bw/2, f.Width+bw, f.Height+bw, Style{Stroke: color, StrokeWidth: bw})
}

// AxisLabels draws the tick labels of every shown axis.
func (r *Renderer) AxisLabels(f Frame) {
	for _, a := range f.Axes {
		if !a.Show || len(a.Ticks) == 0 {
			continue
		}
		ts := TextStyle{Font: LabelFont(f.Font, a), Color: axisColor(f, a)}
		for _, t := range a.Ticks {
			if t.Label == "" || t.Value < a.Min || t.Value > a.Max {
				continue
			}
			r.tickLabel(f, a, t, ts)
		}
	}
}

// LabelFont layers the font options of a over base.
func LabelFont(base axis.Font, a *axis.Axis) axis.Font {
	o := a.Options.Font
	if o == nil {
		return base
	}
	if o.Family != "" {
		base.Family = o.Family
	}
	if o.Size > 0 {
		base.Size = o.Size
	}
	if o.Style != "" {
		base.Style = o.Style
	}
	if o.Weight != "" {
		base.Weight = o.Weight
	}
	return base
}

func (r *Renderer) tickLabel(f Frame, a *axis.Axis, t axis.Tick, ts TextStyle) {
	var x, top float64
	box := a.Box
	if a.Direction == axis.X {
		ts.Anchor = AnchorMiddle
		x = f.Offset.Left + a.P2C(t.Value)
		if a.Position == axis.Bottom {
			top = box.Top + box.Padding
		} else {
			top = box.Top + box.Height - box.Padding - t.Height
		}
	} else {
		top = f.Offset.Top + a.P2C(t.Value) - t.Height/2
		if a.Position == axis.Left {
			ts.Anchor = AnchorEnd
			x = box.Left + box.Width - box.Padding
		} else {
			ts.Anchor = AnchorStart
			x = box.Left + box.Padding
		}
	}

	for _, l := range t.Lines {
		r.b.Text(x, top+l.Height/2, l.Text, ts)
		top += l.Height
	}
}
