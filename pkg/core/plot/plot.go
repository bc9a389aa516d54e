// Package plot ties the core packages together into a drawable chart.
//
// A [Plot] owns a drawing backend, an axis set and the series. One
// relayout-and-redraw pass runs in two steps:
//
//  1. [Plot.SetupGrid] decides which axes are shown, resolves their
//     ranges, generates and measures ticks, allocates room for the axes
//     and fixes every data-to-pixel transform.
//  2. [Plot.Draw] clears the backend and paints background, grid, series
//     and tick labels.
//
// [New] runs both, so a plot is drawn as soon as it is created. After
// changing data with [Plot.SetData], call SetupGrid and Draw again; axes
// keep their identity across passes.
//
// A Plot is not safe for concurrent use. Render several charts in
// parallel by giving each its own Plot and backend.
package plot

import (
	"github.com/matzehuels/stackplot/pkg/core/axis"
	"github.com/matzehuels/stackplot/pkg/core/layout"
	"github.com/matzehuels/stackplot/pkg/core/render"
	"github.com/matzehuels/stackplot/pkg/core/series"
	"github.com/matzehuels/stackplot/pkg/core/ticks"
)

// Plot is one chart bound to a backend.
type Plot struct {
	backend render.Backend
	opts    Options
	axes    *axis.Set
	series  []*series.Series

	offset        layout.Offset
	width, height float64
}

// New creates a plot on b, loads data and draws it.
func New(b render.Backend, data []*series.Series, opts Options) *Plot {
	opts.SetDefaults()
	p := &Plot{backend: b, opts: opts, axes: axis.NewSet()}
	p.axes.Configure(axis.X, opts.XAxis, opts.XAxes)
	p.axes.Configure(axis.Y, opts.YAxis, opts.YAxes)
	p.axes.GetOrCreate(axis.X, 1)
	p.axes.GetOrCreate(axis.Y, 1)

	p.SetData(data)
	p.SetupGrid()
	p.Draw()
	return p
}

// SetData replaces the series. Series without a colour get one from the
// palette; styles, axis bindings and point buffers are rebuilt and the
// data extents of every axis recomputed.
func (p *Plot) SetData(data []*series.Series) {
	p.series = data
	assignColors(p.series, p.opts.Colors)

	p.axes.ResetUsage()
	for _, s := range p.series {
		series.Normalize(s, p.opts.Series, p.axes)
	}
	series.AccumulateExtents(p.series, p.axes)
}

// SetupGrid recomputes ranges, ticks, layout and transforms from the
// current options and data.
func (p *Plot) SetupGrid() {
	w, h := p.backend.Size()
	grid := p.opts.Grid.layout()
	all := p.axes.All()

	for _, a := range all {
		a.Show = a.Used
		if s := a.Options.Show; s != nil {
			a.Show = *s
		}
		a.ReserveSpace = a.Show || a.Options.ReserveSpace
		a.ResolvePosition()
		a.ResolveRange()
		a.Ticks = nil
		a.LabelWidth, a.LabelHeight = 0, 0
	}

	p.offset = layout.Offset{}
	if grid.Show {
		for _, a := range tickOrder(all) {
			length := w
			if !a.IsHorizontal() {
				length = h
			}
			ticks.Apply(a, ticks.Setup(a, length, p.axes.Direction(a.Direction)))
			ticks.SnapRange(a)
			if a.ReserveSpace {
				layout.MeasureLabels(a, p.backend, p.font(a))
			}
		}
		p.offset = layout.Allocate(all, layout.Config{
			Width:        w,
			Height:       h,
			Grid:         grid,
			MarkerMargin: p.markerMargin(),
		})
	}

	p.width = w - p.offset.Left - p.offset.Right
	p.height = h - p.offset.Top - p.offset.Bottom
	for _, a := range all {
		if a.IsHorizontal() {
			a.SetTransform(p.width)
		} else {
			a.SetTransform(p.height)
		}
	}
}

// tickOrder orders the axes for tick generation. Every axis gets ticks,
// hidden ones included, since an aligned axis may follow a hidden one.
// Aligned axes come last so the ticks they follow already exist.
func tickOrder(all []*axis.Axis) []*axis.Axis {
	var plain, aligned []*axis.Axis
	for _, a := range all {
		switch {
		case a.Options.AlignTicksWithAxis > 0:
			aligned = append(aligned, a)
		default:
			plain = append(plain, a)
		}
	}
	return append(plain, aligned...)
}

func (p *Plot) markerMargin() float64 {
	var m float64
	for _, s := range p.series {
		m = max(m, s.Style.MarkerMargin())
	}
	return m
}

func (p *Plot) font(a *axis.Axis) axis.Font {
	return render.LabelFont(p.opts.Font, a)
}

// Draw clears the backend and paints the plot as laid out by the last
// SetupGrid.
func (p *Plot) Draw() {
	f := p.frame()
	r := render.New(p.backend)
	show := f.Grid.Show

	p.backend.Clear()
	if show {
		r.Background(f)
		if !f.Grid.AboveData {
			r.Grid(f)
		}
	}
	for _, s := range p.series {
		r.Series(f, s)
	}
	if show {
		if f.Grid.AboveData {
			r.Grid(f)
		}
		r.AxisLabels(f)
	}
}

func (p *Plot) frame() render.Frame {
	return render.Frame{
		Offset: p.offset,
		Width:  p.width,
		Height: p.height,
		Axes:   p.axes.All(),
		Grid:   p.opts.Grid.render(),
		Font:   p.opts.Font,
	}
}

// Axes returns every axis, X axes first, each direction in number order.
func (p *Plot) Axes() []*axis.Axis { return p.axes.All() }

// XAxes returns the X axes in number order.
func (p *Plot) XAxes() []*axis.Axis { return p.axes.X() }

// YAxes returns the Y axes in number order.
func (p *Plot) YAxes() []*axis.Axis { return p.axes.Y() }

// Series returns the normalised series.
func (p *Plot) Series() []*series.Series { return p.series }

// Options returns the options with defaults applied.
func (p *Plot) Options() Options { return p.opts }

// PlotOffset returns the distance from each canvas edge to the plot area.
func (p *Plot) PlotOffset() layout.Offset { return p.offset }

// Size returns the size of the plot area in pixels.
func (p *Plot) Size() (w, h float64) { return p.width, p.height }

// CanvasToAxisCoords maps a position relative to the plot area's top left
// corner to a value on every used axis, keyed by axis name ("xaxis",
// "y2axis", ...).
func (p *Plot) CanvasToAxisCoords(left, top float64) map[string]float64 {
	out := make(map[string]float64)
	for _, a := range p.axes.All() {
		if !a.Used {
			continue
		}
		if a.IsHorizontal() {
			out[a.Name()] = a.C2P(left)
		} else {
			out[a.Name()] = a.C2P(top)
		}
	}
	return out
}

// AxisToCanvasCoords maps axis values keyed by axis name to a position
// relative to the plot area. For each direction the lowest-numbered used
// axis present in values wins; ok is false if a direction has none.
func (p *Plot) AxisToCanvasCoords(values map[string]float64) (left, top float64, ok bool) {
	var gotX, gotY bool
	for _, a := range p.axes.X() {
		if v, found := values[a.Name()]; found && a.Used {
			left, gotX = a.P2C(v), true
			break
		}
	}
	for _, a := range p.axes.Y() {
		if v, found := values[a.Name()]; found && a.Used {
			top, gotY = a.P2C(v), true
			break
		}
	}
	return left, top, gotX && gotY
}
