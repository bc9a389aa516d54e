package render

import (
	"math"

	"github.com/matzehuels/stackplot/pkg/core/axis"
	"github.com/matzehuels/stackplot/pkg/core/clip"
	"github.com/matzehuels/stackplot/pkg/core/series"
)

const (
	shadowOuter = "rgba(0,0,0,0.1)"
	shadowInner = "rgba(0,0,0,0.2)"
)

// Series draws one normalised series: filled area and line, then bars,
// then points.
func (r *Renderer) Series(f Frame, s *series.Series) {
	if s.X == nil || s.Y == nil {
		return
	}
	b := clip.Bounds{XMin: s.X.Min, XMax: s.X.Max, YMin: s.Y.Min, YMax: s.Y.Max}
	if s.Style.Lines.Show {
		r.lines(f, s, b)
	}
	if s.Style.Bars.Show {
		r.bars(f, s, b)
	}
	if s.Style.Points.Show {
		r.points(f, s, b)
	}
}

// fillColor resolves the fill of a series part. An explicit fill colour
// wins; otherwise the series colour is used at the given opacity.
func fillColor(fill bool, explicit string, opacity float64, seriesColor string) string {
	if !fill {
		return ""
	}
	if explicit != "" {
		return explicit
	}
	return WithAlpha(seriesColor, opacity)
}

type canvas struct {
	f      Frame
	x, y   *axis.Axis
	dx, dy float64
}

func (c canvas) at(v clip.Vec) (float64, float64) {
	return c.f.Offset.Left + c.x.P2C(v.X) + c.dx, c.f.Offset.Top + c.y.P2C(v.Y) + c.dy
}

func (r *Renderer) lines(f Frame, s *series.Series, b clip.Bounds) {
	st := s.Style.Lines
	pts := s.Buffer.Points
	c := canvas{f: f, x: s.X, y: s.Y}

	if sw := s.Style.ShadowSize; st.LineWidth > 0 && sw > 0 {
		angle := math.Pi / 18
		polylines := clip.Lines(pts, b)
		off := st.LineWidth/2 + sw/2
		r.polylines(polylines, canvas{f: f, x: s.X, y: s.Y, dx: math.Sin(angle) * off, dy: math.Cos(angle) * off},
			Style{Stroke: shadowOuter, StrokeWidth: sw, LineJoin: "round"})
		off = st.LineWidth/2 + sw/4
		r.polylines(polylines, canvas{f: f, x: s.X, y: s.Y, dx: math.Sin(angle) * off, dy: math.Cos(angle) * off},
			Style{Stroke: shadowInner, StrokeWidth: sw / 2, LineJoin: "round"})
	}

	if fill := fillColor(st.Fill, st.FillColor, st.FillOpacity, s.Color); fill != "" {
		for _, poly := range clip.Areas(pts, b) {
			var p Path
			for i, v := range poly {
				x, y := c.at(v)
				if i == 0 {
					p.MoveTo(x, y)
				} else {
					p.LineTo(x, y)
				}
			}
			p.Close()
			r.b.Path(p, Style{Fill: fill})
		}
	}

	if st.LineWidth > 0 {
		r.polylines(clip.Lines(pts, b), c, Style{Stroke: s.Color, StrokeWidth: st.LineWidth, LineJoin: "round"})
	}
}

func (r *Renderer) polylines(lines []clip.Polyline, c canvas, st Style) {
	if len(lines) == 0 {
		return
	}
	var p Path
	for _, l := range lines {
		for i, v := range l {
			x, y := c.at(v)
			if i == 0 {
				p.MoveTo(x, y)
			} else {
				p.LineTo(x, y)
			}
		}
	}
	r.b.Path(p, st)
}

func (r *Renderer) bars(f Frame, s *series.Series, b clip.Bounds) {
	st := s.Style.Bars
	left := 0.0
	if st.Align == series.AlignCenter {
		left = -st.BarWidth / 2
	}
	right := left + st.BarWidth
	fill := fillColor(st.Fill, st.FillColor, st.FillOpacity, s.Color)
	c := canvas{f: f, x: s.X, y: s.Y}

	for _, pt := range s.Buffer.Points {
		if pt.Gap {
			continue
		}
		bar, ok := clip.Bar(pt.X, pt.Y, pt.B, left, right, st.Horizontal, b)
		if !ok {
			continue
		}
		x1, y1 := c.at(clip.Vec{X: bar.Left, Y: bar.Top})
		x2, y2 := c.at(clip.Vec{X: bar.Right, Y: bar.Bottom})

		if fill != "" {
			r.b.Rect(x1, y1, x2-x1, y2-y1, Style{Fill: fill})
		}

		e := bar.Edges
		if st.LineWidth <= 0 || !(e.Left || e.Right || e.Top || e.Bottom) {
			continue
		}
		var p Path
		p.MoveTo(x1, y2)
		edge(&p, e.Left, x1, y1)
		edge(&p, e.Top, x2, y1)
		edge(&p, e.Right, x2, y2)
		edge(&p, e.Bottom, x1, y2)
		r.b.Path(p, Style{Stroke: s.Color, StrokeWidth: st.LineWidth})
	}
}

func edge(p *Path, draw bool, x, y float64) {
	if draw {
		p.LineTo(x, y)
	} else {
		p.MoveTo(x, y)
	}
}

func (r *Renderer) points(f Frame, s *series.Series, b clip.Bounds) {
	st := s.Style.Points
	lw := st.LineWidth
	c := canvas{f: f, x: s.X, y: s.Y}

	if sw := s.Style.ShadowSize; lw > 0 && sw > 0 {
		w := sw / 2
		r.markers(s, b, canvas{f: f, x: s.X, y: s.Y, dy: w + w/2}, true, Style{Stroke: shadowOuter, StrokeWidth: w})
		r.markers(s, b, canvas{f: f, x: s.X, y: s.Y, dy: w / 2}, true, Style{Stroke: shadowInner, StrokeWidth: w})
	}

	style := Style{Stroke: s.Color, StrokeWidth: lw, Fill: fillColor(st.Fill, st.FillColor, 1, s.Color)}
	if st.Symbol == series.Cross {
		style.Fill = ""
	}
	r.markers(s, b, c, false, style)
}

func (r *Renderer) markers(s *series.Series, b clip.Bounds, c canvas, shadow bool, st Style) {
	radius := s.Style.Points.Radius
	for _, pt := range s.Buffer.Points {
		if pt.Gap || !b.Contains(pt.X, pt.Y) {
			continue
		}
		x, y := c.at(clip.Vec{X: pt.X, Y: pt.Y})
		if s.Style.Points.Symbol == series.Circle || s.Style.Points.Symbol == "" {
			if shadow {
				r.b.Path(arc(x, y, radius, math.Pi), st)
			} else {
				r.b.Circle(x, y, radius, st)
			}
			continue
		}
		r.b.Path(symbol(s.Style.Points.Symbol, x, y, radius, shadow), st)
	}
}

// arc approximates the lower part of a circle from angle 0 to sweep.
func arc(cx, cy, r, sweep float64) Path {
	const steps = 12
	var p Path
	for i := 0; i <= steps; i++ {
		a := sweep * float64(i) / steps
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	return p
}

// symbol draws a marker whose area matches a circle of radius r.
func symbol(sym series.Symbol, x, y, r float64, shadow bool) Path {
	var p Path
	switch sym {
	case series.Square:
		size := r * math.Sqrt(math.Pi) / 2
		p.MoveTo(x-size, y-size)
		p.LineTo(x+size, y-size)
		p.LineTo(x+size, y+size)
		p.LineTo(x-size, y+size)
		p.Close()
	case series.Diamond:
		size := r * math.Sqrt(math.Pi/2)
		p.MoveTo(x-size, y)
		p.LineTo(x, y-size)
		p.LineTo(x+size, y)
		p.LineTo(x, y+size)
		p.Close()
	case series.Triangle:
		size := r * math.Sqrt(2*math.Pi/math.Sin(math.Pi/3))
		height := size * math.Sin(math.Pi/3)
		p.MoveTo(x-size/2, y+height/2)
		p.LineTo(x+size/2, y+height/2)
		if !shadow {
			p.LineTo(x, y-height/2)
			p.Close()
		}
	case series.Cross:
		size := r * math.Sqrt(math.Pi) / 2
		p.MoveTo(x-size, y-size)
		p.LineTo(x+size, y+size)
		p.MoveTo(x-size, y+size)
		p.LineTo(x+size, y-size)
	default:
		return arc(x, y, r, 2*math.Pi)
	}
	return p
}
