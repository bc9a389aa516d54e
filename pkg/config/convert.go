package config

import (
	"math"
	"path/filepath"

	"github.com/matzehuels/stackplot/pkg/core/axis"
	"github.com/matzehuels/stackplot/pkg/core/plot"
	"github.com/matzehuels/stackplot/pkg/core/render"
	"github.com/matzehuels/stackplot/pkg/core/series"
	"github.com/matzehuels/stackplot/pkg/errors"
	"github.com/matzehuels/stackplot/pkg/io"
)

// =============================================================================
// Plot Options
// =============================================================================

// PlotOptions converts the chart into plot options.
func (c *Chart) PlotOptions() plot.Options {
	opts := plot.Options{
		Colors: c.Colors,
		Font:   axis.Font{Family: c.FontFamily, Size: c.FontSize},
		XAxis:  c.XAxis.options(),
		YAxis:  c.YAxis.options(),
		Series: c.SeriesDefaults.options(),
		Grid:   c.Grid.options(),
	}
	for _, a := range c.XAxes {
		opts.XAxes = append(opts.XAxes, a.options())
	}
	for _, a := range c.YAxes {
		opts.YAxes = append(opts.YAxes, a.options())
	}
	return opts
}

func (a Axis) options() axis.Options {
	o := axis.Options{
		Show:               a.Show,
		Position:           axis.Position(a.Position),
		Mode:               axis.Mode(a.Mode),
		Min:                a.Min,
		Max:                a.Max,
		AutoscaleMargin:    a.AutoscaleMargin,
		Ticks:              axis.TickSpec{Count: a.Ticks},
		TickDecimals:       a.TickDecimals,
		TickLength:         a.TickLength,
		AlignTicksWithAxis: a.AlignTicksWithAxis,
		LabelWidth:         a.LabelWidth,
		LabelHeight:        a.LabelHeight,
		TimeFormat:         a.TimeFormat,
		MonthNames:         a.MonthNames,
		TwelveHourClock:    a.TwelveHourClock,
		Color:              a.Color,
		TickColor:          a.TickColor,
		ReserveSpace:       a.ReserveSpace,
	}
	if a.TickValues != nil {
		o.Ticks.Values = make([]axis.TickValue, len(a.TickValues))
		for i, v := range a.TickValues {
			o.Ticks.Values[i].Value = v
			if i < len(a.TickLabels) {
				o.Ticks.Values[i].Label = a.TickLabels[i]
			}
		}
	}
	if a.TickSize != nil {
		o.TickSize = &axis.Step{Size: *a.TickSize, Unit: axis.TimeUnit(a.TickUnit)}
	}
	if a.MinTickSize != nil {
		o.MinTickSize = &axis.Step{Size: *a.MinTickSize, Unit: axis.TimeUnit(a.MinTickUnit)}
	}
	if a.FullTicks {
		o.TickLength = axis.Float(axis.TickLengthFull)
	}
	if a.Scale == ScaleLog {
		o.Transform, o.InverseTransform = logTransform, math.Exp
	}
	if a.FontSize > 0 {
		o.Font = &axis.Font{Size: a.FontSize}
	}
	return o
}

// logTransform maps values onto a log scale. Non-positive values are
// clamped to a tiny positive number so they land below the visible range.
func logTransform(v float64) float64 {
	if v <= 0 {
		v = math.SmallestNonzeroFloat64
	}
	return math.Log(v)
}

func (g Grid) options() plot.Grid {
	out := plot.Grid{
		Show:              g.Show,
		AboveData:         g.AboveData,
		Color:             g.Color,
		BackgroundColor:   g.BackgroundColor,
		BorderColor:       g.BorderColor,
		BorderWidth:       g.BorderWidth,
		LabelMargin:       g.LabelMargin,
		AxisMargin:        g.AxisMargin,
		MinBorderMargin:   g.MinBorderMargin,
		MarkingsColor:     g.MarkingsColor,
		MarkingsLineWidth: g.MarkingsLineWidth,
	}
	for _, m := range g.Markings {
		out.Markings = append(out.Markings, render.Marking{
			XAxis:     m.XAxis,
			YAxis:     m.YAxis,
			XFrom:     m.XFrom,
			XTo:       m.XTo,
			YFrom:     m.YFrom,
			YTo:       m.YTo,
			Color:     m.Color,
			LineWidth: m.LineWidth,
		})
	}
	return out
}

func (s SeriesStyle) options() series.Options {
	var o series.Options
	if l := s.Lines; l != nil {
		o.Lines = series.LinesOptions{
			Show:        l.Show,
			LineWidth:   l.LineWidth,
			Fill:        l.Fill,
			FillOpacity: l.FillOpacity,
			FillColor:   l.FillColor,
			Steps:       l.Steps,
		}
		// A [lines] table alone turns lines on.
		if o.Lines.Show == nil {
			o.Lines.Show = axis.Bool(true)
		}
	}
	if b := s.Bars; b != nil {
		o.Bars = series.BarsOptions{
			Show:        b.Show,
			LineWidth:   b.LineWidth,
			BarWidth:    b.BarWidth,
			Align:       series.Align(b.Align),
			Horizontal:  b.Horizontal,
			Fill:        b.Fill,
			FillOpacity: b.FillOpacity,
			FillColor:   b.FillColor,
		}
		if o.Bars.Show == nil {
			o.Bars.Show = axis.Bool(true)
		}
	}
	if p := s.Points; p != nil {
		o.Points = series.PointsOptions{
			Show:      p.Show,
			Radius:    p.Radius,
			LineWidth: p.LineWidth,
			Fill:      p.Fill,
			FillColor: p.FillColor,
			Symbol:    series.Symbol(p.Symbol),
		}
		if o.Points.Show == nil {
			o.Points.Show = axis.Bool(true)
		}
	}
	o.ShadowSize = s.ShadowSize
	return o
}

// =============================================================================
// Series
// =============================================================================

// LoadOptions controls how series data is read.
type LoadOptions struct {
	// AllowFiles permits series that reference data files. Charts from
	// untrusted sources should leave it false.
	AllowFiles bool
}

// BuildSeries builds the plot series, reading referenced data files relative
// to the chart's directory.
func (c *Chart) BuildSeries(opts LoadOptions) ([]*series.Series, error) {
	var out []*series.Series
	for i, s := range c.Series {
		if s.File == "" {
			out = append(out, s.build(inlineRows(s.Data), s.Label))
			continue
		}
		if !opts.AllowFiles {
			return nil, errors.New(errors.ErrCodeInvalidInput, "series %d: data files are not allowed here", i)
		}

		ds, err := io.Import(filepath.Join(c.dir, s.File))
		if err != nil {
			code := errors.GetCode(err)
			if code == "" {
				code = errors.ErrCodeInvalidInput
			}
			return nil, errors.Wrap(code, err, "series %d", i)
		}
		matched := false
		for _, d := range ds {
			if s.Dataset != "" && d.Label != s.Dataset {
				continue
			}
			matched = true
			label := s.Label
			if label == "" || len(ds) > 1 && s.Dataset == "" {
				label = d.Label
			}
			out = append(out, s.build(d.Rows, label))
		}
		if !matched {
			return nil, errors.New(errors.ErrCodeNotFound, "series %d: no dataset %q in %s", i, s.Dataset, s.File)
		}
	}
	if len(out) > errors.MaxSeries {
		return nil, errors.New(errors.ErrCodeTooLarge, "%d series (max %d)", len(out), errors.MaxSeries)
	}
	return out, nil
}

func (s Series) build(rows []series.Row, label string) *series.Series {
	return &series.Series{
		Label:   label,
		Color:   s.Color,
		XAxis:   s.XAxis,
		YAxis:   s.YAxis,
		Options: s.SeriesStyle.options(),
		Data:    rows,
	}
}

func inlineRows(data []any) []series.Row {
	rows := make([]series.Row, len(data))
	for i, v := range data {
		rows[i] = io.ParseRow(v)
	}
	return rows
}
