package series

// Align is the horizontal placement of a bar relative to its x value.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

// Symbol is the marker drawn for points.
type Symbol string

const (
	Circle   Symbol = "circle"
	Square   Symbol = "square"
	Diamond  Symbol = "diamond"
	Triangle Symbol = "triangle"
	Cross    Symbol = "cross"
)

// LinesOptions configures line rendering. Nil fields are unset.
type LinesOptions struct {
	Show        *bool
	LineWidth   *float64
	Fill        *bool
	FillOpacity *float64
	FillColor   string
	Steps       *bool
}

// BarsOptions configures bar rendering. Nil fields are unset.
type BarsOptions struct {
	Show        *bool
	LineWidth   *float64
	BarWidth    *float64
	Align       Align
	Horizontal  *bool
	Fill        *bool
	FillOpacity *float64
	FillColor   string
}

// PointsOptions configures point markers. Nil fields are unset.
type PointsOptions struct {
	Show      *bool
	Radius    *float64
	LineWidth *float64
	Fill      *bool
	FillColor string
	Symbol    Symbol
}

// Options is the layered per-series configuration.
type Options struct {
	Lines      LinesOptions
	Bars       BarsOptions
	Points     PointsOptions
	ShadowSize *float64
}

// LineStyle is the resolved form of LinesOptions.
type LineStyle struct {
	Show        bool
	LineWidth   float64
	Fill        bool
	FillOpacity float64
	FillColor   string
	Steps       bool
}

// BarStyle is the resolved form of BarsOptions.
type BarStyle struct {
	Show        bool
	LineWidth   float64
	BarWidth    float64
	Align       Align
	Horizontal  bool
	Fill        bool
	FillOpacity float64
	FillColor   string
}

// PointStyle is the resolved form of PointsOptions.
type PointStyle struct {
	Show      bool
	Radius    float64
	LineWidth float64
	Fill      bool
	FillColor string
	Symbol    Symbol
}

// Style is the fully resolved appearance of a series.
type Style struct {
	Lines      LineStyle
	Bars       BarStyle
	Points     PointStyle
	ShadowSize float64
}

// DefaultOptions returns the built-in series options.
func DefaultOptions() Options {
	return Options{
		Lines: LinesOptions{
			Show:        boolp(false),
			LineWidth:   floatp(2),
			Fill:        boolp(false),
			FillOpacity: floatp(0.4),
			Steps:       boolp(false),
		},
		Bars: BarsOptions{
			Show:        boolp(false),
			LineWidth:   floatp(2),
			BarWidth:    floatp(1),
			Align:       AlignLeft,
			Horizontal:  boolp(false),
			Fill:        boolp(true),
			FillOpacity: floatp(0.4),
		},
		Points: PointsOptions{
			Show:      boolp(false),
			Radius:    floatp(3),
			LineWidth: floatp(2),
			Fill:      boolp(true),
			FillColor: "#ffffff",
			Symbol:    Circle,
		},
		ShadowSize: floatp(3),
	}
}

// Merge fills every unset field of o from base.
func (o Options) Merge(base Options) Options {
	l, bl := &o.Lines, base.Lines
	mergeBool(&l.Show, bl.Show)
	mergeFloat(&l.LineWidth, bl.LineWidth)
	mergeBool(&l.Fill, bl.Fill)
	mergeFloat(&l.FillOpacity, bl.FillOpacity)
	mergeString(&l.FillColor, bl.FillColor)
	mergeBool(&l.Steps, bl.Steps)

	b, bb := &o.Bars, base.Bars
	mergeBool(&b.Show, bb.Show)
	mergeFloat(&b.LineWidth, bb.LineWidth)
	mergeFloat(&b.BarWidth, bb.BarWidth)
	if b.Align == "" {
		b.Align = bb.Align
	}
	mergeBool(&b.Horizontal, bb.Horizontal)
	mergeBool(&b.Fill, bb.Fill)
	mergeFloat(&b.FillOpacity, bb.FillOpacity)
	mergeString(&b.FillColor, bb.FillColor)

	p, bp := &o.Points, base.Points
	mergeBool(&p.Show, bp.Show)
	mergeFloat(&p.Radius, bp.Radius)
	mergeFloat(&p.LineWidth, bp.LineWidth)
	mergeBool(&p.Fill, bp.Fill)
	mergeString(&p.FillColor, bp.FillColor)
	if p.Symbol == "" {
		p.Symbol = bp.Symbol
	}

	mergeFloat(&o.ShadowSize, base.ShadowSize)
	return o
}

// Resolve layers o over the built-in defaults and produces a Style. When
// no render mode is switched on and lines are left unset, lines are shown.
func (o Options) Resolve() Style {
	if o.Lines.Show == nil && !isTrue(o.Bars.Show) && !isTrue(o.Points.Show) {
		o.Lines.Show = boolp(true)
	}
	m := o.Merge(DefaultOptions())
	return Style{
		Lines: LineStyle{
			Show:        *m.Lines.Show,
			LineWidth:   *m.Lines.LineWidth,
			Fill:        *m.Lines.Fill,
			FillOpacity: *m.Lines.FillOpacity,
			FillColor:   m.Lines.FillColor,
			Steps:       *m.Lines.Steps,
		},
		Bars: BarStyle{
			Show:        *m.Bars.Show,
			LineWidth:   *m.Bars.LineWidth,
			BarWidth:    *m.Bars.BarWidth,
			Align:       m.Bars.Align,
			Horizontal:  *m.Bars.Horizontal,
			Fill:        *m.Bars.Fill,
			FillOpacity: *m.Bars.FillOpacity,
			FillColor:   m.Bars.FillColor,
		},
		Points: PointStyle{
			Show:      *m.Points.Show,
			Radius:    *m.Points.Radius,
			LineWidth: *m.Points.LineWidth,
			Fill:      *m.Points.Fill,
			FillColor: m.Points.FillColor,
			Symbol:    m.Points.Symbol,
		},
		ShadowSize: *m.ShadowSize,
	}
}

// MarkerMargin is how far a point marker reaches past its centre, whether
// or not points are shown.
func (s Style) MarkerMargin() float64 {
	return s.Points.Radius + s.Points.LineWidth/2
}

func mergeBool(dst **bool, src *bool) {
	if *dst == nil {
		*dst = src
	}
}

func mergeFloat(dst **float64, src *float64) {
	if *dst == nil {
		*dst = src
	}
}

func mergeString(dst *string, src string) {
	if *dst == "" {
		*dst = src
	}
}

func isTrue(b *bool) bool { return b != nil && *b }

func boolp(v bool) *bool { return &v }

func floatp(v float64) *float64 { return &v }
