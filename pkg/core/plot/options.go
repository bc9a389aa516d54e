package plot

import (
	"github.com/matzehuels/stackplot/pkg/core/axis"
	"github.com/matzehuels/stackplot/pkg/core/layout"
	"github.com/matzehuels/stackplot/pkg/core/render"
	"github.com/matzehuels/stackplot/pkg/core/series"
	"github.com/matzehuels/stackplot/pkg/fonts"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	DefaultGridColor         = "#545454"
	DefaultMarkingsColor     = "#f4f4f4"
	DefaultMarkingsLineWidth = 2.0
)

// DefaultColors is the automatic series palette. Further colours are
// derived from it by lightening and darkening; see [Palette].
var DefaultColors = []string{"#edc240", "#afd8f8", "#cb4b4b", "#4da74d", "#9440ed"}

// =============================================================================
// Options
// =============================================================================

// Options configures a plot. The zero value is usable: every unset field
// takes its default in [Options.SetDefaults].
type Options struct {
	// Colors is the automatic series palette.
	Colors []string

	// Font is the tick label font. A zero size means fonts.DefaultSize.
	Font axis.Font

	// XAxis and YAxis are shared by every axis of their direction;
	// XAxes and YAxes hold per-axis options, first axis first.
	XAxis, YAxis axis.Options
	XAxes, YAxes []axis.Options

	// Series holds defaults shared by all series. Each series' own options
	// win over these.
	Series series.Options

	Grid Grid
}

// Grid configures the plot frame.
type Grid struct {
	Show      *bool
	AboveData bool

	Color           string
	BackgroundColor string
	BorderColor     string

	BorderWidth     *float64
	LabelMargin     *float64
	AxisMargin      *float64
	MinBorderMargin *float64

	Markings          []render.Marking
	MarkingsColor     string
	MarkingsLineWidth *float64
}

// SetDefaults fills unset fields. It is idempotent.
func (o *Options) SetDefaults() {
	if len(o.Colors) == 0 {
		o.Colors = DefaultColors
	}
	if o.Font.Size <= 0 {
		o.Font.Size = fonts.DefaultSize
	}
	if o.Font.Family == "" {
		o.Font.Family = fonts.FallbackFontFamily
	}

	g, d := &o.Grid, layout.DefaultGrid()
	if g.Show == nil {
		g.Show = axis.Bool(d.Show)
	}
	if g.Color == "" {
		g.Color = DefaultGridColor
	}
	if g.BorderWidth == nil {
		g.BorderWidth = axis.Float(d.BorderWidth)
	}
	if g.LabelMargin == nil {
		g.LabelMargin = axis.Float(d.LabelMargin)
	}
	if g.AxisMargin == nil {
		g.AxisMargin = axis.Float(d.AxisMargin)
	}
	if g.MarkingsColor == "" {
		g.MarkingsColor = DefaultMarkingsColor
	}
	if g.MarkingsLineWidth == nil {
		g.MarkingsLineWidth = axis.Float(DefaultMarkingsLineWidth)
	}
}

func (g Grid) layout() layout.Grid {
	return layout.Grid{
		Show:            *g.Show,
		BorderWidth:     *g.BorderWidth,
		LabelMargin:     *g.LabelMargin,
		AxisMargin:      *g.AxisMargin,
		MinBorderMargin: g.MinBorderMargin,
	}
}

func (g Grid) render() render.Grid {
	return render.Grid{
		Show:              *g.Show,
		AboveData:         g.AboveData,
		Color:             g.Color,
		BackgroundColor:   g.BackgroundColor,
		BorderColor:       g.BorderColor,
		BorderWidth:       *g.BorderWidth,
		Markings:          g.Markings,
		MarkingsColor:     g.MarkingsColor,
		MarkingsLineWidth: *g.MarkingsLineWidth,
	}
}
