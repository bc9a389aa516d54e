package config

import (
	"fmt"
	"math"

	"github.com/matzehuels/stackplot/pkg/core/axis"
	"github.com/matzehuels/stackplot/pkg/core/series"
	"github.com/matzehuels/stackplot/pkg/errors"
)

// Axis scales.
const (
	ScaleLinear = "linear"
	ScaleLog    = "log"
)

var (
	validModes   = map[string]bool{"": true, string(axis.ModeTime): true}
	validScales  = map[string]bool{"": true, ScaleLinear: true, ScaleLog: true}
	validAligns  = map[string]bool{"": true, string(series.AlignLeft): true, string(series.AlignCenter): true}
	validSymbols = map[string]bool{
		"":                      true,
		string(series.Circle):   true,
		string(series.Square):   true,
		string(series.Diamond):  true,
		string(series.Triangle): true,
		string(series.Cross):    true,
	}
	validUnits = map[string]bool{
		"":                   true,
		string(axis.Second): true,
		string(axis.Minute): true,
		string(axis.Hour):   true,
		string(axis.Day):    true,
		string(axis.Month):  true,
		string(axis.Year):   true,
	}
)

// Validate checks the chart for values the plot cannot honour. It
// reports the first problem found as an INVALID_CONFIG (or TOO_LARGE)
// error naming the offending field.
func (c *Chart) Validate() error {
	if err := errors.ValidateCanvas(c.Width, c.Height); err != nil {
		return err
	}
	if err := finite(number{"font_size", &c.FontSize}); err != nil {
		return err
	}
	if c.FontSize < 0 {
		return invalid("font_size", "must not be negative")
	}
	if err := errors.ValidateColor("background", c.Background); err != nil {
		return err
	}
	for i, col := range c.Colors {
		if err := errors.ValidateColor(fmt.Sprintf("colors[%d]", i), col); err != nil {
			return err
		}
	}

	if err := c.XAxis.validate("xaxis", axis.X); err != nil {
		return err
	}
	if err := c.YAxis.validate("yaxis", axis.Y); err != nil {
		return err
	}
	for i, a := range c.XAxes {
		if err := a.validate(fmt.Sprintf("xaxes[%d]", i), axis.X); err != nil {
			return err
		}
	}
	for i, a := range c.YAxes {
		if err := a.validate(fmt.Sprintf("yaxes[%d]", i), axis.Y); err != nil {
			return err
		}
	}

	if err := c.Grid.validate(); err != nil {
		return err
	}
	if err := c.SeriesDefaults.validate("series_defaults"); err != nil {
		return err
	}

	if len(c.Series) > errors.MaxSeries {
		return errors.New(errors.ErrCodeTooLarge, "%d series (max %d)", len(c.Series), errors.MaxSeries)
	}
	for i, s := range c.Series {
		if err := s.validate(fmt.Sprintf("series[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (a Axis) validate(field string, dir axis.Direction) error {
	nums := []number{
		{field + ".min", a.Min},
		{field + ".max", a.Max},
		{field + ".autoscale_margin", a.AutoscaleMargin},
		{field + ".tick_size", a.TickSize},
		{field + ".min_tick_size", a.MinTickSize},
		{field + ".tick_length", a.TickLength},
		{field + ".label_width", a.LabelWidth},
		{field + ".label_height", a.LabelHeight},
		{field + ".font_size", &a.FontSize},
	}
	for i := range a.TickValues {
		nums = append(nums, number{fmt.Sprintf("%s.tick_values[%d]", field, i), &a.TickValues[i]})
	}
	if err := finite(nums...); err != nil {
		return err
	}
	if a.Position != "" && !axis.Position(a.Position).Valid(dir) {
		return invalid(field+".position", "%q is not a %s axis position", a.Position, dir)
	}
	if !validModes[a.Mode] {
		return invalid(field+".mode", "unknown mode %q (use time or leave empty)", a.Mode)
	}
	if !validScales[a.Scale] {
		return invalid(field+".scale", "unknown scale %q (use linear or log)", a.Scale)
	}
	if !validUnits[a.TickUnit] {
		return invalid(field+".tick_unit", "unknown unit %q", a.TickUnit)
	}
	if !validUnits[a.MinTickUnit] {
		return invalid(field+".min_tick_unit", "unknown unit %q", a.MinTickUnit)
	}
	if a.TickSize != nil && *a.TickSize <= 0 {
		return invalid(field+".tick_size", "must be positive")
	}
	if a.MinTickSize != nil && *a.MinTickSize < 0 {
		return invalid(field+".min_tick_size", "must not be negative")
	}
	if a.Ticks < 0 {
		return invalid(field+".ticks", "must not be negative")
	}
	if a.TickDecimals != nil && (*a.TickDecimals < 0 || *a.TickDecimals > 20) {
		return invalid(field+".tick_decimals", "must be between 0 and 20")
	}
	if len(a.TickLabels) > len(a.TickValues) {
		return invalid(field+".tick_labels", "%d labels for %d tick values", len(a.TickLabels), len(a.TickValues))
	}
	if a.Min != nil && a.Max != nil && *a.Min > *a.Max {
		return invalid(field, "min %v is greater than max %v", *a.Min, *a.Max)
	}
	if a.Scale == ScaleLog {
		if a.Min != nil && *a.Min <= 0 {
			return invalid(field+".min", "log scale needs a positive min, got %v", *a.Min)
		}
		if a.Max != nil && *a.Max <= 0 {
			return invalid(field+".max", "log scale needs a positive max, got %v", *a.Max)
		}
	}
	if a.AlignTicksWithAxis < 0 {
		return invalid(field+".align_ticks_with_axis", "must not be negative")
	}
	if a.MonthNames != nil && len(a.MonthNames) != 12 {
		return invalid(field+".month_names", "needs 12 names, got %d", len(a.MonthNames))
	}
	if err := errors.ValidateColor(field+".color", a.Color); err != nil {
		return err
	}
	return errors.ValidateColor(field+".tick_color", a.TickColor)
}

func (g Grid) validate() error {
	nums := []number{
		{"grid.border_width", g.BorderWidth},
		{"grid.label_margin", g.LabelMargin},
		{"grid.axis_margin", g.AxisMargin},
		{"grid.min_border_margin", g.MinBorderMargin},
		{"grid.markings_line_width", g.MarkingsLineWidth},
	}
	for i := range g.Markings {
		m := &g.Markings[i]
		f := fmt.Sprintf("grid.markings[%d]", i)
		nums = append(nums,
			number{f + ".x_from", m.XFrom}, number{f + ".x_to", m.XTo},
			number{f + ".y_from", m.YFrom}, number{f + ".y_to", m.YTo},
			number{f + ".line_width", &m.LineWidth})
	}
	if err := finite(nums...); err != nil {
		return err
	}
	for field, col := range map[string]string{
		"grid.color":            g.Color,
		"grid.background_color": g.BackgroundColor,
		"grid.border_color":     g.BorderColor,
		"grid.markings_color":   g.MarkingsColor,
	} {
		if err := errors.ValidateColor(field, col); err != nil {
			return err
		}
	}
	if g.BorderWidth != nil && *g.BorderWidth < 0 {
		return invalid("grid.border_width", "must not be negative")
	}
	for i, m := range g.Markings {
		if err := errors.ValidateColor(fmt.Sprintf("grid.markings[%d].color", i), m.Color); err != nil {
			return err
		}
		if m.XAxis < 0 || m.YAxis < 0 {
			return invalid(fmt.Sprintf("grid.markings[%d]", i), "axis numbers start at 1")
		}
	}
	return nil
}

func (s SeriesStyle) validate(field string) error {
	nums := []number{{field + ".shadow_size", s.ShadowSize}}
	if l := s.Lines; l != nil {
		nums = append(nums, number{field + ".lines.line_width", l.LineWidth}, number{field + ".lines.fill_opacity", l.FillOpacity})
	}
	if b := s.Bars; b != nil {
		nums = append(nums,
			number{field + ".bars.line_width", b.LineWidth},
			number{field + ".bars.bar_width", b.BarWidth},
			number{field + ".bars.fill_opacity", b.FillOpacity})
	}
	if p := s.Points; p != nil {
		nums = append(nums, number{field + ".points.radius", p.Radius}, number{field + ".points.line_width", p.LineWidth})
	}
	if err := finite(nums...); err != nil {
		return err
	}

	if l := s.Lines; l != nil {
		if err := errors.ValidateColor(field+".lines.fill_color", l.FillColor); err != nil {
			return err
		}
		if err := opacity(field+".lines.fill_opacity", l.FillOpacity); err != nil {
			return err
		}
	}
	if b := s.Bars; b != nil {
		if !validAligns[b.Align] {
			return invalid(field+".bars.align", "unknown alignment %q (use left or center)", b.Align)
		}
		if b.BarWidth != nil && *b.BarWidth <= 0 {
			return invalid(field+".bars.bar_width", "must be positive")
		}
		if err := errors.ValidateColor(field+".bars.fill_color", b.FillColor); err != nil {
			return err
		}
		if err := opacity(field+".bars.fill_opacity", b.FillOpacity); err != nil {
			return err
		}
	}
	if p := s.Points; p != nil {
		if !validSymbols[p.Symbol] {
			return invalid(field+".points.symbol", "unknown symbol %q", p.Symbol)
		}
		if p.Radius != nil && *p.Radius < 0 {
			return invalid(field+".points.radius", "must not be negative")
		}
		if err := errors.ValidateColor(field+".points.fill_color", p.FillColor); err != nil {
			return err
		}
	}
	if s.ShadowSize != nil && *s.ShadowSize < 0 {
		return invalid(field+".shadow_size", "must not be negative")
	}
	return nil
}

func (s Series) validate(field string) error {
	if s.XAxis < 0 || s.YAxis < 0 {
		return invalid(field, "axis numbers start at 1")
	}
	if err := errors.ValidateColor(field+".color", s.Color); err != nil {
		return err
	}
	if s.File != "" {
		if len(s.Data) > 0 {
			return invalid(field, "set either data or file, not both")
		}
		if err := errors.ValidatePath(s.File); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "%s.file", field)
		}
	} else if s.Dataset != "" {
		return invalid(field+".dataset", "only applies to series read from a file")
	}
	if len(s.Data) > errors.MaxPoints {
		return errors.New(errors.ErrCodeTooLarge, "%s has %d rows (max %d)", field, len(s.Data), errors.MaxPoints)
	}
	return s.SeriesStyle.validate(field)
}

// number names an optional numeric setting for finite.
type number struct {
	field string
	v     *float64
}

// finite rejects NaN and infinite settings, which TOML can spell.
func finite(nums ...number) error {
	for _, n := range nums {
		if n.v != nil && (math.IsNaN(*n.v) || math.IsInf(*n.v, 0)) {
			return invalid(n.field, "must be a finite number, got %v", *n.v)
		}
	}
	return nil
}

func invalid(field, format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfig, "%s: %s", field, fmt.Sprintf(format, args...))
}

func opacity(field string, v *float64) error {
	if v != nil && (*v < 0 || *v > 1) {
		return invalid(field, "must be between 0 and 1")
	}
	return nil
}
