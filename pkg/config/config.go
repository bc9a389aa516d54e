// Package config reads chart description files.
//
// A chart file describes the canvas, axes, grid and series of one plot.
// TOML is the primary format; the same structure is accepted as JSON,
// which is what the HTTP service receives.
//
//	width  = 600
//	height = 300
//
//	[yaxis]
//	min = 0
//
//	[[series]]
//	label = "requests"
//	data  = [[0, 12], [1, 18], [2, 9]]
//
//	[[series]]
//	label = "latency"
//	file  = "latency.csv"
//	yaxis = 2
//	lines = { fill = true }
//
// [Load] and [Decode] parse a chart, apply defaults and validate it.
// [Chart.PlotOptions] and [Chart.BuildSeries] convert it into the inputs of
// plot.New.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackplot/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600.0
)

// Format names a chart file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// =============================================================================
// Chart Schema
// =============================================================================

// Chart is a complete chart description.
type Chart struct {
	Title      string   `toml:"title" json:"title,omitempty"`
	Width      float64  `toml:"width" json:"width,omitempty"`
	Height     float64  `toml:"height" json:"height,omitempty"`
	FontSize   float64  `toml:"font_size" json:"font_size,omitempty"`
	FontFamily string   `toml:"font_family" json:"font_family,omitempty"`
	Background string   `toml:"background" json:"background,omitempty"`
	Colors     []string `toml:"colors" json:"colors,omitempty"`

	Grid Grid `toml:"grid" json:"grid"`

	// XAxis and YAxis apply to every axis of their direction; XAxes and
	// YAxes configure axes individually, first axis first.
	XAxis Axis   `toml:"xaxis" json:"xaxis"`
	YAxis Axis   `toml:"yaxis" json:"yaxis"`
	XAxes []Axis `toml:"xaxes" json:"xaxes,omitempty"`
	YAxes []Axis `toml:"yaxes" json:"yaxes,omitempty"`

	SeriesDefaults SeriesStyle `toml:"series_defaults" json:"series_defaults"`
	Series         []Series    `toml:"series" json:"series"`

	// dir resolves relative data file paths.
	dir string
}

// Axis configures one axis or, as xaxis/yaxis, all axes of a direction.
type Axis struct {
	Show            *bool    `toml:"show" json:"show,omitempty"`
	Position        string   `toml:"position" json:"position,omitempty"`
	Mode            string   `toml:"mode" json:"mode,omitempty"`
	Min             *float64 `toml:"min" json:"min,omitempty"`
	Max             *float64 `toml:"max" json:"max,omitempty"`
	AutoscaleMargin *float64 `toml:"autoscale_margin" json:"autoscale_margin,omitempty"`

	// Ticks is the approximate tick count. TickValues and TickLabels
	// replace generated ticks; labels pair with values by index.
	Ticks      int       `toml:"ticks" json:"ticks,omitempty"`
	TickValues []float64 `toml:"tick_values" json:"tick_values,omitempty"`
	TickLabels []string  `toml:"tick_labels" json:"tick_labels,omitempty"`

	TickDecimals *int     `toml:"tick_decimals" json:"tick_decimals,omitempty"`
	TickSize     *float64 `toml:"tick_size" json:"tick_size,omitempty"`
	TickUnit     string   `toml:"tick_unit" json:"tick_unit,omitempty"`
	MinTickSize  *float64 `toml:"min_tick_size" json:"min_tick_size,omitempty"`
	MinTickUnit  string   `toml:"min_tick_unit" json:"min_tick_unit,omitempty"`
	TickLength   *float64 `toml:"tick_length" json:"tick_length,omitempty"`
	FullTicks    bool     `toml:"full_ticks" json:"full_ticks,omitempty"`

	AlignTicksWithAxis int `toml:"align_ticks_with_axis" json:"align_ticks_with_axis,omitempty"`

	// Scale is "linear" (default) or "log".
	Scale string `toml:"scale" json:"scale,omitempty"`

	LabelWidth  *float64 `toml:"label_width" json:"label_width,omitempty"`
	LabelHeight *float64 `toml:"label_height" json:"label_height,omitempty"`
	FontSize    float64  `toml:"font_size" json:"font_size,omitempty"`

	TimeFormat      string   `toml:"time_format" json:"time_format,omitempty"`
	MonthNames      []string `toml:"month_names" json:"month_names,omitempty"`
	TwelveHourClock bool     `toml:"twelve_hour_clock" json:"twelve_hour_clock,omitempty"`

	Color        string `toml:"color" json:"color,omitempty"`
	TickColor    string `toml:"tick_color" json:"tick_color,omitempty"`
	ReserveSpace bool   `toml:"reserve_space" json:"reserve_space,omitempty"`
}

// Grid configures the plot frame.
type Grid struct {
	Show              *bool     `toml:"show" json:"show,omitempty"`
	AboveData         bool      `toml:"above_data" json:"above_data,omitempty"`
	Color             string    `toml:"color" json:"color,omitempty"`
	BackgroundColor   string    `toml:"background_color" json:"background_color,omitempty"`
	BorderColor       string    `toml:"border_color" json:"border_color,omitempty"`
	BorderWidth       *float64  `toml:"border_width" json:"border_width,omitempty"`
	LabelMargin       *float64  `toml:"label_margin" json:"label_margin,omitempty"`
	AxisMargin        *float64  `toml:"axis_margin" json:"axis_margin,omitempty"`
	MinBorderMargin   *float64  `toml:"min_border_margin" json:"min_border_margin,omitempty"`
	MarkingsColor     string    `toml:"markings_color" json:"markings_color,omitempty"`
	MarkingsLineWidth *float64  `toml:"markings_line_width" json:"markings_line_width,omitempty"`
	Markings          []Marking `toml:"markings" json:"markings,omitempty"`
}

// Marking highlights a range of data space. Missing bounds extend to the
// axis edge.
type Marking struct {
	XAxis     int      `toml:"xaxis" json:"xaxis,omitempty"`
	YAxis     int      `toml:"yaxis" json:"yaxis,omitempty"`
	XFrom     *float64 `toml:"x_from" json:"x_from,omitempty"`
	XTo       *float64 `toml:"x_to" json:"x_to,omitempty"`
	YFrom     *float64 `toml:"y_from" json:"y_from,omitempty"`
	YTo       *float64 `toml:"y_to" json:"y_to,omitempty"`
	Color     string   `toml:"color" json:"color,omitempty"`
	LineWidth float64  `toml:"line_width" json:"line_width,omitempty"`
}

// SeriesStyle holds the render options shared by series_defaults and
// each series.
type SeriesStyle struct {
	Lines      *Lines   `toml:"lines" json:"lines,omitempty"`
	Bars       *Bars    `toml:"bars" json:"bars,omitempty"`
	Points     *Points  `toml:"points" json:"points,omitempty"`
	ShadowSize *float64 `toml:"shadow_size" json:"shadow_size,omitempty"`
}

type Lines struct {
	Show        *bool    `toml:"show" json:"show,omitempty"`
	LineWidth   *float64 `toml:"line_width" json:"line_width,omitempty"`
	Fill        *bool    `toml:"fill" json:"fill,omitempty"`
	FillOpacity *float64 `toml:"fill_opacity" json:"fill_opacity,omitempty"`
	FillColor   string   `toml:"fill_color" json:"fill_color,omitempty"`
	Steps       *bool    `toml:"steps" json:"steps,omitempty"`
}

type Bars struct {
	Show        *bool    `toml:"show" json:"show,omitempty"`
	LineWidth   *float64 `toml:"line_width" json:"line_width,omitempty"`
	BarWidth    *float64 `toml:"bar_width" json:"bar_width,omitempty"`
	Align       string   `toml:"align" json:"align,omitempty"`
	Horizontal  *bool    `toml:"horizontal" json:"horizontal,omitempty"`
	Fill        *bool    `toml:"fill" json:"fill,omitempty"`
	FillOpacity *float64 `toml:"fill_opacity" json:"fill_opacity,omitempty"`
	FillColor   string   `toml:"fill_color" json:"fill_color,omitempty"`
}

type Points struct {
	Show      *bool    `toml:"show" json:"show,omitempty"`
	Radius    *float64 `toml:"radius" json:"radius,omitempty"`
	LineWidth *float64 `toml:"line_width" json:"line_width,omitempty"`
	Fill      *bool    `toml:"fill" json:"fill,omitempty"`
	FillColor string   `toml:"fill_color" json:"fill_color,omitempty"`
	Symbol    string   `toml:"symbol" json:"symbol,omitempty"`
}

// Series is one data set. Data holds inline rows; File names a JSON or
// CSV data file relative to the chart. A file holding several series
// expands into one series each unless Dataset picks one by label.
type Series struct {
	Label string `toml:"label" json:"label,omitempty"`
	Color string `toml:"color" json:"color,omitempty"`
	XAxis int    `toml:"xaxis" json:"xaxis,omitempty"`
	YAxis int    `toml:"yaxis" json:"yaxis,omitempty"`

	SeriesStyle

	Data    []any  `toml:"data" json:"data,omitempty"`
	File    string `toml:"file" json:"file,omitempty"`
	Dataset string `toml:"dataset" json:"dataset,omitempty"`
}

// =============================================================================
// Loading
// =============================================================================

// Load reads, decodes, defaults and validates the chart file at path.
// The format follows the extension: .json is JSON, anything else TOML.
func Load(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read chart %s", path)
	}

	format := FormatTOML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = FormatJSON
	}
	c, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	c.dir = filepath.Dir(path)
	return c, nil
}

// Decode parses a chart, applies defaults and validates it. Data file
// references are resolved against the working directory; see SetDir.
func Decode(data []byte, format Format) (*Chart, error) {
	var c Chart
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode JSON chart")
		}
	case FormatTOML, "":
		md, err := toml.Decode(string(data), &c)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode TOML chart")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown chart key %q", undecoded[0].String())
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown chart format %q (use toml or json)", format)
	}

	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// SetDir sets the directory that relative data file paths resolve against.
func (c *Chart) SetDir(dir string) { c.dir = dir }

// SetDefaults fills unset chart-level fields. It is idempotent.
func (c *Chart) SetDefaults() {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
}
