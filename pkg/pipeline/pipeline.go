// Package pipeline turns chart descriptions into rendered artifacts.
//
// This package implements the load → render pipeline shared by the CLI
// and the HTTP service, so that both produce byte-identical output for
// the same chart.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Load: Build the plot series from inline data and data files
//  2. Render: Lay out and draw the chart once per output format (SVG, PNG,
//     PDF, JSON)
//
// Formats are rendered concurrently, each on its own plot and backend.
// Artifacts are cached under the chart's content digest, so an unchanged
// chart is never drawn twice.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	chart, err := config.Load("chart.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := runner.Execute(ctx, chart, pipeline.Options{
//	    Formats:    []string{"svg", "png"},
//	    AllowFiles: true,
//	})
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackplot/pkg/cache"
	"github.com/matzehuels/stackplot/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultScale is the pixel density of PNG output.
	DefaultScale = 2.0

	// MaxScale bounds PNG pixel density.
	MaxScale = 4.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ContentTypes maps formats to MIME types.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains the output configuration of a pipeline run.
type Options struct {
	// Formats lists the artifacts to produce. Empty means SVG only.
	Formats []string `json:"formats,omitempty"`

	// Scale is the PNG pixel density. Zero means DefaultScale.
	Scale float64 `json:"scale,omitempty"`

	// Refresh bypasses cached artifacts; fresh results are still stored.
	Refresh bool `json:"refresh,omitempty"`

	// AllowFiles lets series read data files relative to the chart.
	// Charts received over the network must leave it false.
	AllowFiles bool `json:"-"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Digest is the content hash of the chart and its data.
	Digest string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SeriesCount int
	PointCount  int
	LoadTime    time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits per format.
type CacheInfo struct {
	Hits      []string // formats served from the cache
	RenderHit bool     // whether every artifact came from the cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, dropping blanks and
// duplicates.
func ParseFormats(s string) []string {
	var out []string
	seen := map[string]bool{}
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if !(o.Scale >= 1 && o.Scale <= MaxScale) {
		return errors.New(errors.ErrCodeInvalidInput, "scale %v out of range [1, %v]", o.Scale, MaxScale)
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ArtifactKeyOpts returns cache key options for one format. Only PNG
// output depends on the scale.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}

// String describes the options for logs.
func (o Options) String() string {
	return fmt.Sprintf("formats=%s scale=%v", strings.Join(o.Formats, ","), o.Scale)
}
