// Package pkg provides the core libraries for Stackplot chart rendering.
//
// # Overview
//
// Stackplot draws line, bar and point charts from a declarative chart
// description. The pkg directory is organized into three main areas:
//
//  1. [core] - Plot engine (series normalisation, axes, ticks, layout,
//     clipping, drawing)
//  2. [config] and [io] - Chart descriptions and data files
//  3. [pipeline] - Orchestration (load → render) with artifact caching
//
// # Architecture
//
// The typical data flow through Stackplot:
//
//	Chart file (TOML/JSON) + data files (CSV/JSON)
//	         ↓
//	    [config] and [io] packages (decode, validate, build series)
//	         ↓
//	    [core/series] package (normalise rows into point buffers)
//	         ↓
//	    [core/axis] and [core/ticks] packages (ranges and ticks)
//	         ↓
//	    [core/layout] package (reserve room for axes)
//	         ↓
//	    [core/render] package (clip and draw through a backend)
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
// Draw a chart from code:
//
//	import (
//	    "github.com/matzehuels/stackplot/pkg/core/plot"
//	    "github.com/matzehuels/stackplot/pkg/core/render/sink"
//	    "github.com/matzehuels/stackplot/pkg/core/series"
//	)
//
//	data := []*series.Series{{
//	    Label: "cpu",
//	    Data:  []series.Row{{0, 1.5}, {1, 2.5}, nil, {3, 2}},
//	}}
//
//	svg := sink.NewSVG(800, 600)
//	plot.New(svg, data, plot.Options{})
//	out := svg.Bytes()
//
// Or render a chart file through the cached pipeline:
//
//	chart, _ := config.Load("chart.toml")
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, _ := runner.Execute(ctx, chart, pipeline.Options{
//	    Formats:    []string{"svg", "png"},
//	    AllowFiles: true,
//	})
//
// # Main Packages
//
// ## Plot Engine
//
// [core/series] - Coerces raw rows into flat point buffers, marking gaps
// and recording which coordinates feed axis extents.
//
// [core/axis] - Per-axis state: options, data extent, the resolved range
// and the data-to-pixel transform.
//
// [core/ticks] - Numeric and time tick generation, label formatting and
// tick alignment between axes.
//
// [core/layout] - Measures tick labels and allocates the plot offset.
//
// [core/clip] - Clips lines, filled areas and bars to the visible ranges.
//
// [core/render] - Draws the grid, series and tick labels onto
// a [core/render.Backend].
//
//   - [core/render/sink]: SVG, PNG and JSON shape-recording backends
//
// [core/plot] - Ties the packages above into a single relayout-and-draw
// pass.
//
// ## Inputs
//
// [config] - TOML and JSON chart descriptions, validation and conversion
// into plot options and series.
//
// [io] - CSV and JSON data file import and export.
//
// [fonts] - The embedded label typeface.
//
// ## Infrastructure
//
// [pipeline] - Complete load → render pipeline shared by the CLI and the
// HTTP service.
//
// [cache] - Artifact caches: file system for the CLI, Redis for the
// service, and a null cache.
//
// [observability] - Hooks for pipeline, cache and HTTP events.
//
// [errors] - Coded errors and input validation.
//
// # Testing
//
// Run tests:
//
//	go test ./...                 # All tests
//	go test ./pkg/core/ticks/...  # Specific package
//	go test -run Example ./pkg/...
//
// [core]: https://pkg.go.dev/github.com/matzehuels/stackplot/pkg/core
// [core/series]: https://pkg.go.dev/github.com/matzehuels/stackplot/pkg/core/series
// [core/axis]: https://pkg.go.dev/github.com/matzehuels/stackplot/pkg/core/axis
// [core/ticks]: https://pkg.go.dev/github.com/matzehuels/stackplot/pkg/core/ticks
// [core/layout]: https://pkg.go.dev/github.com/matzehuels/stackplot/pkg/core/layout
// [core/clip]: https://pkg.go.dev/github.com/matzehuels/stackplot/pkg/core/clip
// [core/render]: https://pkg.go.dev/github.com/matzehuels/stackplot/pkg/core/render
// [core/render.Backend]: https://pkg.go.dev/github.com/matzehuels/stackplot/pkg/core/render#Backend
// [core/render/sink]: https://pkg.go.dev/github.com/matzehuels/stackplot/pkg/core/render/sink
// [core/plot]: https://pkg.go.dev/github.com/matzehuels/stackplot/pkg/core/plot
// [config]: https://pkg.go.dev/github.com/matzehuels/stackplot/pkg/config
// [io]: https://pkg.go.dev/github.com/matzehuels/stackplot/pkg/io
// [fonts]: https://pkg.go.dev/github.com/matzehuels/stackplot/pkg/fonts
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/stackplot/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/stackplot/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/stackplot/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/stackplot/pkg/errors
package pkg
