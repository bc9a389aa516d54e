package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackplot/pkg/config"
	"github.com/matzehuels/stackplot/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file (single format) or base path (several)
	formats []string // svg, png, pdf, json
	scale   float64  // PNG pixel density
	refresh bool     // ignore cached artifacts
	cache   cacheOpts
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [chart]",
		Short: "Render a chart file to SVG, PNG, PDF or JSON",
		Long: `Render a chart description (TOML, or JSON by extension) to one or more formats.

With a single format, --output names the file. With several, --output is a
base path that receives one file per format. Without --output the files are
written next to the chart.`,
		Example: `  stackplot render chart.toml
  stackplot render chart.toml -f svg,png -o out/chart
  stackplot render chart.toml -f png --scale 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (several)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG pixel density")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	cmd.Flags().BoolVar(&opts.cache.disabled, "no-cache", false, "disable the artifact cache")

	return cmd
}

// parseFormats parses the --format flag. Empty means SVG.
func parseFormats(s string) []string {
	formats := pipeline.ParseFormats(s)
	if len(formats) == 0 {
		return []string{pipeline.FormatSVG}
	}
	return formats
}

// runRender renders input and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Debugf("Rendering %s", input)

	chart, err := config.Load(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.cache)
	if err != nil {
		return err
	}
	defer runner.Close()

	var spinner *Spinner
	if isTerminal(os.Stderr) {
		spinner = newSpinner(ctx, os.Stderr, "Rendering "+filepath.Base(input))
		spinner.Start()
	}
	result, err := runner.Execute(ctx, chart, pipeline.Options{
		Formats:    opts.formats,
		Scale:      opts.scale,
		Refresh:    opts.refresh,
		AllowFiles: true,
		Logger:     logger,
	})
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	for _, format := range opts.formats {
		path := outputPath(opts.output, input, format, len(opts.formats) > 1)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(result.Stats.SeriesCount, result.Stats.PointCount, result.CacheInfo.RenderHit)
	prog.done("Rendered " + input)
	return nil
}

// outputPath derives the file for one format. A single format is written
// to output as given; several formats share output as a base path, with
// any format extension stripped. The chart file itself is never a target.
func outputPath(output, input, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	path := basePath(output, input) + "." + format
	if path == input {
		path = basePath(output, input) + ".plot." + format
	}
	return path
}

// basePath strips a known format extension from output, or the chart
// extension from input when output is empty.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
