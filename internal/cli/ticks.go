package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackplot/pkg/config"
	"github.com/matzehuels/stackplot/pkg/core/axis"
	"github.com/matzehuels/stackplot/pkg/core/render/sink"
	"github.com/matzehuels/stackplot/pkg/pipeline"
)

// maxListedTicks caps the tick labels printed per axis.
const maxListedTicks = 12

// ticksCommand creates the ticks command, which lays a chart out without
// drawing it and prints what each axis resolved to.
func (c *CLI) ticksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ticks [chart]",
		Short: "Print the resolved range and ticks of each axis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTicks(cmd.Context(), os.Stdout, args[0])
		},
	}
}

func runTicks(ctx context.Context, w io.Writer, input string) error {
	chart, err := config.Load(input)
	if err != nil {
		return err
	}
	ss, err := chart.BuildSeries(config.LoadOptions{AllowFiles: true})
	if err != nil {
		return err
	}
	p := pipeline.Plot(chart, ss, sink.NewRecorder(chart.Width, chart.Height))
	loggerFromContext(ctx).Debug("laid out chart", "series", len(ss), "axes", len(p.Axes()))

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return StyleTitle.Padding(0, 1)
			}
			if col == 0 {
				return StyleHighlight.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		}).
		Headers("AXIS", "RANGE", "STEP", "TICKS")

	for _, a := range p.Axes() {
		if !a.Used && !a.Show {
			continue
		}
		t.Row(a.Name(), formatRange(a), formatStep(a), formatTicks(a.Ticks))
	}
	fmt.Fprintln(w, t.Render())

	off := p.PlotOffset()
	pw, ph := p.Size()
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("plot area %gx%g at (%g, %g)", pw, ph, off.Left, off.Top)))
	return nil
}

func formatRange(a *axis.Axis) string {
	return fmt.Sprintf("[%s, %s]", num(a.Min), num(a.Max))
}

func formatStep(a *axis.Axis) string {
	if a.TickStep.Size == 0 {
		return "-"
	}
	if a.Options.Mode == axis.ModeTime && a.TickStep.Unit != axis.Millisecond {
		return num(a.TickStep.Size) + " " + string(a.TickStep.Unit)
	}
	return num(a.TickStep.Size)
}

func formatTicks(ticks []axis.Tick) string {
	labels := make([]string, 0, min(len(ticks), maxListedTicks))
	for i, tk := range ticks {
		if i == maxListedTicks {
			labels = append(labels, fmt.Sprintf("… +%d", len(ticks)-i))
			break
		}
		label := tk.Label
		if label == "" {
			label = num(tk.Value)
		}
		labels = append(labels, label)
	}
	return strings.Join(labels, "  ")
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
