package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	plotio "github.com/matzehuels/stackplot/pkg/io"
)

const testChart = `
title = "disk"
width = 400
height = 300

[xaxis]
ticks = 5

[[series]]
label = "used"
data = [[0, 10], [1, 30], [2, 20], [3, 40]]

[[series]]
file = "extra.csv"
yaxis = 2
`

// execute runs the root command with args and a discarded logger.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

// writeChart writes testChart and its data file into a temp dir.
func writeChart(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.toml")
	files := map[string]string{
		path:                            testChart,
		filepath.Join(dir, "extra.csv"): "x,free\n0,90\n1,70\n2,80\n3,60\n",
	}
	for p, content := range files {
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty defaults to svg", "", "svg"},
		{"single format", "png", "png"},
		{"multiple formats", "svg,pdf,png", "svg,pdf,png"},
		{"spaces and duplicates", " svg , SVG,json", "svg,json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strings.Join(parseFormats(tt.input), ","); got != tt.want {
				t.Errorf("parseFormats(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		format string
		multi  bool
		want   string
	}{
		{"next to chart", "", "charts/cpu.toml", "svg", false, "charts/cpu.svg"},
		{"explicit file", "out.img", "cpu.toml", "png", false, "out.img"},
		{"base path", "out/cpu", "cpu.toml", "png", true, "out/cpu.png"},
		{"base path with extension", "out/cpu.svg", "cpu.toml", "png", true, "out/cpu.png"},
		{"json chart is not overwritten", "", "cpu.json", "json", false, "cpu.plot.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.output, tt.input, tt.format, tt.multi); got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	chart := writeChart(t)
	base := filepath.Join(filepath.Dir(chart), "out", "disk")

	if err := execute(t, "render", chart, "-f", "svg,json", "-o", base, "--no-cache"); err != nil {
		t.Fatal(err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("<title>disk</title>")) {
		t.Error("svg lacks the chart title")
	}
	if _, err := os.Stat(base + ".json"); err != nil {
		t.Error(err)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	chart := writeChart(t)

	if err := execute(t, "render", chart, "-f", "gif", "--no-cache"); err == nil {
		t.Error("unknown format should fail")
	}
	if err := execute(t, "render", filepath.Join(t.TempDir(), "missing.toml"), "--no-cache"); err == nil {
		t.Error("missing chart should fail")
	}
	if err := execute(t, "render"); err == nil {
		t.Error("render without a chart should fail")
	}
}

func TestTicks(t *testing.T) {
	var buf bytes.Buffer
	if err := runTicks(context.Background(), &buf, writeChart(t)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"xaxis", "yaxis", "y2axis", "plot area"} {
		if !strings.Contains(out, want) {
			t.Errorf("ticks output lacks %q:\n%s", want, out)
		}
	}
}

func TestDataConvert(t *testing.T) {
	dir := filepath.Dir(writeChart(t))
	out := filepath.Join(dir, "extra.json")

	if err := execute(t, "data", "convert", filepath.Join(dir, "extra.csv"), out); err != nil {
		t.Fatal(err)
	}
	ds, err := plotio.Import(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(ds) != 1 || ds[0].Label != "free" || len(ds[0].Rows) != 4 {
		t.Errorf("converted datasets = %+v", ds)
	}
}
