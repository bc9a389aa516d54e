package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/stackplot/pkg/cache"
	"github.com/matzehuels/stackplot/pkg/config"
	"github.com/matzehuels/stackplot/pkg/core/render/sink"
	"github.com/matzehuels/stackplot/pkg/core/series"
	"github.com/matzehuels/stackplot/pkg/errors"
	"github.com/matzehuels/stackplot/pkg/observability"
)

const chartTOML = `
title = "load"
width = 320
height = 200
background = "#ffffff"

[[series]]
label = "cpu"
data = [[0, 1], [1, 3], [2, 2]]

[[series]]
label = "mem"
bars = {}
data = [[0, 2], [1, 1], [2, 4]]
`

func mustChart(t *testing.T, src string) *config.Chart {
	t.Helper()
	c, err := config.Decode([]byte(src), config.FormatTOML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return c
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	got := ParseFormats(" SVG, png,,svg ,json")
	if strings.Join(got, ",") != "svg,png,json" {
		t.Errorf("ParseFormats = %v", got)
	}
	if ParseFormats("") != nil {
		t.Error("empty list should parse to nil")
	}
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if len(o.Formats) != 1 || o.Formats[0] != FormatSVG || o.Scale != DefaultScale || o.Logger == nil {
		t.Errorf("defaults = %+v", o)
	}

	for _, scale := range []float64{10, 0.5, -1, math.NaN(), math.Inf(1)} {
		bad := Options{Scale: scale}
		if err := bad.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("scale %v: error = %v", scale, err)
		}
	}
}

func TestArtifactKeyOptsScaleOnlyForPNG(t *testing.T) {
	o := Options{Scale: 3}
	if o.ArtifactKeyOpts(FormatSVG).Scale != 0 {
		t.Error("svg key should not depend on scale")
	}
	if o.ArtifactKeyOpts(FormatPNG).Scale != 3 {
		t.Error("png key should carry the scale")
	}
}

func TestRenderFormats(t *testing.T) {
	c := mustChart(t, chartTOML)
	ss, err := c.BuildSeries(config.LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	svg, err := Render(ctx, c, ss, FormatSVG, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`viewBox="0 0 320.0 200.0"`, "<title>load</title>", `fill="#ffffff"`} {
		if !bytes.Contains(svg, []byte(want)) {
			t.Errorf("svg lacks %s", want)
		}
	}

	raw, err := Render(ctx, c, ss, FormatPNG, 2)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 400 {
		t.Errorf("png bounds = %v", b)
	}

	js, err := Render(ctx, c, ss, FormatJSON, 1)
	if err != nil {
		t.Fatal(err)
	}
	var rec sink.Recorder
	if err := json.Unmarshal(js, &rec); err != nil {
		t.Fatal(err)
	}
	if rec.Width != 320 || rec.Count("rect") < 3 {
		t.Errorf("recorded %d rects on a %v wide canvas", rec.Count("rect"), rec.Width)
	}

	if _, err := Render(ctx, c, ss, "gif", 1); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("gif: error = %v", err)
	}
}

func TestRenderLeavesSeriesUntouched(t *testing.T) {
	c := mustChart(t, chartTOML)
	ss, err := c.BuildSeries(config.LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	p := Plot(c, ss, sink.NewRecorder(c.Width, c.Height))
	if ss[0].X != nil || ss[0].Color != "" {
		t.Error("Plot mutated the loaded series")
	}
	if p.Series()[0].X == nil {
		t.Error("plotted series have no axis")
	}
}

func TestExecuteCaches(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, nil)
	ctx := context.Background()
	opts := Options{Formats: []string{FormatSVG, FormatJSON}}

	first, err := r.Execute(ctx, mustChart(t, chartTOML), opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheInfo.RenderHit || len(first.CacheInfo.Hits) != 0 {
		t.Errorf("first run cache info = %+v", first.CacheInfo)
	}
	if first.Stats.SeriesCount != 2 || first.Stats.PointCount != 6 {
		t.Errorf("stats = %+v", first.Stats)
	}

	second, err := r.Execute(ctx, mustChart(t, chartTOML), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.RenderHit {
		t.Errorf("second run cache info = %+v", second.CacheInfo)
	}
	if second.Digest != first.Digest || !bytes.Equal(second.Artifacts[FormatSVG], first.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from the rendered one")
	}

	refreshed, err := r.Execute(ctx, mustChart(t, chartTOML), Options{Formats: opts.Formats, Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(refreshed.CacheInfo.Hits) != 0 {
		t.Error("Refresh served from the cache")
	}
}

func TestRenderPanicBecomesError(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.renderFormat(context.Background(), mustChart(t, chartTOML), []*series.Series{nil}, FormatSVG, 1)
	if !errors.Is(err, errors.ErrCodeRenderFailed) {
		t.Errorf("error = %v, want RENDER_FAILED", err)
	}
}

func TestDigestTracksDataFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.toml")
	write(t, path, "[[series]]\nfile = \"data.csv\"\n")
	write(t, filepath.Join(dir, "data.csv"), "x,y\n0,1\n1,2\n")

	digest := func() string {
		c, err := config.Load(path)
		if err != nil {
			t.Fatal(err)
		}
		ss, err := c.BuildSeries(config.LoadOptions{AllowFiles: true})
		if err != nil {
			t.Fatal(err)
		}
		d, err := Digest(c, ss)
		if err != nil {
			t.Fatal(err)
		}
		return d
	}

	before := digest()
	if before != digest() {
		t.Fatal("digest is not deterministic")
	}
	write(t, filepath.Join(dir, "data.csv"), "x,y\n0,1\n1,5\n")
	if digest() == before {
		t.Error("digest ignores data file changes")
	}
}

func TestDigestAcceptsInfinity(t *testing.T) {
	c := mustChart(t, "[yaxis]\nmax = inf\n[[series]]\ndata = [[0, nan], [1, inf]]\n")
	ss, err := c.BuildSeries(config.LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Digest(c, ss); err != nil {
		t.Errorf("Digest: %v", err)
	}
	if !math.IsInf(*c.YAxis.Max, 1) {
		t.Errorf("max = %v", *c.YAxis.Max)
	}
}

func TestExecuteRejectsFilesUnlessAllowed(t *testing.T) {
	c := mustChart(t, "[[series]]\nfile = \"data.csv\"\n")
	_, err := NewRunner(nil, nil, nil).Execute(context.Background(), c, Options{})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v", err)
	}
}

type countingHooks struct {
	observability.NoopPipelineHooks
	mu      sync.Mutex
	renders []string
}

func (h *countingHooks) OnRenderComplete(_ context.Context, format string, size int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err == nil && size > 0 {
		h.renders = append(h.renders, format)
	}
}

func TestExecuteEmitsHooks(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	_, err := NewRunner(nil, nil, nil).Execute(context.Background(), mustChart(t, chartTOML), Options{
		Formats: []string{FormatSVG, FormatPNG, FormatJSON},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(hooks.renders) != 3 {
		t.Errorf("render hooks = %v", hooks.renders)
	}
}

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
