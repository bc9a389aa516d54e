package plot

import (
	"math"
	"testing"

	"github.com/matzehuels/stackplot/pkg/core/axis"
	"github.com/matzehuels/stackplot/pkg/core/layout"
	"github.com/matzehuels/stackplot/pkg/core/render"
	"github.com/matzehuels/stackplot/pkg/core/render/sink"
	"github.com/matzehuels/stackplot/pkg/core/series"
)

func line(pairs ...[2]float64) *series.Series {
	return &series.Series{Data: series.FromPairs(pairs)}
}

func TestNewDrawsEverything(t *testing.T) {
	rec := sink.NewRecorder(400, 300)
	p := New(rec, []*series.Series{line([2]float64{0, 1}, [2]float64{10, 3})}, Options{})

	if len(p.XAxes()) != 1 || len(p.YAxes()) != 1 {
		t.Fatalf("axes = %d x, %d y", len(p.XAxes()), len(p.YAxes()))
	}
	off := p.PlotOffset()
	if off.Left <= 2 || off.Bottom <= 2 {
		t.Errorf("offset %+v leaves no room for labels", off)
	}
	w, h := p.Size()
	if w != 400-off.Left-off.Right || h != 300-off.Top-off.Bottom {
		t.Errorf("plot size %v x %v disagrees with offset %+v", w, h, off)
	}
	for _, a := range p.Axes() {
		if !a.Show || len(a.Ticks) == 0 {
			t.Errorf("%s: show=%v ticks=%d", a.Name(), a.Show, len(a.Ticks))
		}
		if !(a.Min < a.Max) {
			t.Errorf("%s: range [%v, %v]", a.Name(), a.Min, a.Max)
		}
	}
	if rec.Count("text") == 0 || rec.Count("path") == 0 {
		t.Errorf("recorded %d texts, %d paths", rec.Count("text"), rec.Count("path"))
	}
}

func TestEmptyPlotHasDefaultAxes(t *testing.T) {
	p := New(sink.NewRecorder(200, 100), nil, Options{})
	if len(p.XAxes()) != 1 || len(p.YAxes()) != 1 {
		t.Fatalf("axes = %d x, %d y", len(p.XAxes()), len(p.YAxes()))
	}
	for _, a := range p.Axes() {
		if a.Show {
			t.Errorf("%s shown without data", a.Name())
		}
		if a.Min != -1 || a.Max != 1 {
			t.Errorf("%s range = [%v, %v], want [-1, 1]", a.Name(), a.Min, a.Max)
		}
	}
}

func TestSinglePointRange(t *testing.T) {
	p := New(sink.NewRecorder(200, 100), []*series.Series{line([2]float64{5, 5})}, Options{})
	for _, a := range p.Axes() {
		if !(a.Min < a.Max) || a.Min > 5 || a.Max < 5 {
			t.Errorf("%s range = [%v, %v]", a.Name(), a.Min, a.Max)
		}
	}
}

func TestGridHidden(t *testing.T) {
	rec := sink.NewRecorder(200, 100)
	p := New(rec, []*series.Series{line([2]float64{0, 0}, [2]float64{1, 1})}, Options{
		Grid: Grid{Show: axis.Bool(false)},
	})
	if off := p.PlotOffset(); off != (layout.Offset{}) {
		t.Errorf("offset = %+v, want zero", off)
	}
	if rec.Count("text") != 0 {
		t.Errorf("texts = %d, want none", rec.Count("text"))
	}
	if w, h := p.Size(); w != 200 || h != 100 {
		t.Errorf("size = %v x %v", w, h)
	}
}

func TestHiddenAxisReservesNothing(t *testing.T) {
	data := []*series.Series{line([2]float64{0, 0}, [2]float64{1, 100000})}
	shown := New(sink.NewRecorder(300, 200), data, Options{})
	hidden := New(sink.NewRecorder(300, 200), []*series.Series{line([2]float64{0, 0}, [2]float64{1, 100000})}, Options{
		YAxis: axis.Options{Show: axis.Bool(false)},
	})
	if hidden.PlotOffset().Left >= shown.PlotOffset().Left {
		t.Errorf("hidden y axis offset %v, shown %v", hidden.PlotOffset().Left, shown.PlotOffset().Left)
	}
	if y := hidden.YAxes()[0]; y.LabelWidth != 0 || y.LabelHeight != 0 {
		t.Errorf("hidden axis measured labels %v x %v", y.LabelWidth, y.LabelHeight)
	}
}

func TestAlignedToHiddenAxis(t *testing.T) {
	right := line([2]float64{0, 1000}, [2]float64{10, 2000})
	right.YAxis = 2
	rec := sink.NewRecorder(400, 300)
	p := New(rec, []*series.Series{line([2]float64{0, 1}, [2]float64{10, 2}), right}, Options{
		YAxes: []axis.Options{{Show: axis.Bool(false)}, {AlignTicksWithAxis: 1}},
	})

	ys := p.YAxes()
	if ys[0].Show {
		t.Fatal("y axis should be hidden")
	}
	if len(ys[0].Ticks) == 0 {
		t.Fatal("hidden y axis has no ticks to align with")
	}
	if !ys[1].Show || len(ys[1].Ticks) != len(ys[0].Ticks) {
		t.Errorf("y2axis show=%v ticks=%d, want %d", ys[1].Show, len(ys[1].Ticks), len(ys[0].Ticks))
	}
}

func TestSetDataKeepsAxes(t *testing.T) {
	p := New(sink.NewRecorder(300, 200), []*series.Series{line([2]float64{0, 0}, [2]float64{1, 1})}, Options{})
	x, y := p.XAxes()[0], p.YAxes()[0]

	p.SetData([]*series.Series{line([2]float64{0, 0}, [2]float64{100, 50})})
	p.SetupGrid()
	p.Draw()

	if p.XAxes()[0] != x || p.YAxes()[0] != y {
		t.Error("axes were recreated")
	}
	if x.Max != 100 {
		t.Errorf("x max = %v, want 100", x.Max)
	}
}

func TestSecondAxis(t *testing.T) {
	right := line([2]float64{0, 1000}, [2]float64{10, 2000})
	right.YAxis = 2
	p := New(sink.NewRecorder(400, 300), []*series.Series{line([2]float64{0, 1}, [2]float64{10, 2}), right}, Options{
		YAxes: []axis.Options{{}, {Position: axis.Right, AlignTicksWithAxis: 1}},
	})

	ys := p.YAxes()
	if len(ys) != 2 {
		t.Fatalf("y axes = %d", len(ys))
	}
	if ys[1].Position != axis.Right {
		t.Errorf("y2 position = %v", ys[1].Position)
	}
	if len(ys[0].Ticks) != len(ys[1].Ticks) {
		t.Errorf("aligned tick counts %d vs %d", len(ys[0].Ticks), len(ys[1].Ticks))
	}
	if p.PlotOffset().Right <= 2 {
		t.Errorf("right offset = %v", p.PlotOffset().Right)
	}
	if right.Y != ys[1] {
		t.Error("series not bound to y2")
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	p := New(sink.NewRecorder(400, 300), []*series.Series{line([2]float64{0, 0}, [2]float64{10, 10})}, Options{})

	left, top, ok := p.AxisToCanvasCoords(map[string]float64{"xaxis": 2.5, "yaxis": 7})
	if !ok {
		t.Fatal("no coordinates")
	}
	got := p.CanvasToAxisCoords(left, top)
	if math.Abs(got["xaxis"]-2.5) > 1e-9 || math.Abs(got["yaxis"]-7) > 1e-9 {
		t.Errorf("round trip = %v", got)
	}
	if _, _, ok := p.AxisToCanvasCoords(map[string]float64{"xaxis": 1}); ok {
		t.Error("missing y value reported ok")
	}
}

func TestSeriesDefaultsApply(t *testing.T) {
	s := line([2]float64{0, 1}, [2]float64{1, 2})
	New(sink.NewRecorder(200, 100), []*series.Series{s}, Options{
		Series: series.Options{Points: series.PointsOptions{Show: axis.Bool(true)}},
	})
	if !s.Style.Points.Show {
		t.Error("shared points option ignored")
	}
	if s.Style.Lines.Show {
		t.Error("lines enabled although points were requested")
	}
}

func TestPalette(t *testing.T) {
	got := Palette(DefaultColors, 12)
	for i, c := range DefaultColors {
		if got[i] != c {
			t.Errorf("color %d = %s, want %s", i, got[i], c)
		}
	}
	if want := render.ScaleRGB(DefaultColors[0], 0.8); got[5] != want {
		t.Errorf("color 5 = %s, want darkened %s", got[5], want)
	}
	if want := render.ScaleRGB(DefaultColors[1], 1.2); got[11] != want {
		t.Errorf("color 11 = %s, want lightened %s", got[11], want)
	}
	if g := Palette(nil, 2); g[0] != fallbackColor {
		t.Errorf("empty palette = %v", g)
	}
}

func TestAssignColorsKeepsExplicit(t *testing.T) {
	ss := []*series.Series{{Color: "#000000"}, {}, {}}
	assignColors(ss, []string{"#111111", "#222222"})
	if ss[0].Color != "#000000" || ss[1].Color != "#111111" || ss[2].Color != "#222222" {
		t.Errorf("colors = %s %s %s", ss[0].Color, ss[1].Color, ss[2].Color)
	}
}

func TestNextVariationCycle(t *testing.T) {
	want := []float64{-0.2, 0.2, -0.4, 0.4, -0.6, 0.6, 0}
	v := 0.0
	for i, w := range want {
		v = nextVariation(v)
		if math.Abs(v-w) > 1e-9 {
			t.Fatalf("step %d = %v, want %v", i, v, w)
		}
	}
}
