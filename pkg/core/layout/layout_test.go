package layout

import (
	"testing"

	"github.com/matzehuels/stackplot/pkg/core/axis"
)

// fixedMeasurer gives every character 6px of width and every line 10px.
type fixedMeasurer struct{}

func (fixedMeasurer) MeasureText(text string, _ axis.Font) (float64, float64) {
	return float64(len([]rune(text))) * 6, 10
}

var font = axis.Font{Family: "sans-serif", Size: 10}

func labelledAxis(s *axis.Set, dir axis.Direction, n int, pos axis.Position, labels ...string) *axis.Axis {
	a := s.GetOrCreate(dir, n)
	a.Options.Position = pos
	a.ResolvePosition()
	a.ReserveSpace = true
	for _, l := range labels {
		a.Ticks = append(a.Ticks, axis.Tick{Label: l})
	}
	MeasureLabels(a, fixedMeasurer{}, font)
	return a
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"one", 1},
		{"a<br>b", 2},
		{"a<BR/>b<br />c", 3},
		{"a\r\nb\rc\nd", 4},
	}
	for _, tt := range tests {
		if got := len(SplitLines(tt.in)); got != tt.want {
			t.Errorf("SplitLines(%q) = %d lines, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMeasureLabels(t *testing.T) {
	s := axis.NewSet()
	a := labelledAxis(s, axis.X, 1, axis.Bottom, "1", "a<br>bb", "")

	if a.LabelWidth != 12 || a.LabelHeight != 24 {
		t.Errorf("label size = %vx%v, want 12x24", a.LabelWidth, a.LabelHeight)
	}
	if got := len(a.Ticks[1].Lines); got != 2 {
		t.Errorf("lines = %d, want 2", got)
	}
	if len(a.Ticks[2].Lines) != 0 {
		t.Error("empty label should have no lines")
	}

	a.Options.LabelWidth = axis.Float(50.2)
	MeasureLabels(a, fixedMeasurer{}, font)
	if a.LabelWidth != 51 {
		t.Errorf("pinned width = %v, want 51", a.LabelWidth)
	}
}

func TestAllocateSingleAxes(t *testing.T) {
	s := axis.NewSet()
	x := labelledAxis(s, axis.X, 1, axis.Bottom, "0", "10")
	y := labelledAxis(s, axis.Y, 1, axis.Left, "0", "100")

	off := Allocate(s.All(), Config{Width: 400, Height: 300, Grid: DefaultGrid()})

	want := Offset{Top: 6, Right: 6, Bottom: 19, Left: 25}
	if off != want {
		t.Errorf("offset = %+v, want %+v", off, want)
	}
	if !x.FullTicks || !y.FullTicks || !x.Innermost {
		t.Error("single axes should be innermost with full ticks")
	}
	if x.Box != (axis.Box{Left: 19, Top: 281, Width: 381, Height: 17, Padding: 5}) {
		t.Errorf("x box = %+v", x.Box)
	}
	if y.Box != (axis.Box{Left: 2, Top: 0, Width: 23, Height: 287, Padding: 5}) {
		t.Errorf("y box = %+v", y.Box)
	}
}

func TestAllocateStackedAxes(t *testing.T) {
	s := axis.NewSet()
	y1 := labelledAxis(s, axis.Y, 1, axis.Left, "100")
	y2 := labelledAxis(s, axis.Y, 2, axis.Left, "100")

	off := Allocate(s.All(), Config{Width: 400, Height: 300, Grid: DefaultGrid()})

	if y2.FullTicks || y2.TickLength != 5 || y2.Innermost {
		t.Errorf("outer axis ticks = %v full=%v", y2.TickLength, y2.FullTicks)
	}
	if y2.Box.Left != 2 || y2.Box.Width != 28 {
		t.Errorf("outer box = %+v", y2.Box)
	}
	if y1.Box.Left != 38 || y1.Box.Width != 23 {
		t.Errorf("inner box = %+v", y1.Box)
	}
	if off.Left != 61 {
		t.Errorf("left offset = %v, want 61", off.Left)
	}
}

func TestAllocateOppositeSides(t *testing.T) {
	s := axis.NewSet()
	labelledAxis(s, axis.Y, 1, axis.Left, "100")
	y2 := labelledAxis(s, axis.Y, 2, axis.Right, "10")
	x2 := labelledAxis(s, axis.X, 2, axis.Top, "0")

	off := Allocate(s.All(), Config{Width: 400, Height: 300, Grid: DefaultGrid()})

	if off.Right != 2+12+10 {
		t.Errorf("right offset = %v, want 24", off.Right)
	}
	if y2.Box.Left != 400-24 {
		t.Errorf("right box left = %v, want 376", y2.Box.Left)
	}
	if x2.Box.Top != 2 || off.Top != 2+12+5 {
		t.Errorf("top box = %+v, offset top = %v", x2.Box, off.Top)
	}
}

func TestAllocateMargins(t *testing.T) {
	s := axis.NewSet()
	labelledAxis(s, axis.X, 1, axis.Bottom, "0")

	off := Allocate(s.All(), Config{Width: 200, Height: 200, Grid: DefaultGrid(), MarkerMargin: 4.5})
	if off.Top != 5 || off.Left != 5 || off.Right != 5 {
		t.Errorf("marker margin offsets = %+v", off)
	}

	g := DefaultGrid()
	g.MinBorderMargin = axis.Float(20)
	off = Allocate(s.All(), Config{Width: 200, Height: 200, Grid: g, MarkerMargin: 4.5})
	if off.Top != 20 || off.Left != 20 || off.Bottom != 20 {
		t.Errorf("min border margin offsets = %+v", off)
	}
}

func TestAllocateSkipsUnreserved(t *testing.T) {
	s := axis.NewSet()
	x := labelledAxis(s, axis.X, 1, axis.Bottom, "0")
	x.ReserveSpace = false

	off := Allocate(s.All(), Config{Width: 200, Height: 200, Grid: DefaultGrid()})
	if off != (Offset{Top: 2, Right: 2, Bottom: 2, Left: 2}) {
		t.Errorf("offset = %+v", off)
	}

	g := DefaultGrid()
	g.Show = false
	if off := Allocate(s.All(), Config{Width: 200, Height: 200, Grid: g}); off != (Offset{}) {
		t.Errorf("hidden grid offset = %+v", off)
	}
}
