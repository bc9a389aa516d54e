package series

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/matzehuels/stackplot/pkg/core/axis"
)

func normalize(t *testing.T, s *Series) *axis.Set {
	t.Helper()
	axes := axis.NewSet()
	Normalize(s, Options{}, axes)
	AccumulateExtents([]*Series{s}, axes)
	return axes
}

func TestNormalizeGaps(t *testing.T) {
	s := &Series{Data: []Row{{0, 1}, {1, nil}, {2, 3}}}
	normalize(t, s)

	pts := s.Buffer.Points
	if len(pts) != 3 {
		t.Fatalf("points = %d, want 3", len(pts))
	}
	for i, wantGap := range []bool{false, true, false} {
		if pts[i].Gap != wantGap {
			t.Errorf("point %d gap = %v, want %v", i, pts[i].Gap, wantGap)
		}
	}
	if s.X.DataMin != 0 || s.X.DataMax != 2 {
		t.Errorf("x extent = [%v, %v], want [0, 2]", s.X.DataMin, s.X.DataMax)
	}
	if s.Y.DataMin != 1 || s.Y.DataMax != 3 {
		t.Errorf("y extent = [%v, %v], want [1, 3]", s.Y.DataMin, s.Y.DataMax)
	}
}

func TestCoerce(t *testing.T) {
	ts := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"float", 1.5, 1.5, true},
		{"int", 7, 7, true},
		{"uint8", uint8(200), 200, true},
		{"json number", json.Number("2.5"), 2.5, true},
		{"numeric string", " 42 ", 42, true},
		{"bad string", "abc", 0, false},
		{"nil", nil, 0, false},
		{"nan", math.NaN(), 0, false},
		{"+inf", math.Inf(1), axis.Sentinel, true},
		{"-inf", math.Inf(-1), -axis.Sentinel, true},
		{"overflowing string", "1e400", axis.Sentinel, true},
		{"time", ts, float64(ts.UnixMilli()), true},
		{"bool", true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := coerce(tt.in)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("coerce(%v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSentinelsStayOutOfExtent(t *testing.T) {
	s := &Series{Data: []Row{{0, math.Inf(1)}, {1, 5}, {2, math.Inf(-1)}}}
	normalize(t, s)

	if s.Buffer.Points[0].Y != axis.Sentinel {
		t.Errorf("y = %v, want sentinel", s.Buffer.Points[0].Y)
	}
	if s.Y.DataMin != 5 || s.Y.DataMax != 5 {
		t.Errorf("y extent = [%v, %v], want [5, 5]", s.Y.DataMin, s.Y.DataMax)
	}
}

func TestSingleValueRows(t *testing.T) {
	s := &Series{Data: []Row{{3}, {4}, {5}}}
	normalize(t, s)

	for i, p := range s.Buffer.Points {
		if p.X != float64(i) || p.Y != float64(i+3) {
			t.Errorf("point %d = (%v, %v)", i, p.X, p.Y)
		}
	}
}

func TestBaselineField(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantBase bool
		baseDir  axis.Direction
	}{
		{"plain lines", Options{}, false, axis.Y},
		{"filled lines", Options{Lines: LinesOptions{Fill: boolp(true)}}, true, axis.Y},
		{"bars", Options{Bars: BarsOptions{Show: boolp(true)}}, true, axis.Y},
		{"horizontal bars", Options{Bars: BarsOptions{Show: boolp(true), Horizontal: boolp(true)}}, true, axis.X},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Series{Options: tt.opts, Data: []Row{{1, 2}, {2, 3, "bad"}}}
			normalize(t, s)
			if s.Buffer.HasBase() != tt.wantBase {
				t.Fatalf("has base = %v, want %v", s.Buffer.HasBase(), tt.wantBase)
			}
			if !tt.wantBase {
				return
			}
			if got := s.Buffer.Format[2].Direction; got != tt.baseDir {
				t.Errorf("base direction = %v, want %v", got, tt.baseDir)
			}
			if s.Buffer.Points[1].Gap || s.Buffer.Points[1].B != 0 {
				t.Errorf("bad optional base should default to 0, got %+v", s.Buffer.Points[1])
			}
		})
	}
}

func TestBarExtents(t *testing.T) {
	tests := []struct {
		name             string
		bars             BarsOptions
		wantXMin, wantXMax float64
		wantYMin, wantYMax float64
	}{
		{
			name:     "left aligned",
			bars:     BarsOptions{Show: boolp(true)},
			wantXMin: 0, wantXMax: 3,
			wantYMin: 0, wantYMax: 5,
		},
		{
			name:     "centered",
			bars:     BarsOptions{Show: boolp(true), Align: AlignCenter, BarWidth: floatp(0.5)},
			wantXMin: -0.25, wantXMax: 2.25,
			wantYMin: 0, wantYMax: 5,
		},
		{
			name:     "horizontal",
			bars:     BarsOptions{Show: boolp(true), Horizontal: boolp(true)},
			wantXMin: 0, wantXMax: 2,
			wantYMin: 2, wantYMax: 6,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Series{Options: Options{Bars: tt.bars}, Data: []Row{{0, 2}, {2, 5}}}
			normalize(t, s)
			if s.X.DataMin != tt.wantXMin || s.X.DataMax != tt.wantXMax {
				t.Errorf("x extent = [%v, %v], want [%v, %v]", s.X.DataMin, s.X.DataMax, tt.wantXMin, tt.wantXMax)
			}
			if s.Y.DataMin != tt.wantYMin || s.Y.DataMax != tt.wantYMax {
				t.Errorf("y extent = [%v, %v], want [%v, %v]", s.Y.DataMin, s.Y.DataMax, tt.wantYMin, tt.wantYMax)
			}
		})
	}
}

func TestStepLines(t *testing.T) {
	s := &Series{
		Options: Options{Lines: LinesOptions{Steps: boolp(true)}},
		Data:    []Row{{0, 1}, {1, 2}, {2, 2}, {3, 4}},
	}
	normalize(t, s)

	want := []Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 4}}
	if len(s.Buffer.Points) != len(want) {
		t.Fatalf("points = %+v", s.Buffer.Points)
	}
	for i := range want {
		if s.Buffer.Points[i] != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, s.Buffer.Points[i], want[i])
		}
	}
}

func TestResolveDefaults(t *testing.T) {
	st := Options{}.Resolve()
	if !st.Lines.Show {
		t.Error("lines should be shown when nothing is enabled")
	}
	if st.Lines.LineWidth != 2 || st.ShadowSize != 3 || st.Points.Radius != 3 {
		t.Errorf("unexpected defaults: %+v", st)
	}
	if got := st.MarkerMargin(); got != 4 {
		t.Errorf("marker margin with points hidden = %v, want 4", got)
	}

	st = Options{Points: PointsOptions{Show: boolp(true)}}.Resolve()
	if st.Lines.Show {
		t.Error("lines should stay off when points are enabled")
	}
	if got := st.MarkerMargin(); got != 4 {
		t.Errorf("marker margin = %v, want 4", got)
	}

	st = Options{Lines: LinesOptions{Show: boolp(false)}}.Resolve()
	if st.Lines.Show {
		t.Error("explicitly hidden lines should stay hidden")
	}
}

func TestAxisBinding(t *testing.T) {
	axes := axis.NewSet()
	a := &Series{XAxis: 0, YAxis: 2, Data: FromValues([]float64{1, 2})}
	b := &Series{XAxis: 1, YAxis: 1, Data: FromPairs([][2]float64{{10, 20}})}
	Normalize(a, Options{}, axes)
	Normalize(b, Options{}, axes)
	AccumulateExtents([]*Series{a, b}, axes)

	if a.X != b.X {
		t.Error("axis 0 should resolve to axis 1")
	}
	if a.Y.N != 2 || !a.Y.Used {
		t.Errorf("y axis = %d used=%v", a.Y.N, a.Y.Used)
	}
	if a.X.DataMin != 0 || a.X.DataMax != 10 {
		t.Errorf("shared x extent = [%v, %v], want [0, 10]", a.X.DataMin, a.X.DataMax)
	}
}
