package clip

import (
	"math"
	"testing"

	"github.com/matzehuels/stackplot/pkg/core/series"
)

func pts(xy ...float64) []series.Point {
	out := make([]series.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		if math.IsNaN(xy[i]) {
			out = append(out, series.Point{Gap: true})
			continue
		}
		out = append(out, series.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

var gap = math.NaN()

func near(a, b Vec) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestLines(t *testing.T) {
	b := Bounds{XMin: 0, XMax: 4, YMin: 0, YMax: 2}
	tests := []struct {
		name string
		in   []series.Point
		want []Polyline
	}{
		{
			name: "inside",
			in:   pts(1, 1, 2, 2, 3, 1),
			want: []Polyline{{{1, 1}, {2, 2}, {3, 1}}},
		},
		{
			name: "outside",
			in:   pts(5, 5, 6, 6),
			want: nil,
		},
		{
			name: "crossing y max",
			in:   pts(0, 0, 2, 4),
			want: []Polyline{{{0, 0}, {1, 2}}},
		},
		{
			name: "crossing x min",
			in:   pts(-1, 0, 1, 2),
			want: []Polyline{{{0, 1}, {1, 2}}},
		},
		{
			name: "excursion splits polyline",
			in:   pts(0, 0, 1, 5, 2, 0),
			want: []Polyline{{{0, 0}, {0.4, 2}}, {{1.6, 2}, {2, 0}}},
		},
		{
			name: "gap splits polyline",
			in:   pts(0, 0, 1, 1, gap, 0, 2, 1, 3, 0),
			want: []Polyline{{{0, 0}, {1, 1}}, {{2, 1}, {3, 0}}},
		},
		{
			name: "lone point",
			in:   pts(1, 1),
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.in, b)
			if len(got) != len(tt.want) {
				t.Fatalf("polylines = %v, want %v", got, tt.want)
			}
			for i := range got {
				if len(got[i]) != len(tt.want[i]) {
					t.Fatalf("polyline %d = %v, want %v", i, got[i], tt.want[i])
				}
				for j := range got[i] {
					if !near(got[i][j], tt.want[i][j]) {
						t.Errorf("vertex %d.%d = %v, want %v", i, j, got[i][j], tt.want[i][j])
					}
				}
			}
		})
	}
}

func TestAreasGap(t *testing.T) {
	b := Bounds{XMin: 0, XMax: 4, YMin: 0, YMax: 3}
	polys := Areas(pts(0, 1, 1, 2, gap, 0, 3, 2, 4, 1), b)
	if len(polys) != 2 {
		t.Fatalf("polygons = %d, want 2", len(polys))
	}
	for i, p := range polys {
		if p[0].Y != 0 || p[len(p)-1].Y != 0 {
			t.Errorf("polygon %d not closed on the baseline: %v", i, p)
		}
		for _, v := range p {
			if !b.Contains(v.X, v.Y) {
				t.Errorf("polygon %d vertex %v outside bounds", i, v)
			}
		}
	}
	if polys[1][0].X != 3 {
		t.Errorf("second polygon starts at x=%v, want 3", polys[1][0].X)
	}
}

func TestAreasClipping(t *testing.T) {
	tests := []struct {
		name string
		in   []series.Point
		b    Bounds
		want Polygon
	}{
		{
			name: "above the range",
			in:   pts(0, 5, 1, 5),
			b:    Bounds{XMin: 0, XMax: 2, YMin: 0, YMax: 3},
			want: Polygon{{0, 0}, {0, 3}, {1, 3}, {1, 0}, {0, 0}},
		},
		{
			name: "crossing both limits",
			in:   pts(0, -1, 2, 3),
			b:    Bounds{XMin: 0, XMax: 2, YMin: 0, YMax: 2},
			want: Polygon{{0, 0}, {0.5, 0}, {1.5, 2}, {2, 2}, {2, 0}, {0, 0}},
		},
		{
			name: "x clipped",
			in:   pts(-2, 1, 2, 1),
			b:    Bounds{XMin: 0, XMax: 1, YMin: 0, YMax: 2},
			want: Polygon{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			polys := Areas(tt.in, tt.b)
			if len(polys) != 1 {
				t.Fatalf("polygons = %v", polys)
			}
			got := polys[0]
			if len(got) != len(tt.want) {
				t.Fatalf("polygon = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !near(got[i], tt.want[i]) {
					t.Errorf("vertex %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAreasBaseline(t *testing.T) {
	in := []series.Point{{X: 0, Y: 3, B: 1}, {X: 2, Y: 3, B: -7}}
	polys := Areas(in, Bounds{XMin: 0, XMax: 2, YMin: 0, YMax: 4})
	if len(polys) != 1 {
		t.Fatalf("polygons = %v", polys)
	}
	p := polys[0]
	if p[0] != (Vec{0, 1}) {
		t.Errorf("first vertex = %v, want (0, 1)", p[0])
	}
	if last := p[len(p)-1]; last != (Vec{0, 1}) {
		t.Errorf("last vertex = %v, want (0, 1)", last)
	}
	for _, v := range p {
		if v.Y < 0 {
			t.Errorf("vertex %v below the range", v)
		}
	}
}

func TestBar(t *testing.T) {
	b := Bounds{XMin: 0, XMax: 10, YMin: -5, YMax: 10}
	tests := []struct {
		name       string
		x, y, base float64
		left       float64
		right      float64
		horizontal bool
		want       BarRect
		visible    bool
	}{
		{
			name: "positive", x: 1, y: 3, right: 1,
			want:    BarRect{Left: 1, Right: 2, Bottom: 0, Top: 3, Edges: Edges{Left: true, Right: true, Top: true}},
			visible: true,
		},
		{
			name: "negative flips", x: 1, y: -3, right: 1,
			want:    BarRect{Left: 1, Right: 2, Bottom: -3, Top: 0, Edges: Edges{Left: true, Right: true, Bottom: true}},
			visible: true,
		},
		{
			name: "clipped top", x: 1, y: 20, right: 1,
			want:    BarRect{Left: 1, Right: 2, Bottom: 0, Top: 10, Edges: Edges{Left: true, Right: true}},
			visible: true,
		},
		{
			name: "clipped left", x: -0.5, y: 2, right: 1,
			want:    BarRect{Left: 0, Right: 0.5, Bottom: 0, Top: 2, Edges: Edges{Right: true, Top: true}},
			visible: true,
		},
		{
			name: "outside", x: 20, y: 3, right: 1,
		},
		{
			name: "horizontal", x: 3, y: 1, left: -0.5, right: 0.5, horizontal: true,
			want:    BarRect{Left: 0, Right: 3, Bottom: 0.5, Top: 1.5, Edges: Edges{Right: true, Top: true, Bottom: true}},
			visible: true,
		},
		{
			name: "horizontal negative", x: -3, y: 1, base: 2, left: -0.5, right: 0.5, horizontal: true,
			want:    BarRect{Left: 0, Right: 2, Bottom: 0.5, Top: 1.5, Edges: Edges{Top: true, Bottom: true}},
			visible: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Bar(tt.x, tt.y, tt.base, tt.left, tt.right, tt.horizontal, b)
			if ok != tt.visible {
				t.Fatalf("visible = %v, want %v", ok, tt.visible)
			}
			if ok && got != tt.want {
				t.Errorf("bar = %+v, want %+v", got, tt.want)
			}
		})
	}
}
