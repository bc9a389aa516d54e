// Package clip cuts series geometry down to the visible axis ranges.
//
// All functions work in data space: callers pass the resolved ranges of
// the two axes as [Bounds] and map the resulting vertices to pixels
// afterwards. Gap points are skipped; lines and areas never bridge them.
package clip

import (
	"github.com/matzehuels/stackplot/pkg/core/series"
)

// Bounds is the visible rectangle in data space.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Contains reports whether (x, y) lies inside b, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.XMin && x <= b.XMax && y >= b.YMin && y <= b.YMax
}

// Vec is a vertex in data space.
type Vec struct{ X, Y float64 }

// Polyline is an open run of connected vertices.
type Polyline []Vec

// Polygon is a closed ring; the last vertex connects back to the first.
type Polygon []Vec

// Lines clips the segments between consecutive non-gap points to b. Each
// segment is cut against the Y minimum, Y maximum, X minimum and X maximum
// in turn and dropped as soon as it lies entirely outside one of them.
// Surviving segments that continue where the previous one ended are joined
// into the same polyline; any discontinuity starts a new one.
func Lines(pts []series.Point, b Bounds) []Polyline {
	var (
		out  []Polyline
		cur  Polyline
		last Vec
	)
	for i := 1; i < len(pts); i++ {
		p1, p2 := pts[i-1], pts[i]
		if p1.Gap || p2.Gap {
			continue
		}
		x1, y1, x2, y2, ok := segment(p1.X, p1.Y, p2.X, p2.Y, b)
		if !ok {
			continue
		}
		if len(cur) == 0 || x1 != last.X || y1 != last.Y {
			if len(cur) > 1 {
				out = append(out, cur)
			}
			cur = Polyline{{x1, y1}}
		}
		cur = append(cur, Vec{x2, y2})
		last = Vec{x2, y2}
	}
	if len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}

// segment clips one line segment. The boolean is false when nothing of it
// is visible.
func segment(x1, y1, x2, y2 float64, b Bounds) (float64, float64, float64, float64, bool) {
	// y min
	if y1 <= y2 && y1 < b.YMin {
		if y2 < b.YMin {
			return 0, 0, 0, 0, false
		}
		x1 = (b.YMin-y1)/(y2-y1)*(x2-x1) + x1
		y1 = b.YMin
	} else if y2 <= y1 && y2 < b.YMin {
		if y1 < b.YMin {
			return 0, 0, 0, 0, false
		}
		x2 = (b.YMin-y1)/(y2-y1)*(x2-x1) + x1
		y2 = b.YMin
	}

	// y max
	if y1 >= y2 && y1 > b.YMax {
		if y2 > b.YMax {
			return 0, 0, 0, 0, false
		}
		x1 = (b.YMax-y1)/(y2-y1)*(x2-x1) + x1
		y1 = b.YMax
	} else if y2 >= y1 && y2 > b.YMax {
		if y1 > b.YMax {
			return 0, 0, 0, 0, false
		}
		x2 = (b.YMax-y1)/(y2-y1)*(x2-x1) + x1
		y2 = b.YMax
	}

	// x min
	if x1 <= x2 && x1 < b.XMin {
		if x2 < b.XMin {
			return 0, 0, 0, 0, false
		}
		y1 = (b.XMin-x1)/(x2-x1)*(y2-y1) + y1
		x1 = b.XMin
	} else if x2 <= x1 && x2 < b.XMin {
		if x1 < b.XMin {
			return 0, 0, 0, 0, false
		}
		y2 = (b.XMin-x1)/(x2-x1)*(y2-y1) + y1
		x2 = b.XMin
	}

	// x max
	if x1 >= x2 && x1 > b.XMax {
		if x2 > b.XMax {
			return 0, 0, 0, 0, false
		}
		y1 = (b.XMax-x1)/(x2-x1)*(y2-y1) + y1
		x1 = b.XMax
	} else if x2 >= x1 && x2 > b.XMax {
		if x1 > b.XMax {
			return 0, 0, 0, 0, false
		}
		y2 = (b.XMax-x1)/(x2-x1)*(y2-y1) + y1
		x2 = b.XMax
	}

	return x1, y1, x2, y2, true
}
