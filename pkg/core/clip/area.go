package clip

import (
	"math"

	"github.com/matzehuels/stackplot/pkg/core/series"
)

// Areas clips the filled area under each contiguous run of non-gap points
// and returns one closed polygon per visible run.
//
// The top edge follows the data: segments are cut to the X range, then a
// segment entirely above the Y range runs along YMax, one entirely below
// along YMin, and a crossing segment is split into a flat part on the
// boundary followed by the sloped visible part. The polygon closes by
// walking back along each point's baseline, clamped into the Y range.
func Areas(pts []series.Point, b Bounds) []Polygon {
	var out []Polygon
	start := 0
	for i := 0; i <= len(pts); i++ {
		if i < len(pts) && !pts[i].Gap {
			continue
		}
		if i-start > 1 {
			if poly := area(pts[start:i], b); poly != nil {
				out = append(out, poly)
			}
		}
		start = i + 1
	}
	return out
}

func area(run []series.Point, b Bounds) Polygon {
	var top []Vec
	for i := 1; i < len(run); i++ {
		top = sweep(top, run[i-1].X, run[i-1].Y, run[i].X, run[i].Y, b)
	}
	if len(top) == 0 {
		return nil
	}

	var bottom []Vec
	for i := len(run) - 1; i > 0; i-- {
		bottom = sweep(bottom, run[i].X, clampY(run[i].B, b), run[i-1].X, clampY(run[i-1].B, b), b)
	}

	poly := make(Polygon, 0, len(top)+len(bottom)+1)
	poly = append(poly, Vec{top[0].X, clampY(run[0].B, b)})
	for _, v := range append(top, bottom...) {
		if n := len(poly); n > 0 && poly[n-1] == v {
			continue
		}
		poly = append(poly, v)
	}
	return poly
}

func clampY(v float64, b Bounds) float64 {
	return math.Min(math.Max(v, b.YMin), b.YMax)
}

// sweep appends the top-edge vertices for one segment.
func sweep(dst []Vec, x1, y1, x2, y2 float64, b Bounds) []Vec {
	// x min
	if x1 <= x2 && x1 < b.XMin {
		if x2 < b.XMin {
			return dst
		}
		y1 = (b.XMin-x1)/(x2-x1)*(y2-y1) + y1
		x1 = b.XMin
	} else if x2 <= x1 && x2 < b.XMin {
		if x1 < b.XMin {
			return dst
		}
		y2 = (b.XMin-x1)/(x2-x1)*(y2-y1) + y1
		x2 = b.XMin
	}

	// x max
	if x1 >= x2 && x1 > b.XMax {
		if x2 > b.XMax {
			return dst
		}
		y1 = (b.XMax-x1)/(x2-x1)*(y2-y1) + y1
		x1 = b.XMax
	} else if x2 >= x1 && x2 > b.XMax {
		if x1 > b.XMax {
			return dst
		}
		y2 = (b.XMax-x1)/(x2-x1)*(y2-y1) + y1
		x2 = b.XMax
	}

	if y1 >= b.YMax && y2 >= b.YMax {
		return append(dst, Vec{x1, b.YMax}, Vec{x2, b.YMax})
	}
	if y1 <= b.YMin && y2 <= b.YMin {
		return append(dst, Vec{x1, b.YMin}, Vec{x2, b.YMin})
	}

	ox1, ox2 := x1, x2

	if y1 <= y2 && y1 < b.YMin && y2 >= b.YMin {
		x1 = (b.YMin-y1)/(y2-y1)*(x2-x1) + x1
		y1 = b.YMin
	} else if y2 <= y1 && y2 < b.YMin && y1 >= b.YMin {
		x2 = (b.YMin-y1)/(y2-y1)*(x2-x1) + x1
		y2 = b.YMin
	}

	if y1 >= y2 && y1 > b.YMax && y2 <= b.YMax {
		x1 = (b.YMax-y1)/(y2-y1)*(x2-x1) + x1
		y1 = b.YMax
	} else if y2 >= y1 && y2 > b.YMax && y1 <= b.YMax {
		x2 = (b.YMax-y1)/(y2-y1)*(x2-x1) + x1
		y2 = b.YMax
	}

	if x1 != ox1 {
		dst = append(dst, Vec{ox1, y1})
	}
	dst = append(dst, Vec{x1, y1}, Vec{x2, y2})
	if x2 != ox2 {
		dst = append(dst, Vec{ox2, y2})
	}
	return dst
}
