package series

import (
	"math"

	"github.com/matzehuels/stackplot/pkg/core/axis"
)

// AccumulateExtents resets the extent of every axis in the set and folds
// in the non-gap values of each series. Bars reserve their width on the
// axis they stand on.
func AccumulateExtents(ss []*Series, axes *axis.Set) {
	for _, a := range axes.All() {
		a.ResetExtent()
	}

	for _, s := range ss {
		if s.X == nil || s.Y == nil {
			continue
		}
		xmin, xmax := math.Inf(1), math.Inf(-1)
		ymin, ymax := math.Inf(1), math.Inf(-1)
		base := s.Buffer.HasBase()
		baseDir := axis.Y
		if base {
			baseDir = s.Buffer.Format[2].Direction
		}

		for _, p := range s.Buffer.Points {
			if p.Gap {
				continue
			}
			xmin, xmax = fold(xmin, xmax, p.X)
			ymin, ymax = fold(ymin, ymax, p.Y)
			if base {
				if baseDir == axis.X {
					xmin, xmax = fold(xmin, xmax, p.B)
				} else {
					ymin, ymax = fold(ymin, ymax, p.B)
				}
			}
		}

		if b := s.Style.Bars; b.Show {
			delta := 0.0
			if b.Align == AlignCenter {
				delta = -b.BarWidth / 2
			}
			if b.Horizontal {
				ymin += delta
				ymax += delta + b.BarWidth
			} else {
				xmin += delta
				xmax += delta + b.BarWidth
			}
		}

		s.X.Extend(xmin, xmax)
		s.Y.Extend(ymin, ymax)
	}
}

// fold extends [lo, hi] by v, skipping sentinel values.
func fold(lo, hi, v float64) (float64, float64) {
	if v == axis.Sentinel || v == -axis.Sentinel {
		return lo, hi
	}
	if v < lo {
		lo = v
	}
	if v > hi {
		hi = v
	}
	return lo, hi
}
