package axis

import "math"

// ResetExtent clears the data extent so that the next scan starts fresh.
func (a *Axis) ResetExtent() {
	a.DataMin = math.Inf(1)
	a.DataMax = math.Inf(-1)
}

// Extend folds [lo, hi] into the data extent. Sentinel bounds are ignored.
func (a *Axis) Extend(lo, hi float64) {
	if lo < a.DataMin && lo != -Sentinel {
		a.DataMin = lo
	}
	if hi > a.DataMax && hi != Sentinel {
		a.DataMax = hi
	}
}

// ResolveRange computes Min and Max from the data extent and the options.
//
// Pinned bounds (Options.Min, Options.Max) are taken as given. A degenerate
// range is widened by 1 around zero and by 1% of the magnitude elsewhere;
// the min side moves unless pinned, the max side moves when it is unpinned
// or when the min side is pinned. A non-degenerate range gets the autoscale
// margin on each unpinned side, clamped at zero when the data does not
// cross zero on that side. Widened bounds never leave the finite floats.
func (a *Axis) ResolveRange() {
	o := a.Options
	lo, hi := a.DataMin, a.DataMax
	if !a.HasData() {
		lo, hi = 0, 0
	}
	if o.Min != nil {
		lo = *o.Min
	}
	if o.Max != nil {
		hi = *o.Max
	}

	if delta := hi - lo; delta == 0 {
		w := widening(hi)
		if o.Min == nil {
			lo -= w
		}
		if o.Max == nil || o.Min != nil {
			hi += w
		}
	} else if m := o.AutoscaleMargin; m != nil && *m != 0 {
		if o.Min == nil {
			lo -= delta * *m
			if lo < 0 && a.HasData() && a.DataMin >= 0 {
				lo = 0
			}
		}
		if o.Max == nil {
			hi += delta * *m
			if hi > 0 && a.HasData() && a.DataMax <= 0 {
				hi = 0
			}
		}
	}

	// A pinned bound on the far side of the data inverts the range; keep
	// the pinned side and move the other one.
	if !(lo < hi) {
		switch {
		case o.Max == nil:
			hi = lo + widening(lo)
		case o.Min == nil:
			lo = hi - widening(hi)
		}
	}

	a.Min = math.Max(lo, -math.MaxFloat64)
	a.Max = math.Min(hi, math.MaxFloat64)
}

func widening(v float64) float64 {
	w := 0.01 * math.Abs(v)
	if v == 0 || w == 0 || math.IsInf(w, 0) {
		return 1
	}
	return w
}
