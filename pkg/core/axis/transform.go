package axis

import "math"

// SetTransform fixes the data-to-pixel mapping for an axis whose visible
// extent is the given number of pixels.
//
// X axes grow rightwards from the smaller transformed bound. Y axes grow
// downwards from the larger one, which is expressed by a negative scale.
// Without a transform the mapping is linear; with one, values pass through
// Options.Transform first and pixels through Options.InverseTransform on
// the way back.
func (a *Axis) SetTransform(extent float64) {
	t, it := a.Options.Transform, a.Options.InverseTransform
	identity := func(v float64) float64 { return v }
	if t == nil {
		t = identity
	}

	tmin, tmax := t(a.Min), t(a.Max)
	s := scaleFor(extent, tmin, tmax)
	var m float64
	if a.Direction == X {
		m = math.Min(tmin, tmax)
	} else {
		s = -s
		m = math.Max(tmin, tmax)
	}
	a.Scale = s

	if a.Options.Transform == nil {
		a.p2c = func(v float64) float64 { return offset(v, m, s) }
	} else {
		a.p2c = func(v float64) float64 { return offset(t(v), m, s) }
	}
	if it == nil {
		a.c2p = func(c float64) float64 { return value(c, m, s) }
	} else {
		a.c2p = func(c float64) float64 { return it(value(c, m, s)) }
	}
}

// scaleFor is pixels per transformed unit. A transform that collapses the
// range (a log axis over non-positive data) gets a unit span. A span wider
// than the floats can hold is measured on halved bounds.
func scaleFor(extent, tmin, tmax float64) float64 {
	d := math.Abs(tmax - tmin)
	switch {
	case math.IsInf(d, 0):
		return extent / 2 / math.Abs(tmax/2-tmin/2)
	case !(d > 0):
		return extent
	}
	return extent / d
}

// offset computes (v-m)*s without overflowing when v and m sit at opposite
// ends of the float range.
func offset(v, m, s float64) float64 {
	if d := v - m; !math.IsInf(d, 0) {
		return d * s
	}
	return v*s - m*s
}

// value inverts offset.
func value(c, m, s float64) float64 {
	if p := m + c/s; !math.IsInf(p, 0) {
		return p
	}
	p := 2 * (m/2 + c/(2*s))
	return math.Max(-math.MaxFloat64, math.Min(p, math.MaxFloat64))
}

// P2C maps a data value to a pixel offset from the plot area origin.
func (a *Axis) P2C(v float64) float64 {
	if a.p2c == nil {
		return v
	}
	return a.p2c(v)
}

// C2P maps a pixel offset back to a data value.
func (a *Axis) C2P(c float64) float64 {
	if a.c2p == nil {
		return c
	}
	return a.c2p(c)
}
