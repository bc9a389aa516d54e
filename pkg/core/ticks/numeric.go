package ticks

import (
	"math"
	"strconv"

	"github.com/matzehuels/stackplot/pkg/core/axis"
)

// Numeric places ticks at multiples of a "nice" step: 1, 2, 2.5, 5 or 10
// times a power of ten.
type Numeric struct{}

func setupNumeric(a *axis.Axis, delta float64) Numeric {
	o := a.Options

	dec := niceDecimals(delta)
	maxDec := -1
	if o.TickDecimals != nil {
		maxDec = *o.TickDecimals
		if dec > maxDec {
			dec = maxDec
		}
	}

	magnitude := math.Pow(10, float64(-dec))
	norm := delta / magnitude

	var size float64
	switch {
	case norm < 1.5:
		size = 1
	case norm < 3:
		size = 2
		// 2.5 needs one more decimal than the magnitude allows.
		if norm > 2.25 && (maxDec < 0 || dec+1 <= maxDec) {
			size = 2.5
			dec++
		}
	case norm < 7.5:
		size = 5
	default:
		size = 10
	}
	size *= magnitude

	if o.MinTickSize != nil && size < o.MinTickSize.Size {
		size = o.MinTickSize.Size
	}

	decimals := dec
	if o.TickDecimals != nil {
		decimals = *o.TickDecimals
	}
	a.TickDecimals = max(0, decimals)

	if o.TickSize != nil && o.TickSize.Size > 0 {
		size = o.TickSize.Size
	}
	a.TickStep = axis.Step{Size: size}
	return Numeric{}
}

// Generate returns multiples of the step from the one at or below Min up
// to the first one at or above Max.
func (Numeric) Generate(a *axis.Axis) []float64 {
	step := a.TickStep.Size
	if !(step > 0) {
		return nil
	}
	start := floorInBase(a.Min, step)

	var ticks []float64
	prev := math.NaN()
	for i := 0; i < maxTicks; i++ {
		v := start + float64(i)*step
		ticks = append(ticks, v)
		if !(v < a.Max) || v == prev {
			break
		}
		prev = v
	}
	return ticks
}

// Format prints v with the axis' tick decimals.
func (Numeric) Format(v float64, a *axis.Axis) string {
	s := strconv.FormatFloat(v, 'f', a.TickDecimals, 64)
	if isNegativeZero(s) {
		return s[1:]
	}
	return s
}

func isNegativeZero(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	for _, c := range s[1:] {
		if c != '0' && c != '.' {
			return false
		}
	}
	return true
}
