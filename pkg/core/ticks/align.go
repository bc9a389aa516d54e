package ticks

import (
	"math"
	"regexp"
	"strconv"

	"github.com/matzehuels/stackplot/pkg/core/axis"
)

var trailingZero = regexp.MustCompile(`\..*0$`)

// Aligned mirrors the ticks of another axis of the same direction: each
// tick of Other is projected onto this axis at the same fraction of the
// range. Labels come from Base.
type Aligned struct {
	Base  Strategy
	Other *axis.Axis
}

// setupAligned widens the unpinned bounds of a to its own outermost nice
// ticks, so the projected ticks land on round numbers, and grants one more
// decimal when that makes the step label exact.
func setupAligned(a *axis.Axis, base Strategy, other *axis.Axis, delta float64) Aligned {
	own := base.Generate(a)
	if len(own) > 0 {
		if a.Options.Min == nil {
			a.Min = math.Min(a.Min, own[0])
		}
		if a.Options.Max == nil && len(own) > 1 {
			a.Max = math.Max(a.Max, own[len(own)-1])
		}
	}

	s := Aligned{Base: base, Other: other}
	if a.Options.Mode != axis.ModeTime && a.Options.TickDecimals == nil {
		extra := max(0, niceDecimals(delta)+1)
		ts := s.Generate(a)
		if !(len(ts) > 1 && trailingZero.MatchString(strconv.FormatFloat(ts[1]-ts[0], 'f', extra, 64))) {
			a.TickDecimals = extra
		}
	}
	return s
}

func (s Aligned) Generate(a *axis.Axis) []float64 {
	o := s.Other
	span := o.Max - o.Min
	if span == 0 {
		return nil
	}
	out := make([]float64, 0, len(o.Ticks))
	for _, t := range o.Ticks {
		f := (t.Value - o.Min) / span
		out = append(out, a.Min+f*(a.Max-a.Min))
	}
	return out
}

func (s Aligned) Format(v float64, a *axis.Axis) string { return s.Base.Format(v, a) }
