// Package ticks chooses tick positions and labels for an axis.
//
// A [Strategy] generates tick values for an axis whose range is resolved
// and formats them as labels. [Setup] picks the strategy from the axis
// options (numeric, time, caller formatter, cross-axis alignment) and
// records the chosen step and decimals on the axis; [Apply] then fills
// axis.Ticks, honouring an explicit tick list when one is configured.
//
// Every generator stops once a tick reaches the axis maximum or when the
// next value fails to advance, so a pathological step cannot loop forever.
package ticks

import (
	"math"

	"github.com/matzehuels/stackplot/pkg/core/axis"
)

// maxTicks bounds generated ticks for absurdly small explicit steps.
const maxTicks = 10000

// Strategy generates and formats the ticks of an axis.
type Strategy interface {
	Generate(a *axis.Axis) []float64
	Format(v float64, a *axis.Axis) string
}

// Setup chooses the tick strategy for a, given the pixel length the axis
// is laid out along and the other axes of the same direction (for
// alignment). It sets a.TickStep and a.TickDecimals and may widen unpinned
// bounds when aligning.
func Setup(a *axis.Axis, length float64, siblings []*axis.Axis) Strategy {
	o := a.Options

	count := float64(o.Ticks.Count)
	if count <= 0 {
		count = 0.3 * math.Sqrt(length)
	}
	if count <= 0 {
		count = 1
	}
	delta := (a.Max - a.Min) / count

	var s Strategy
	if o.Mode == axis.ModeTime {
		s = setupTime(a, delta)
	} else {
		s = setupNumeric(a, delta)
	}

	if n := o.AlignTicksWithAxis; n > 0 {
		if other := sibling(siblings, n); other != nil && other != a && other.Used {
			s = setupAligned(a, s, other, delta)
		}
	}

	if o.TickFormatter != nil {
		s = Custom{Base: s, FormatFunc: o.TickFormatter}
	}
	return s
}

func sibling(axes []*axis.Axis, n int) *axis.Axis {
	for _, a := range axes {
		if a.N == n {
			return a
		}
	}
	return nil
}

// Apply fills a.Ticks. An explicit tick list or generator in the options
// wins over the strategy; labels left empty are produced by the strategy.
// NaN tick values are dropped.
func Apply(a *axis.Axis, s Strategy) {
	opt := a.Options.Ticks

	var raw []axis.TickValue
	switch {
	case opt.Generate != nil:
		raw = opt.Generate(a)
	case opt.Values != nil:
		raw = opt.Values
	default:
		for _, v := range s.Generate(a) {
			raw = append(raw, axis.TickValue{Value: v})
		}
	}

	a.Ticks = make([]axis.Tick, 0, len(raw))
	for _, t := range raw {
		if math.IsNaN(t.Value) {
			continue
		}
		label := t.Label
		if label == "" {
			label = s.Format(t.Value, a)
		}
		a.Ticks = append(a.Ticks, axis.Tick{Value: t.Value, Label: label})
	}
}

// SnapRange widens unpinned bounds to the outermost ticks when the axis
// has an autoscale margin, so the data area ends on a tick.
func SnapRange(a *axis.Axis) {
	m := a.Options.AutoscaleMargin
	if m == nil || *m == 0 || len(a.Ticks) == 0 {
		return
	}
	if a.Options.Min == nil {
		a.Min = math.Min(a.Min, a.Ticks[0].Value)
	}
	if a.Options.Max == nil && len(a.Ticks) > 1 {
		a.Max = math.Max(a.Max, a.Ticks[len(a.Ticks)-1].Value)
	}
}

// Custom wraps another strategy with caller-supplied functions. Nil
// functions fall through to Base.
type Custom struct {
	Base         Strategy
	GenerateFunc func(a *axis.Axis) []float64
	FormatFunc   func(v float64, a *axis.Axis) string
}

func (c Custom) Generate(a *axis.Axis) []float64 {
	if c.GenerateFunc != nil {
		return c.GenerateFunc(a)
	}
	return c.Base.Generate(a)
}

func (c Custom) Format(v float64, a *axis.Axis) string {
	if c.FormatFunc != nil {
		return c.FormatFunc(v, a)
	}
	return c.Base.Format(v, a)
}

// floorInBase rounds n down to a multiple of base.
func floorInBase(n, base float64) float64 {
	return base * math.Floor(n/base)
}

// niceDecimals returns -floor(log10(delta)), or 0 when delta is not a
// usable positive number.
func niceDecimals(delta float64) int {
	if !(delta > 0) || math.IsInf(delta, 0) {
		return 0
	}
	return -int(math.Floor(math.Log10(delta)))
}
