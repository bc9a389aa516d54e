package ticks

import (
	"math"
	"time"

	"github.com/matzehuels/stackplot/pkg/core/axis"
)

// ladder is the ordered set of candidate time steps.
var ladder = []axis.Step{
	{Size: 1, Unit: axis.Second}, {Size: 2, Unit: axis.Second}, {Size: 5, Unit: axis.Second},
	{Size: 10, Unit: axis.Second}, {Size: 30, Unit: axis.Second},
	{Size: 1, Unit: axis.Minute}, {Size: 2, Unit: axis.Minute}, {Size: 5, Unit: axis.Minute},
	{Size: 10, Unit: axis.Minute}, {Size: 30, Unit: axis.Minute},
	{Size: 1, Unit: axis.Hour}, {Size: 2, Unit: axis.Hour}, {Size: 4, Unit: axis.Hour},
	{Size: 8, Unit: axis.Hour}, {Size: 12, Unit: axis.Hour},
	{Size: 1, Unit: axis.Day}, {Size: 2, Unit: axis.Day}, {Size: 3, Unit: axis.Day},
	{Size: 0.25, Unit: axis.Month}, {Size: 0.5, Unit: axis.Month}, {Size: 1, Unit: axis.Month},
	{Size: 2, Unit: axis.Month}, {Size: 3, Unit: axis.Month}, {Size: 6, Unit: axis.Month},
	{Size: 1, Unit: axis.Year},
}

// Time places ticks on calendar boundaries in UTC. Axis values are
// milliseconds since the Unix epoch.
type Time struct{}

func setupTime(a *axis.Axis, delta float64) Time {
	o := a.Options
	a.TickDecimals = 0

	if o.TickSize != nil && o.TickSize.Size > 0 {
		a.TickStep = *o.TickSize
		return Time{}
	}

	minSize := 0.0
	if o.MinTickSize != nil {
		minSize = o.MinTickSize.Millis()
	}

	i := 0
	for ; i < len(ladder)-1; i++ {
		mid := (ladder[i].Millis() + ladder[i+1].Millis()) / 2
		if delta < mid && ladder[i].Millis() >= minSize {
			break
		}
	}
	step := ladder[i]

	if step.Unit == axis.Year {
		if o.MinTickSize != nil && o.MinTickSize.Unit == axis.Year {
			step.Size = math.Floor(o.MinTickSize.Size)
		} else {
			years := delta / axis.YearMillis
			magnitude := math.Pow(10, math.Floor(math.Log10(years)))
			norm := years / magnitude
			switch {
			case norm < 1.5:
				step.Size = 1
			case norm < 3:
				step.Size = 2
			case norm < 7.5:
				step.Size = 5
			default:
				step.Size = 10
			}
			step.Size *= magnitude
		}
		step.Size = math.Max(1, math.Round(step.Size))
	}

	a.TickStep = step
	return Time{}
}

// Generate walks a UTC calendar cursor from Min, floored to the step unit,
// until it reaches Max. Fractional month steps carry the leftover hours
// from one tick to the next so ticks stay on day boundaries.
func (Time) Generate(a *axis.Axis) []float64 {
	step := a.TickStep
	stepMs := step.Millis()
	if !(stepMs > 0) {
		return nil
	}
	size := step.Size

	var cursor time.Time
	if step.Unit == axis.Millisecond {
		cursor = msToTime(floorInBase(a.Min, size))
	} else {
		cursor = floorTime(msToTime(a.Min), step)
	}

	var ticks []float64
	carry := 0
	prev := math.NaN()
	for i := 0; i < maxTicks; i++ {
		v := float64(cursor.UnixMilli())
		ticks = append(ticks, v)

		switch {
		case step.Unit == axis.Month && size < 1:
			start := time.Date(cursor.Year(), cursor.Month(), 1, cursor.Hour(), cursor.Minute(), cursor.Second(), 0, time.UTC)
			length := float64(start.AddDate(0, 1, 0).Sub(start).Milliseconds())
			next := msToTime(v + float64(carry)*axis.HourMillis + length*size)
			carry = next.Hour()
			cursor = time.Date(next.Year(), next.Month(), next.Day(), 0, next.Minute(), next.Second(), 0, time.UTC)
		case step.Unit == axis.Month:
			cursor = cursor.AddDate(0, int(size), 0)
		case step.Unit == axis.Year:
			cursor = cursor.AddDate(int(size), 0, 0)
		default:
			cursor = msToTime(v + stepMs)
		}

		if !(v < a.Max) || v == prev {
			break
		}
		prev = v
	}
	return ticks
}

// floorTime rounds t down to the step: the field of the step unit goes to
// a multiple of the step size and every finer field is cleared.
func floorTime(t time.Time, step axis.Step) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	size := step.Size

	switch step.Unit {
	case axis.Second:
		s = int(floorInBase(float64(s), size))
	case axis.Minute:
		mi = int(floorInBase(float64(mi), size))
	case axis.Hour:
		h = int(floorInBase(float64(h), size))
	case axis.Month:
		mo = time.Month(floorInBase(float64(mo-1), size)) + 1
	case axis.Year:
		y = int(floorInBase(float64(y), size))
	}

	ms := step.Millis()
	if ms >= axis.MinuteMillis {
		s = 0
	}
	if ms >= axis.HourMillis {
		mi = 0
	}
	if ms >= axis.DayMillis {
		h = 0
	}
	if ms >= 4*axis.DayMillis {
		d = 1
	}
	if ms >= axis.YearMillis {
		mo = time.January
	}
	return time.Date(y, mo, d, h, mi, s, 0, time.UTC)
}

// Format labels v according to the step granularity and the visible span,
// unless the axis has an explicit time format.
func (Time) Format(v float64, a *axis.Axis) string {
	o := a.Options
	t := msToTime(v)
	if o.TimeFormat != "" {
		return FormatDate(t, o.TimeFormat, o.MonthNames)
	}

	stepMs := a.TickStep.Millis()
	span := a.Max - a.Min
	suffix := ""
	if o.TwelveHourClock {
		suffix = " %p"
	}

	var layout string
	switch {
	case stepMs < axis.MinuteMillis:
		layout = "%h:%M:%S" + suffix
	case stepMs < axis.DayMillis:
		if span < 2*axis.DayMillis {
			layout = "%h:%M" + suffix
		} else {
			layout = "%b %d %h:%M" + suffix
		}
	case stepMs < axis.MonthMillis:
		layout = "%b %d"
	case stepMs < axis.YearMillis:
		if span < axis.YearMillis {
			layout = "%b"
		} else {
			layout = "%b %Y"
		}
	default:
		layout = "%Y"
	}
	return FormatDate(t, layout, o.MonthNames)
}

// Bounds of the representable date range, in milliseconds.
const maxMillis = 8.64e15

func msToTime(v float64) time.Time {
	v = math.Max(-maxMillis, math.Min(maxMillis, v))
	return time.UnixMilli(int64(math.Floor(v))).UTC()
}
