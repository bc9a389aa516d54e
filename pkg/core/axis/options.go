package axis

// Mode selects how tick values are chosen and labelled.
type Mode string

const (
	ModeNumeric Mode = ""
	ModeTime    Mode = "time"
)

// TimeUnit is a calendar unit used by time-mode tick steps.
type TimeUnit string

const (
	Millisecond TimeUnit = ""
	Second      TimeUnit = "second"
	Minute      TimeUnit = "minute"
	Hour        TimeUnit = "hour"
	Day         TimeUnit = "day"
	Month       TimeUnit = "month"
	Year        TimeUnit = "year"
)

const (
	SecondMillis = 1000.0
	MinuteMillis = 60 * SecondMillis
	HourMillis   = 60 * MinuteMillis
	DayMillis    = 24 * HourMillis
	MonthMillis  = 30 * DayMillis
	YearMillis   = 365.2425 * DayMillis
)

// Millis returns the nominal length of one unit in milliseconds. Months
// count as 30 days and years as 365.2425 days.
func (u TimeUnit) Millis() float64 {
	switch u {
	case Second:
		return SecondMillis
	case Minute:
		return MinuteMillis
	case Hour:
		return HourMillis
	case Day:
		return DayMillis
	case Month:
		return MonthMillis
	case Year:
		return YearMillis
	}
	return 1
}

// Step is a tick spacing. Numeric axes leave Unit empty; time axes pair a
// count with a calendar unit, e.g. Step{Size: 2, Unit: Hour}.
type Step struct {
	Size float64
	Unit TimeUnit
}

// Millis returns the nominal step length. For numeric steps it is Size.
func (s Step) Millis() float64 { return s.Size * s.Unit.Millis() }

// TickValue is a caller-supplied tick. An empty Label means the axis
// formatter produces one.
type TickValue struct {
	Value float64
	Label string
}

// TickSpec controls where ticks go. The zero value lets the axis generate
// ticks automatically.
type TickSpec struct {
	// Count is the approximate number of ticks; zero derives it from the
	// pixel length.
	Count int

	// Values replaces generated ticks. A non-nil empty slice means no ticks.
	Values []TickValue

	// Generate replaces generated ticks with the result of a function of
	// the axis, called after the range is resolved.
	Generate func(a *Axis) []TickValue
}

// Explicit reports whether ticks come from the caller rather than the
// tick generator.
func (t TickSpec) Explicit() bool { return t.Values != nil || t.Generate != nil }

// Font describes tick label text.
type Font struct {
	Family string
	Size   float64
	Style  string
	Weight string
}

// TickLengthFull may be set as Options.TickLength to stretch ticks across
// the whole plot area.
const TickLengthFull = -1.0

// Options configures an axis. Pointer and nil-able fields mean "unset" so
// that per-axis options can be layered over shared defaults with Merge.
type Options struct {
	Show     *bool
	Position Position
	Mode     Mode

	Min, Max        *float64
	AutoscaleMargin *float64

	Ticks         TickSpec
	TickFormatter func(v float64, a *Axis) string
	TickDecimals  *int
	TickSize      *Step
	MinTickSize   *Step
	TickLength    *float64

	// AlignTicksWithAxis is the number of another axis in the same
	// direction whose ticks this axis mirrors. Zero disables alignment.
	AlignTicksWithAxis int

	Transform        func(float64) float64
	InverseTransform func(float64) float64

	LabelWidth, LabelHeight *float64
	Font                    *Font

	TimeFormat      string
	MonthNames      []string
	TwelveHourClock bool

	Color     string
	TickColor string

	ReserveSpace bool
}

// Merge fills every unset field of o from base and returns the result.
func (o Options) Merge(base Options) Options {
	if o.Show == nil {
		o.Show = base.Show
	}
	if o.Position == "" {
		o.Position = base.Position
	}
	if o.Mode == "" {
		o.Mode = base.Mode
	}
	if o.Min == nil {
		o.Min = base.Min
	}
	if o.Max == nil {
		o.Max = base.Max
	}
	if o.AutoscaleMargin == nil {
		o.AutoscaleMargin = base.AutoscaleMargin
	}
	if o.Ticks.Count == 0 && !o.Ticks.Explicit() {
		o.Ticks = base.Ticks
	}
	if o.TickFormatter == nil {
		o.TickFormatter = base.TickFormatter
	}
	if o.TickDecimals == nil {
		o.TickDecimals = base.TickDecimals
	}
	if o.TickSize == nil {
		o.TickSize = base.TickSize
	}
	if o.MinTickSize == nil {
		o.MinTickSize = base.MinTickSize
	}
	if o.TickLength == nil {
		o.TickLength = base.TickLength
	}
	if o.AlignTicksWithAxis == 0 {
		o.AlignTicksWithAxis = base.AlignTicksWithAxis
	}
	if o.Transform == nil {
		o.Transform = base.Transform
		if o.InverseTransform == nil {
			o.InverseTransform = base.InverseTransform
		}
	}
	if o.LabelWidth == nil {
		o.LabelWidth = base.LabelWidth
	}
	if o.LabelHeight == nil {
		o.LabelHeight = base.LabelHeight
	}
	if o.Font == nil {
		o.Font = base.Font
	}
	if o.TimeFormat == "" {
		o.TimeFormat = base.TimeFormat
	}
	if o.MonthNames == nil {
		o.MonthNames = base.MonthNames
	}
	o.TwelveHourClock = o.TwelveHourClock || base.TwelveHourClock
	if o.Color == "" {
		o.Color = base.Color
	}
	if o.TickColor == "" {
		o.TickColor = base.TickColor
	}
	o.ReserveSpace = o.ReserveSpace || base.ReserveSpace
	return o
}

// DefaultOptions returns the built-in options for a direction. Y axes get
// a 2% autoscale margin; X axes fit the data tightly.
func DefaultOptions(dir Direction) Options {
	if dir == Y {
		return Options{Position: Left, AutoscaleMargin: Float(0.02)}
	}
	return Options{Position: Bottom}
}

// Float returns a pointer to v, for filling optional fields.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
