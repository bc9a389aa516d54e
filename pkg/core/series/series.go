package series

import (
	"github.com/matzehuels/stackplot/pkg/core/axis"
)

// Row is one raw input record: [x, y], [x, y, base] or a lone [y]. Elements
// may be any Go number, json.Number, numeric string or time.Time. A nil
// Row is a gap.
type Row []any

// Field describes one value of a normalised record.
type Field struct {
	Name      string
	Direction axis.Direction
	Required  bool
	Default   float64
}

// Format lists the fields each record carries, in order.
type Format []Field

// Point is a normalised record. Gap points carry no usable values and
// break lines and areas.
type Point struct {
	X, Y float64
	B    float64 // baseline for bars and filled areas
	Gap  bool
}

// Buffer is the normalised data of a series.
type Buffer struct {
	Format Format
	Points []Point
}

// PointSize is the number of fields per record.
func (b Buffer) PointSize() int { return len(b.Format) }

// HasBase reports whether records carry a baseline field.
func (b Buffer) HasBase() bool { return len(b.Format) > 2 }

// Series is one data set together with its configuration and, after
// Normalize, its resolved style, axes and point buffer.
type Series struct {
	Label string
	Color string

	// XAxis and YAxis are 1-based axis numbers; values below 1 mean 1.
	XAxis, YAxis int

	Options Options
	Data    []Row

	Style  Style
	X, Y   *axis.Axis
	Buffer Buffer
}

// FromPairs builds rows from x/y pairs.
func FromPairs(pairs [][2]float64) []Row {
	rows := make([]Row, len(pairs))
	for i, p := range pairs {
		rows[i] = Row{p[0], p[1]}
	}
	return rows
}

// FromValues builds rows whose x is the index of each value.
func FromValues(values []float64) []Row {
	rows := make([]Row, len(values))
	for i, v := range values {
		rows[i] = Row{float64(i), v}
	}
	return rows
}

// Normalize resolves the style of s against the shared defaults, binds
// its axes from the set (marking them used) and rebuilds its point
// buffer from s.Data.
func Normalize(s *Series, defaults Options, axes *axis.Set) {
	s.Style = s.Options.Merge(defaults).Resolve()

	s.X = axes.GetOrCreate(axis.X, s.XAxis)
	s.Y = axes.GetOrCreate(axis.Y, s.YAxis)
	s.X.Used = true
	s.Y.Used = true

	s.Buffer = Buffer{Format: formatFor(s.Style)}
	s.Buffer.Points = buildPoints(s.Data, s.Buffer.Format, s.Style.Lines.Show && s.Style.Lines.Steps)
}

func formatFor(st Style) Format {
	f := Format{
		{Name: "x", Direction: axis.X, Required: true},
		{Name: "y", Direction: axis.Y, Required: true},
	}
	if st.Bars.Show || (st.Lines.Show && st.Lines.Fill) {
		dir := axis.Y
		if st.Bars.Show && st.Bars.Horizontal {
			dir = axis.X
		}
		f = append(f, Field{Name: "base", Direction: dir})
	}
	return f
}

func buildPoints(rows []Row, f Format, steps bool) []Point {
	points := make([]Point, 0, len(rows))
	for i, row := range rows {
		p := parseRow(i, row, f)
		if steps && len(points) > 0 {
			prev := points[len(points)-1]
			if !p.Gap && !prev.Gap && prev.X != p.X && prev.Y != p.Y {
				mid := p
				mid.Y = prev.Y
				points = append(points, mid)
			}
		}
		points = append(points, p)
	}
	return points
}

func parseRow(index int, row Row, f Format) Point {
	if row == nil {
		return Point{Gap: true}
	}
	if len(row) == 1 {
		row = Row{index, row[0]}
	}

	vals := make([]float64, len(f))
	for j, field := range f {
		var raw any
		if j < len(row) {
			raw = row[j]
		}
		v, ok := coerce(raw)
		if !ok {
			if field.Required {
				return Point{Gap: true}
			}
			v = field.Default
		}
		vals[j] = v
	}

	p := Point{X: vals[0], Y: vals[1]}
	if len(vals) > 2 {
		p.B = vals[2]
	}
	return p
}
