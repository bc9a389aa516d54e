package sink

import (
	"encoding/json"

	"github.com/matzehuels/stackplot/pkg/core/axis"
	"github.com/matzehuels/stackplot/pkg/core/render"
	"github.com/matzehuels/stackplot/pkg/fonts"
)

// Shape is one recorded drawing operation.
type Shape struct {
	Kind   string        `json:"kind"` // path, rect, circle or text
	Path   []PathCommand `json:"path,omitempty"`
	X      float64       `json:"x,omitempty"`
	Y      float64       `json:"y,omitempty"`
	W      float64       `json:"w,omitempty"`
	H      float64       `json:"h,omitempty"`
	R      float64       `json:"r,omitempty"`
	Text   string        `json:"text,omitempty"`
	Anchor render.Anchor `json:"anchor,omitempty"`
	Stroke string        `json:"stroke,omitempty"`
	Width  float64       `json:"strokeWidth,omitempty"`
	Fill   string        `json:"fill,omitempty"`
}

// PathCommand is a path step in the recorded form.
type PathCommand struct {
	Op string  `json:"op"` // M, L or Z
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Recorder is a [render.Backend] that keeps every operation in memory.
type Recorder struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Shapes []Shape `json:"shapes"`
}

var _ render.Backend = (*Recorder)(nil)

// NewRecorder returns an empty recorder of the given canvas size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height, Shapes: []Shape{}}
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) Clear() { r.Shapes = r.Shapes[:0] }

func (r *Recorder) Path(p render.Path, st render.Style) {
	cmds := make([]PathCommand, 0, len(p))
	for _, c := range p {
		op := "M"
		switch c.Op {
		case render.LineTo:
			op = "L"
		case render.ClosePath:
			op = "Z"
		}
		cmds = append(cmds, PathCommand{Op: op, X: c.X, Y: c.Y})
	}
	r.Shapes = append(r.Shapes, Shape{Kind: "path", Path: cmds, Stroke: st.Stroke, Width: st.StrokeWidth, Fill: st.Fill})
}

func (r *Recorder) Rect(x, y, w, h float64, st render.Style) {
	r.Shapes = append(r.Shapes, Shape{Kind: "rect", X: x, Y: y, W: w, H: h, Stroke: st.Stroke, Width: st.StrokeWidth, Fill: st.Fill})
}

func (r *Recorder) Circle(cx, cy, rad float64, st render.Style) {
	r.Shapes = append(r.Shapes, Shape{Kind: "circle", X: cx, Y: cy, R: rad, Stroke: st.Stroke, Width: st.StrokeWidth, Fill: st.Fill})
}

func (r *Recorder) Text(x, y float64, text string, ts render.TextStyle) {
	r.Shapes = append(r.Shapes, Shape{Kind: "text", X: x, Y: y, Text: text, Anchor: ts.Anchor, Fill: ts.Color})
}

func (r *Recorder) MeasureText(text string, f axis.Font) (float64, float64) {
	return fonts.Measure(text, f.Size)
}

// Count returns how many shapes of the given kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, s := range r.Shapes {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// Bytes encodes the recording as JSON.
func (r *Recorder) Bytes() ([]byte, error) {
	return json.Marshal(r)
}
