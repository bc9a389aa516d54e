package sink

import (
	"bytes"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/stackplot/pkg/core/axis"
	"github.com/matzehuels/stackplot/pkg/core/render"
	"github.com/matzehuels/stackplot/pkg/fonts"
)

// PNG is a [render.Backend] that rasterises onto an RGBA image.
type PNG struct {
	dc         *gg.Context
	scale      float64
	background string
	faces      map[float64]font.Face
}

var _ render.Backend = (*PNG)(nil)

// NewPNG returns a transparent canvas of width x height logical pixels.
// scale multiplies the pixel density; values below 1 are treated as 1.
func NewPNG(width, height, scale float64) *PNG {
	if scale < 1 {
		scale = 1
	}
	dc := gg.NewContext(int(width*scale+0.5), int(height*scale+0.5))
	dc.Scale(scale, scale)
	return &PNG{dc: dc, scale: scale, faces: map[float64]font.Face{}}
}

func (p *PNG) Size() (float64, float64) {
	return float64(p.dc.Width()) / p.scale, float64(p.dc.Height()) / p.scale
}

// SetBackground sets the colour Clear fills the canvas with. An empty
// colour leaves it transparent.
func (p *PNG) SetBackground(color string) { p.background = color }

func (p *PNG) Clear() {
	if p.background != "" {
		p.dc.SetColor(render.NRGBA(p.background))
	} else {
		p.dc.SetRGBA(0, 0, 0, 0)
	}
	p.dc.Clear()
}

func (p *PNG) Path(path render.Path, st render.Style) {
	p.dc.NewSubPath()
	for _, c := range path {
		switch c.Op {
		case render.MoveTo:
			p.dc.MoveTo(c.X, c.Y)
		case render.LineTo:
			p.dc.LineTo(c.X, c.Y)
		case render.ClosePath:
			p.dc.ClosePath()
		}
	}
	p.paint(st)
}

func (p *PNG) Rect(x, y, w, h float64, st render.Style) {
	p.dc.DrawRectangle(x, y, w, h)
	p.paint(st)
}

func (p *PNG) Circle(cx, cy, r float64, st render.Style) {
	p.dc.DrawCircle(cx, cy, r)
	p.paint(st)
}

func (p *PNG) paint(st render.Style) {
	if st.Fill != "" {
		p.dc.SetColor(render.NRGBA(st.Fill))
		p.dc.FillPreserve()
	}
	if st.Stroke != "" && st.StrokeWidth > 0 {
		p.dc.SetColor(render.NRGBA(st.Stroke))
		p.dc.SetLineWidth(st.StrokeWidth)
		if st.LineJoin == "round" {
			p.dc.SetLineJoin(gg.LineJoinRound)
		} else {
			p.dc.SetLineJoin(gg.LineJoinBevel)
		}
		p.dc.StrokePreserve()
	}
	p.dc.ClearPath()
}

func (p *PNG) Text(x, y float64, text string, ts render.TextStyle) {
	face := p.face(ts.Font.Size)
	if face == nil {
		return
	}
	p.dc.SetFontFace(face)
	p.dc.SetColor(render.NRGBA(ts.Color))

	ax := 0.0
	switch ts.Anchor {
	case render.AnchorMiddle:
		ax = 0.5
	case render.AnchorEnd:
		ax = 1
	}
	p.dc.DrawStringAnchored(text, x, y, ax, 0.35)
}

// MeasureText uses the shared measurer so PNG and SVG output lay out
// identically.
func (p *PNG) MeasureText(text string, f axis.Font) (float64, float64) {
	return fonts.Measure(text, f.Size)
}

func (p *PNG) face(size float64) font.Face {
	if size <= 0 {
		size = fonts.DefaultSize
	}
	if f, ok := p.faces[size]; ok {
		return f
	}
	f, err := fonts.NewFace(size)
	if err != nil {
		return nil
	}
	p.faces[size] = f
	return f
}

// Image returns the rasterised canvas.
func (p *PNG) Image() image.Image { return p.dc.Image() }

// Bytes encodes the canvas as PNG.
func (p *PNG) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
