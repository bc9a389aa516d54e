package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/stackplot/pkg/core/axis"
	"github.com/matzehuels/stackplot/pkg/core/render"
	"github.com/matzehuels/stackplot/pkg/fonts"
)

type SVGOption func(*SVG)

// WithBackground paints the whole canvas before anything else is drawn.
func WithBackground(color string) SVGOption { return func(s *SVG) { s.background = color } }

// WithTitle adds a <title> element.
func WithTitle(title string) SVGOption { return func(s *SVG) { s.title = title } }

// WithFontFamily overrides the CSS font stack used for labels.
func WithFontFamily(family string) SVGOption { return func(s *SVG) { s.family = family } }

// SVG is a [render.Backend] that accumulates SVG elements.
type SVG struct {
	width, height float64
	background    string
	title         string
	family        string
	body          bytes.Buffer
}

var _ render.Backend = (*SVG)(nil)

// NewSVG returns an empty SVG canvas of the given size in pixels.
func NewSVG(width, height float64, opts ...SVGOption) *SVG {
	s := &SVG{width: width, height: height, family: fonts.FallbackFontFamily}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SVG) Size() (float64, float64) { return s.width, s.height }

func (s *SVG) Clear() { s.body.Reset() }

func (s *SVG) Path(p render.Path, st render.Style) {
	d := pathData(p)
	if d == "" {
		return
	}
	fmt.Fprintf(&s.body, `  <path d="%s"%s/>`+"\n", d, paint(st))
}

func (s *SVG) Rect(x, y, w, h float64, st render.Style) {
	fmt.Fprintf(&s.body, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"%s/>`+"\n", x, y, w, h, paint(st))
}

func (s *SVG) Circle(cx, cy, r float64, st render.Style) {
	fmt.Fprintf(&s.body, `  <circle cx="%.2f" cy="%.2f" r="%.2f"%s/>`+"\n", cx, cy, r, paint(st))
}

func (s *SVG) Text(x, y float64, text string, ts render.TextStyle) {
	size := ts.Font.Size
	if size <= 0 {
		size = fonts.DefaultSize
	}
	family := s.family
	if ts.Font.Family != "" {
		family = ts.Font.Family
	}
	fmt.Fprintf(&s.body, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.1f"`, x, y, escapeXML(family), size)
	if ts.Font.Style != "" {
		fmt.Fprintf(&s.body, ` font-style="%s"`, escapeXML(ts.Font.Style))
	}
	if ts.Font.Weight != "" {
		fmt.Fprintf(&s.body, ` font-weight="%s"`, escapeXML(ts.Font.Weight))
	}
	anchor := ts.Anchor
	if anchor == "" {
		anchor = render.AnchorStart
	}
	fmt.Fprintf(&s.body, ` text-anchor="%s" dominant-baseline="central"%s>%s</text>`+"\n",
		anchor, fillAttr(ts.Color), escapeXML(text))
}

func (s *SVG) MeasureText(text string, f axis.Font) (float64, float64) {
	return fonts.Measure(text, f.Size)
}

// Bytes returns the complete document.
func (s *SVG) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.width, s.height, s.width, s.height)
	if s.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(s.title))
	}
	if s.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%"%s/>`+"\n", fillAttr(s.background))
	}
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func pathData(p render.Path) string {
	var b strings.Builder
	for _, c := range p {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch c.Op {
		case render.MoveTo:
			fmt.Fprintf(&b, "M%.2f,%.2f", c.X, c.Y)
		case render.LineTo:
			fmt.Fprintf(&b, "L%.2f,%.2f", c.X, c.Y)
		case render.ClosePath:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func paint(st render.Style) string {
	var b strings.Builder
	b.WriteString(fillAttr(st.Fill))
	if st.Stroke == "" || st.StrokeWidth <= 0 {
		b.WriteString(` stroke="none"`)
		return b.String()
	}
	writeColor(&b, "stroke", st.Stroke)
	fmt.Fprintf(&b, ` stroke-width="%.2f"`, st.StrokeWidth)
	if st.LineJoin != "" {
		fmt.Fprintf(&b, ` stroke-linejoin="%s"`, st.LineJoin)
	}
	return b.String()
}

func fillAttr(color string) string {
	if color == "" {
		return ` fill="none"`
	}
	var b strings.Builder
	writeColor(&b, "fill", color)
	return b.String()
}

// writeColor splits rgba() colours into a colour and an opacity attribute,
// which rsvg-convert and older viewers handle more reliably.
func writeColor(b *strings.Builder, attr, color string) {
	c, a, ok := render.ParseColor(color)
	if !ok {
		fmt.Fprintf(b, ` %s="%s"`, attr, escapeXML(color))
		return
	}
	fmt.Fprintf(b, ` %s="%s"`, attr, c.Hex())
	if a < 1 {
		fmt.Fprintf(b, ` %s-opacity="%.3g"`, attr, a)
	}
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
