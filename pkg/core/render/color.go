package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor reads "#rgb", "#rrggbb", "rgb(r, g, b)" and "rgba(r, g, b, a)".
// The alpha is 1 for the opaque forms.
func ParseColor(s string) (colorful.Color, float64, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case strings.HasPrefix(s, "#"):
		if len(s) == 4 {
			s = "#" + string([]byte{s[1], s[1], s[2], s[2], s[3], s[3]})
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, 0, false
		}
		return c, 1, true
	case strings.HasPrefix(s, "rgba("):
		var r, g, b, a float64
		if _, err := fmt.Sscanf(strings.ReplaceAll(s, " ", ""), "rgba(%f,%f,%f,%f)", &r, &g, &b, &a); err != nil {
			return colorful.Color{}, 0, false
		}
		return colorful.Color{R: r / 255, G: g / 255, B: b / 255}.Clamped(), clamp01(a), true
	case strings.HasPrefix(s, "rgb("):
		var r, g, b float64
		if _, err := fmt.Sscanf(strings.ReplaceAll(s, " ", ""), "rgb(%f,%f,%f)", &r, &g, &b); err != nil {
			return colorful.Color{}, 0, false
		}
		return colorful.Color{R: r / 255, G: g / 255, B: b / 255}.Clamped(), 1, true
	}
	return colorful.Color{}, 0, false
}

// WithAlpha returns s with its alpha replaced by a, as an rgba() string.
// Unparsable colours are returned unchanged.
func WithAlpha(s string, a float64) string {
	c, _, ok := ParseColor(s)
	if !ok {
		return s
	}
	return rgba(c, a)
}

// ScaleRGB multiplies the red, green and blue channels of s by f.
func ScaleRGB(s string, f float64) string {
	c, a, ok := ParseColor(s)
	if !ok {
		return s
	}
	c = colorful.Color{R: c.R * f, G: c.G * f, B: c.B * f}.Clamped()
	if a < 1 {
		return rgba(c, a)
	}
	return c.Hex()
}

// NRGBA converts s for raster backends. Unparsable colours are black.
func NRGBA(s string) color.NRGBA {
	c, a, ok := ParseColor(s)
	if !ok {
		return color.NRGBA{A: 255}
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(a * 255))}
}

func rgba(c colorful.Color, a float64) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, trimFloat(clamp01(a)))
}

func clamp01(v float64) float64 { return math.Max(0, math.Min(1, v)) }

func trimFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
