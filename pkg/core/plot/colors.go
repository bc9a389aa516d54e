package plot

import (
	"github.com/matzehuels/stackplot/pkg/core/render"
	"github.com/matzehuels/stackplot/pkg/core/series"
)

// fallbackColor stands in for an empty palette.
const fallbackColor = "#646464"

// Palette returns n colours drawn from base in order. Once base is used
// up it is repeated with every channel scaled by 1+v, where v runs
// through -0.2, 0.2, -0.4, 0.4, -0.6, 0.6 and then back to 0.
func Palette(base []string, n int) []string {
	out := make([]string, 0, n)
	variation := 0.0
	i := 0
	for len(out) < n {
		c := fallbackColor
		if i < len(base) {
			c = base[i]
		}
		if variation != 0 {
			c = render.ScaleRGB(c, 1+variation)
		}
		out = append(out, c)

		i++
		if i >= len(base) {
			i = 0
			variation = nextVariation(variation)
		}
	}
	return out
}

func nextVariation(v float64) float64 {
	switch {
	case v >= 0.5:
		return 0
	case v >= 0:
		return -v - 0.2
	default:
		return -v
	}
}

// assignColors gives every series without a colour the next palette entry.
func assignColors(ss []*series.Series, base []string) {
	needed := 0
	for _, s := range ss {
		if s.Color == "" {
			needed++
		}
	}
	colors := Palette(base, needed)
	for _, s := range ss {
		if s.Color == "" {
			s.Color, colors = colors[0], colors[1:]
		}
	}
}
