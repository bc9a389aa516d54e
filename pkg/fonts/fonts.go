// Package fonts provides the typeface used to measure and rasterise tick
// labels.
//
// The Go Regular font is compiled into the binary, so label measurement
// gives the same results on every machine and the SVG and PNG backends
// agree on label sizes.
package fonts

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontFamily is the CSS font-family name written into SVG output.
const FontFamily = "Go"

// FallbackFontFamily is the CSS font stack used when the viewer lacks Go.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`

// DefaultSize is the label size in pixels when a chart does not set one.
const DefaultSize = 10

var (
	parsed    *opentype.Font
	parseErr  error
	parseOnce sync.Once
	mu        sync.Mutex
	faceCache = map[float64]font.Face{}
)

func regular() (*opentype.Font, error) {
	parseOnce.Do(func() {
		parsed, parseErr = opentype.Parse(goregular.TTF)
	})
	return parsed, parseErr
}

// NewFace returns a fresh face of the given pixel size. Faces are not safe
// for concurrent use; callers that draw concurrently need one each.
func NewFace(size float64) (font.Face, error) {
	f, err := regular()
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultSize
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// Measure returns the advance width and line height of text set at the
// given pixel size. It is safe for concurrent use.
func Measure(text string, size float64) (w, h float64) {
	if size <= 0 {
		size = DefaultSize
	}

	mu.Lock()
	defer mu.Unlock()

	face, ok := faceCache[size]
	if !ok {
		var err error
		if face, err = NewFace(size); err != nil {
			return approximate(text, size)
		}
		faceCache[size] = face
	}

	adv := font.MeasureString(face, text)
	m := face.Metrics()
	return float64(adv) / 64, float64(m.Ascent+m.Descent) / 64
}

// approximate is used only if the embedded font fails to parse.
func approximate(text string, size float64) (float64, float64) {
	return float64(len([]rune(text))) * size * 0.6, size * 1.2
}
