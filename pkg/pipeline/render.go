package pipeline

import (
	"context"

	"github.com/matzehuels/stackplot/pkg/config"
	"github.com/matzehuels/stackplot/pkg/core/plot"
	"github.com/matzehuels/stackplot/pkg/core/render"
	"github.com/matzehuels/stackplot/pkg/core/render/sink"
	"github.com/matzehuels/stackplot/pkg/core/series"
	"github.com/matzehuels/stackplot/pkg/errors"
)

// Plot lays out and draws the chart onto b. The series are copied first,
// so the same loaded series may be drawn by several goroutines at once.
func Plot(c *config.Chart, ss []*series.Series, b render.Backend) *plot.Plot {
	return plot.New(b, cloneSeries(ss), c.PlotOptions())
}

// Render draws the chart in one format.
func Render(ctx context.Context, c *config.Chart, ss []*series.Series, format string, scale float64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch format {
	case FormatSVG:
		return renderSVG(c, ss), nil

	case FormatPNG:
		b := sink.NewPNG(c.Width, c.Height, scale)
		b.SetBackground(c.Background)
		Plot(c, ss, b)
		data, err := b.Bytes()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode png")
		}
		return data, nil

	case FormatPDF:
		if !render.HasConverter() {
			return nil, errors.New(errors.ErrCodeUnsupported, "pdf output needs rsvg-convert (librsvg) on the PATH")
		}
		data, err := render.ToPDF(ctx, renderSVG(c, ss))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "convert to pdf")
		}
		return data, nil

	case FormatJSON:
		b := sink.NewRecorder(c.Width, c.Height)
		Plot(c, ss, b)
		data, err := b.Bytes()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode shapes")
		}
		return data, nil
	}
	return nil, ValidateFormat(format)
}

func renderSVG(c *config.Chart, ss []*series.Series) []byte {
	var opts []sink.SVGOption
	if c.Background != "" {
		opts = append(opts, sink.WithBackground(c.Background))
	}
	if c.Title != "" {
		opts = append(opts, sink.WithTitle(c.Title))
	}
	if c.FontFamily != "" {
		opts = append(opts, sink.WithFontFamily(c.FontFamily))
	}
	b := sink.NewSVG(c.Width, c.Height, opts...)
	Plot(c, ss, b)
	return b.Bytes()
}

// cloneSeries copies the series headers. Rows are shared; normalising
// only writes the resolved style, axes and buffer.
func cloneSeries(ss []*series.Series) []*series.Series {
	out := make([]*series.Series, len(ss))
	for i, s := range ss {
		c := *s
		c.X, c.Y = nil, nil
		c.Buffer = series.Buffer{}
		out[i] = &c
	}
	return out
}
