package plot_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/stackplot/pkg/core/axis"
	"github.com/matzehuels/stackplot/pkg/core/plot"
	"github.com/matzehuels/stackplot/pkg/core/render/sink"
	"github.com/matzehuels/stackplot/pkg/core/series"
)

func ExampleNew() {
	svg := sink.NewSVG(400, 300, sink.WithBackground("#ffffff"))
	data := []*series.Series{
		{Label: "load", Data: series.FromValues([]float64{1, 3, 2, 5, 4})},
	}

	p := plot.New(svg, data, plot.Options{})

	x := p.XAxes()[0]
	fmt.Println("x range:", x.Min, x.Max)
	fmt.Println("color:", data[0].Color)
	fmt.Println("svg:", strings.HasPrefix(string(svg.Bytes()), "<svg"))
	// Output:
	// x range: 0 4
	// color: #edc240
	// svg: true
}

func ExamplePlot_SetData() {
	rec := sink.NewRecorder(300, 200)
	p := plot.New(rec, nil, plot.Options{
		YAxis: axis.Options{Min: axis.Float(0)},
	})

	p.SetData([]*series.Series{{Data: series.FromPairs([][2]float64{{0, 2}, {10, 8}})}})
	p.SetupGrid()
	p.Draw()

	y := p.YAxes()[0]
	fmt.Println("y min pinned:", y.Min)
	// Output:
	// y min pinned: 0
}
