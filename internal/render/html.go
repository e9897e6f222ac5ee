package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/0x0FACED/planecut/internal/telemetry"
	"github.com/0x0FACED/planecut/internal/tessellate"
	"github.com/0x0FACED/planecut/static"
)

func prepareScatter(scatter *charts.Scatter) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "640px",
			Width:  "800px",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTitleOpts(opts.Title{Title: "Voronoi cells"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "y"}),
	)
}

func diagramToChart(diagram *tessellate.Diagram) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter)

	points := make([]opts.ScatterData, 0, len(diagram.Cells))
	for _, cell := range diagram.Cells {
		points = append(points, opts.ScatterData{Value: []float64{cell.Site.X, cell.Site.Y}})
	}
	scatter.AddSeries("generators", points).SetSeriesOptions(
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#2f6fed"}),
	)

	for _, cell := range diagram.Cells {
		boundary := cell.Cell.Boundary()
		if len(boundary) == 0 {
			continue
		}

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)

		data := make([]opts.LineData, 0, len(boundary)+1)
		for _, v := range boundary {
			data = append(data, opts.LineData{Value: []float64{cell.Site.X + v.X, cell.Site.Y + v.Y}})
		}
		data = append(data, opts.LineData{Value: []float64{cell.Site.X + boundary[0].X, cell.Site.Y + boundary[0].Y}})

		line.AddSeries("boundary", data).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{Width: 1.5, Color: "#999"}),
		)

		scatter.Overlap(line)
	}

	return scatter
}

// HTML renders a diagram as a two-pane report: a go-echarts scatter of
// generators overlaid with each cell's boundary on the left, and the
// logger's buffered output — colors translated from ANSI into inline
// spans by Logger.HTML — on the right. Grounded on the reference
// program's diagramHandler/voronoiToEcharts.
func HTML(w io.Writer, diagram *tessellate.Diagram, logger *telemetry.Logger) error {
	if _, err := fmt.Fprintf(w, static.Header, len(diagram.Cells)); err != nil {
		return err
	}

	if err := diagramToChart(diagram).Render(w); err != nil {
		return fmt.Errorf("render: html: %w", err)
	}

	if _, err := io.WriteString(w, static.LogPaneStart); err != nil {
		return err
	}
	if _, err := io.WriteString(w, logger.HTML()); err != nil {
		return err
	}

	_, err := io.WriteString(w, static.Footer)
	return err
}
