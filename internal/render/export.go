package render

import (
	"io"

	"github.com/rxtech-lab/argo-graph/internal/types"
	"github.com/rxtech-lab/argo-graph/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	exportWidth   = 1024
	exportHeight  = 512
	samplesPerSeg = 16
)

var (
	lineColor  = drawing.ColorFromHex("3b82f6")
	pointColor = drawing.ColorFromHex("1e3a8a")
)

// ExportPNG renders points as a PNG chart in the given style and writes it to w.
// The path is drawn as a line and the original points as dots on top of it.
func ExportPNG(w io.Writer, points types.PointSet, style types.GraphType, title string) error {
	if len(points) == 0 {
		return errors.New(errors.ErrCodeRenderFailed, "No points to export")
	}

	path := Sample(points, style, samplesPerSeg)
	pathX, pathY := path.XValues(), path.YValues()
	dotX, dotY := points.XValues(), points.YValues()

	// go-chart needs at least two distinct x values.
	if len(pathX) == 1 {
		pathX = []float64{pathX[0], pathX[0] + 1}
		pathY = []float64{pathY[0], pathY[0]}
	}

	minX, maxX, minY, maxY := Bounds(points)
	if maxX <= minX {
		maxX = minX + 1
	}

	if maxY <= minY {
		minY, maxY = minY-1, maxY+1
	}

	graph := chart.Chart{
		Title:  title,
		Width:  exportWidth,
		Height: exportHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:  "x",
			Range: &chart.ContinuousRange{Min: minX, Max: maxX},
		},
		YAxis: chart.YAxis{
			Name:  "y",
			Range: &chart.ContinuousRange{Min: minY, Max: maxY},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    style.Label(),
				XValues: pathX,
				YValues: pathY,
				Style: chart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
				},
			},
			chart.ContinuousSeries{
				Name:    "points",
				XValues: dotX,
				YValues: dotY,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
					DotColor:    pointColor,
				},
			},
		},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, "Unable to render chart", err)
	}

	return nil
}
