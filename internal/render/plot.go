package render

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/rxtech-lab/argo-graph/internal/types"
	"github.com/rxtech-lab/argo-graph/pkg/errors"
)

// PlotOptions controls the terminal chart.
type PlotOptions struct {
	// Width is the number of plotted columns, excluding the y axis labels.
	Width int
	// Height is the number of plotted rows.
	Height int
	// Caption is printed below the chart. Empty means the default "<style>, <n> points".
	Caption string
	// Color is the line colour; zero keeps the terminal default.
	Color asciigraph.AnsiColor
}

// Plot draws points as a terminal line chart in the given style.
func Plot(points types.PointSet, style types.GraphType, options PlotOptions) (string, error) {
	if len(points) == 0 {
		return "", errors.New(errors.ErrCodeRenderFailed, "No points to plot")
	}

	if options.Width < 2 || options.Height < 1 {
		return "", errors.Newf(errors.ErrCodeRenderFailed, "Plot area %dx%d is too small", options.Width, options.Height)
	}

	caption := options.Caption
	if caption == "" {
		caption = fmt.Sprintf("%s, %d points", style.Label(), len(points))
	}

	_, _, minY, maxY := Bounds(points)

	plotOptions := []asciigraph.Option{
		asciigraph.Width(options.Width),
		asciigraph.Height(options.Height),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	}

	// A flat series still needs a non-empty y range.
	if minY == maxY {
		plotOptions = append(plotOptions, asciigraph.LowerBound(minY-1), asciigraph.UpperBound(maxY+1))
	}

	if options.Color != 0 {
		plotOptions = append(plotOptions, asciigraph.SeriesColors(options.Color))
	}

	return asciigraph.Plot(Resample(points, style, options.Width), plotOptions...), nil
}
