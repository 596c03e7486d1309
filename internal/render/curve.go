// Package render turns a sorted point set into drawable geometry.
//
// Sharp style draws a polyline through the points. Smooth style draws one cubic
// Bezier per pair of consecutive points with both control points placed at the
// horizontal midpoint of the pair:
//
//	P0 = (x0, y0)  C1 = ((x0+x1)/2, y0)  C2 = ((x0+x1)/2, y1)  P1 = (x1, y1)
//
// The x coordinate of such a segment grows monotonically with t, which keeps the
// curve a function of x and lets it be resampled on a uniform x grid.
package render

import (
	"math"

	"github.com/rxtech-lab/argo-graph/internal/types"
)

// bisectionSteps bounds the search for t given x; 2^-32 of a segment width is well below a terminal cell.
const bisectionSteps = 32

// Segment is one piece of the rendered path between two consecutive points.
type Segment struct {
	From     types.Point
	Control1 types.Point
	Control2 types.Point
	To       types.Point
	// Cubic is false for straight polyline segments; control points then equal the endpoints.
	Cubic bool
}

// Segments returns the path pieces for points in the given style. Points must be
// sorted by x. Fewer than two points produce no segments.
func Segments(points types.PointSet, style types.GraphType) []Segment {
	if len(points) < 2 {
		return nil
	}

	segments := make([]Segment, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		from, to := points[i-1], points[i]

		if style == types.GraphTypeSharp {
			segments = append(segments, Segment{From: from, Control1: from, Control2: to, To: to})
			continue
		}

		midX := (from.X + to.X) / 2
		segments = append(segments, Segment{
			From:     from,
			Control1: types.Point{X: midX, Y: from.Y},
			Control2: types.Point{X: midX, Y: to.Y},
			To:       to,
			Cubic:    true,
		})
	}

	return segments
}

// At returns the point of the segment at parameter t in [0, 1].
func (s Segment) At(t float64) types.Point {
	if !s.Cubic {
		return types.Point{
			X: float32(lerp(float64(s.From.X), float64(s.To.X), t)),
			Y: float32(lerp(float64(s.From.Y), float64(s.To.Y), t)),
		}
	}

	return types.Point{
		X: float32(bezier(float64(s.From.X), float64(s.Control1.X), float64(s.Control2.X), float64(s.To.X), t)),
		Y: float32(bezier(float64(s.From.Y), float64(s.Control1.Y), float64(s.Control2.Y), float64(s.To.Y), t)),
	}
}

// valueAt returns y of the segment at x, which must lie within [From.X, To.X].
func (s Segment) valueAt(x float64) float64 {
	x0, x1 := float64(s.From.X), float64(s.To.X)
	y0, y1 := float64(s.From.Y), float64(s.To.Y)

	if x1 == x0 {
		return y1
	}

	if !s.Cubic {
		return lerp(y0, y1, (x-x0)/(x1-x0))
	}

	cx1, cx2 := float64(s.Control1.X), float64(s.Control2.X)
	lo, hi := 0.0, 1.0
	for i := 0; i < bisectionSteps; i++ {
		mid := (lo + hi) / 2
		if bezier(x0, cx1, cx2, x1, mid) < x {
			lo = mid
		} else {
			hi = mid
		}
	}

	return bezier(y0, float64(s.Control1.Y), float64(s.Control2.Y), y1, (lo+hi)/2)
}

// Sample flattens the path into points. Sharp style returns a copy of points;
// Smooth style evaluates every cubic segment at perSegment+1 evenly spaced parameters,
// sharing the endpoint between neighbouring segments.
func Sample(points types.PointSet, style types.GraphType, perSegment int) types.PointSet {
	if style == types.GraphTypeSharp || len(points) < 2 {
		return append(types.PointSet(nil), points...)
	}

	perSegment = max(perSegment, 1)
	segments := Segments(points, style)

	sampled := make(types.PointSet, 0, len(segments)*perSegment+1)
	sampled = append(sampled, points[0])

	for _, segment := range segments {
		for i := 1; i <= perSegment; i++ {
			sampled = append(sampled, segment.At(float64(i)/float64(perSegment)))
		}
	}

	return sampled
}

// Resample evaluates the path at n evenly spaced x positions between the first and
// last point. A single point yields n copies of its y value.
func Resample(points types.PointSet, style types.GraphType, n int) []float64 {
	if len(points) == 0 || n <= 0 {
		return nil
	}

	values := make([]float64, n)
	if len(points) == 1 || n == 1 {
		for i := range values {
			values[i] = float64(points[0].Y)
		}

		return values
	}

	segments := Segments(points, style)
	minX, maxX := float64(points[0].X), float64(points[len(points)-1].X)
	step := (maxX - minX) / float64(n-1)

	current := 0
	for i := range values {
		x := minX + step*float64(i)
		if i == n-1 {
			x = maxX
		}

		for current < len(segments)-1 && float64(segments[current].To.X) < x {
			current++
		}

		values[i] = segments[current].valueAt(x)
	}

	return values
}

// Bounds returns the extent of the path. Cubic segments stay within the y range of
// their endpoints, so the bounds of the points are the bounds of both styles.
func Bounds(points types.PointSet) (minX, maxX, minY, maxY float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}

	minX, maxX = math.Inf(1), math.Inf(-1)
	minY, maxY = math.Inf(1), math.Inf(-1)

	for _, p := range points {
		minX = min(minX, float64(p.X))
		maxX = max(maxX, float64(p.X))
		minY = min(minY, float64(p.Y))
		maxY = max(maxY, float64(p.Y))
	}

	return minX, maxX, minY, maxY
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func bezier(p0, p1, p2, p3, t float64) float64 {
	u := 1 - t

	return u*u*u*p0 + 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t*p3
}
