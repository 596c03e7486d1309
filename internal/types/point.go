package types

import (
	"cmp"
	"slices"
)

// Point is a single (x, y) sample as returned by a point source.
type Point struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

// PointSet is an ordered sequence of points. Sources make no ordering promise.
type PointSet []Point

// Points is the wire envelope of the points endpoint.
type Points struct {
	Points PointSet `json:"points"`
}

// SortedByX returns a copy of the set sorted ascending by x.
// The sort is stable: points sharing an x keep their source order.
func (p PointSet) SortedByX() PointSet {
	sorted := slices.Clone(p)
	slices.SortStableFunc(sorted, func(a, b Point) int {
		return cmp.Compare(a.X, b.X)
	})

	return sorted
}

// IsSortedByX reports whether the set is non-decreasing by x.
func (p PointSet) IsSortedByX() bool {
	return slices.IsSortedFunc(p, func(a, b Point) int {
		return cmp.Compare(a.X, b.X)
	})
}

// XValues returns the x coordinates widened to float64.
func (p PointSet) XValues() []float64 {
	xs := make([]float64, len(p))
	for i, pt := range p {
		xs[i] = float64(pt.X)
	}

	return xs
}

// YValues returns the y coordinates widened to float64.
func (p PointSet) YValues() []float64 {
	ys := make([]float64, len(p))
	for i, pt := range p {
		ys[i] = float64(pt.Y)
	}

	return ys
}
