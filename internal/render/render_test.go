package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rxtech-lab/argo-graph/internal/types"
	"github.com/rxtech-lab/argo-graph/mocks"
	"github.com/rxtech-lab/argo-graph/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RenderTestSuite struct {
	suite.Suite
	points types.PointSet
}

func TestRenderSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}

func (s *RenderTestSuite) SetupTest() {
	s.points = types.PointSet{
		{X: 0, Y: 0},
		{X: 50, Y: 100},
		{X: 100, Y: 40},
		{X: 150, Y: 40},
	}
}

func (s *RenderTestSuite) TestSharpSegments() {
	segments := Segments(s.points, types.GraphTypeSharp)
	s.Require().Len(segments, 3)

	for i, segment := range segments {
		s.False(segment.Cubic)
		s.Equal(s.points[i], segment.From)
		s.Equal(s.points[i+1], segment.To)
	}
}

func (s *RenderTestSuite) TestSmoothSegmentsUseMidpointControls() {
	segments := Segments(s.points, types.GraphTypeSmooth)
	s.Require().Len(segments, 3)

	first := segments[0]
	s.True(first.Cubic)
	s.Equal(types.Point{X: 25, Y: 0}, first.Control1)
	s.Equal(types.Point{X: 25, Y: 100}, first.Control2)

	second := segments[1]
	s.Equal(types.Point{X: 75, Y: 100}, second.Control1)
	s.Equal(types.Point{X: 75, Y: 40}, second.Control2)
}

func (s *RenderTestSuite) TestSegmentsNeedTwoPoints() {
	s.Nil(Segments(nil, types.GraphTypeSmooth))
	s.Nil(Segments(types.PointSet{{X: 1, Y: 1}}, types.GraphTypeSharp))
}

func (s *RenderTestSuite) TestSegmentAtEndpoints() {
	for _, style := range []types.GraphType{types.GraphTypeSharp, types.GraphTypeSmooth} {
		for _, segment := range Segments(s.points, style) {
			s.Equal(segment.From, segment.At(0), "style %s", style)
			s.Equal(segment.To, segment.At(1), "style %s", style)
		}
	}

	// The midpoint of a smooth segment lies halfway in both directions.
	mid := Segments(s.points, types.GraphTypeSmooth)[0].At(0.5)
	s.InDelta(25, mid.X, 1e-4)
	s.InDelta(50, mid.Y, 1e-4)
}

func (s *RenderTestSuite) TestSampleSharpCopiesPoints() {
	sampled := Sample(s.points, types.GraphTypeSharp, 8)
	s.Equal(s.points, sampled)

	sampled[0].Y = 999
	s.Equal(float32(0), s.points[0].Y)
}

func (s *RenderTestSuite) TestSampleSmooth() {
	sampled := Sample(s.points, types.GraphTypeSmooth, 4)
	s.Len(sampled, 3*4+1)
	s.Equal(s.points[0], sampled[0])
	s.Equal(s.points[len(s.points)-1], sampled[len(sampled)-1])
	s.True(sampled.IsSortedByX())

	// Every original point is on the path.
	for i, p := range s.points {
		s.Equal(p, sampled[i*4])
	}
}

func (s *RenderTestSuite) TestResample() {
	values := Resample(s.points, types.GraphTypeSharp, 7)
	s.Require().Len(values, 7)
	s.InDelta(0, values[0], 1e-6)
	s.InDelta(100, values[2], 1e-6)
	s.InDelta(40, values[6], 1e-6)
	s.InDelta(70, values[3], 1e-6)

	smooth := Resample(s.points, types.GraphTypeSmooth, 7)
	s.Require().Len(smooth, 7)
	s.InDelta(0, smooth[0], 1e-4)
	s.InDelta(100, smooth[2], 1e-4)
	s.InDelta(40, smooth[4], 1e-4)
	s.InDelta(40, smooth[5], 1e-4)

	for _, v := range smooth {
		s.GreaterOrEqual(v, -1e-4)
		s.LessOrEqual(v, 100+1e-4)
	}
}

func (s *RenderTestSuite) TestResampleEdgeCases() {
	s.Nil(Resample(nil, types.GraphTypeSmooth, 10))
	s.Nil(Resample(s.points, types.GraphTypeSmooth, 0))
	s.Equal([]float64{7, 7, 7}, Resample(types.PointSet{{X: 3, Y: 7}}, types.GraphTypeSmooth, 3))

	// Duplicate x values do not divide by zero.
	values := Resample(types.PointSet{{X: 0, Y: 1}, {X: 0, Y: 5}, {X: 10, Y: 5}}, types.GraphTypeSmooth, 3)
	s.Len(values, 3)
	for _, v := range values {
		s.False(v != v, "NaN in %v", values)
	}
}

func (s *RenderTestSuite) TestPlot() {
	out, err := Plot(s.points, types.GraphTypeSmooth, PlotOptions{Width: 40, Height: 10})
	s.Require().NoError(err)
	s.Contains(out, "Smooth, 4 points")
	s.Contains(out, "100.0")

	out, err = Plot(s.points, types.GraphTypeSharp, PlotOptions{Width: 40, Height: 10, Caption: "custom"})
	s.Require().NoError(err)
	s.Contains(out, "custom")
	s.NotContains(out, "Sharp, 4 points")
}

func (s *RenderTestSuite) TestPlotFlatSeries() {
	out, err := Plot(types.PointSet{{X: 0, Y: 5}, {X: 10, Y: 5}}, types.GraphTypeSharp, PlotOptions{Width: 20, Height: 5})
	s.Require().NoError(err)
	s.NotEmpty(out)
}

func (s *RenderTestSuite) TestPlotErrors() {
	_, err := Plot(nil, types.GraphTypeSharp, PlotOptions{Width: 40, Height: 10})
	s.True(errors.HasCode(err, errors.ErrCodeRenderFailed))

	_, err = Plot(s.points, types.GraphTypeSharp, PlotOptions{Width: 1, Height: 10})
	s.True(errors.HasCode(err, errors.ErrCodeRenderFailed))
}

func TestExportPNG(t *testing.T) {
	pngMagic := []byte{0x89, 'P', 'N', 'G'}

	tests := []struct {
		name   string
		points types.PointSet
		style  types.GraphType
	}{
		{"smooth", types.PointSet{{X: 0, Y: 10}, {X: 50, Y: 700}, {X: 100, Y: 300}}, types.GraphTypeSmooth},
		{"sharp", types.PointSet{{X: 0, Y: 10}, {X: 50, Y: 700}, {X: 100, Y: 300}}, types.GraphTypeSharp},
		{"single point", types.PointSet{{X: 5, Y: 5}}, types.GraphTypeSmooth},
		{"flat", types.PointSet{{X: 0, Y: 5}, {X: 1, Y: 5}}, types.GraphTypeSharp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := ExportPNG(&buf, tt.points, tt.style, "Points")
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
		})
	}
}

func TestExportPNGWithoutPoints(t *testing.T) {
	var buf bytes.Buffer
	err := ExportPNG(&buf, nil, types.GraphTypeSmooth, "Points")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeRenderFailed))
	assert.True(t, strings.Contains(err.Error(), "No points to export"))
	assert.Zero(t, buf.Len())
}

func TestSmoothPathStaysWithinBounds(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		points := mocks.NewPointGenerator(seed).Generate(mocks.DefaultConfig()).SortedByX()
		_, _, minY, maxY := Bounds(points)

		sampled := Sample(points, types.GraphTypeSmooth, 8)
		require.True(t, sampled.IsSortedByX(), "seed %d", seed)

		for _, p := range sampled {
			assert.GreaterOrEqual(t, float64(p.Y), minY-1e-3, "seed %d", seed)
			assert.LessOrEqual(t, float64(p.Y), maxY+1e-3, "seed %d", seed)
		}

		for _, v := range Resample(points, types.GraphTypeSmooth, 120) {
			assert.GreaterOrEqual(t, v, minY-1e-3, "seed %d", seed)
			assert.LessOrEqual(t, v, maxY+1e-3, "seed %d", seed)
		}
	}
}

func BenchmarkResampleSmooth(b *testing.B) {
	points := mocks.Generate1K().SortedByX()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Resample(points, types.GraphTypeSmooth, 200)
	}
}

func BenchmarkPlot(b *testing.B) {
	points := mocks.Generate1K().SortedByX()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Plot(points, types.GraphTypeSharp, PlotOptions{Width: 120, Height: 20})
	}
}
