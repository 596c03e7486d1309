package mocks

import (
	"math"
	"math/rand"

	"github.com/rxtech-lab/argo-graph/internal/types"
)

// PointGenerator generates point sets shaped like real API responses: a random
// walk in y, irregular x spacing, unsorted order and repeated x values.
type PointGenerator struct {
	rng *rand.Rand
}

// NewPointGenerator creates a new PointGenerator with the given seed.
// Use a fixed seed for reproducible results in tests.
func NewPointGenerator(seed int64) *PointGenerator {
	return &PointGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GeneratorConfig configures how points are generated.
type GeneratorConfig struct {
	// Count is the number of points to generate
	Count int
	// StartX is the x value of the first point
	StartX float64
	// XStep is the average distance between consecutive x values
	XStep float64
	// XJitter randomizes the x spacing (0.0 to 1.0 of XStep)
	XJitter float64
	// InitialY is the y value of the first point
	InitialY float64
	// Volatility is the standard deviation of a single y step
	Volatility float64
	// DuplicateRate is the probability (0..1) that a point repeats the previous x value
	DuplicateRate float64
	// Shuffle returns the points in random order
	Shuffle bool
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Count:         20,
		StartX:        -500,
		XStep:         50,
		XJitter:       0.5,
		InitialY:      0,
		Volatility:    100,
		DuplicateRate: 0.1,
		Shuffle:       true,
	}
}

// Generate creates a point set based on the configuration.
func (g *PointGenerator) Generate(config GeneratorConfig) types.PointSet {
	points := make(types.PointSet, config.Count)
	x := config.StartX
	y := config.InitialY

	for i := 0; i < config.Count; i++ {
		if i > 0 && g.rng.Float64() >= config.DuplicateRate {
			jitter := (g.rng.Float64()*2 - 1) * config.XJitter
			x += config.XStep * (1 + jitter)
		}

		// Box-Muller transform for a normally distributed step
		u1 := 1 - g.rng.Float64()
		u2 := g.rng.Float64()
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
		y += config.Volatility * z

		points[i] = types.Point{
			X: float32(roundToDecimals(x, 1)),
			Y: float32(roundToDecimals(y, 1)),
		}
	}

	if config.Shuffle {
		g.rng.Shuffle(len(points), func(i, j int) {
			points[i], points[j] = points[j], points[i]
		})
	}

	return points
}

// Generate1K is a convenience function to generate 1,000 unsorted points
// with default settings for benchmarking.
func Generate1K() types.PointSet {
	gen := NewPointGenerator(42) // Fixed seed for reproducibility
	config := DefaultConfig()
	config.Count = 1000
	return gen.Generate(config)
}

// roundToDecimals rounds a float64 to the specified number of decimal places.
func roundToDecimals(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}
