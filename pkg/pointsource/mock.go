package pointsource

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/rxtech-lab/argo-graph/internal/types"
	"github.com/rxtech-lab/argo-graph/pkg/errors"
)

// MockConfig configures how MockSource generates points.
type MockConfig struct {
	// Seed is the seed of the pseudo-random y values
	Seed int64
	// Delay is the simulated latency of every request
	Delay time.Duration
	// XStep is the distance between consecutive x values
	XStep float32
	// YMax is the exclusive upper bound of y values
	YMax float32
	// FailureRate is the probability (0..1) that a request fails
	FailureRate float64
	// Reproducible reseeds the generator on every request so that equal counts
	// always yield equal point sets. Otherwise one random stream is shared by all requests.
	Reproducible bool
}

// MockSource synthesizes points locally after a simulated delay.
type MockSource struct {
	mu     sync.Mutex
	rng    *rand.Rand
	config MockConfig
}

// NewMockSource creates a new MockSource with the given configuration.
func NewMockSource(config MockConfig) *MockSource {
	return &MockSource{
		rng:    rand.New(rand.NewSource(config.Seed)),
		config: config,
	}
}

// GetPoints implements PointSource.
func (m *MockSource) GetPoints(ctx context.Context, count int) (types.PointSet, error) {
	if count < 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "Count must not be negative: %d", count)
	}

	if m.config.Delay > 0 {
		timer := time.NewTimer(m.config.Delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	return m.generate(count)
}

func (m *MockSource) generate(count int) (types.PointSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rng := m.rng
	if m.config.Reproducible {
		rng = rand.New(rand.NewSource(m.config.Seed))
	}

	// Only roll for failure when failures are enabled so the point stream
	// stays identical to a failure-free generator.
	if m.config.FailureRate > 0 && rng.Float64() < m.config.FailureRate {
		return nil, errors.New(errors.ErrCodeSimulatedFailure, "Unable to load points")
	}

	points := make(types.PointSet, count)
	for i := range points {
		points[i] = types.Point{
			X: float32(i) * m.config.XStep,
			Y: rng.Float32() * m.config.YMax,
		}
	}

	return points, nil
}
