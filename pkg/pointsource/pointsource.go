// Package pointsource provides the sources the graph controller requests points from.
package pointsource

import (
	"context"

	"github.com/rxtech-lab/argo-graph/internal/config"
	"github.com/rxtech-lab/argo-graph/internal/logger"
	"github.com/rxtech-lab/argo-graph/internal/types"
	"github.com/rxtech-lab/argo-graph/pkg/errors"
)

// PointSource asynchronously produces a set of points for a requested count.
type PointSource interface {
	// GetPoints returns count points, or an error whose message (see errors.Message)
	// is suitable for showing to the user. Implementations must honour ctx cancellation.
	GetPoints(ctx context.Context, count int) (types.PointSet, error)
}

// NewPointSource creates the point source selected by the configuration.
func NewPointSource(cfg config.Config, log *logger.Logger) (PointSource, error) {
	switch cfg.Source {
	case config.SourceMock:
		return NewMockSource(MockConfig{
			Seed:         cfg.Mock.Seed,
			Delay:        cfg.Mock.Delay,
			XStep:        cfg.Mock.XStep,
			YMax:         cfg.Mock.YMax,
			FailureRate:  cfg.Mock.FailureRate,
			Reproducible: cfg.Mock.Reproducible,
		}), nil
	case config.SourceRemote:
		return NewRemoteSource(RemoteConfig{
			BaseURL:    cfg.BaseURL,
			PointsPath: cfg.PointsPath,
			MinCount:   cfg.MinCount,
			MaxCount:   cfg.MaxCount,
			Timeout:    cfg.RequestTimeout,
		}, log), nil
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidConfiguration, "unsupported point source: %s", cfg.Source)
	}
}
