package pointsource

import (
	"context"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rxtech-lab/argo-graph/internal/logger"
	"github.com/rxtech-lab/argo-graph/internal/types"
	"github.com/rxtech-lab/argo-graph/internal/version"
	"github.com/rxtech-lab/argo-graph/pkg/errors"
	"go.uber.org/zap"
)

// RemoteConfig configures RemoteSource.
type RemoteConfig struct {
	BaseURL    string
	PointsPath string
	MinCount   int
	MaxCount   int
	Timeout    time.Duration
}

// RemoteSource fetches points from the HTTP points API:
// GET {BaseURL}/{PointsPath}?count={n}.
type RemoteSource struct {
	client *resty.Client
	config RemoteConfig
	logger *logger.Logger
}

// NewRemoteSource creates a new RemoteSource.
func NewRemoteSource(config RemoteConfig, log *logger.Logger) *RemoteSource {
	if log == nil {
		log = logger.NewNopLogger()
	}

	client := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	return &RemoteSource{
		client: client,
		config: config,
		logger: log,
	}
}

// GetPoints implements PointSource. Counts outside [MinCount, MaxCount] fail
// without contacting the server.
func (r *RemoteSource) GetPoints(ctx context.Context, count int) (types.PointSet, error) {
	if count < r.config.MinCount || count > r.config.MaxCount {
		return nil, errors.Newf(errors.ErrCodeCountOutOfBounds, "Count is out of bounds %d..%d", r.config.MinCount, r.config.MaxCount)
	}

	requestID := uuid.NewString()
	r.logger.Debug("Requesting points",
		zap.String("request_id", requestID),
		zap.Int("count", count),
	)

	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", requestID).
		SetQueryParam("count", strconv.Itoa(count)).
		Get(r.config.PointsPath)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		return nil, errors.Wrap(errors.ErrCodeRequestFailed, "Unable to reach the points server", err)
	}

	if err := version.CheckAPICompatibility(version.APIVersion, resp.Header().Get(version.APIVersionHeader)); err != nil {
		r.logger.Warn("Points server API version is not compatible", zap.String("request_id", requestID), zap.Error(err))
	}

	if !resp.IsSuccess() {
		r.logger.Debug("Points request failed",
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode()),
		)

		return nil, errors.Newf(errors.ErrCodeUnexpectedStatus, "Request has failed with error code: %d", resp.StatusCode())
	}

	var payload types.Points
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, errors.Wrap(errors.ErrCodeResponseParseFailed, "Unable to parse points response", err)
	}

	r.logger.Debug("Received points",
		zap.String("request_id", requestID),
		zap.Int("count", len(payload.Points)),
	)

	return payload.Points, nil
}
