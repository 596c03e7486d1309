package pointsource_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rxtech-lab/argo-graph/internal/pointserver"
	"github.com/rxtech-lab/argo-graph/internal/types"
	"github.com/rxtech-lab/argo-graph/pkg/errors"
	"github.com/rxtech-lab/argo-graph/pkg/pointsource"
	"github.com/stretchr/testify/suite"
)

type RemoteSourceTestSuite struct {
	suite.Suite
	server     *pointserver.Server
	httpServer *httptest.Server
	source     *pointsource.RemoteSource
}

func TestRemoteSourceSuite(t *testing.T) {
	suite.Run(t, new(RemoteSourceTestSuite))
}

func (suite *RemoteSourceTestSuite) SetupTest() {
	suite.server = pointserver.New(pointserver.ServerConfig{
		Prefix:     "/api",
		PointsPath: "test/points",
		MinCount:   1,
		MaxCount:   20,
		Shuffle:    true,
		Generator: pointsource.MockConfig{
			Seed:  7,
			XStep: 50,
			YMax:  1000,
		},
	}, nil)
	suite.httpServer = httptest.NewServer(suite.server.Handler())

	suite.source = pointsource.NewRemoteSource(pointsource.RemoteConfig{
		BaseURL:    suite.httpServer.URL + "/api",
		PointsPath: "test/points",
		MinCount:   1,
		MaxCount:   20,
		Timeout:    5 * time.Second,
	}, nil)
}

func (suite *RemoteSourceTestSuite) TearDownTest() {
	suite.httpServer.Close()
}

func (suite *RemoteSourceTestSuite) TestValidCounts() {
	for count := 1; count <= 20; count++ {
		points, err := suite.source.GetPoints(context.Background(), count)
		suite.Require().NoError(err)
		suite.Len(points, count)
	}

	suite.Equal(int64(20), suite.server.RequestCount())
}

func (suite *RemoteSourceTestSuite) TestOutOfBoundsMakesNoRequest() {
	for _, count := range []int{0, -1, 21, 100} {
		points, err := suite.source.GetPoints(context.Background(), count)
		suite.Nil(points)
		suite.True(errors.HasCode(err, errors.ErrCodeCountOutOfBounds))
		suite.Equal("Count is out of bounds 1..20", errors.Message(err))
	}

	suite.Equal(int64(0), suite.server.RequestCount())
}

func (suite *RemoteSourceTestSuite) TestServerErrorStatus() {
	suite.server.SetFailureStatus(http.StatusInternalServerError)

	_, err := suite.source.GetPoints(context.Background(), 5)
	suite.True(errors.HasCode(err, errors.ErrCodeUnexpectedStatus))
	suite.Equal("Request has failed with error code: 500", errors.Message(err))
	suite.Equal(int64(1), suite.server.RequestCount())
}

func (suite *RemoteSourceTestSuite) TestUnreachableServer() {
	suite.httpServer.Close()

	_, err := suite.source.GetPoints(context.Background(), 5)
	suite.True(errors.HasCode(err, errors.ErrCodeRequestFailed))
}

func (suite *RemoteSourceTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.source.GetPoints(ctx, 5)
	suite.ErrorIs(err, context.Canceled)
}

func (suite *RemoteSourceTestSuite) newSource(handler http.HandlerFunc, basePath string) *pointsource.RemoteSource {
	server := httptest.NewServer(handler)
	suite.T().Cleanup(server.Close)

	return pointsource.NewRemoteSource(pointsource.RemoteConfig{
		BaseURL:    server.URL + basePath,
		PointsPath: "test/points",
		MinCount:   1,
		MaxCount:   20,
		Timeout:    time.Second,
	}, nil)
}

func (suite *RemoteSourceTestSuite) TestParsesPayload() {
	var calls atomic.Int64
	source := suite.newSource(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/api/test/points" || r.URL.Query().Get("count") != "3" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"points":[{"x":10.5,"y":1},{"x":-3,"y":2.5},{"x":0,"y":-7}]}`))
	}, "/api/")

	points, err := source.GetPoints(context.Background(), 3)
	suite.Require().NoError(err)
	suite.Equal(types.PointSet{{X: 10.5, Y: 1}, {X: -3, Y: 2.5}, {X: 0, Y: -7}}, points)
	suite.Equal(int64(1), calls.Load())
}

func (suite *RemoteSourceTestSuite) TestMalformedPayload() {
	source := suite.newSource(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"points": [`))
	}, "")

	_, err := source.GetPoints(context.Background(), 3)
	suite.True(errors.HasCode(err, errors.ErrCodeResponseParseFailed), "got %v", err)
}
