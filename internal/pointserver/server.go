// Package pointserver provides a local points API server.
// It serves GET {prefix}/{points path}?count=n with the same contract as the
// remote points API, backed by the mock generator.
package pointserver

import (
	"context"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/rxtech-lab/argo-graph/internal/logger"
	"github.com/rxtech-lab/argo-graph/internal/types"
	"github.com/rxtech-lab/argo-graph/internal/version"
	"github.com/rxtech-lab/argo-graph/pkg/pointsource"
	"go.uber.org/zap"
)

// ServerConfig holds configuration for the points server.
type ServerConfig struct {
	// Prefix is the path prefix of the API, e.g. "/api"
	Prefix string
	// PointsPath is the endpoint path below the prefix, e.g. "test/points"
	PointsPath string
	// MinCount and MaxCount bound the accepted count
	MinCount int
	MaxCount int
	// Shuffle returns points in random x order, like the real API does
	Shuffle bool
	// Generator configures point generation
	Generator pointsource.MockConfig
}

// Server is a local points API server.
type Server struct {
	mu sync.RWMutex

	config    ServerConfig
	generator *pointsource.MockSource
	shuffler  *rand.Rand
	logger    *logger.Logger

	// failureStatus, when non-zero, is returned for every request
	failureStatus int
	requests      atomic.Int64

	httpServer *http.Server
	listener   net.Listener
}

type errorResponse struct {
	Error string `json:"error"`
}

// New creates a new points server.
func New(config ServerConfig, log *logger.Logger) *Server {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Server{
		config:    config,
		generator: pointsource.NewMockSource(config.Generator),
		shuffler:  rand.New(rand.NewSource(config.Generator.Seed)),
		logger:    log,
	}
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	path := strings.TrimRight(s.config.Prefix, "/") + "/" + strings.TrimLeft(s.config.PointsPath, "/")
	router.HandleFunc(path, s.handlePoints).Methods(http.MethodGet)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.Use(s.versionMiddleware)

	return router
}

// Start starts the server on the given address.
// If address is empty or ":0", a random available port is used.
func (s *Server) Start(address string) error {
	if address == "" {
		address = ":0"
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != http.ErrServerClosed {
			s.logger.Error("Points server stopped", zap.Error(err))
		}
	}()

	s.logger.Info("Points server listening", zap.String("address", listener.Addr().String()))

	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}

// Address returns the address the server is listening on.
func (s *Server) Address() string {
	if s.listener == nil {
		return ""
	}

	return s.listener.Addr().String()
}

// BaseURL returns the base URL clients should use, including the prefix.
func (s *Server) BaseURL() string {
	return "http://" + s.Address() + strings.TrimRight(s.config.Prefix, "/")
}

// SetFailureStatus makes every subsequent request fail with the given status.
// Zero restores normal behaviour.
func (s *Server) SetFailureStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failureStatus = status
}

// RequestCount returns how many points requests the server has received.
func (s *Server) RequestCount() int64 {
	return s.requests.Load()
}

func (s *Server) versionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(version.APIVersionHeader, version.APIVersion)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePoints(w http.ResponseWriter, r *http.Request) {
	s.requests.Add(1)

	requestID := r.Header.Get("X-Request-Id")

	s.mu.RLock()
	failureStatus := s.failureStatus
	s.mu.RUnlock()

	if failureStatus != 0 {
		s.logger.Debug("Failing points request on purpose",
			zap.String("request_id", requestID),
			zap.Int("status", failureStatus),
		)
		writeJSON(w, failureStatus, errorResponse{Error: http.StatusText(failureStatus)})

		return
	}

	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "count must be an integer"})
		return
	}

	if count < s.config.MinCount || count > s.config.MaxCount {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: fmt.Sprintf("count must be within %d..%d", s.config.MinCount, s.config.MaxCount),
		})

		return
	}

	points, err := s.generator.GetPoints(r.Context(), count)
	if err != nil {
		s.logger.Debug("Point generation failed", zap.String("request_id", requestID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})

		return
	}

	if s.config.Shuffle {
		s.mu.Lock()
		s.shuffler.Shuffle(len(points), func(i, j int) {
			points[i], points[j] = points[j], points[i]
		})
		s.mu.Unlock()
	}

	s.logger.Debug("Served points", zap.String("request_id", requestID), zap.Int("count", count))
	writeJSON(w, http.StatusOK, types.Points{Points: points})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
