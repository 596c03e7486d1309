// Package graph implements the controller that turns requested-count input into
// published graph state.
//
// A single loop goroutine owns every transition. Each pipeline run is tagged with
// a generation; results and timer ticks carrying an older generation are dropped,
// so only the most recently issued request can ever publish (latest wins).
package graph

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-graph/internal/logger"
	"github.com/rxtech-lab/argo-graph/internal/types"
	"github.com/rxtech-lab/argo-graph/pkg/errors"
	"github.com/rxtech-lab/argo-graph/pkg/pointsource"
	"go.uber.org/zap"
)

const eventBufferSize = 64

// Config configures the Controller.
type Config struct {
	// InitialCount is requested when Run starts.
	InitialCount int
	// MaxCount is the upper clamp of the requested count.
	MaxCount int
	// OutdatedAfter is the idle time after settling before data is marked outdated.
	OutdatedAfter time.Duration
	// GraphType is the initial render style.
	GraphType types.GraphType
}

// Controller owns the graph state machine:
//
//	count change/refresh -> Loading(points) -> Idle(sorted result) | Error(points, message)
//	settled + OutdatedAfter -> Outdated(points)
type Controller struct {
	source pointsource.PointSource
	config Config
	logger *logger.Logger

	events       chan any
	done         chan struct{}
	running      atomic.Bool
	shutdownOnce sync.Once

	mu          sync.RWMutex
	state       State
	subscribers map[int]chan State
	nextSubID   int
	closed      bool

	// Owned by the loop goroutine.
	cancelFetch   context.CancelFunc
	outdatedTimer *time.Timer
}

// NewController creates a new Controller. Call Run to start processing.
func NewController(source pointsource.PointSource, config Config, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.NewNopLogger()
	}

	config.InitialCount = min(max(config.InitialCount, 0), config.MaxCount)
	if config.GraphType == "" {
		config.GraphType = types.GraphTypeSmooth
	}

	return &Controller{
		source:      source,
		config:      config,
		logger:      log,
		events:      make(chan any, eventBufferSize),
		done:        make(chan struct{}),
		state:       initialState(config.InitialCount, config.GraphType, strconv.Itoa(config.InitialCount)),
		subscribers: make(map[int]chan State),
	}
}

// Run processes events until ctx is cancelled. It requests the initial count first.
// Subscriber channels are closed when Run returns. A Controller runs once; later
// calls return ErrCodeControllerRunning.
func (c *Controller) Run(ctx context.Context) error {
	if !c.running.CompareAndSwap(false, true) {
		return errors.New(errors.ErrCodeControllerRunning, "controller has already been started")
	}
	defer c.shutdown()

	c.load(ctx, c.State().RequestedCount)

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-c.events:
			c.handle(ctx, msg)
		}
	}
}

// HandleEvent queues a user event. It is safe to call from any goroutine. Before
// Run starts at most 64 events are buffered and further calls block until Run
// drains them. Events sent after Run returned are dropped.
func (c *Controller) HandleEvent(event Event) {
	c.post(event)
}

// SetRequestedCount clamps n into [0, MaxCount] and runs the pipeline if the count changed.
func (c *Controller) SetRequestedCount(n int) {
	c.post(SetRequestedCount{Count: n})
}

// SetCountText submits count text as if typed and confirmed by the user.
func (c *Controller) SetCountText(text string) {
	c.post(CountTextInputDone{Text: text})
}

// Refresh re-runs the pipeline for the current count.
func (c *Controller) Refresh() {
	c.post(Refresh{})
}

// SetGraphRenderStyle stores the render preference.
func (c *Controller) SetGraphRenderStyle(graphType types.GraphType) {
	c.post(SetGraphType{GraphType: graphType})
}

// State returns the latest published state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state
}

// Subscribe returns a channel that always holds the latest state. Intermediate
// states are conflated when the reader is slower than the publisher.
// The returned function unsubscribes and closes the channel.
func (c *Controller) Subscribe() (<-chan State, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan State, 1)
	ch <- c.state

	if c.closed {
		close(ch)
		return ch, func() {}
	}

	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = ch

	var once sync.Once

	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()

			if sub, ok := c.subscribers[id]; ok {
				delete(c.subscribers, id)
				close(sub)
			}
		})
	}
}

func (c *Controller) post(msg any) {
	select {
	case c.events <- msg:
	case <-c.done:
	}
}

func (c *Controller) handle(ctx context.Context, msg any) {
	switch msg := msg.(type) {
	case SetRequestedCount:
		c.setCount(ctx, msg.Count, false)

	case CountTextInput:
		c.publish(func(s *State) {
			s.UI.CountInput = msg.Text
		})

	case CountTextInputDone:
		c.setCount(ctx, c.parseCount(msg.Text), true)

	case CountSliderInput:
		c.setCount(ctx, int(msg.Position), true)

	case SetGraphType:
		c.publish(func(s *State) {
			s.UI.GraphType = msg.GraphType
		})

	case Refresh:
		c.load(ctx, c.State().RequestedCount)

	case fetchResult:
		c.settle(ctx, msg)

	case outdatedTick:
		c.markOutdated(msg)
	}
}

// parseCount resolves count text. Blank text is 0; unparsable text is logged and also 0.
func (c *Controller) parseCount(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		c.logger.Warn("Unable to parse count input",
			zap.String("input", text),
			zap.Error(errors.Wrap(errors.ErrCodeInvalidCountInput, "count input is not an integer", err)),
		)

		return 0
	}

	return n
}

func (c *Controller) setCount(ctx context.Context, n int, rewriteInput bool) {
	count := min(max(n, 0), c.config.MaxCount)
	if count != n {
		c.logger.Debug("Clamped requested count", zap.Int("requested", n), zap.Int("count", count))
	}

	if rewriteInput {
		c.publish(func(s *State) {
			s.UI.CountInput = strconv.Itoa(count)
		})
	}

	// An unchanged count is not a change; Refresh re-runs explicitly.
	if count == c.State().RequestedCount {
		return
	}

	c.load(ctx, count)
}

// load starts a new pipeline generation, superseding whatever is in flight.
func (c *Controller) load(ctx context.Context, count int) {
	c.stopPipeline()

	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancelFetch = cancel

	var generation uint64
	c.publish(func(s *State) {
		s.Generation++
		generation = s.Generation
		s.RequestedCount = count
		s.GraphData = NewLoading(s.GraphData.Points())
	})

	c.logger.Info("Loading points", zap.Int("count", count), zap.Uint64("generation", generation))

	go func() {
		points, err := c.source.GetPoints(fetchCtx, count)
		c.post(fetchResult{
			generation: generation,
			count:      count,
			points:     points,
			err:        err,
		})
	}()
}

func (c *Controller) settle(ctx context.Context, result fetchResult) {
	if result.generation != c.State().Generation {
		c.logger.Debug("Dropping superseded result",
			zap.Int("count", result.count),
			zap.Uint64("generation", result.generation),
		)

		return
	}

	// The controller itself is shutting down.
	if ctx.Err() != nil && errors.Is(result.err, context.Canceled) {
		return
	}

	if c.cancelFetch != nil {
		c.cancelFetch()
		c.cancelFetch = nil
	}

	if result.err != nil {
		message := errors.Message(result.err)
		c.logger.Warn("Failed to load points",
			zap.Int("count", result.count),
			zap.Uint64("generation", result.generation),
			zap.Error(result.err),
		)
		c.publish(func(s *State) {
			s.GraphData = NewError(s.GraphData.Points(), message)
		})
	} else {
		sorted := result.points.SortedByX()
		c.logger.Info("Loaded points",
			zap.Int("count", result.count),
			zap.Int("received", len(sorted)),
			zap.Uint64("generation", result.generation),
		)
		c.publish(func(s *State) {
			s.GraphData = NewIdle(optional.Some(sorted))
		})
	}

	generation := result.generation
	c.outdatedTimer = time.AfterFunc(c.config.OutdatedAfter, func() {
		c.post(outdatedTick{generation: generation})
	})
}

func (c *Controller) markOutdated(tick outdatedTick) {
	state := c.State()
	if tick.generation != state.Generation {
		return
	}

	kind := state.GraphData.Kind()
	if kind != GraphDataIdle && kind != GraphDataError {
		return
	}

	c.publish(func(s *State) {
		s.GraphData = NewOutdated(s.GraphData.Points())
	})
}

// stopPipeline cancels the in-flight request and the outdated timer.
func (c *Controller) stopPipeline() {
	if c.cancelFetch != nil {
		c.cancelFetch()
		c.cancelFetch = nil
	}

	if c.outdatedTimer != nil {
		c.outdatedTimer.Stop()
		c.outdatedTimer = nil
	}
}

// publish applies mutate to a copy of the state and hands the result to subscribers.
func (c *Controller) publish(mutate func(s *State)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state
	mutate(&next)
	c.state = next

	for _, ch := range c.subscribers {
		select {
		case <-ch:
		default:
		}

		ch <- next
	}
}

func (c *Controller) shutdown() {
	c.shutdownOnce.Do(func() {
		c.stopPipeline()
		close(c.done)

		c.mu.Lock()
		defer c.mu.Unlock()

		c.closed = true
		for id, ch := range c.subscribers {
			delete(c.subscribers, id)
			close(ch)
		}
	})
}
