package graph

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-graph/internal/types"
)

// State is the combined state published to renderers.
type State struct {
	// RequestedCount is the count the current data pipeline runs for.
	RequestedCount int
	// Generation identifies the latest request. It increases with every pipeline run.
	Generation uint64
	GraphData  GraphData
	UI         UIState
}

// UIState holds pure presentation preferences that do not affect the data pipeline.
type UIState struct {
	GraphType  types.GraphType
	CountInput string
}

// HasPoints reports whether there is any point to display.
func (s State) HasPoints() bool {
	points := s.GraphData.Points()

	return points.IsSome() && len(points.Unwrap()) > 0
}

// DisplayPoints returns the points to display, or nil.
func (s State) DisplayPoints() types.PointSet {
	return s.GraphData.Points().Unwrap()
}

func initialState(count int, graphType types.GraphType, countInput string) State {
	return State{
		RequestedCount: count,
		GraphData:      NewIdle(optional.None[types.PointSet]()),
		UI: UIState{
			GraphType:  graphType,
			CountInput: countInput,
		},
	}
}
