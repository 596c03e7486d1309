package graph

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-graph/internal/types"
)

// GraphDataKind identifies the variant of GraphData.
type GraphDataKind int

const (
	GraphDataIdle GraphDataKind = iota
	GraphDataLoading
	GraphDataError
	GraphDataOutdated
)

func (k GraphDataKind) String() string {
	switch k {
	case GraphDataIdle:
		return "idle"
	case GraphDataLoading:
		return "loading"
	case GraphDataError:
		return "error"
	case GraphDataOutdated:
		return "outdated"
	default:
		return "unknown"
	}
}

// GraphData is the displayable data state. Every variant carries the last
// successfully retrieved point set, if any, so the UI never has to blank while
// refreshing or after a failure. Values are immutable: transitions build a new one.
type GraphData struct {
	kind     GraphDataKind
	points   optional.Option[types.PointSet]
	errorMsg string
}

// NewIdle returns settled data.
func NewIdle(points optional.Option[types.PointSet]) GraphData {
	return GraphData{kind: GraphDataIdle, points: points}
}

// NewLoading returns data for an in-flight request.
func NewLoading(points optional.Option[types.PointSet]) GraphData {
	return GraphData{kind: GraphDataLoading, points: points}
}

// NewError returns data annotated with a failure message.
func NewError(points optional.Option[types.PointSet], errorMsg string) GraphData {
	return GraphData{kind: GraphDataError, points: points, errorMsg: errorMsg}
}

// NewOutdated returns data marked as possibly stale.
func NewOutdated(points optional.Option[types.PointSet]) GraphData {
	return GraphData{kind: GraphDataOutdated, points: points}
}

// Kind returns the variant.
func (g GraphData) Kind() GraphDataKind {
	return g.kind
}

// Points returns the last known-good point set. The returned slice is shared
// and must not be modified.
func (g GraphData) Points() optional.Option[types.PointSet] {
	return g.points
}

// ErrorMessage returns the failure message of an Error variant, or "".
func (g GraphData) ErrorMessage() string {
	return g.errorMsg
}

// IsError reports whether g is the Error variant.
func (g GraphData) IsError() bool {
	return g.kind == GraphDataError
}
