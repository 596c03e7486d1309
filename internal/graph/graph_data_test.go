package graph

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-graph/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestGraphDataVariants(t *testing.T) {
	points := optional.Some(types.PointSet{{X: 1, Y: 2}})
	none := optional.None[types.PointSet]()

	tests := []struct {
		name     string
		data     GraphData
		kind     GraphDataKind
		label    string
		points   optional.Option[types.PointSet]
		errorMsg string
	}{
		{"idle without points", NewIdle(none), GraphDataIdle, "idle", none, ""},
		{"idle with points", NewIdle(points), GraphDataIdle, "idle", points, ""},
		{"loading keeps points", NewLoading(points), GraphDataLoading, "loading", points, ""},
		{"error keeps points", NewError(points, "boom"), GraphDataError, "error", points, "boom"},
		{"error without points", NewError(none, "boom"), GraphDataError, "error", none, "boom"},
		{"outdated keeps points", NewOutdated(points), GraphDataOutdated, "outdated", points, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.data.Kind())
			assert.Equal(t, tt.label, tt.data.Kind().String())
			assert.Equal(t, tt.points, tt.data.Points())
			assert.Equal(t, tt.errorMsg, tt.data.ErrorMessage())
			assert.Equal(t, tt.kind == GraphDataError, tt.data.IsError())
		})
	}

	assert.Equal(t, "unknown", GraphDataKind(42).String())
}

func TestStateDisplayPoints(t *testing.T) {
	state := initialState(3, types.GraphTypeSharp, "3")
	assert.False(t, state.HasPoints())
	assert.Nil(t, state.DisplayPoints())
	assert.Equal(t, uint64(0), state.Generation)

	state.GraphData = NewIdle(optional.Some(types.PointSet{}))
	assert.False(t, state.HasPoints())
	assert.Empty(t, state.DisplayPoints())

	state.GraphData = NewOutdated(optional.Some(types.PointSet{{X: 5, Y: 6}}))
	assert.True(t, state.HasPoints())
	assert.Equal(t, types.PointSet{{X: 5, Y: 6}}, state.DisplayPoints())
}
