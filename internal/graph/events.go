package graph

import "github.com/rxtech-lab/argo-graph/internal/types"

// Event is a user input handled by the Controller.
type Event interface {
	isEvent()
}

// CountTextInput updates the count text buffer while the user types.
// It does not change the requested count.
type CountTextInput struct {
	Text string
}

// CountTextInputDone submits the count text. Blank or unparsable text resolves to 0.
type CountTextInputDone struct {
	Text string
}

// CountSliderInput sets the requested count from a slider position.
// The position is truncated toward zero.
type CountSliderInput struct {
	Position float64
}

// SetGraphType changes the render style.
type SetGraphType struct {
	GraphType types.GraphType
}

// Refresh re-runs the pipeline for the current requested count.
type Refresh struct{}

// SetRequestedCount sets the requested count directly.
type SetRequestedCount struct {
	Count int
}

func (CountTextInput) isEvent()     {}
func (CountTextInputDone) isEvent() {}
func (CountSliderInput) isEvent()   {}
func (SetGraphType) isEvent()       {}
func (Refresh) isEvent()            {}
func (SetRequestedCount) isEvent()  {}

// fetchResult is posted back to the loop when a source call returns.
type fetchResult struct {
	generation uint64
	count      int
	points     types.PointSet
	err        error
}

// outdatedTick is posted back to the loop when the outdated timer fires.
type outdatedTick struct {
	generation uint64
}
