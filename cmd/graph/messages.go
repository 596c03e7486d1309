package main

import "github.com/rxtech-lab/argo-graph/internal/graph"

// StateMsg carries a new state published by the graph controller.
type StateMsg struct {
	State graph.State
}

// StateClosedMsg signals that the controller stopped publishing.
type StateClosedMsg struct{}
