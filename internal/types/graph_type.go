package types

import "strings"

// GraphType is the render style preference of the chart.
type GraphType string

const (
	// GraphTypeSharp draws a polyline through the points.
	GraphTypeSharp GraphType = "sharp"
	// GraphTypeSmooth draws cubic segments between consecutive points.
	GraphTypeSmooth GraphType = "smooth"
)

// Toggle returns the other render style.
func (g GraphType) Toggle() GraphType {
	if g == GraphTypeSmooth {
		return GraphTypeSharp
	}

	return GraphTypeSmooth
}

// Label is the button caption used by the UI.
func (g GraphType) Label() string {
	if g == GraphTypeSmooth {
		return "Smooth"
	}

	return "Sharp"
}

// ParseGraphType parses a render style name. Unknown names fall back to sharp
// and ok is false.
func ParseGraphType(s string) (GraphType, bool) {
	switch GraphType(strings.ToLower(strings.TrimSpace(s))) {
	case GraphTypeSmooth:
		return GraphTypeSmooth, true
	case GraphTypeSharp:
		return GraphTypeSharp, true
	default:
		return GraphTypeSharp, false
	}
}
