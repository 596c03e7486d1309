package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rxtech-lab/argo-graph/internal/graph"
)

// Style definitions.
var (
	// TitleStyle for headers.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// HelpStyle for help text.
	HelpStyle = lipgloss.NewStyle().Faint(true)

	// ErrorStyle for error messages.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	// ToastStyle frames transient notices.
	ToastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 1)

	idleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	loadingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	outdatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// StatusLabel renders the data state as a coloured label.
func StatusLabel(kind graph.GraphDataKind) string {
	switch kind {
	case graph.GraphDataLoading:
		return loadingStyle.Render("Loading")
	case graph.GraphDataError:
		return ErrorStyle.Render("Error")
	case graph.GraphDataOutdated:
		return outdatedStyle.Render("Outdated")
	default:
		return idleStyle.Render("Up to date")
	}
}

// FormatCoordinate formats a point coordinate with one decimal.
func FormatCoordinate(v float32) string {
	return fmt.Sprintf("%.1f", v)
}
