package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/rxtech-lab/argo-graph/internal/graph"
	"github.com/rxtech-lab/argo-graph/internal/render"
	"github.com/rxtech-lab/argo-graph/internal/types"
)

const (
	chartHeight  = 10
	defaultWidth = 80
	// chartMargin leaves room for the y axis labels left of the plot.
	chartMargin = 12
)

// NewCountInput creates the text input for the requested count.
func NewCountInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.CharLimit = 6
	ti.Width = 8
	ti.Prompt = "> "

	return ti
}

// NewCountSlider creates the bar that shows the requested count.
func NewCountSlider() progress.Model {
	return progress.New(
		progress.WithSolidFill("63"),
		progress.WithoutPercentage(),
		progress.WithWidth(40),
	)
}

// NewPointTable creates a new table for displaying points.
func NewPointTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "X", Width: 12},
		{Title: "Y", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	t.SetStyles(s)

	return t
}

// UpdateTableRows replaces the table rows with the given points.
func UpdateTableRows(t table.Model, points types.PointSet) table.Model {
	rows := make([]table.Row, 0, len(points))

	for i, p := range points {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			FormatCoordinate(p.X),
			FormatCoordinate(p.Y),
		})
	}

	t.SetRows(rows)

	if t.Cursor() >= len(rows) {
		t.SetCursor(max(len(rows)-1, 0))
	}

	return t
}

// View implements tea.Model.
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("Argo Graph - Points"))
	s.WriteString("\n\n")
	s.WriteString(m.statusView())
	s.WriteString("\n\n")
	s.WriteString(m.countView())
	s.WriteString("\n\n")

	if m.state.GraphData.IsError() {
		s.WriteString(ToastStyle.Render(ErrorStyle.Render("Error: " + m.state.GraphData.ErrorMessage())))
		s.WriteString("\n\n")
	}

	if !m.state.HasPoints() {
		s.WriteString("No data\n")
	} else {
		s.WriteString(m.chartView())
		s.WriteString("\n\n")
		s.WriteString(m.pointTable.View())
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(HelpStyle.Render(m.helpView()))

	return s.String()
}

func (m Model) statusView() string {
	status := StatusLabel(m.state.GraphData.Kind())
	if m.state.GraphData.Kind() == graph.GraphDataLoading {
		status = m.spinner.View() + " " + status
	}

	return fmt.Sprintf("Source: %s | Style: %s | %s",
		m.options.SourceName,
		m.state.UI.GraphType.Label(),
		status,
	)
}

func (m Model) countView() string {
	ratio := float64(m.state.RequestedCount) / float64(m.options.SliderMax)

	return fmt.Sprintf("Count %s\n%s %d/%d",
		m.countInput.View(),
		m.slider.ViewAs(min(max(ratio, 0), 1)),
		m.state.RequestedCount,
		m.options.SliderMax,
	)
}

func (m Model) chartView() string {
	width := m.width
	if width == 0 {
		width = defaultWidth
	}

	chart, err := render.Plot(m.state.DisplayPoints(), m.state.UI.GraphType, render.PlotOptions{
		Width:  max(width-chartMargin, 2),
		Height: chartHeight,
		Color:  chartColor(m.state.GraphData.Kind()),
	})
	if err != nil {
		return ErrorStyle.Render(err.Error())
	}

	return chart
}

func chartColor(kind graph.GraphDataKind) asciigraph.AnsiColor {
	switch kind {
	case graph.GraphDataOutdated:
		return asciigraph.Gray
	case graph.GraphDataError:
		return asciigraph.Red
	case graph.GraphDataLoading:
		return asciigraph.LightGray
	default:
		return asciigraph.Green
	}
}

func (m Model) helpView() string {
	if m.editing {
		return "Enter: apply | Esc: cancel"
	}

	return "e: edit count | ←/→: slide | r: refresh | s: sharp/smooth | q: quit"
}
