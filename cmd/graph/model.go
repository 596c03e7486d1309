package main

import (
	"strconv"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rxtech-lab/argo-graph/internal/graph"
)

// ModelOptions configures the terminal UI.
type ModelOptions struct {
	// SourceName is shown in the status line.
	SourceName string
	// SliderMax is the upper end of the count slider.
	SliderMax int
	// SliderStep is how far one arrow key moves the slider.
	SliderStep int
}

// Model is the main Bubble Tea model of the graph UI. It renders controller
// state and turns key presses into controller events; it never changes state itself.
type Model struct {
	controller  *graph.Controller
	updates     <-chan graph.State
	unsubscribe func()
	options     ModelOptions

	state      graph.State
	countInput textinput.Model
	slider     progress.Model
	spinner    spinner.Model
	pointTable table.Model
	editing    bool
	width      int
	height     int
}

// NewModel creates a new Model subscribed to the controller.
func NewModel(controller *graph.Controller, options ModelOptions) Model {
	options.SliderMax = max(options.SliderMax, 1)
	options.SliderStep = max(options.SliderStep, 1)

	updates, unsubscribe := controller.Subscribe()
	state := controller.State()

	countInput := NewCountInput()
	countInput.SetValue(state.UI.CountInput)

	return Model{
		controller:  controller,
		updates:     updates,
		unsubscribe: unsubscribe,
		options:     options,
		state:       state,
		countInput:  countInput,
		slider:      NewCountSlider(),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		pointTable:  NewPointTable(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForState(m.updates), m.spinner.Tick)
}

// waitForState returns a command that blocks until the controller publishes.
func waitForState(updates <-chan graph.State) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-updates
		if !ok {
			return StateClosedMsg{}
		}

		return StateMsg{State: state}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}

		if m.editing {
			return m.updateEditing(msg)
		}

		return m.updateBrowsing(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.slider.Width = max(msg.Width-30, 10)
		m.pointTable.SetHeight(max(msg.Height-chartHeight-16, 3))

		return m, nil

	case StateMsg:
		m.state = msg.State
		if !m.editing {
			m.countInput.SetValue(msg.State.UI.CountInput)
		}
		m.pointTable = UpdateTableRows(m.pointTable, msg.State.DisplayPoints())

		return m, waitForState(m.updates)

	case StateClosedMsg:
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}

	return m, tea.Quit
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()
	case "r":
		m.controller.Refresh()
		return m, nil
	case "s":
		m.controller.SetGraphRenderStyle(m.state.UI.GraphType.Toggle())
		return m, nil
	case "left", "h":
		m.controller.HandleEvent(graph.CountSliderInput{Position: float64(m.slideTarget(-1))})
		return m, nil
	case "right", "l":
		m.controller.HandleEvent(graph.CountSliderInput{Position: float64(m.slideTarget(1))})
		return m, nil
	case "e", "tab", "enter":
		m.editing = true
		m.countInput.CursorEnd()

		return m, m.countInput.Focus()
	}

	var cmd tea.Cmd
	m.pointTable, cmd = m.pointTable.Update(msg)

	return m, cmd
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "tab":
		m.editing = false
		m.countInput.Blur()
		m.controller.SetCountText(m.countInput.Value())

		return m, nil
	case "esc":
		m.editing = false
		m.countInput.Blur()
		restored := strconv.Itoa(m.state.RequestedCount)
		m.countInput.SetValue(restored)
		m.controller.HandleEvent(graph.CountTextInput{Text: restored})

		return m, nil
	}

	before := m.countInput.Value()

	var cmd tea.Cmd
	m.countInput, cmd = m.countInput.Update(msg)

	if value := m.countInput.Value(); value != before {
		m.controller.HandleEvent(graph.CountTextInput{Text: value})
	}

	return m, cmd
}

// slideTarget returns the slider stop next to the requested count in direction dir.
// Counts between stops snap to the neighbouring stop.
func (m Model) slideTarget(dir int) int {
	return slideTarget(m.state.RequestedCount, dir, m.options.SliderStep, m.options.SliderMax)
}

func slideTarget(count, dir, step, maxCount int) int {
	var next int
	if dir > 0 {
		next = (count/step + 1) * step
	} else {
		next = ((count+step-1)/step - 1) * step
	}

	return min(max(next, 0), maxCount)
}
