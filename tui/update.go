package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	listPaneWidth = 26
	minWidth      = 60
	minHeight     = 16
)

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vw := msg.Width - listPaneWidth - 8
		if vw < 20 {
			vw = 20
		}
		vh := msg.Height - 9
		if vh < 4 {
			vh = 4
		}
		if !m.ready {
			m.viewport = viewport.New(vw, vh)
			m.ready = true
		} else {
			m.viewport.Width = vw
			m.viewport.Height = vh
		}
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filter.Focused() {
		switch msg.String() {
		case "esc":
			m.filter.Blur()
			m.filter.SetValue("")
			m.clampCursor()
			m.syncViewport()
			return m, nil
		case "enter":
			m.filter.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.clampCursor()
		m.syncViewport()
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.MoveCursorUp()
		m.syncViewport()
		return m, nil

	case "down", "j":
		m.MoveCursorDown()
		m.syncViewport()
		return m, nil

	case "left", "h":
		m.CycleColor(-1)
		m.syncViewport()
		return m, nil

	case "right", "l":
		m.CycleColor(1)
		m.syncViewport()
		return m, nil

	case "tab":
		m.NextMode()
		m.syncViewport()
		return m, nil

	case "/":
		m.filter.Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
