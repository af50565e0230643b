package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"plume/ui"
)

// inspectMode selects which token axis the inspector browses.
type inspectMode int

const (
	modeSurface inspectMode = iota
	modeList
	modeField
)

func (m inspectMode) String() string {
	switch m {
	case modeList:
		return "list"
	case modeField:
		return "field"
	default:
		return "surface"
	}
}

// Model is the token inspector state.
type Model struct {
	mode     inspectMode
	cursor   int
	colorIdx int

	filter   textinput.Model
	viewport viewport.Model

	width  int
	height int
	ready  bool
}

// NewModel creates the inspector with default state.
func NewModel() Model {
	filter := textinput.New()
	filter.Placeholder = "filter rows"
	filter.Prompt = "/ "
	filter.CharLimit = 32

	return Model{
		mode:   modeSurface,
		filter: filter,
	}
}

// Init returns the initial command for the inspector.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Rows returns the row labels for the active mode, narrowed by the filter.
func (m Model) Rows() []string {
	var all []string
	switch m.mode {
	case modeList:
		for _, v := range ui.AllListVariants {
			all = append(all, string(v))
		}
	case modeField:
		all = []string{string(ui.FloatingNone), string(ui.FloatingInner), string(ui.FloatingOuter)}
	default:
		for _, v := range ui.AllVariants {
			all = append(all, string(v))
		}
	}

	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		return all
	}
	var matched []string
	for _, row := range all {
		if strings.Contains(row, query) {
			matched = append(matched, row)
		}
	}
	return matched
}

// SelectedRow returns the row under the cursor, if any.
func (m Model) SelectedRow() (string, bool) {
	rows := m.Rows()
	if len(rows) == 0 || m.cursor >= len(rows) {
		return "", false
	}
	return rows[m.cursor], true
}

// Color returns the active color.
func (m Model) Color() ui.Color {
	return ui.AllColors[m.colorIdx]
}

// MoveCursorUp moves the cursor up, wrapping at the top.
func (m *Model) MoveCursorUp() {
	rows := m.Rows()
	if len(rows) == 0 {
		return
	}
	if m.cursor > 0 {
		m.cursor--
	} else {
		m.cursor = len(rows) - 1
	}
}

// MoveCursorDown moves the cursor down, wrapping at the bottom.
func (m *Model) MoveCursorDown() {
	rows := m.Rows()
	if len(rows) == 0 {
		return
	}
	if m.cursor < len(rows)-1 {
		m.cursor++
	} else {
		m.cursor = 0
	}
}

// CycleColor steps the active color forward or backward, wrapping.
func (m *Model) CycleColor(step int) {
	n := len(ui.AllColors)
	m.colorIdx = (m.colorIdx + step + n) % n
}

// NextMode advances surface -> list -> field -> surface.
func (m *Model) NextMode() {
	m.mode = (m.mode + 1) % 3
	m.clampCursor()
}

// clampCursor keeps the cursor inside the current row set.
func (m *Model) clampCursor() {
	rows := m.Rows()
	if len(rows) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
}

// syncViewport refreshes the detail pane for the current selection.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.detail())
	m.viewport.GotoTop()
}
