package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizedModel(t *testing.T) Model {
	t.Helper()
	m := NewModel()
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	sized, ok := newModel.(Model)
	require.True(t, ok)
	return sized
}

func pressKey(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	newModel, _ := m.Update(msg)
	pressed, ok := newModel.(Model)
	require.True(t, ok)
	return pressed
}

func TestUpdateWindowSize(t *testing.T) {
	m := NewModel()

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	sized, ok := newModel.(Model)
	require.True(t, ok)

	assert.True(t, sized.ready)
	assert.Equal(t, 120, sized.width)
	assert.Equal(t, 50, sized.height)
}

func TestUpdateQuitKey(t *testing.T) {
	m := sizedModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdateNavigationKeys(t *testing.T) {
	m := sizedModel(t)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.colorIdx)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.colorIdx)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, modeList, m.mode)
}

func TestUpdateFilterFocus(t *testing.T) {
	m := sizedModel(t)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	assert.True(t, m.filter.Focused())

	// Typed characters go to the filter, not navigation
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	assert.Equal(t, "o", m.filter.Value())
	assert.Equal(t, 0, m.cursor)

	// Escape blurs and clears the filter
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.filter.Focused())
	assert.Empty(t, m.filter.Value())
}

func TestDetailShowsResolvedTokens(t *testing.T) {
	m := sizedModel(t)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRight})

	detail := m.detail()
	assert.Contains(t, detail, "Resolve(default, primary)")
	assert.Contains(t, detail, "bg-primary-500")
	assert.Contains(t, detail, "class attribute")
}

func TestDetailInListMode(t *testing.T) {
	m := sizedModel(t)
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyTab})

	detail := m.detail()
	assert.Contains(t, detail, "ResolveList(default, natural, hoverable)")
	assert.Contains(t, detail, "ResolveListItem(default, natural)")
}

func TestViewRendersPanes(t *testing.T) {
	m := sizedModel(t)

	view := m.View()
	assert.Contains(t, view, "Plume token inspector")
	assert.Contains(t, view, "surface")
	assert.Contains(t, view, "base")
}

func TestViewTooSmall(t *testing.T) {
	m := NewModel()
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	small, ok := newModel.(Model)
	require.True(t, ok)

	assert.Contains(t, small.View(), "Terminal too small")
}
