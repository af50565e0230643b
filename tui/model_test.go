package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"plume/ui"
)

func TestNewModelDefaults(t *testing.T) {
	m := NewModel()

	assert.Equal(t, modeSurface, m.mode)
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, ui.ColorNatural, m.Color())
	assert.False(t, m.ready)
	assert.Len(t, m.Rows(), len(ui.AllVariants))
}

func TestMoveCursor(t *testing.T) {
	m := NewModel()
	last := len(ui.AllVariants) - 1

	// Initial cursor should be 0
	assert.Equal(t, 0, m.cursor)

	// Move up should wrap to last
	m.MoveCursorUp()
	assert.Equal(t, last, m.cursor)

	// Move down should wrap back to 0
	m.MoveCursorDown()
	assert.Equal(t, 0, m.cursor)

	m.MoveCursorDown()
	assert.Equal(t, 1, m.cursor)
}

func TestCycleColorWraps(t *testing.T) {
	m := NewModel()
	last := len(ui.AllColors) - 1

	m.CycleColor(-1)
	assert.Equal(t, last, m.colorIdx)

	m.CycleColor(1)
	assert.Equal(t, 0, m.colorIdx)

	m.CycleColor(1)
	assert.Equal(t, ui.AllColors[1], m.Color())
}

func TestNextModeCyclesAxes(t *testing.T) {
	m := NewModel()

	m.NextMode()
	assert.Equal(t, modeList, m.mode)
	assert.Len(t, m.Rows(), len(ui.AllListVariants))

	m.NextMode()
	assert.Equal(t, modeField, m.mode)
	assert.Len(t, m.Rows(), 3)

	m.NextMode()
	assert.Equal(t, modeSurface, m.mode)
}

func TestNextModeClampsCursor(t *testing.T) {
	m := NewModel()
	m.cursor = len(ui.AllVariants) - 1

	// Field mode has only three rows, so the cursor must pull back
	m.NextMode()
	m.NextMode()
	assert.Equal(t, modeField, m.mode)
	assert.Equal(t, 2, m.cursor)
}

func TestFilterNarrowsRows(t *testing.T) {
	m := NewModel()
	m.NextMode()
	m.filter.SetValue("separated")

	rows := m.Rows()
	assert.Len(t, rows, 3)
	for _, row := range rows {
		assert.Contains(t, row, "separated")
	}

	selected, ok := m.SelectedRow()
	assert.True(t, ok)
	assert.Equal(t, "default_separated", selected)
}

func TestSelectedRowWithNoMatches(t *testing.T) {
	m := NewModel()
	m.filter.SetValue("zzz")

	assert.Empty(t, m.Rows())

	_, ok := m.SelectedRow()
	assert.False(t, ok)
}

func TestInit(t *testing.T) {
	m := NewModel()
	cmd := m.Init()
	assert.NotNil(t, cmd)
}
