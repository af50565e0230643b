package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"plume/ui"
)

// View renders the current model state.
func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	if m.width < minWidth || m.height < minHeight {
		return emptyStyle.Render(fmt.Sprintf("\n  Terminal too small. Need at least %dx%d.", minWidth, minHeight))
	}

	var content strings.Builder

	content.WriteString(titleStyle.Render("Plume token inspector"))
	content.WriteString("\n")
	content.WriteString(m.renderTabs())
	content.WriteString("\n")
	content.WriteString(m.renderColorLine())
	content.WriteString("\n")
	content.WriteString(m.filter.View())
	content.WriteString("\n")

	panes := lipgloss.JoinHorizontal(
		lipgloss.Top,
		listPaneStyle.Width(listPaneWidth).Render(m.renderRowList()),
		detailPaneStyle.Render(m.viewport.View()),
	)
	content.WriteString(panes)
	content.WriteString("\n")
	content.WriteString(footerStyle.Render("up/down row  left/right color  tab mode  / filter  q quit"))

	return content.String()
}

// renderTabs renders the mode switcher.
func (m Model) renderTabs() string {
	var tabs []string
	for _, mode := range []inspectMode{modeSurface, modeList, modeField} {
		label := " " + mode.String() + " "
		if mode == m.mode {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderColorLine renders the active color and its position in the cycle.
func (m Model) renderColorLine() string {
	c := m.Color()
	return colorLineStyle.Render(fmt.Sprintf("color %s (%d/%d)", colorNameStyle.Render(string(c)), m.colorIdx+1, len(ui.AllColors)))
}

// renderRowList renders the selectable rows for the active mode.
func (m Model) renderRowList() string {
	rows := m.Rows()
	if len(rows) == 0 {
		return emptyStyle.Render("no matches")
	}

	var lines []string
	for i, row := range rows {
		if i == m.cursor {
			lines = append(lines, selectedItemStyle.Render("> "+row))
		} else {
			lines = append(lines, itemStyle.Render("  "+row))
		}
	}
	return strings.Join(lines, "\n")
}

// detail builds the token listing for the current selection.
func (m Model) detail() string {
	name, ok := m.SelectedRow()
	if !ok {
		return emptyStyle.Render("No row matches the filter. Press esc to clear it.")
	}
	c := m.Color()

	var content strings.Builder
	switch m.mode {
	case modeList:
		writeTokenSection(&content, fmt.Sprintf("ResolveList(%s, %s, hoverable)", name, c),
			ui.ResolveList(ui.Variant(name), c, true))
		content.WriteString("\n")
		writeTokenSection(&content, fmt.Sprintf("ResolveListItem(%s, %s)", name, c),
			ui.ResolveListItem(ui.Variant(name), c))

	case modeField:
		writeTokenSection(&content, fmt.Sprintf("ResolveField(%s, %s)", c, name),
			ui.ResolveField(c, ui.Floating(name)))

	default:
		tokens := ui.Resolve(ui.Variant(name), c)
		writeTokenSection(&content, fmt.Sprintf("Resolve(%s, %s)", name, c), tokens)
		content.WriteString("\n")
		content.WriteString(sectionStyle.Render("class attribute"))
		content.WriteString("\n")
		content.WriteString(classStyle.Render(ui.JoinTokens(tokens)))
		content.WriteString("\n")
	}
	return content.String()
}

// writeTokenSection writes a header line followed by one token per line.
func writeTokenSection(content *strings.Builder, header string, tokens []string) {
	content.WriteString(sectionStyle.Render(header))
	content.WriteString("\n")
	for _, tok := range tokens {
		content.WriteString("  ")
		content.WriteString(tokenStyle.Render(tok))
		content.WriteString("\n")
	}
}
