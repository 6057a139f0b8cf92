package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vgdata/localterm/glossary"
)

// --- View ---

func (m Model) View() string {
	if len(m.files) == 0 {
		return fmt.Sprintf("\nNo glossary files found in %s\n\nPress q to quit.\n", m.proj.GlossaryDir)
	}
	if m.gloss == nil {
		if m.err != nil {
			return fmt.Sprintf("\nError: %v\n\nPress q to quit.\n", m.err)
		}
		return "\nLoading...\n"
	}

	width := m.width
	if width <= 0 {
		width = 100
	}
	height := m.height
	if height <= 0 {
		height = 24
	}

	var b strings.Builder

	// Title: column labels from endonyms (or file-name fallback).
	title := m.gloss.Lang1Name
	if m.gloss.Lang2Name != "" {
		title += " / " + m.gloss.Lang2Name
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	cols := m.columnWidths(width)
	b.WriteString(headerStyle.Render(m.headerLine(cols)))
	b.WriteString("\n")

	// Visible window around the cursor.
	visible := height - 5
	if m.state == stateSearch {
		visible--
	}
	if visible < 1 {
		visible = 1
	}
	offset := 0
	if m.cursor >= visible {
		offset = m.cursor - visible + 1
	}

	for i := offset; i < len(m.view) && i < offset+visible; i++ {
		row := m.view[i]
		line := m.rowLine(row, cols)
		style := rowStyle(row.Class, m.sts.FgColor, m.sts.BgColor)
		if i == m.cursor {
			style = cursorStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	if len(m.view) == 0 {
		b.WriteString("  (no matching terms)\n")
	}

	b.WriteString("\n")
	if m.state == stateSearch {
		b.WriteString("Search: " + m.search.View())
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render(m.statusLine()))
	return b.String()
}

// columnWidths splits the terminal width across the visible columns.
func (m Model) columnWidths(width int) []int {
	n := 3
	if m.sts.ShowAnchor {
		n = 4
	}
	w := width / n
	if w < 8 {
		w = 8
	}
	cols := make([]int, n)
	for i := range cols {
		cols[i] = w - 1
	}
	return cols
}

func (m Model) headerLine(cols []int) string {
	lang2 := m.gloss.Lang2Name
	if lang2 == "" {
		lang2 = "Language 2"
	}
	cells := []string{
		pad("Term", cols[0]),
		pad(m.gloss.Lang1Name, cols[1]),
		pad(lang2, cols[2]),
	}
	if m.sts.ShowAnchor {
		cells = append(cells, pad("Anchor", cols[3]))
	}
	return strings.Join(cells, " ")
}

func (m Model) rowLine(row glossary.DisplayRow, cols []int) string {
	cells := []string{
		pad(row.Key, cols[0]),
		pad(row.Target, cols[1]),
		pad(row.Second, cols[2]),
	}
	if m.sts.ShowAnchor {
		cells = append(cells, pad(row.Anchor, cols[3]))
	}
	return strings.Join(cells, " ")
}

func (m Model) statusLine() string {
	count := fmt.Sprintf("%d/%d", len(m.view), len(m.gloss.Rows))
	if m.filter != "" {
		count += fmt.Sprintf(" [filter: %s]", m.filter)
	}
	return count + "  " + m.status
}

// pad truncates or right-pads a cell to the given display width.
func pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w > width {
		runes := []rune(s)
		for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
			runes = runes[:len(runes)-1]
		}
		return string(runes) + "…"
	}
	return s + strings.Repeat(" ", width-w)
}
