package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"termsearch/internal/tui/model"
	"termsearch/internal/tui/view"
)

// handleMouseMsg selects the clicked result and moves the selection with the
// wheel. Clicks on separators or outside the list are ignored.
func handleMouseMsg(m *model.Model, msg tea.MouseMsg) (*model.Model, tea.Cmd) {
	if !m.Navigable() {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelDown:
		m.Selection.Next()
	case tea.MouseButtonWheelUp:
		m.Selection.Previous()
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		if i, ok := LogicalAtScreenLine(m, msg.Y); ok {
			m.Selection.Set(i)
		}
	}
	return m, nil
}

// LogicalAtScreenLine resolves a screen line to the result drawn there.
func LogicalAtScreenLine(m *model.Model, y int) (int, bool) {
	line := y - view.ListTop
	if line < 0 || (m.Height > 0 && line >= m.ResultsViewport.Height) {
		return 0, false
	}
	rows := view.RowsFor(m)
	v, ok := rows.RowAtLine(line + m.ResultsViewport.YOffset)
	if !ok {
		return 0, false
	}
	return rows.VisualToLogical(v)
}
