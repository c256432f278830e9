package field

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/division/buffer"
)

// updateMouse handles left button clicks and drags. Coordinates are relative
// to the field's top-left corner, prompt included.
func (m Model) updateMouse(msg tea.MouseMsg) Model {
	if !m.focused || m.buf == nil {
		return m
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y != 0 {
			return m
		}
		col := m.columnAt(msg.X)
		if msg.Shift {
			anchor := m.buf.Cursor()
			if r, ok := m.buf.Selection(); ok && r.Start == anchor {
				anchor = r.End
			} else if ok {
				anchor = r.Start
			}
			m.mouseAnchor = anchor
			m.buf.SetSelection(buffer.Range{Start: anchor, End: col})
		} else {
			m.mouseAnchor = col
			m.buf.SetCursor(col)
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m
		}
		m.buf.SetSelection(buffer.Range{Start: m.mouseAnchor, End: m.columnAt(msg.X)})

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m
}

// columnAt maps a field-relative x to the grapheme column under it. Clicks on
// the prompt map to the first visible column; clicks past the text map to its
// end.
func (m Model) columnAt(x int) int {
	cells := m.buf.Cells()
	col := clampInt(m.xOffset, 0, len(cells))

	x -= lipgloss.Width(m.cfg.Prompt)
	if x <= 0 {
		return col
	}
	if m.cfg.Width > 0 && x > m.cfg.Width {
		x = m.cfg.Width
	}

	used := 0
	for ; col < len(cells); col++ {
		w := cellWidth(cells[col])
		if x < used+w {
			return col
		}
		used += w
	}
	return col
}
