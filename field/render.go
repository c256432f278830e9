package field

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/division/internal/grapheme"
)

func (m Model) View() string {
	if m.buf == nil {
		return ""
	}

	var sb strings.Builder
	if m.cfg.Prompt != "" {
		sb.WriteString(m.cfg.Style.Prompt.Render(m.cfg.Prompt))
	}
	if m.buf.Len() == 0 && m.cfg.Hint != "" {
		sb.WriteString(m.renderHint())
		return sb.String()
	}
	sb.WriteString(m.renderText())
	return sb.String()
}

func (m Model) renderHint() string {
	hint := grapheme.Split(m.cfg.Hint)
	if m.cfg.Width > 0 {
		hint = fitCells(hint, 0, m.cfg.Width)
	}
	if !m.focused || len(hint) == 0 {
		return m.cfg.Style.Hint.Render(grapheme.Join(hint))
	}
	return m.cfg.Style.Cursor.Render(hint[0]) + m.cfg.Style.Hint.Render(grapheme.Join(hint[1:]))
}

type cellKind uint8

const (
	cellText cellKind = iota
	cellDelimiter
	cellSelected
	cellCursor
)

func (m Model) renderText() string {
	cells := m.buf.Cells()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	delim := m.formatter.Delimiter()

	start := clampInt(m.xOffset, 0, len(cells))
	visible := cells[start:]
	if m.cfg.Width > 0 {
		visible = fitCells(cells, start, m.cfg.Width)
	}

	kindAt := func(i int) cellKind {
		switch {
		case m.focused && i == cursor:
			return cellCursor
		case selOK && i >= sel.Start && i < sel.End:
			return cellSelected
		case delim != "" && cells[i] == delim:
			return cellDelimiter
		default:
			return cellText
		}
	}

	var sb strings.Builder
	var run strings.Builder
	runKind := cellText
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(m.styleFor(runKind).Render(run.String()))
		run.Reset()
	}
	for off, c := range visible {
		k := kindAt(start + off)
		if k != runKind {
			flush()
			runKind = k
		}
		run.WriteString(c)
	}
	flush()

	end := start + len(visible)
	if m.focused && cursor == len(cells) && end == len(cells) {
		if m.cfg.Width == 0 || spanWidth(visible)+1 <= m.cfg.Width {
			sb.WriteString(m.cfg.Style.Cursor.Render(" "))
		}
	}
	return sb.String()
}

func (m Model) styleFor(k cellKind) lipgloss.Style {
	switch k {
	case cellCursor:
		return m.cfg.Style.Cursor
	case cellSelected:
		return m.cfg.Style.Selection
	case cellDelimiter:
		return m.cfg.Style.Delimiter
	default:
		return m.cfg.Style.Text
	}
}

// followCursor scrolls horizontally so the cursor cell fits inside Width.
func (m *Model) followCursor() {
	if m.buf == nil || m.cfg.Width <= 0 {
		m.xOffset = 0
		return
	}
	cells := m.buf.Cells()
	cursor := m.buf.Cursor()
	m.xOffset = scrollOffset(cells, cursor, m.xOffset, m.cfg.Width)
}

func scrollOffset(cells []string, cursor, offset, width int) int {
	offset = clampInt(offset, 0, len(cells))
	cursor = clampInt(cursor, 0, len(cells))
	if cursor < offset {
		return cursor
	}
	cursorWidth := 1
	if cursor < len(cells) {
		cursorWidth = maxInt(cellWidth(cells[cursor]), 1)
	}
	for offset < cursor && spanWidth(cells[offset:cursor])+cursorWidth > width {
		offset++
	}
	// Pull back when text was deleted and room opened up on the left.
	for offset > 0 && spanWidth(cells[offset-1:])+tailCursorWidth(cells, cursor) <= width {
		offset--
	}
	return offset
}

func tailCursorWidth(cells []string, cursor int) int {
	if cursor == len(cells) {
		return 1
	}
	return 0
}

// fitCells returns the clusters starting at start that fit into width cells.
func fitCells(cells []string, start, width int) []string {
	start = clampInt(start, 0, len(cells))
	used := 0
	end := start
	for end < len(cells) {
		w := cellWidth(cells[end])
		if used+w > width {
			break
		}
		used += w
		end++
	}
	return cells[start:end]
}

func spanWidth(cells []string) int {
	w := 0
	for _, c := range cells {
		w += cellWidth(c)
	}
	return w
}

func cellWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
