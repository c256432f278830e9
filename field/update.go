package field

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/division/buffer"
	"github.com/iw2rmb/division/internal/grapheme"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.insert(string(msg.Runes))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})

	case key.Matches(msg, km.ShiftLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true})

	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.buf.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.buf.DeleteForward()
		}

	// History restores text that was already settled; re-observing it as
	// growth would insert a second delimiter.
	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly && m.buf.Undo() {
			m.syncFormatter()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly && m.buf.Redo() {
			m.syncFormatter()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				m.insert(string(msg.Runes))
			}
		}
		if msg.Type == tea.KeySpace && !m.cfg.ReadOnly {
			m.insert(" ")
		}
	}

	return m, nil
}

// insert types s at the cursor, truncated to what CharLimit still allows.
func (m Model) insert(s string) {
	if limit := m.cfg.CharLimit; limit > 0 {
		used := grapheme.Count(m.formatter.Strip(m.buf.Text()))
		used -= grapheme.Count(m.formatter.Strip(m.buf.SelectedText()))
		room := limit - used
		if room <= 0 {
			return
		}
		if grapheme.Count(s) > room {
			s = grapheme.Slice(s, 0, room)
		}
	}
	m.buf.InsertText(s)
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s := m.buf.SelectedText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s := m.buf.SelectedText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
	m.buf.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.cfg.Logger.Warn().Err(err).Msg("clipboard read failed")
		return
	}
	if s == "" {
		return
	}
	// A field holds one line; external line breaks become nothing.
	s = strings.NewReplacer("\r\n", "", "\r", "", "\n", "").Replace(s)
	m.insert(s)
}
