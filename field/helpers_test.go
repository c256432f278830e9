package field

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m Model, typ tea.KeyType) Model {
	m, _ = m.Update(tea.KeyMsg{Type: typ})
	return m
}

func assertText(t *testing.T, m Model, want string) {
	t.Helper()
	if got := m.DisplayValue(); got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}
