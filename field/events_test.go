package field

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/division/buffer"
)

func TestOnChange_ReportsEditThenEcho(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Delimiter: "-",
		GroupSize: 3,
		OnChange:  func(ev ChangeEvent) { events = append(events, ev) },
	})

	m = typeText(m, "abc")
	if got, want := len(events), 4; got != want {
		t.Fatalf("events: got %d, want %d", got, want)
	}

	edit := events[2]
	if got, want := edit.Text, "abc"; got != want {
		t.Fatalf("edit text: got %q, want %q", got, want)
	}
	if edit.Echo {
		t.Fatalf("user edit must not be flagged as echo")
	}
	if got, want := edit.Source, buffer.ChangeSourceLocal; got != want {
		t.Fatalf("edit source: got %v, want %v", got, want)
	}

	echo := events[3]
	if got, want := echo.Text, "abc-"; got != want {
		t.Fatalf("echo text: got %q, want %q", got, want)
	}
	if !echo.Echo || !echo.TextChanged {
		t.Fatalf("echo flags: %+v", echo)
	}
	if got, want := echo.Source, buffer.ChangeSourceFormatter; got != want {
		t.Fatalf("echo source: got %v, want %v", got, want)
	}
	if got, want := echo.Cursor, 4; got != want {
		t.Fatalf("echo cursor: got %d, want %d", got, want)
	}
	if echo.Version <= edit.Version {
		t.Fatalf("echo version %d must follow edit version %d", echo.Version, edit.Version)
	}
}

func TestOnChange_CaretMovesAreNotTextChanges(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text:     "ab",
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})

	m = press(m, tea.KeyLeft)
	if len(events) != 1 {
		t.Fatalf("events after move: got %d, want %d", len(events), 1)
	}
	if events[0].TextChanged {
		t.Fatalf("move must not report a text change")
	}
	if got, want := events[0].Cursor, 1; got != want {
		t.Fatalf("cursor: got %d, want %d", got, want)
	}

	m = press(m, tea.KeyHome)
	m = press(m, tea.KeyHome) // no-op
	if len(events) != 2 {
		t.Fatalf("events after no-op: got %d, want %d", len(events), 2)
	}
	if m.Formatter().LastLength != 2 {
		t.Fatalf("caret moves must not be observed by the formatter")
	}
}

func TestOnChange_SelectionIsReported(t *testing.T) {
	var last ChangeEvent
	m := New(Config{
		Text:     "abcd",
		OnChange: func(ev ChangeEvent) { last = ev },
	})
	m = press(m, tea.KeyShiftLeft)
	m = press(m, tea.KeyShiftLeft)

	if !last.Selection.Active {
		t.Fatalf("expected active selection")
	}
	if got, want := last.Selection.Range, (buffer.Range{Start: 2, End: 4}); got != want {
		t.Fatalf("selection: got %v, want %v", got, want)
	}
	_ = m
}
