package field

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNew_InitialTextIsNotReformatted(t *testing.T) {
	m := New(Config{Text: "abcd", Delimiter: "-", GroupSize: 3})
	assertText(t, m, "abcd")
	if got, want := m.Cursor(), 4; got != want {
		t.Fatalf("cursor: got %d, want %d", got, want)
	}
	if got, want := m.Formatter().LastLength, 4; got != want {
		t.Fatalf("last length: got %d, want %d", got, want)
	}
}

func TestNew_TruncatesDelimiter(t *testing.T) {
	m := New(Config{Delimiter: "-/", GroupSize: 2})
	if got, want := m.Formatter().Delimiter, "-"; got != want {
		t.Fatalf("delimiter: got %q, want %q", got, want)
	}
}

func TestTyping_LineBreakDelimiterPassesThrough(t *testing.T) {
	m := New(Config{Delimiter: "\n", GroupSize: 2})

	for i, r := range "abcdef" {
		m = typeText(m, string(r))
		st := m.Formatter()
		if st.SuppressNext {
			t.Fatalf("after %q: echo armed with no redisplay", string(r))
		}
		if got, want := st.LastLength, i+1; got != want {
			t.Fatalf("after %q: last length got %d, want %d", string(r), got, want)
		}
	}
	assertText(t, m, "abcdef")
	if got, want := m.Cursor(), 6; got != want {
		t.Fatalf("cursor: got %d, want %d", got, want)
	}
}

func TestTyping_InsertsDelimiterAtBoundaries(t *testing.T) {
	m := New(Config{Delimiter: "-", GroupSize: 3})

	m = typeText(m, "abc")
	assertText(t, m, "abc-")
	if got, want := m.Cursor(), 4; got != want {
		t.Fatalf("cursor after boundary: got %d, want %d", got, want)
	}

	m = typeText(m, "d")
	assertText(t, m, "abc-d")

	m = typeText(m, "efg")
	assertText(t, m, "abc-def-g")
	if got, want := m.Value(), "abcdefg"; got != want {
		t.Fatalf("value: got %q, want %q", got, want)
	}
	if m.Formatter().SuppressNext {
		t.Fatalf("echo must be consumed before Update returns")
	}
}

func TestTyping_BackspaceOverDelimiterThenRetype(t *testing.T) {
	m := New(Config{Delimiter: "-", GroupSize: 3})
	m = typeText(m, "abc")
	assertText(t, m, "abc-")

	m = press(m, tea.KeyBackspace)
	assertText(t, m, "abc")

	m = typeText(m, "d")
	assertText(t, m, "abc-d")
	if got, want := m.Cursor(), 5; got != want {
		t.Fatalf("cursor after rejoin: got %d, want %d", got, want)
	}
}

func TestTyping_ShrinkNeverReformats(t *testing.T) {
	m := New(Config{Delimiter: "-", GroupSize: 3})
	m = typeText(m, "abcdef")
	assertText(t, m, "abc-def-")

	m = press(m, tea.KeyHome)
	m = press(m, tea.KeyDelete)
	assertText(t, m, "bc-def-")
}

func TestTyping_CaretJumpsToEndAfterEdit(t *testing.T) {
	m := New(Config{Delimiter: "-", GroupSize: 3})
	m = typeText(m, "abcd")
	assertText(t, m, "abc-d")

	m = press(m, tea.KeyHome)
	if got := m.Cursor(); got != 0 {
		t.Fatalf("cursor after home: got %d, want 0", got)
	}

	m = typeText(m, "x")
	assertText(t, m, "xabc-d")
	if got, want := m.Cursor(), 6; got != want {
		t.Fatalf("cursor after mid insert: got %d, want %d", got, want)
	}
}

func TestTyping_InertWithoutDelimiter(t *testing.T) {
	m := New(Config{GroupSize: 3})
	m = typeText(m, "abcdefgh")
	assertText(t, m, "abcdefgh")
	if got, want := m.Value(), "abcdefgh"; got != want {
		t.Fatalf("value: got %q, want %q", got, want)
	}
}

func TestTyping_GroupSizeZero(t *testing.T) {
	m := New(Config{Delimiter: ".", GroupSize: 0})
	m = typeText(m, "ab")
	assertText(t, m, "a.b.")
}

func TestSetValue_IsObservedAsEdit(t *testing.T) {
	m := New(Config{Delimiter: " ", GroupSize: 4})
	m = m.SetValue("12")
	assertText(t, m, "12")

	m = m.SetValue("1234")
	assertText(t, m, "1234 ")
	if m.Formatter().SuppressNext {
		t.Fatalf("echo must be consumed by SetValue")
	}
}

func TestReset_ClearsTextAndFormatterState(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Delimiter: "-",
		GroupSize: 2,
		OnChange:  func(ev ChangeEvent) { events = append(events, ev) },
	})
	m = typeText(m, "abc")
	events = nil

	m = m.Reset()
	assertText(t, m, "")
	st := m.Formatter()
	if st.LastLength != 0 || st.SuppressNext {
		t.Fatalf("formatter state after reset: %+v", st)
	}
	if len(events) != 1 || !events[0].TextChanged || events[0].Text != "" {
		t.Fatalf("reset events: %+v", events)
	}

	m = typeText(m, "xy")
	assertText(t, m, "xy-")
}

func TestFocusBlur_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{Delimiter: "-", GroupSize: 2})
	m = m.Blur()
	if m.Focused() {
		t.Fatalf("expected blurred")
	}
	m = typeText(m, "ab")
	assertText(t, m, "")

	m = m.Focus()
	m = typeText(m, "ab")
	assertText(t, m, "ab-")
}

func TestUpdate_NonKeyMessageSettlesHostMutations(t *testing.T) {
	m := New(Config{Delimiter: "-", GroupSize: 2})
	m.Buffer().InsertText("ab")

	m, _ = m.Update(struct{}{})
	assertText(t, m, "ab-")
}

func TestSetWidth_ClampsNegative(t *testing.T) {
	m := New(Config{})
	m = m.SetWidth(-3)
	if got := m.Width(); got != 0 {
		t.Fatalf("width: got %d, want 0", got)
	}
}
