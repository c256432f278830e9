package field

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/division/buffer"
	"github.com/iw2rmb/division/internal/grapheme"
	"github.com/iw2rmb/division/separator"
)

// A formatter rewrite and its echo take two passes; the rest is headroom.
const maxSettlePasses = 4

// Model is a Bubble Tea component that renders and edits a formatted line.
type Model struct {
	cfg       Config
	buf       *buffer.Buffer
	formatter *separator.Formatter

	focused bool
	xOffset int

	mouseAnchor   int
	mouseDragging bool

	lastBufVersion  uint64
	lastTextVersion uint64

	// Text version the formatter was synced to directly; settle reports it
	// without observing it.
	syncedTextVersion uint64
	synced            bool
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:       cfg,
		buf:       buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		formatter: separator.New(separator.Options{Delimiter: cfg.Delimiter, GroupSize: cfg.GroupSize}),
		focused:   true,
	}
	m.buf.SetCursor(m.buf.Len())
	m.formatter.Sync(m.buf.Text())
	m.lastBufVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	m.followCursor()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Formatter returns a snapshot of the separator state.
func (m Model) Formatter() separator.State { return m.formatter.State() }

// DisplayValue returns the text as shown, delimiters included.
func (m Model) DisplayValue() string { return m.buf.Text() }

// Value returns the text with every delimiter removed.
func (m Model) Value() string { return m.formatter.Strip(m.buf.Text()) }

func (m Model) Cursor() int { return m.buf.Cursor() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Width() int { return m.cfg.Width }

func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.cfg.Width = width
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	m.mouseDragging = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetValue replaces the text the way a host program would. The new text is
// delivered to the formatter like any other edit.
func (m Model) SetValue(text string) Model {
	m.buf.ReplaceAll(text, grapheme.Count(text), buffer.ChangeSourceHost)
	m.settle()
	m.followCursor()
	return m
}

// Reset clears the text without formatter processing.
func (m Model) Reset() Model {
	m.settle()
	m.buf.ReplaceAll("", 0, buffer.ChangeSourceHost)
	m.syncFormatter()
	m.settle()
	m.xOffset = 0
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m = m.updateMouse(msg)
	}
	// Hosts may also mutate the buffer directly between messages.
	m.settle()
	m.followCursor()
	return m, cmd
}

// settle delivers pending buffer mutations to the formatter and to OnChange
// until the buffer stops changing.
func (m *Model) settle() {
	if m.buf == nil {
		return
	}
	for pass := 0; pass < maxSettlePasses; pass++ {
		if m.buf.Version() == m.lastBufVersion {
			return
		}

		tv := m.buf.TextVersion()
		if tv == m.lastTextVersion {
			m.emit(false, false)
			continue
		}
		m.lastTextVersion = tv

		if m.synced && tv == m.syncedTextVersion {
			m.synced = false
			m.emit(true, false)
			continue
		}

		res := m.formatter.Observe(m.buf.Text())
		m.logObservation(res)
		if res.Rewritten() {
			m.emit(true, false)
			if !m.buf.ReplaceAll(res.Text, res.Cursor, buffer.ChangeSourceFormatter) {
				// The buffer refused the redisplay, so no echo will follow.
				m.formatter.Sync(m.buf.Text())
				m.buf.SetCursor(m.buf.Len())
			}
			continue
		}
		if !res.Echo {
			m.buf.SetCursor(res.Cursor)
		}
		m.emit(true, res.Echo)
	}
}

// syncFormatter records the current text as already settled. Used for
// content that was formatted before: history restores and resets.
func (m *Model) syncFormatter() {
	m.formatter.Sync(m.buf.Text())
	m.syncedTextVersion = m.buf.TextVersion()
	m.synced = true
}

func (m *Model) emit(textChanged, echo bool) {
	m.lastBufVersion = m.buf.Version()
	if m.cfg.OnChange == nil {
		return
	}
	m.cfg.OnChange(buildChangeEvent(m.buf, textChanged, echo))
}

func (m *Model) logObservation(res separator.Result) {
	st := m.formatter.State()
	switch {
	case res.Echo:
		m.cfg.Logger.Debug().
			Int("length", st.LastLength).
			Msg("echo absorbed")
	case res.Rewritten():
		m.cfg.Logger.Debug().
			Str("trigger", res.Trigger.String()).
			Str("text", res.Text).
			Int("cursor", res.Cursor).
			Msg("delimiter inserted")
	default:
		m.cfg.Logger.Trace().
			Int("length", st.LastLength).
			Msg("text observed")
	}
}
