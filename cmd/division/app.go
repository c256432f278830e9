package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/division/field"
)

type appKeyMap struct {
	field  field.KeyMap
	Submit key.Binding
	Quit   key.Binding
	Help   key.Binding
}

func newAppKeyMap(fk field.KeyMap) appKeyMap {
	return appKeyMap{
		field:  fk,
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+q"), key.WithHelp("esc", "quit")),
		Help:   key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "more keys")),
	}
}

// ShortHelp implements help.KeyMap.
func (k appKeyMap) ShortHelp() []key.Binding {
	return append([]key.Binding{k.Submit, k.Quit, k.Help}, k.field.ShortHelp()...)
}

// FullHelp implements help.KeyMap.
func (k appKeyMap) FullHelp() [][]key.Binding {
	return append(k.field.FullHelp(), []key.Binding{k.Submit, k.Quit, k.Help})
}

// eventLog is shared with the field's OnChange callback.
type eventLog struct {
	last  field.ChangeEvent
	count int
}

func (l *eventLog) record(ev field.ChangeEvent) {
	l.last = ev
	l.count++
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

type appModel struct {
	field  field.Model
	events *eventLog
	keys   appKeyMap
	help   help.Model

	submitted bool
}

func newAppModel(cfg field.Config) appModel {
	events := &eventLog{}
	next := cfg.OnChange
	cfg.OnChange = func(ev field.ChangeEvent) {
		events.record(ev)
		if next != nil {
			next(ev)
		}
	}
	cfg.Style = field.DefaultStyle()
	cfg.KeyMap = field.DefaultKeyMap()
	f := field.New(cfg)
	return appModel{
		field:  f,
		events: events,
		keys:   newAppKeyMap(cfg.KeyMap),
		help:   help.New(),
	}
}

func (m appModel) Init() tea.Cmd { return m.field.Init() }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Submit):
			m.submitted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case msg.Type == tea.KeyCtrlC:
			// ctrl+c copies a selection; without one it quits.
			if _, ok := m.field.Buffer().Selection(); !ok {
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	var b strings.Builder
	b.WriteString(m.field.View())
	b.WriteString("\n\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m appModel) statusLine() string {
	st := m.field.Formatter()
	parts := []string{
		"value " + valueStyle.Render(fmt.Sprintf("%q", m.field.Value())),
		fmt.Sprintf("length %d", st.LastLength),
	}
	if st.Delimiter != "" {
		parts = append(parts, fmt.Sprintf("delimiter %q every %d", st.Delimiter, st.GroupSize))
	}
	if m.events.count > 0 {
		ev := m.events.last
		last := "last " + ev.Source.String()
		if ev.Echo {
			last += " " + echoStyle.Render("echo")
		}
		parts = append(parts, last)
	}
	return statusStyle.Render(strings.Join(parts, " · "))
}
