package separator

import (
	"strings"

	"github.com/iw2rmb/division/internal/grapheme"
)

// Options configures a Formatter.
type Options struct {
	// Delimiter is the separator inserted into the text. Only its first
	// grapheme cluster is kept. Empty means no formatting, and so does a
	// line break, which a single-line input cannot display.
	Delimiter string

	// GroupSize is the number of plain clusters between delimiters.
	// 0 inserts a delimiter after every cluster. Negative values clamp to 0.
	GroupSize int
}

// State is a snapshot of a Formatter's internal state.
type State struct {
	Delimiter    string
	GroupSize    int
	LastLength   int
	SuppressNext bool
}

// Trigger identifies which insertion rule fired for an observation.
type Trigger uint8

const (
	TriggerNone Trigger = iota
	// TriggerBoundary appends the delimiter when typing reaches a group end.
	TriggerBoundary
	// TriggerRejoin inserts the delimiter before the last cluster when typing
	// lands on a multiple of GroupSize+1, which happens after the previous
	// delimiter was deleted.
	TriggerRejoin
)

func (t Trigger) String() string {
	switch t {
	case TriggerBoundary:
		return "boundary"
	case TriggerRejoin:
		return "rejoin"
	default:
		return "none"
	}
}

// Result is the outcome of one observation.
type Result struct {
	// Text is what the host should display.
	Text string
	// Cursor is the caret position in grapheme clusters. Always len(Text).
	Cursor int
	// Echo reports that the observation was absorbed as the host's
	// re-notification of a previous rewrite.
	Echo bool
	// Trigger is the rule that produced Text, or TriggerNone.
	Trigger Trigger
}

// Rewritten reports whether the host must replace its displayed text.
func (r Result) Rewritten() bool { return r.Trigger != TriggerNone }

// Formatter is the per-input formatter state machine.
type Formatter struct {
	st State
}

// New returns a Formatter configured by opts.
func New(opts Options) *Formatter {
	g := opts.GroupSize
	if g < 0 {
		g = 0
	}
	d := grapheme.First(opts.Delimiter)
	if strings.ContainsAny(d, "\r\n") {
		d = ""
	}
	return &Formatter{st: State{
		Delimiter: d,
		GroupSize: g,
	}}
}

func (f *Formatter) State() State { return f.st }

func (f *Formatter) Delimiter() string { return f.st.Delimiter }

func (f *Formatter) GroupSize() int { return f.st.GroupSize }

// Inert reports whether the formatter passes every text through unchanged.
func (f *Formatter) Inert() bool { return f.st.Delimiter == "" }

// Observe processes the text the host currently displays and returns what it
// should display instead.
//
// Only growth is processed. A text that did not grow since the last settled
// observation is recorded and returned unchanged, even when its delimiters no
// longer sit on group boundaries.
func (f *Formatter) Observe(text string) Result {
	clusters := grapheme.Split(text)
	n := len(clusters)

	if f.st.SuppressNext {
		f.st.SuppressNext = false
		f.st.LastLength = n
		return Result{Text: text, Cursor: n, Echo: true}
	}

	res := Result{Text: text, Cursor: n}
	if f.st.LastLength < n {
		if out, trig := f.insert(clusters); trig != TriggerNone {
			res.Text = out
			res.Cursor = n + 1
			res.Trigger = trig
			f.st.SuppressNext = true
		}
	}
	f.st.LastLength = res.Cursor
	return res
}

// Sync records text as settled without processing it and drops a pending
// echo. Hosts call it after resetting their content.
func (f *Formatter) Sync(text string) {
	f.st.LastLength = grapheme.Count(text)
	f.st.SuppressNext = false
}

// Strip returns text with every delimiter cluster removed.
func (f *Formatter) Strip(text string) string {
	if f.Inert() || text == "" {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for _, c := range grapheme.Split(text) {
		if c != f.st.Delimiter {
			sb.WriteString(c)
		}
	}
	return sb.String()
}

func (f *Formatter) insert(clusters []string) (string, Trigger) {
	if f.Inert() {
		return "", TriggerNone
	}
	n := len(clusters)
	g := f.st.GroupSize
	period := g + 1

	switch {
	case n == g || n%period == g:
		return grapheme.Join(clusters) + f.st.Delimiter, TriggerBoundary
	case n > 0 && n%period == 0:
		head := grapheme.Join(clusters[:n-1])
		return head + f.st.Delimiter + clusters[n-1], TriggerRejoin
	}
	return "", TriggerNone
}
