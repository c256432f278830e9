package buffer

import (
	"strings"

	"github.com/iw2rmb/division/internal/grapheme"
)

type Options struct {
	HistoryLimit int // default: 1000; negative disables undo history
}

type selectionState struct {
	active bool
	anchor int
	end    int
}

// Buffer is the pure document state: text, cursor, and selection.
type Buffer struct {
	cells       []string
	version     uint64
	textVersion uint64

	cursor int
	sel    selectionState

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		cells: splitCells(text),
		opt:   opt,
	}
}

func (b *Buffer) Text() string { return grapheme.Join(b.cells) }

// Len returns the text length in grapheme clusters.
func (b *Buffer) Len() int { return len(b.cells) }

// Cells returns a copy of the grapheme clusters.
func (b *Buffer) Cells() []string { return append([]string(nil), b.cells...) }

// Version increments on every effective mutation: text, cursor, or selection.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increments only when the text itself changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() int { return b.cursor }

func (b *Buffer) SetCursor(col int) {
	next := b.clampCol(col)
	if next == b.cursor && !b.sel.active {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SetSelection selects r and places the cursor at r.End.
func (b *Buffer) SetSelection(r Range) {
	r = ClampRange(r, len(b.cells))
	next := selectionState{active: true, anchor: r.Start, end: r.End}
	if r.IsEmpty() {
		next = selectionState{}
	}
	if next == b.sel && b.cursor == r.End {
		return
	}
	b.sel = next
	b.cursor = r.End
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	b.sel = selectionState{}
	b.version++
}

// SelectedText returns the text of the active selection, or "".
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return grapheme.Join(b.cells[r.Start:r.End])
}

func (b *Buffer) clampCol(col int) int {
	return clampInt(col, 0, len(b.cells))
}

// splitCells segments text into clusters. Line breaks are dropped: a buffer
// is always a single line.
func splitCells(text string) []string {
	if strings.ContainsAny(text, "\r\n") {
		text = strings.NewReplacer("\r\n", "", "\r", "", "\n", "").Replace(text)
	}
	return grapheme.Split(text)
}
