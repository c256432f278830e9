package buffer

import "github.com/iw2rmb/division/internal/grapheme"

// InsertText inserts text at the cursor, or replaces the active selection.
// Line breaks in s are dropped.
func (b *Buffer) InsertText(s string) {
	ins := splitCells(s)
	if len(ins) == 0 {
		if _, ok := b.Selection(); ok {
			b.DeleteSelection()
		}
		return
	}

	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.edit(ChangeSourceLocal, r, ins)
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor == 0 {
		return
	}
	b.edit(ChangeSourceLocal, Range{Start: b.cursor - 1, End: b.cursor}, nil)
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor == len(b.cells) {
		return
	}
	b.edit(ChangeSourceLocal, Range{Start: b.cursor, End: b.cursor + 1}, nil)
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.edit(ChangeSourceLocal, r, nil)
}

// ReplaceAll overwrites the whole text and places the cursor at col.
//
// It reports whether anything changed. Identical text and cursor is a no-op
// and bumps no version.
func (b *Buffer) ReplaceAll(text string, col int, src ChangeSource) bool {
	next := splitCells(text)
	col = clampInt(col, 0, len(next))
	if cellsEqual(b.cells, next) {
		if col == b.cursor && !b.sel.active {
			return false
		}
		b.cursor = col
		b.sel = selectionState{}
		b.version++
		return true
	}

	prev := b.snapshot()
	change := b.beginChange(src)
	b.cells = next
	b.cursor = col
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
	b.commitChange(change)
	return true
}

func (b *Buffer) edit(src ChangeSource, r Range, ins []string) {
	r = NormalizeRange(ClampRange(r, len(b.cells)))
	if r.IsEmpty() && len(ins) == 0 {
		return
	}
	if cellsEqual(b.cells[r.Start:r.End], ins) {
		return
	}

	prev := b.snapshot()
	change := b.beginChange(src)

	out := make([]string, 0, len(b.cells)-r.Len()+len(ins))
	out = append(out, b.cells[:r.Start]...)
	out = append(out, ins...)
	out = append(out, b.cells[r.End:]...)

	// Inserted clusters may merge with their neighbours (combining marks).
	b.cells = grapheme.Split(grapheme.Join(out))
	b.cursor = b.clampCol(r.Start + len(ins) - (len(out) - len(b.cells)))
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
	b.commitChange(change)
}

func cellsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
