package buffer

import "github.com/iw2rmb/division/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome
	DirEnd
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	nextCursor := b.clampCol(b.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	}

	if prevCursor == nextCursor && selectionStateEqual(prevSel, nextSel) {
		return
	}

	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a == b
}

func (b *Buffer) moveCursor(col int, m Move) int {
	switch m.Dir {
	case DirHome:
		return 0
	case DirEnd:
		return len(b.cells)
	}

	switch m.Unit {
	case MoveGrapheme:
		if m.Dir == DirLeft {
			return col - 1
		}
		return col + 1
	case MoveWord:
		if m.Dir == DirLeft {
			return prevWordBoundary(b.cells, col)
		}
		return nextWordBoundary(b.cells, col)
	default:
		return col
	}
}

// A delimiter or any other punctuation cluster separates words the same way
// whitespace does, so word jumps stop at group boundaries.
func isWordBreak(cluster string) bool {
	return grapheme.IsSpace(cluster) || grapheme.IsPunct(cluster)
}

func prevWordBoundary(cells []string, col int) int {
	i := clampInt(col, 0, len(cells))
	for i > 0 && isWordBreak(cells[i-1]) {
		i--
	}
	for i > 0 && !isWordBreak(cells[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(cells []string, col int) int {
	i := clampInt(col, 0, len(cells))
	for i < len(cells) && isWordBreak(cells[i]) {
		i++
	}
	for i < len(cells) && !isWordBreak(cells[i]) {
		i++
	}
	return i
}
