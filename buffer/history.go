package buffer

type bufferSnapshot struct {
	cells  []string
	cursor int
	sel    selectionState
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{
		cells:  append([]string(nil), b.cells...),
		cursor: b.cursor,
		sel:    b.sel,
	}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.cells = append([]string(nil), s.cells...)
	b.cursor = b.clampCol(s.cursor)

	anchor := b.clampCol(s.sel.anchor)
	end := b.clampCol(s.sel.end)
	if !s.sel.active || anchor == end {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{active: true, anchor: anchor, end: end}
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	b.hist.undo = append(b.hist.undo, prev)
	if len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

func (b *Buffer) Undo() bool {
	if len(b.hist.undo) == 0 {
		return false
	}

	cur := b.snapshot()
	change := b.beginChange(ChangeSourceLocal)

	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, cur)

	b.restore(prev)
	b.version++
	b.textVersion++
	b.commitChange(change)
	return true
}

func (b *Buffer) Redo() bool {
	if len(b.hist.redo) == 0 {
		return false
	}

	cur := b.snapshot()
	change := b.beginChange(ChangeSourceLocal)

	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]

	if limit := b.opt.HistoryLimit; limit > 0 {
		b.hist.undo = append(b.hist.undo, cur)
		if len(b.hist.undo) > limit {
			b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
		}
	}

	b.restore(next)
	b.version++
	b.textVersion++
	b.commitChange(change)
	return true
}
