package buffer

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	// ChangeSourceLocal is a user edit: typing, deletion, undo, paste.
	ChangeSourceLocal ChangeSource = iota
	// ChangeSourceFormatter is a redisplay requested by the separator
	// formatter.
	ChangeSourceFormatter
	// ChangeSourceHost is a programmatic write by the embedding application.
	ChangeSourceHost
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceFormatter:
		return "formatter"
	case ChangeSourceHost:
		return "host"
	default:
		return "local"
	}
}

// Change is a normalized, versioned text mutation payload.
type Change struct {
	Source        ChangeSource
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  int
	CursorAfter   int
	TextBefore    string
	TextAfter     string
}

type changeBuilder struct {
	source        ChangeSource
	versionBefore uint64
	cursorBefore  int
	textBefore    string
}

// LastChange returns the most recent effective text change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) beginChange(source ChangeSource) changeBuilder {
	return changeBuilder{
		source:        source,
		versionBefore: b.version,
		cursorBefore:  b.cursor,
		textBefore:    b.Text(),
	}
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Source:        cb.source,
		VersionBefore: cb.versionBefore,
		VersionAfter:  b.version,
		CursorBefore:  cb.cursorBefore,
		CursorAfter:   b.cursor,
		TextBefore:    cb.textBefore,
		TextAfter:     b.Text(),
	}
	b.hasLastChange = true
}
