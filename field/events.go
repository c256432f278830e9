package field

import "github.com/iw2rmb/division/buffer"

type ChangeEvent struct {
	Version   uint64
	Cursor    int
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	Text string
	// TextChanged is false for caret or selection only mutations.
	TextChanged bool
	// Source is the origin of the most recent text change.
	Source buffer.ChangeSource
	// Echo marks the re-notification of a formatter redisplay.
	Echo bool
}

func buildChangeEvent(b *buffer.Buffer, textChanged, echo bool) ChangeEvent {
	ev := ChangeEvent{
		Version:     b.Version(),
		Cursor:      b.Cursor(),
		Text:        b.Text(),
		TextChanged: textChanged,
		Echo:        echo,
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	if ch, ok := b.LastChange(); ok {
		ev.Source = ch.Source
	}
	return ev
}
