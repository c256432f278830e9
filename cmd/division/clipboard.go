package main

import (
	"github.com/atotto/clipboard"

	"github.com/iw2rmb/division/field"
	"github.com/iw2rmb/division/internal/config"
)

// systemClipboard is the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (systemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

// memoryClipboard keeps copied text in process. replay uses it so scripts
// behave the same on every machine.
type memoryClipboard struct {
	text string
}

func (c *memoryClipboard) ReadText() (string, error) { return c.text, nil }

func (c *memoryClipboard) WriteText(s string) error {
	c.text = s
	return nil
}

// newClipboard returns the configured backend. A nil clipboard disables
// copy and paste in the field.
func newClipboard(backend string) field.Clipboard {
	switch backend {
	case config.ClipboardNone:
		return nil
	default:
		if clipboard.Unsupported {
			return nil
		}
		return systemClipboard{}
	}
}
