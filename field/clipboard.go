package field

// Clipboard provides field-level clipboard integration.
//
// Errors must not crash the UI; failures are ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
