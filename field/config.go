package field

import "github.com/rs/zerolog"

// Config configures the field Model.
type Config struct {
	// Initial text. It is displayed as given and is not reformatted.
	Text string

	// Separator rules, forwarded to separator.Options.
	Delimiter string
	GroupSize int

	Prompt string
	// Hint is rendered when the field is empty.
	Hint string
	// Width is the text area width in terminal cells. 0 disables horizontal
	// scrolling.
	Width int
	// CharLimit caps the number of non-delimiter clusters the user can enter.
	// 0 means no limit.
	CharLimit int

	ReadOnly bool

	// Forwarded to buffer.Options.
	HistoryLimit int

	Style     Style
	KeyMap    KeyMap
	Clipboard Clipboard

	// OnChange is called once per effective mutation, including the echo of a
	// formatter redisplay.
	OnChange func(ChangeEvent)

	// Logger receives debug events for formatter decisions. Nil disables
	// logging.
	Logger *zerolog.Logger
}

func normalizeConfig(cfg Config) Config {
	if keyMapIsZero(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Width < 0 {
		cfg.Width = 0
	}
	if cfg.CharLimit < 0 {
		cfg.CharLimit = 0
	}
	if cfg.Logger == nil {
		nop := zerolog.Nop()
		cfg.Logger = &nop
	}
	return cfg
}
