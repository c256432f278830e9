package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/division/field"
	"github.com/iw2rmb/division/internal/grapheme"
	"github.com/iw2rmb/division/internal/logging"
)

const replayLong = `Drive the field from a keystroke script and print every displayed state.

Each script line is one step; blank lines and lines starting with # are ignored.

  type <text>   type text one character at a time
  paste <text>  paste text in one go
  key <name>    press a key: left, right, home, end, backspace, delete,
                shift+left, shift+right, alt+left, alt+right, space,
                ctrl+z, ctrl+y, ctrl+c, ctrl+x, ctrl+v
  set <text>    replace the text the way a host program would
  reset         clear the field

Copy and paste use an in-memory clipboard.`

var replayKeys = map[string]tea.KeyMsg{
	"left":        {Type: tea.KeyLeft},
	"right":       {Type: tea.KeyRight},
	"home":        {Type: tea.KeyHome},
	"end":         {Type: tea.KeyEnd},
	"backspace":   {Type: tea.KeyBackspace},
	"delete":      {Type: tea.KeyDelete},
	"shift+left":  {Type: tea.KeyShiftLeft},
	"shift+right": {Type: tea.KeyShiftRight},
	"alt+left":    {Type: tea.KeyLeft, Alt: true},
	"alt+right":   {Type: tea.KeyRight, Alt: true},
	"space":       {Type: tea.KeySpace, Runes: []rune{' '}},
	"ctrl+z":      {Type: tea.KeyCtrlZ},
	"ctrl+y":      {Type: tea.KeyCtrlY},
	"ctrl+c":      {Type: tea.KeyCtrlC},
	"ctrl+x":      {Type: tea.KeyCtrlX},
	"ctrl+v":      {Type: tea.KeyCtrlV},
}

type stepOp string

const (
	opType  stepOp = "type"
	opPaste stepOp = "paste"
	opKey   stepOp = "key"
	opSet   stepOp = "set"
	opReset stepOp = "reset"
)

type replayStep struct {
	Op   stepOp
	Arg  string
	Line int
}

func newReplayCmd() *cobra.Command {
	var showEvents bool

	cmd := &cobra.Command{
		Use:   "replay [script]",
		Short: "Run a keystroke script against the field",
		Long:  replayLong,
		Example: `  printf 'type 4111111111111111\nkey backspace\n' | division replay --place-holder " " --place-index 4
  division replay card.txt --attrs card.yaml --events`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.close() }()

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			steps, err := parseScript(in)
			if err != nil {
				return err
			}

			cfg, err := s.fieldConfig()
			if err != nil {
				return err
			}
			ctx := logging.WithComponent(logging.WithContext(cmd.Context(), s.logger), "replay")
			return runReplay(ctx, cfg, steps, cmd.OutOrStdout(), showEvents)
		},
	}

	cmd.Flags().BoolVar(&showEvents, "events", false, "print every change event, echoes included")
	return cmd
}

func parseScript(r io.Reader) ([]replayStep, error) {
	var steps []replayStep
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		// The argument keeps its inner and trailing spaces: "type 12 34 " is
		// meaningful when the delimiter is a space.
		head := strings.TrimLeft(raw, " \t")
		op, arg, _ := strings.Cut(head, " ")
		step := replayStep{Op: stepOp(op), Arg: arg, Line: line}

		switch step.Op {
		case opType, opPaste, opSet:
		case opKey:
			step.Arg = strings.ToLower(strings.TrimSpace(arg))
			if _, ok := replayKeys[step.Arg]; !ok {
				return nil, fmt.Errorf("line %d: unknown key %q (known: %s)", line, step.Arg, strings.Join(knownKeys(), ", "))
			}
		case opReset:
			if strings.TrimSpace(arg) != "" {
				return nil, fmt.Errorf("line %d: reset takes no argument", line)
			}
		default:
			return nil, fmt.Errorf("line %d: unknown step %q", line, op)
		}
		steps = append(steps, step)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return steps, nil
}

func knownKeys() []string {
	names := make([]string, 0, len(replayKeys))
	for name := range replayKeys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// runReplay applies steps to a fresh field and prints the displayed text
// after every keystroke.
func runReplay(ctx context.Context, cfg field.Config, steps []replayStep, out io.Writer, showEvents bool) error {
	logger := logging.FromContext(ctx)

	var pending []field.ChangeEvent
	cfg.OnChange = func(ev field.ChangeEvent) {
		pending = append(pending, ev)
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = &memoryClipboard{}
	}
	m := field.New(cfg)

	w := bufio.NewWriter(out)
	report := func(label string) {
		fmt.Fprintf(w, "%-16s %-28q cursor=%d\n", label, m.DisplayValue(), m.Cursor())
		if showEvents {
			for _, ev := range pending {
				fmt.Fprintf(w, "  event v=%d source=%s text=%t echo=%t %q\n",
					ev.Version, ev.Source, ev.TextChanged, ev.Echo, ev.Text)
			}
		}
		pending = pending[:0]
	}

	report("start")
	for _, st := range steps {
		logger.Debug().Int("line", st.Line).Str("op", string(st.Op)).Str("arg", st.Arg).Msg("step")

		switch st.Op {
		case opType:
			for _, c := range grapheme.Split(st.Arg) {
				msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(c)}
				if c == " " {
					msg = replayKeys["space"]
				}
				m, _ = m.Update(msg)
				report("type " + c)
			}
		case opPaste:
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(st.Arg), Paste: true})
			report("paste")
		case opKey:
			m, _ = m.Update(replayKeys[st.Arg])
			report("key " + st.Arg)
		case opSet:
			m = m.SetValue(st.Arg)
			report("set")
		case opReset:
			m = m.Reset()
			report("reset")
		}
	}
	fmt.Fprintf(w, "%-16s %q\n", "value", m.Value())

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write replay output: %w", err)
	}
	return nil
}
