package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "division",
		Short: "Input field that inserts a delimiter every N characters",
		Long: `division runs a single-line input field that inserts a delimiter as you type,
e.g. a space every four digits of a card number.

Press enter to print the value without delimiters, esc to quit.`,
		Example: `  division --place-holder " " --place-index 4 --hint "0000 0000 0000 0000"
  division --attrs phone.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runInteractive,
	}

	addSettingsFlags(cmd)
	cmd.AddCommand(newReplayCmd(), newVersionCmd())
	return cmd
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = s.close() }()

	cfg, err := s.fieldConfig()
	if err != nil {
		return err
	}
	cfg.Clipboard = newClipboard(s.cfg.Clipboard)

	s.logger.Info().
		Str("delimiter", cfg.Delimiter).
		Int("group_size", cfg.GroupSize).
		Msg("starting field")

	p := tea.NewProgram(newAppModel(cfg),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
		tea.WithMouseCellMotion(),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run the field: %w", err)
	}

	if m, ok := final.(appModel); ok && m.submitted {
		fmt.Fprintln(cmd.OutOrStdout(), m.field.Value())
	}
	return nil
}
