package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/firefly-engineering/sshconf/internal/app"
	"github.com/firefly-engineering/sshconf/internal/logging"
	"github.com/firefly-engineering/sshconf/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactive host picker",
	Long: `Opens an interactive TUI for browsing Host blocks.

Use arrow keys or j/k to navigate, / to filter.

Actions:
  Enter  - Print the selected block
  e      - Print an sshconf command that edits the selected block
  q/Esc  - Quit

Without a terminal the hosts are printed as a plain list.`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

// isTerminal is swapped out in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	opts, err := resolveOptions(cmd, "")
	if err != nil {
		return err
	}

	cfg, path, err := app.Default.Load(opts)
	if err != nil {
		return err
	}

	if len(cfg.Entries) == 0 {
		logInfo("No Host blocks in %s", path)
		return nil
	}

	out := app.Default.Stdout
	if !isTerminal() {
		logging.Debug("no terminal, printing plain list")
		_, err := fmt.Fprint(out, tui.SimpleList(cfg.Entries, path))
		return err
	}

	result, err := tui.RunPicker(cfg.Entries, "sshconf - "+path)
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}

	logging.Debug("picker result", "action", result.Action)

	switch result.Action {
	case tui.ActionShow:
		_, err = fmt.Fprint(out, result.Entry.Format(opts.Indent()))
		return err
	case tui.ActionEdit:
		if first, _ := cfg.FindEntry(result.Entry.Hostname); first != result.Entry {
			logWarning("An earlier block is also named %s; edits always apply to the first one", result.Entry.Hostname)
		}
		_, err = fmt.Fprintln(out, editCommandLine(result.Entry, opts))
		return err
	}

	return nil
}
