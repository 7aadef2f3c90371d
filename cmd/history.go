package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/sshconf/internal/app"
	"github.com/firefly-engineering/sshconf/internal/logging"
)

var historyCmd = &cobra.Command{
	Use:   "history [host]",
	Short: "Show edits written with --write",
	Long: `Show the edits recorded by --write, oldest first. With a host
argument only that host's edits are listed.

Use --clear to delete the recorded history.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

var (
	historyJSONL bool
	historyClear bool
)

func init() {
	historyCmd.Flags().BoolVar(&historyJSONL, "jsonl", false, "Output events as JSON lines")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete the recorded history")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	var host string
	if len(args) == 1 {
		host = args[0]
	}

	a := app.Default
	if a.History == nil {
		logWarning("Edit history is unavailable")
		return nil
	}

	if historyClear {
		if host != "" {
			return fmt.Errorf("--clear does not take a host argument")
		}
		if err := a.History.Clear(); err != nil {
			return fmt.Errorf("failed to clear edit history: %w", err)
		}
		logging.UserSuccess("Cleared edit history")
		return nil
	}

	events, err := a.History.Events(host)
	if err != nil {
		return fmt.Errorf("failed to read edit history: %w", err)
	}

	if len(events) == 0 {
		if host != "" {
			logInfo("No edits recorded for %s", host)
		} else {
			logInfo("No edits recorded")
		}
		return nil
	}

	for _, e := range events {
		if historyJSONL {
			data, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("failed to marshal event: %w", err)
			}
			fmt.Fprintln(a.Stdout, string(data))
			continue
		}

		ts := e.Timestamp.Local().Format("2006-01-02 15:04:05")
		if e.Details != "" {
			fmt.Fprintf(a.Stdout, "[%s] %-6s %s in %s (%s)\n", ts, e.Type, e.Host, e.File, e.Details)
		} else {
			fmt.Fprintf(a.Stdout, "[%s] %-6s %s in %s\n", ts, e.Type, e.Host, e.File)
		}
	}

	return nil
}
