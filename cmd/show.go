package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/sshconf/internal/app"
)

var showCmd = &cobra.Command{
	Use:   "show <host>",
	Short: "Print one Host block",
	Long: `Print the first Host block named <host>, re-indented with
--indent-spaces. This is the block an edit of <host> would change.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	opts, err := resolveOptions(cmd, args[0])
	if err != nil {
		return err
	}
	return app.Default.Show(opts)
}
