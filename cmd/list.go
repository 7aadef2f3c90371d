package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/sshconf/internal/app"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List Host blocks in file order",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	opts, err := resolveOptions(cmd, "")
	if err != nil {
		return err
	}
	return app.Default.List(opts)
}
