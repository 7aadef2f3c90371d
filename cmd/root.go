package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/sshconf/internal/app"
	"github.com/firefly-engineering/sshconf/internal/config"
	"github.com/firefly-engineering/sshconf/internal/logging"
)

var (
	verbose      bool
	jsonOutput   bool
	configPath   string
	indentSpaces int

	editHostName string
	editPort     string
	editWrite    bool
)

var rootCmd = &cobra.Command{
	Use:   "sshconf <host>",
	Short: "Edit Host blocks in an OpenSSH client config",
	Long: `sshconf rewrites the HostName and Port of one Host block in an
OpenSSH client config and leaves every other directive as it was.

The first block whose name matches <host> exactly is edited. The result is
printed to stdout unless --write is given, in which case the file is
replaced in place. Body lines are re-indented with --indent-spaces.

A host named like a subcommand (list, show, pick, history, help) must come
after "--" and after all flags.

Examples:
  sshconf github --port 2222
  sshconf github -n ssh.github.com -p 443 --write
  sshconf -p 2222 -- list
  sshconf list`,
	Args: cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
	RunE: runEdit,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVarP(&configPath, config.FlagConfig, "c", config.DefaultConfigPath, "SSH config file")
	rootCmd.PersistentFlags().IntVarP(&indentSpaces, config.FlagIndentSpaces, "i", config.DefaultIndentSpaces, "Spaces before each directive")

	rootCmd.Flags().StringVarP(&editHostName, "host-name", "n", "", "New HostName value")
	rootCmd.Flags().StringVarP(&editPort, "port", "p", "", "New Port value")
	rootCmd.Flags().BoolVarP(&editWrite, "write", "w", false, "Write the result back to the config file")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logWarning = logging.UserWarning
)

func runEdit(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	opts, err := resolveOptions(cmd, args[0])
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("host-name") {
		v := editHostName
		opts.HostName = &v
	}
	if cmd.Flags().Changed("port") {
		v := editPort
		opts.Port = &v
	}
	opts.Write = editWrite

	return app.Default.Edit(opts)
}
