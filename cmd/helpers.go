package cmd

import (
	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/sshconf/internal/config"
	"github.com/firefly-engineering/sshconf/internal/errors"
	"github.com/firefly-engineering/sshconf/internal/logging"
	"github.com/firefly-engineering/sshconf/internal/sshconfig"
)

// resolveOptions builds run options from the shared flags, with defaults
// from the settings file filling in flags that were not given.
func resolveOptions(cmd *cobra.Command, host string) (config.Options, error) {
	opts := config.DefaultOptions()
	opts.Host = host
	opts.ConfigPath = configPath
	opts.IndentSpaces = indentSpaces

	settings, err := loadSettings()
	if err != nil {
		return opts, err
	}
	opts.ApplySettings(settings, func(name string) bool {
		return cmd.Flags().Changed(name)
	})

	logging.Debug("resolved options",
		"host", opts.Host,
		"config", opts.ConfigPath,
		"indent", opts.IndentSpaces,
	)
	return opts, nil
}

// loadSettings reads the user settings file, if there is one.
func loadSettings() (*config.Settings, error) {
	path, err := config.SettingsPath()
	if err != nil {
		logging.Debug("no settings location", "error", err)
		return nil, nil
	}

	settings, err := config.LoadSettings(path)
	if err != nil {
		return nil, errors.ConfigError("failed to load settings", err)
	}
	if len(settings.Undecoded) > 0 {
		logging.Warn("ignoring unknown settings", "path", path, "keys", settings.Undecoded)
	}
	return settings, nil
}

// editCommandLine returns a shell-quoted sshconf invocation that edits
// entry, pre-filled with its current values.
func editCommandLine(entry *sshconfig.Entry, opts config.Options) string {
	args := []string{"sshconf", entry.Hostname}
	if opts.ConfigPath != config.DefaultConfigPath {
		args = append(args, "--config", opts.ConfigPath)
	}
	if v, ok := entry.Lookup(sshconfig.KindHostName); ok {
		args = append(args, "--host-name", v)
	}
	if v, ok := entry.Lookup(sshconfig.KindPort); ok {
		args = append(args, "--port", v)
	}
	return shellquote.Join(args...)
}
