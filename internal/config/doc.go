// Package config provides driver options and user settings for sshconf.
//
// # Options
//
// Options holds everything a single run needs, filled from command-line
// flags:
//
//	type Options struct {
//	    Host         string  // Host block to edit
//	    HostName     *string // Replacement HostName value, nil to keep
//	    Port         *string // Replacement Port value, nil to keep
//	    ConfigPath   string  // SSH config file, "~" is expanded
//	    Write        bool    // Rewrite the file instead of printing
//	    IndentSpaces int     // Spaces before each body line, > 0
//	}
//
// # Settings File
//
// Defaults for ConfigPath and IndentSpaces can be set in a TOML file at
// $XDG_CONFIG_HOME/sshconf/config.toml (or ~/.config/sshconf/config.toml):
//
//	config_path   = "~/.ssh/config.d/work"
//	indent_spaces = 2
//
// Values given explicitly on the command line always win over the file.
//
// # Paths
//
// ExpandPath turns "~" and "~/..." into paths under the user's home
// directory. Other paths are returned cleaned but otherwise unchanged.
package config
