package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// homeDir is swapped out in tests.
var homeDir = os.UserHomeDir

// ExpandPath expands a leading "~" or "~/" to the user's home directory.
// "~user" forms are not supported and are returned as-is.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return filepath.Clean(path), nil
	}

	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// SettingsPath returns the location of the user settings file.
func SettingsPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "sshconf", "config.toml"), nil
	}

	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "sshconf", "config.toml"), nil
}

// StateDir returns the directory holding the edit history.
func StateDir() (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "sshconf"), nil
	}

	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "state", "sshconf"), nil
}
