package config

import (
	"fmt"
	"strings"
)

const (
	// DefaultConfigPath is the per-user OpenSSH client config.
	DefaultConfigPath = "~/.ssh/config"

	// DefaultIndentSpaces is the indentation width for body lines.
	DefaultIndentSpaces = 4
)

// Flag names shared by the command line and the settings file merge.
const (
	FlagConfig       = "config"
	FlagIndentSpaces = "indent-spaces"
)

// Options holds the parameters of a single run.
type Options struct {
	Host         string
	HostName     *string
	Port         *string
	ConfigPath   string
	Write        bool
	IndentSpaces int
}

// DefaultOptions returns Options with the built-in defaults.
func DefaultOptions() Options {
	return Options{
		ConfigPath:   DefaultConfigPath,
		IndentSpaces: DefaultIndentSpaces,
	}
}

// Validate checks the options that do not need the config file.
func (o *Options) Validate() error {
	if o.IndentSpaces <= 0 {
		return fmt.Errorf("indent must be greater than 0 (got %d)", o.IndentSpaces)
	}
	if o.ConfigPath == "" {
		return fmt.Errorf("config path cannot be empty")
	}
	return nil
}

// Indent returns the indentation string for body lines.
func (o *Options) Indent() string {
	return strings.Repeat(" ", o.IndentSpaces)
}

// HasUpdate reports whether any replacement value was given.
func (o *Options) HasUpdate() bool {
	return o.HostName != nil || o.Port != nil
}

// ApplySettings fills options from s unless the matching flag was set
// explicitly. isSet reports whether a flag (by name) was given on the
// command line.
func (o *Options) ApplySettings(s *Settings, isSet func(flag string) bool) {
	if s == nil {
		return
	}
	if s.ConfigPath != "" && !isSet(FlagConfig) {
		o.ConfigPath = s.ConfigPath
	}
	if s.IndentSpaces != 0 && !isSet(FlagIndentSpaces) {
		o.IndentSpaces = s.IndentSpaces
	}
}
