package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// Settings are user defaults read from the settings file. Zero values mean
// "not set".
type Settings struct {
	ConfigPath   string `toml:"config_path"`
	IndentSpaces int    `toml:"indent_spaces"`

	// Undecoded lists keys in the file that Settings does not know about.
	Undecoded []string `toml:"-"`
}

// Validate checks that the Settings are valid.
func (s *Settings) Validate() error {
	if s.IndentSpaces < 0 {
		return fmt.Errorf("indent_spaces must not be negative (got %d)", s.IndentSpaces)
	}
	return nil
}

// LoadSettings reads the settings file at path. A missing file yields empty
// Settings and no error.
func LoadSettings(path string) (*Settings, error) {
	var s Settings
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	for _, key := range md.Undecoded() {
		s.Undecoded = append(s.Undecoded, key.String())
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", path, err)
	}

	return &s, nil
}
