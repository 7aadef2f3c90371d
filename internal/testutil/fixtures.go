package testutil

import (
	"embed"
)

//go:embed fixtures/*.conf
var fixturesFS embed.FS

// Fixture names.
const (
	// GitHubConfig is a single "github" block indented with four spaces.
	GitHubConfig = "github.conf"
	// MultiHostConfig holds "github" and "google" indented with two spaces.
	MultiHostConfig = "multi_host.conf"
	// DuplicatesConfig holds two "bastion" blocks separated by a blank line.
	DuplicatesConfig = "duplicates.conf"
	// MalformedConfig has a non-Host top-level line at index 2.
	MalformedConfig = "malformed.conf"
)

// LoadFixture loads an SSH config fixture by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// MustFixture returns the fixture text and panics if it does not exist.
func MustFixture(name string) string {
	data, err := LoadFixture(name)
	if err != nil {
		panic(err)
	}
	return string(data)
}
