package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/sshconf/internal/app"
	"github.com/firefly-engineering/sshconf/internal/audit"
	"github.com/firefly-engineering/sshconf/internal/logging"
)

// TestEnv holds the test environment
type TestEnv struct {
	T       *testing.T
	TmpDir  string
	HomeDir string
	State   string
	Stdout  *bytes.Buffer
	Stderr  *bytes.Buffer
	App     *app.App
	cleanup func()
}

// NewTestEnv creates an isolated environment: a fake home directory with an
// empty ~/.ssh, XDG_CONFIG_HOME and XDG_STATE_HOME inside it, and an App
// whose stdout and user output are captured.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	home := filepath.Join(tmpDir, "home")

	for _, dir := range []string{
		filepath.Join(home, ".ssh"),
		filepath.Join(home, ".config", "sshconf"),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))
	state := filepath.Join(home, ".local", "state", "sshconf")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	testApp := app.New(app.WithStdout(stdout), app.WithHistory(audit.NewLogger(state)))

	originalDefault := app.Default
	originalUserOutput := logging.UserOutput
	app.SetDefault(testApp)
	logging.UserOutput = stderr

	env := &TestEnv{
		T:       t,
		TmpDir:  tmpDir,
		HomeDir: home,
		State:   state,
		Stdout:  stdout,
		Stderr:  stderr,
		App:     testApp,
		cleanup: func() {
			app.SetDefault(originalDefault)
			logging.UserOutput = originalUserOutput
		},
	}
	t.Cleanup(env.Cleanup)

	return env
}

// Cleanup restores the original app default and user output
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
}

// WriteFile writes content to a path relative to TmpDir and returns the
// absolute path.
func (e *TestEnv) WriteFile(name, content string) string {
	e.T.Helper()

	path := filepath.Join(e.TmpDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.T.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		e.T.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// WriteFixture copies a fixture into TmpDir and returns its path.
func (e *TestEnv) WriteFixture(name string) string {
	e.T.Helper()
	return e.WriteFile(name, MustFixture(name))
}

// WriteSSHConfig writes content to ~/.ssh/config in the fake home.
func (e *TestEnv) WriteSSHConfig(content string) string {
	e.T.Helper()
	return e.WriteFile(filepath.Join("home", ".ssh", "config"), content)
}

// WriteSettings writes the sshconf settings file in the fake home.
func (e *TestEnv) WriteSettings(content string) string {
	e.T.Helper()
	return e.WriteFile(filepath.Join("home", ".config", "sshconf", "config.toml"), content)
}

// History returns the recorded edit events.
func (e *TestEnv) History() []audit.Event {
	e.T.Helper()

	events, err := e.App.History.Events("")
	if err != nil {
		e.T.Fatalf("Failed to read history: %v", err)
	}
	return events
}

// ReadFile returns the content of path.
func (e *TestEnv) ReadFile(path string) string {
	e.T.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		e.T.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
