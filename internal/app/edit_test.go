package app_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firefly-engineering/sshconf/internal/app"
	"github.com/firefly-engineering/sshconf/internal/audit"
	"github.com/firefly-engineering/sshconf/internal/config"
	"github.com/firefly-engineering/sshconf/internal/errors"
	"github.com/firefly-engineering/sshconf/internal/sshconfig"
	"github.com/firefly-engineering/sshconf/internal/testutil"
)

func strPtr(s string) *string { return &s }

func editOptions(path, host string) config.Options {
	opts := config.DefaultOptions()
	opts.ConfigPath = path
	opts.Host = host
	return opts
}

func TestEdit_PrintsToStdout(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture(testutil.GitHubConfig)

	opts := editOptions(path, "github")
	opts.Port = strPtr("2222")

	require.NoError(t, env.App.Edit(opts))

	want := "Host github\n    HostName github.com\n    IdentityFile ~/.ssh/id_rsa\n    Port 2222\n"
	assert.Equal(t, want, env.Stdout.String())
	assert.Equal(t, testutil.MustFixture(testutil.GitHubConfig), env.ReadFile(path), "file must be untouched without --write")
}

func TestEdit_WriteInPlace(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture(testutil.MultiHostConfig)

	opts := editOptions(path, "google")
	opts.HostName = strPtr("www.google.com")
	opts.IndentSpaces = 2
	opts.Write = true

	require.NoError(t, env.App.Edit(opts))

	want := "Host github\n  HostName github.com\n  IdentityFile ~/.ssh/id_rsa\n  Port 22\nHost google\n  HostName www.google.com\n"
	assert.Equal(t, want, env.ReadFile(path))
	assert.Empty(t, env.Stdout.String())
	assert.Contains(t, env.Stderr.String(), "Updated google in "+path)
}

func TestEdit_ReindentsWholeFile(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture(testutil.MultiHostConfig)

	opts := editOptions(path, "github")
	opts.Port = strPtr("22")
	opts.IndentSpaces = 4

	require.NoError(t, env.App.Edit(opts))
	assert.Contains(t, env.Stdout.String(), "Host google\n    HostName google.com\n")
}

func TestEdit_FirstDuplicateOnly(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture(testutil.DuplicatesConfig)

	opts := editOptions(path, "bastion")
	opts.Port = strPtr("22")

	require.NoError(t, env.App.Edit(opts))

	cfg, err := sshconfig.Parse(env.Stdout.String())
	require.NoError(t, err)
	require.Len(t, cfg.Entries, 2)

	port, _ := cfg.Entries[0].Lookup(sshconfig.KindPort)
	assert.Equal(t, "22", port)
	port, _ = cfg.Entries[1].Lookup(sshconfig.KindPort)
	assert.Equal(t, "2201", port)
}

func TestEdit_TildePath(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteSSHConfig(testutil.MustFixture(testutil.GitHubConfig))

	opts := editOptions("~/.ssh/config", "github")
	opts.HostName = strPtr("ssh.github.com")

	require.NoError(t, env.App.Edit(opts))
	assert.Contains(t, env.Stdout.String(), "    HostName ssh.github.com\n")
}

func TestEdit_NoUpdateWarns(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture(testutil.GitHubConfig)

	require.NoError(t, env.App.Edit(editOptions(path, "github")))

	assert.Equal(t, testutil.MustFixture(testutil.GitHubConfig), env.Stdout.String())
	assert.Contains(t, env.Stderr.String(), "No --host-name or --port given")
}

func TestEdit_MissingDirectiveWarns(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFile("config", "Host a\n  User me\n")

	opts := editOptions(path, "a")
	opts.Port = strPtr("22")

	require.NoError(t, env.App.Edit(opts))
	assert.Equal(t, "Host a\n    User me\n", env.Stdout.String())
	assert.Contains(t, env.Stderr.String(), "Host a has no Port directive")
}

func TestEdit_Errors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(env *testutil.TestEnv) config.Options
		wantCode int
		wantMsg  string
	}{
		{
			name: "zero indent",
			setup: func(env *testutil.TestEnv) config.Options {
				opts := editOptions(filepath.Join(env.TmpDir, "does-not-exist"), "github")
				opts.IndentSpaces = 0
				return opts
			},
			wantCode: errors.ExitConfigError,
			wantMsg:  "invalid options: indent must be greater than 0 (got 0)",
		},
		{
			name: "missing file",
			setup: func(env *testutil.TestEnv) config.Options {
				return editOptions(filepath.Join(env.TmpDir, "does-not-exist"), "github")
			},
			wantCode: errors.ExitIOError,
			wantMsg:  "failed to read",
		},
		{
			name: "malformed file",
			setup: func(env *testutil.TestEnv) config.Options {
				return editOptions(env.WriteFixture(testutil.MalformedConfig), "github")
			},
			wantCode: errors.ExitParseError,
			wantMsg:  "line 2",
		},
		{
			name: "unknown host",
			setup: func(env *testutil.TestEnv) config.Options {
				return editOptions(env.WriteFixture(testutil.GitHubConfig), "gitlab")
			},
			wantCode: errors.ExitHostNotFound,
			wantMsg:  "host not found: gitlab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnv(t)

			err := env.App.Edit(tt.setup(env))
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetExitCode(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Empty(t, env.Stdout.String())
		})
	}
}

func TestEdit_ParseErrorCarriesLine(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture(testutil.MalformedConfig)

	err := env.App.Edit(editOptions(path, "github"))

	var perr *sshconfig.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, "Foo bar baz", perr.Text)
}

func TestEdit_InvalidIndentSkipsIO(t *testing.T) {
	files := &fakeFiles{data: map[string][]byte{}}
	a := app.New(app.WithStdout(&bytes.Buffer{}), app.WithFiles(files))

	opts := editOptions("/etc/ssh/config", "github")
	opts.IndentSpaces = -1
	opts.Write = true

	err := a.Edit(opts)
	assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
	assert.Zero(t, files.writes)
}

func TestEdit_HostNotFoundDoesNotWrite(t *testing.T) {
	files := &fakeFiles{data: map[string][]byte{
		"/cfg": []byte(testutil.MustFixture(testutil.GitHubConfig)),
	}}
	a := app.New(app.WithStdout(&bytes.Buffer{}), app.WithFiles(files))

	opts := editOptions("/cfg", "nope")
	opts.Port = strPtr("1")
	opts.Write = true

	err := a.Edit(opts)
	assert.Equal(t, errors.ExitHostNotFound, errors.GetExitCode(err))
	assert.Zero(t, files.writes)
}

func TestEdit_WriteFailure(t *testing.T) {
	files := &fakeFiles{
		data:     map[string][]byte{"/cfg": []byte("Host a\n  Port 1\n")},
		writeErr: fmt.Errorf("disk full"),
	}
	var out bytes.Buffer
	a := app.New(app.WithStdout(&out), app.WithFiles(files))

	opts := editOptions("/cfg", "a")
	opts.Port = strPtr("2")
	opts.Write = true

	err := a.Edit(opts)
	require.Error(t, err)
	assert.Equal(t, errors.ExitIOError, errors.GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to write /cfg: disk full")
	assert.Empty(t, out.String())
}

func TestList(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture(testutil.DuplicatesConfig)

	require.NoError(t, env.App.List(editOptions(path, "")))
	assert.Equal(t, "bastion\nbastion\n", env.Stdout.String())
}

func TestList_Empty(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFile("empty", "")

	require.NoError(t, env.App.List(editOptions(path, "")))
	assert.Empty(t, env.Stdout.String())
	assert.Contains(t, env.Stderr.String(), "No Host blocks")
}

func TestShow(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture(testutil.MultiHostConfig)

	opts := editOptions(path, "google")
	opts.IndentSpaces = 1

	require.NoError(t, env.App.Show(opts))
	assert.Equal(t, "Host google\n HostName google.com\n", env.Stdout.String())
}

func TestShow_NotFound(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture(testutil.MultiHostConfig)

	err := env.App.Show(editOptions(path, "gitlab"))
	assert.Equal(t, errors.ExitHostNotFound, errors.GetExitCode(err))
}

func TestLoad_ReturnsExpandedPath(t *testing.T) {
	env := testutil.NewTestEnv(t)
	want := env.WriteSSHConfig("Host a\n")

	cfg, path, err := env.App.Load(editOptions("~/.ssh/config", ""))
	require.NoError(t, err)
	assert.Equal(t, want, path)
	assert.Equal(t, []string{"a"}, cfg.Hosts())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestEdit_WriteRecordsHistory(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture(testutil.MultiHostConfig)

	opts := editOptions(path, "github")
	opts.HostName = strPtr("ssh.github.com")
	opts.Port = strPtr("443")
	opts.Write = true

	require.NoError(t, env.App.Edit(opts))

	events := env.History()
	require.Len(t, events, 1)
	assert.Equal(t, audit.EventEdit, events[0].Type)
	assert.Equal(t, "github", events[0].Host)
	assert.Equal(t, path, events[0].File)
	assert.Equal(t, "HostName github.com -> ssh.github.com, Port 22 -> 443", events[0].Details)
}

func TestEdit_StdoutSkipsHistory(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture(testutil.MultiHostConfig)

	opts := editOptions(path, "github")
	opts.Port = strPtr("443")

	require.NoError(t, env.App.Edit(opts))
	assert.Empty(t, env.History())
}

func TestEdit_HistoryFailureIsNotFatal(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.WriteFixture(testutil.GitHubConfig)

	// A regular file where the history directory should be.
	blocker := env.WriteFile("blocker", "")
	env.App.History = audit.NewLogger(filepath.Join(blocker, "state"))

	opts := editOptions(path, "github")
	opts.Port = strPtr("2222")
	opts.Write = true

	require.NoError(t, env.App.Edit(opts))
	assert.Contains(t, env.ReadFile(path), "Port 2222")
}
