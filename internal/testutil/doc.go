// Package testutil provides test fixtures and utilities.
//
// # Fixtures
//
// SSH config fixtures are embedded using go:embed:
//
//	fixtures/github.conf      // one block, 4-space indent
//	fixtures/multi_host.conf  // two blocks, 2-space indent
//	fixtures/duplicates.conf  // the same host twice
//	fixtures/malformed.conf   // bad top-level line at index 2
//
//	text := testutil.MustFixture(testutil.GitHubConfig)
//	data, err := testutil.LoadFixture("multi_host.conf")
//
// # Test Environment
//
// NewTestEnv points HOME and XDG_CONFIG_HOME at a temporary directory,
// installs an App that writes to a buffer as app.Default and captures user
// status output:
//
//	env := testutil.NewTestEnv(t)
//	path := env.WriteFixture(testutil.GitHubConfig)
//	err := env.App.Edit(opts)
//	out := env.Stdout.String()
package testutil
