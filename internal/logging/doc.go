// Package logging provides logging utilities for sshconf.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted status messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("parsed config", "path", path, "entries", n)
//	logging.Warn("settings file ignored", "path", path)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("No hosts in %s", path)
//	logging.UserSuccess("Updated %s", path)
//	logging.UserWarning("Host %s has no Port directive", host)
//
// All user output goes to UserOutput (stderr by default). Stdout is reserved
// for formatted config text.
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
package logging
