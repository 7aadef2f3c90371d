// Package errors provides typed errors with exit codes for sshconf.
//
// # Error Types
//
// ExitError wraps an error with an exit code:
//
//	type ExitError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess      = 0 // Success
//	ExitGeneralError = 1 // General/unknown errors
//	ExitParseError   = 2 // Config file is malformed
//	ExitHostNotFound = 3 // No Host block with the requested name
//	ExitConfigError  = 4 // Invalid options or settings file
//	ExitIOError      = 5 // Reading or writing a file failed
//
// # Error Constructors
//
//	errors.ParseFailed("/home/me/.ssh/config", err)
//	errors.HostNotFound("github")
//	errors.ConfigError("indent must be greater than 0", nil)
//	errors.IOError("read", path, err)
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
