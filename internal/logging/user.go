package logging

import (
	"fmt"
	"io"
	"os"
)

// User-facing status lines. Every one goes to stderr so that formatted
// config text on stdout can be piped or redirected untouched.

// UserOutput is where user status lines are written.
var UserOutput io.Writer = os.Stderr

// UserInfo prints an info message.
func UserInfo(format string, args ...interface{}) {
	fmt.Fprintf(UserOutput, "ℹ "+format+"\n", args...)
}

// UserSuccess prints a success message.
func UserSuccess(format string, args ...interface{}) {
	fmt.Fprintf(UserOutput, "✓ "+format+"\n", args...)
}

// UserWarning prints a warning message.
func UserWarning(format string, args ...interface{}) {
	fmt.Fprintf(UserOutput, "⚠ "+format+"\n", args...)
}
