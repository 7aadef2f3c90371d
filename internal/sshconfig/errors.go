package sshconfig

import "fmt"

// ParseError reports a top-level line that is not a "Host <name>" header.
// Line is the 0-based index of the offending line.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// HostNotFoundError is returned by FindEntry when no entry has the
// requested hostname.
type HostNotFoundError struct {
	Name string
}

func (e *HostNotFoundError) Error() string {
	return fmt.Sprintf("host %q not found", e.Name)
}
