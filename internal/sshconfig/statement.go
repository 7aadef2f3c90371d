package sshconfig

import "strings"

// Kind identifies which directive a Statement holds.
type Kind int

const (
	// KindUnknown is any directive the package does not model.
	KindUnknown Kind = iota
	// KindHostName is a "HostName <value>" directive.
	KindHostName
	// KindPort is a "Port <value>" directive.
	KindPort
)

// Directive keywords recognized by Classify.
const (
	KeywordHost     = "Host"
	KeywordHostName = "HostName"
	KeywordPort     = "Port"
)

func (k Kind) String() string {
	switch k {
	case KindHostName:
		return KeywordHostName
	case KindPort:
		return KeywordPort
	default:
		return "Unknown"
	}
}

// Statement is one body line of a host block.
//
// For KindHostName and KindPort, Value is the directive's argument. For
// KindUnknown, Value is the whole trimmed line.
type Statement struct {
	Kind  Kind
	Value string
}

// HostName returns a HostName statement.
func HostName(value string) Statement {
	return Statement{Kind: KindHostName, Value: value}
}

// Port returns a Port statement.
func Port(value string) Statement {
	return Statement{Kind: KindPort, Value: value}
}

// Unknown returns an opaque statement holding raw verbatim.
func Unknown(raw string) Statement {
	return Statement{Kind: KindUnknown, Value: raw}
}

// String renders the statement without indentation.
func (s Statement) String() string {
	switch s.Kind {
	case KindHostName:
		return KeywordHostName + " " + s.Value
	case KindPort:
		return KeywordPort + " " + s.Value
	default:
		return s.Value
	}
}

// Classify turns one body line into a Statement.
//
// Only the exact two-field shapes "HostName <v>" and "Port <v>" are
// recognized. Anything else, including an empty line, a bare keyword or a
// directive with extra arguments, becomes an unknown statement carrying the
// trimmed line.
func Classify(line string) Statement {
	trimmed := strings.TrimSpace(line)
	fields := strings.Fields(trimmed)
	if len(fields) == 2 {
		switch fields[0] {
		case KeywordHostName:
			return HostName(fields[1])
		case KeywordPort:
			return Port(fields[1])
		}
	}
	return Unknown(trimmed)
}
