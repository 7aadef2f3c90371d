package sshconfig

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse reads the text of an SSH client config into a Config.
//
// Top-level lines must be "Host <name>" headers. Lines that start with
// whitespace and directly follow a header (or another body line) form that
// header's body. Blank lines at the top level are dropped. Any other
// top-level line, including an indented header, stops parsing with a
// *ParseError.
func Parse(text string) (*Config, error) {
	cfg := &Config{}
	if text == "" {
		return cfg, nil
	}

	lines := splitLines(text)
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			continue
		}

		if isIndented(line) {
			return nil, &ParseError{Line: i, Text: line, Reason: "indented line outside of a Host block"}
		}

		fields := strings.Fields(line)
		if len(fields) != 2 || fields[0] != KeywordHost {
			return nil, &ParseError{Line: i, Text: line, Reason: "expected \"Host <name>\""}
		}

		entry := &Entry{Hostname: fields[1]}
		for i+1 < len(lines) && isIndented(lines[i+1]) {
			i++
			entry.Statements = append(entry.Statements, Classify(lines[i]))
		}
		cfg.Entries = append(cfg.Entries, entry)
	}

	return cfg, nil
}

// splitLines splits on "\n", drops a trailing "\r" from each line and
// ignores the empty element after a final newline.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func isIndented(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	return line != "" && unicode.IsSpace(r)
}
