package sshconfig

import "strings"

// Config is a parsed SSH client config. Entries are kept in file order and
// hostnames are not deduplicated.
type Config struct {
	Entries []*Entry
}

// Entry is one "Host <name>" block.
type Entry struct {
	Hostname   string
	Statements []Statement
}

// Update holds replacement values for Entry.Apply. A nil field leaves the
// matching statements untouched.
type Update struct {
	HostName *string
	Port     *string
}

// FindEntry returns the first entry whose hostname equals name exactly.
// Later entries with the same name are never returned.
func (c *Config) FindEntry(name string) (*Entry, error) {
	for _, e := range c.Entries {
		if e.Hostname == name {
			return e, nil
		}
	}
	return nil, &HostNotFoundError{Name: name}
}

// Hosts returns the hostname of every entry in file order.
func (c *Config) Hosts() []string {
	hosts := make([]string, 0, len(c.Entries))
	for _, e := range c.Entries {
		hosts = append(hosts, e.Hostname)
	}
	return hosts
}

// Apply rewrites the values of the entry's HostName and Port statements in
// place and returns how many statements it changed. Statements are never
// added, removed or reordered.
func (e *Entry) Apply(u Update) int {
	changed := 0
	for i := range e.Statements {
		st := &e.Statements[i]
		switch {
		case st.Kind == KindHostName && u.HostName != nil:
			st.Value = *u.HostName
			changed++
		case st.Kind == KindPort && u.Port != nil:
			st.Value = *u.Port
			changed++
		}
	}
	return changed
}

// Lookup returns the value of the entry's first statement of kind k.
func (e *Entry) Lookup(k Kind) (string, bool) {
	if k == KindUnknown {
		return "", false
	}
	for _, st := range e.Statements {
		if st.Kind == k {
			return st.Value, true
		}
	}
	return "", false
}

// Format renders the entry as a header line followed by its statements,
// each prefixed with indent.
func (e *Entry) Format(indent string) string {
	var sb strings.Builder
	e.writeTo(&sb, indent)
	return sb.String()
}

func (e *Entry) writeTo(sb *strings.Builder, indent string) {
	sb.WriteString(KeywordHost)
	sb.WriteByte(' ')
	sb.WriteString(e.Hostname)
	sb.WriteByte('\n')
	for _, st := range e.Statements {
		sb.WriteString(indent)
		sb.WriteString(st.String())
		sb.WriteByte('\n')
	}
}

// Format renders cfg back to text. indent is written before every body line
// regardless of the indentation the file was parsed with.
func Format(cfg *Config, indent string) string {
	var sb strings.Builder
	for _, e := range cfg.Entries {
		e.writeTo(&sb, indent)
	}
	return sb.String()
}
