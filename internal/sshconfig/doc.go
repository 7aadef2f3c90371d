// Package sshconfig parses, edits and formats OpenSSH client config files.
//
// The package works on text only. It never reads or writes files and never
// looks at the environment; the caller hands in the file contents and gets
// formatted text back.
//
// # Model
//
// A Config is an ordered list of Entry values, one per "Host <name>" block.
// Each Entry holds the block's body lines as Statement values, one per
// physical line and in file order:
//
//	Host github              -> Entry{Hostname: "github"}
//	    HostName github.com  -> Statement{Kind: KindHostName, Value: "github.com"}
//	    IdentityFile ~/.k    -> Statement{Kind: KindUnknown, Value: "IdentityFile ~/.k"}
//	    Port 22              -> Statement{Kind: KindPort, Value: "22"}
//
// Only HostName and Port are modelled. Every other line is kept verbatim
// (trimmed) as an unknown statement and formats back byte-for-byte.
//
// # Usage
//
//	cfg, err := sshconfig.Parse(text)
//	if err != nil {
//	    return err // *ParseError
//	}
//	entry, err := cfg.FindEntry("github")
//	if err != nil {
//	    return err // *HostNotFoundError
//	}
//	port := "2222"
//	entry.Apply(sshconfig.Update{Port: &port})
//	out := sshconfig.Format(cfg, "    ")
//
// # Limitations
//
// Blank lines and the original indentation width are not preserved. Comments
// inside a block are kept as unknown statements; comments at the top level
// are rejected as malformed lines.
package sshconfig
