package app

import (
	"fmt"
	"strings"

	"github.com/firefly-engineering/sshconf/internal/config"
	"github.com/firefly-engineering/sshconf/internal/errors"
	"github.com/firefly-engineering/sshconf/internal/logging"
	"github.com/firefly-engineering/sshconf/internal/sshconfig"
)

// Load validates opts, reads the config file and parses it. It returns the
// parsed config and the expanded path it was read from.
func (a *App) Load(opts config.Options) (*sshconfig.Config, string, error) {
	if err := opts.Validate(); err != nil {
		return nil, "", errors.ConfigError("invalid options", err)
	}

	path, err := config.ExpandPath(opts.ConfigPath)
	if err != nil {
		return nil, "", errors.ConfigError("invalid config path", err)
	}
	logging.Debug("resolved config path", "input", opts.ConfigPath, "path", path)

	data, err := a.Files.ReadFile(path)
	if err != nil {
		return nil, path, errors.IOError("read", path, err)
	}

	cfg, err := sshconfig.Parse(string(data))
	if err != nil {
		return nil, path, errors.ParseFailed(path, err)
	}
	logging.Debug("parsed config", "path", path, "bytes", len(data), "entries", len(cfg.Entries))

	return cfg, path, nil
}

// Edit runs the full pipeline: load, rewrite the first matching host's
// HostName and Port values, format, then print or write in place. Nothing
// is written unless every earlier step succeeded.
func (a *App) Edit(opts config.Options) error {
	cfg, path, err := a.Load(opts)
	if err != nil {
		return err
	}

	entry, err := cfg.FindEntry(opts.Host)
	if err != nil {
		logging.Debug("host lookup failed", "host", opts.Host, "error", err)
		return errors.HostNotFound(opts.Host)
	}

	if !opts.HasUpdate() {
		logging.UserWarning("No --host-name or --port given, %s is unchanged", opts.Host)
	}
	warnMissing(entry, opts)
	details := describeUpdate(entry, opts)

	changed := entry.Apply(sshconfig.Update{HostName: opts.HostName, Port: opts.Port})
	logging.Debug("applied update", "host", opts.Host, "statements", len(entry.Statements), "changed", changed)

	out := sshconfig.Format(cfg, opts.Indent())

	if !opts.Write {
		_, err := fmt.Fprint(a.Stdout, out)
		return err
	}

	if err := a.Files.WriteFile(path, []byte(out)); err != nil {
		return errors.IOError("write", path, err)
	}
	logging.Debug("wrote config", "path", path, "bytes", len(out))
	logging.UserSuccess("Updated %s in %s", opts.Host, path)

	if a.History != nil {
		if err := a.History.LogEdit(opts.Host, path, details); err != nil {
			logging.Warn("failed to record edit history", "error", err)
		}
	}

	return nil
}

// describeUpdate summarizes the values opts will replace, e.g.
// "Port 22 -> 2222". It must run before the update is applied.
func describeUpdate(entry *sshconfig.Entry, opts config.Options) string {
	var parts []string
	add := func(kind sshconfig.Kind, to *string) {
		if to == nil {
			return
		}
		if from, ok := entry.Lookup(kind); ok {
			parts = append(parts, fmt.Sprintf("%s %s -> %s", kind, from, *to))
		}
	}
	add(sshconfig.KindHostName, opts.HostName)
	add(sshconfig.KindPort, opts.Port)
	return strings.Join(parts, ", ")
}

// warnMissing tells the user when a replacement has nothing to apply to.
func warnMissing(entry *sshconfig.Entry, opts config.Options) {
	if opts.HostName != nil {
		if _, ok := entry.Lookup(sshconfig.KindHostName); !ok {
			logging.UserWarning("Host %s has no HostName directive, --host-name ignored", entry.Hostname)
		}
	}
	if opts.Port != nil {
		if _, ok := entry.Lookup(sshconfig.KindPort); !ok {
			logging.UserWarning("Host %s has no Port directive, --port ignored", entry.Hostname)
		}
	}
}

// List prints every host name in file order, one per line.
func (a *App) List(opts config.Options) error {
	cfg, path, err := a.Load(opts)
	if err != nil {
		return err
	}

	if len(cfg.Entries) == 0 {
		logging.UserInfo("No Host blocks in %s", path)
		return nil
	}

	for _, host := range cfg.Hosts() {
		if _, err := fmt.Fprintln(a.Stdout, host); err != nil {
			return err
		}
	}
	return nil
}

// Show prints the first block for opts.Host using the configured indent.
func (a *App) Show(opts config.Options) error {
	cfg, _, err := a.Load(opts)
	if err != nil {
		return err
	}

	entry, err := cfg.FindEntry(opts.Host)
	if err != nil {
		return errors.HostNotFound(opts.Host)
	}

	_, err = fmt.Fprint(a.Stdout, entry.Format(opts.Indent()))
	return err
}
