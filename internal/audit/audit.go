// Package audit records the edits sshconf writes to disk.
// Events are stored as JSON Lines (JSONL) in a single history file.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// EventType classifies a history event.
type EventType string

const (
	// EventEdit is a config file rewritten by --write.
	EventEdit EventType = "edit"
)

// HistoryFile is the file name used inside the history directory.
const HistoryFile = "history.jsonl"

// Event represents a single history entry.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Host      string    `json:"host"`
	File      string    `json:"file"`
	Details   string    `json:"details,omitempty"`
}

// Logger writes and reads history events.
// Events are stored in {dir}/history.jsonl.
type Logger struct {
	dir string
}

// NewLogger creates a new history logger rooted at dir.
func NewLogger(dir string) *Logger {
	return &Logger{dir: dir}
}

// Path returns the history file location.
func (l *Logger) Path() string {
	return filepath.Join(l.dir, HistoryFile)
}

// Log appends an event to the history.
func (l *Logger) Log(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	path := l.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

// LogEdit is a convenience method that creates and logs an edit event.
func (l *Logger) LogEdit(host, file, details string) error {
	return l.Log(Event{
		Timestamp: time.Now(),
		Type:      EventEdit,
		Host:      host,
		File:      file,
		Details:   details,
	})
}

// Events reads events in chronological order. A non-empty host keeps only
// that host's events.
func (l *Logger) Events(host string) ([]Event, error) {
	f, err := os.Open(l.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			continue // Skip malformed lines
		}
		if host != "" && event.Host != host {
			continue
		}
		events = append(events, event)
	}

	if err := scanner.Err(); err != nil {
		return events, fmt.Errorf("error reading history: %w", err)
	}

	return events, nil
}

// Clear deletes the history file.
func (l *Logger) Clear() error {
	if err := os.Remove(l.Path()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
