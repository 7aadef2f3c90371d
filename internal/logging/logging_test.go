package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetup_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Warn("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
}

func TestSetup_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, true, &buf)

	Warn("test message", "key", "value")

	output := buf.String()
	// JSON output should contain braces
	if !strings.Contains(output, "{") {
		t.Errorf("Expected JSON output, got: %s", output)
	}
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
}

func TestSetup_VerboseMode(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, &buf)

	Debug("debug message")

	output := buf.String()
	if !strings.Contains(output, "debug message") {
		t.Errorf("Debug message should appear in verbose mode, got: %s", output)
	}
}

func TestSetup_NonVerboseMode(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Debug("debug message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Errorf("Debug message should NOT appear in non-verbose mode, got: %s", output)
	}
}

func TestDebug(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, &buf)

	Debug("debug test", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "debug test") {
		t.Errorf("Expected 'debug test' in output, got: %s", output)
	}
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Warn("warn test", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "warn test") {
		t.Errorf("Expected 'warn test' in output, got: %s", output)
	}
}

func TestSetup_NilWriter(t *testing.T) {
	// Should not panic with nil writer
	Setup(false, false, nil)

	// Logger should still work (writes to stderr)
	if Logger == nil {
		t.Error("Logger should not be nil after Setup with nil writer")
	}
}

func TestUserOutput(t *testing.T) {
	var buf bytes.Buffer
	prev := UserOutput
	UserOutput = &buf
	defer func() { UserOutput = prev }()

	UserInfo("info %d", 1)
	UserSuccess("done %s", "x")
	UserWarning("careful")

	want := "ℹ info 1\n✓ done x\n⚠ careful\n"
	if got := buf.String(); got != want {
		t.Errorf("user output = %q, want %q", got, want)
	}
}

func TestSetup_AppAttribute(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Warn("tagged")

	if !strings.Contains(buf.String(), "app=sshconf") {
		t.Errorf("Expected app attribute in output, got: %s", buf.String())
	}
}
