package cli

import (
	"bytes"
	"strings"
	"testing"
)

// TestLogVerboseDisabled verifies nothing is written when verbose is off.
func TestLogVerboseDisabled(t *testing.T) {
	var buf bytes.Buffer
	logVerbose(false, &buf, false, styleDefault, "hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

// TestLogVerbosePlainOutput verifies the prefix and message on a non-TTY
// writer stay free of escape codes.
func TestLogVerbosePlainOutput(t *testing.T) {
	var buf bytes.Buffer
	logVerbose(true, &buf, false, styleSession, "session %s starting", "abc")
	got := buf.String()
	if got != "[verbose] session abc starting\n" {
		t.Fatalf("unexpected output: %q", got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("expected no ANSI codes on a buffer, got %q", got)
	}
}

// TestLogVerboseNilWriter verifies a nil writer is ignored.
func TestLogVerboseNilWriter(t *testing.T) {
	logVerbose(true, nil, false, styleError, "dropped")
}
