package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestThemesListsAll(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"themes"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 themes, got %d: %q", len(lines), out.String())
	}
	if lines[0] != "default (default)" {
		t.Fatalf("expected default marker, got %q", lines[0])
	}
	if lines[1] != "dark" || lines[2] != "light" {
		t.Fatalf("expected dark and light, got %q", lines)
	}
}

func TestThemesRejectsArgs(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"themes", "extra"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(err.String(), "unexpected arguments") {
		t.Fatalf("expected unexpected arguments error, got %q", err.String())
	}
}
