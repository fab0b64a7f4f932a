package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_TagsComponentAndRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelInfo, Component: "tracker", Output: &buf})

	l.Debug("hidden")
	l.Info("entry recorded", "kind", "income")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "component=tracker") || !strings.Contains(out, "kind=income") {
		t.Fatalf("missing attributes: %q", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelDebug, Component: "budget", Output: &buf}).WithComponent("tui")

	if l.Component() != "tui" {
		t.Fatalf("Component() = %q, want tui", l.Component())
	}
	l.Warn("form aborted")
	if !strings.Contains(buf.String(), "subcomponent=tui") {
		t.Fatalf("missing subcomponent: %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing to see")
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("Discard logger enabled at error level")
	}
}
