package logger

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDebugLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	pl := New(&buf, 2)

	pl.D(3, "too verbose")
	if buf.Len() != 0 {
		t.Fatalf("expected level 3 debug to be dropped at debug level 2, got %q", buf.String())
	}

	pl.D(2, "visible %d", 2)
	if !strings.Contains(buf.String(), "visible 2") {
		t.Fatalf("expected level 2 debug message, got %q", buf.String())
	}
}

func TestWithAddsField(t *testing.T) {
	var buf bytes.Buffer
	pl := New(&buf, 0).With("run_id", "abc")

	pl.I("cycle started")
	out := buf.String()
	if !strings.Contains(out, `"run_id":"abc"`) {
		t.Fatalf("expected run_id field, got %q", out)
	}
	if !strings.Contains(out, `"level":"info"`) {
		t.Fatalf("expected info level, got %q", out)
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "jellytube.log")

	pl, err := SetupLogging(LoggingConfig{LogFilePath: logPath, Program: "jellytube"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pl.E("failed %s", "thing")
	if err := pl.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(b), "failed thing") || !strings.Contains(string(b), `"program":"jellytube"`) {
		t.Fatalf("unexpected log contents: %q", b)
	}
}

func TestNewConsoleIsHumanReadable(t *testing.T) {
	var buf bytes.Buffer
	pl := NewConsole(&buf, 0)

	pl.E("failed to load configuration: %s", "missing file")
	out := buf.String()
	if !strings.Contains(out, "failed to load configuration: missing file") {
		t.Fatalf("expected message in output, got %q", out)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("expected console formatting, got JSON %q", out)
	}
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, 0)
	run := base.With("run_id", "r1")

	if got := FromContext(context.Background(), base); got != base {
		t.Fatalf("expected fallback logger without a stored one")
	}

	ctx := run.WithContext(context.Background())
	FromContext(ctx, base).I("from context")
	if !strings.Contains(buf.String(), `"run_id":"r1"`) {
		t.Fatalf("expected context logger to carry run_id, got %q", buf.String())
	}
}
