package library

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"jellytube/internal/domain/logger"
	"jellytube/internal/models"
	"jellytube/internal/times"
)

// TestProvision checks the library layout is created and re-running is harmless ---------------------
func TestProvision(t *testing.T) {
	root := filepath.Join(t.TempDir(), "library")
	logDir := filepath.Join(t.TempDir(), "logs", "jellytube")

	for i := 0; i < 2; i++ {
		if err := Provision(root, logDir); err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
	}

	for _, sub := range []string{"channels", "music", "playlists", "temp"} {
		info, err := os.Stat(filepath.Join(root, sub))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q, got err %v", sub, err)
		}
	}
	if info, err := os.Stat(logDir); err != nil || !info.IsDir() {
		t.Fatalf("expected log directory, got err %v", err)
	}
}

func TestProvisionFailsOnFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "library")
	if err := os.WriteFile(root, []byte("not a dir"), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if err := Provision(root, ""); err == nil {
		t.Fatalf("expected error when library root is a file")
	}
}

// TestMediaFiles checks only media containers are counted -------------------------------------------
func TestMediaFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.mp4", "b.MKV", "c.webm", "a.info.json", "a.jpg", "d.description"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("setup failed: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.mp4"), 0o755); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	files, err := MediaFiles(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 media files, got %v", files)
	}

	missing, err := MediaFiles(filepath.Join(dir, "nope"))
	if err != nil || len(missing) != 0 {
		t.Fatalf("expected empty set for missing dir, got %v, %v", missing, err)
	}
}

func TestCountNew(t *testing.T) {
	before := map[string]struct{}{"old.mp4": {}}
	after := map[string]struct{}{"old.mp4": {}, "new1.mp4": {}, "new2.webm": {}}

	if got := CountNew(before, after); got != 2 {
		t.Fatalf("expected 2 new files, got %d", got)
	}
	if got := CountNew(after, before); got != 0 {
		t.Fatalf("expected 0 new files, got %d", got)
	}
}

// TestCleanupOldFiles checks the retention policy ---------------------------------------------------
func writeAged(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes failed: %v", err)
	}
}

func TestCleanupOldFiles(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := times.NewFakeClock(now)
	root := t.TempDir()

	old := filepath.Join(root, "channels", "TestChan", "20231001 - old.mp4")
	writeAged(t, old, now.AddDate(0, 0, -200))

	j := NewJanitor(root, models.OldFiles{Enabled: true, RetentionDays: 180}, clock, logger.Nop())
	if got := j.CleanupOldFiles(context.Background()); got != 1 {
		t.Fatalf("expected 1 file removed, got %d", got)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Fatalf("expected old file to be deleted, stat err: %v", err)
	}
}

func TestCleanupOldFilesBoundary(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := times.NewFakeClock(now)
	root := t.TempDir()
	cutoff := now.Add(-180 * 24 * time.Hour)

	atCutoff := filepath.Join(root, "playlists", "P", "001 - edge.mkv")
	justBefore := filepath.Join(root, "playlists", "P", "002 - older.mkv")
	fresh := filepath.Join(root, "music", "fresh.webm")
	writeAged(t, atCutoff, cutoff)
	writeAged(t, justBefore, cutoff.Add(-time.Second))
	writeAged(t, fresh, now.Add(-time.Hour))

	j := NewJanitor(root, models.OldFiles{Enabled: true, RetentionDays: 180}, clock, logger.Nop())
	if got := j.CleanupOldFiles(context.Background()); got != 1 {
		t.Fatalf("expected exactly 1 file removed, got %d", got)
	}

	if _, err := os.Stat(atCutoff); err != nil {
		t.Fatalf("file exactly at the cutoff must be kept: %v", err)
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Fatalf("fresh file must be kept: %v", err)
	}
	if _, err := os.Stat(justBefore); !os.IsNotExist(err) {
		t.Fatalf("file before the cutoff must be removed, stat err: %v", err)
	}
}

func TestCleanupOldFilesDisabled(t *testing.T) {
	now := time.Now()
	root := t.TempDir()
	old := filepath.Join(root, "temp", "ancient.part")
	writeAged(t, old, now.AddDate(-5, 0, 0))

	j := NewJanitor(root, models.OldFiles{Enabled: false, RetentionDays: 1}, times.NewFakeClock(now), logger.Nop())
	if got := j.CleanupOldFiles(context.Background()); got != 0 {
		t.Fatalf("expected no-op when disabled, removed %d", got)
	}
	if _, err := os.Stat(old); err != nil {
		t.Fatalf("file must survive when cleanup is disabled: %v", err)
	}
}

func TestCleanupOldFilesMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "gone")
	j := NewJanitor(root, models.OldFiles{Enabled: true, RetentionDays: 180}, times.RealClock{}, logger.Nop())

	if got := j.CleanupOldFiles(context.Background()); got != 0 {
		t.Fatalf("expected 0 removals for missing root, got %d", got)
	}
}

func TestCleanupOldFilesCancelled(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	root := t.TempDir()
	old := filepath.Join(root, "channels", "TestChan", "old.mp4")
	writeAged(t, old, now.AddDate(-1, 0, 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	j := NewJanitor(root, models.OldFiles{Enabled: true, RetentionDays: 180}, times.NewFakeClock(now), logger.Nop())
	if got := j.CleanupOldFiles(ctx); got != 0 {
		t.Fatalf("expected cancelled cleanup to remove nothing, removed %d", got)
	}
	if _, err := os.Stat(old); err != nil {
		t.Fatalf("file must survive a cancelled cleanup: %v", err)
	}
}
