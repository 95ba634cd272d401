package library

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"jellytube/internal/domain/logger"
	"jellytube/internal/models"
	"jellytube/internal/times"
)

// Janitor deletes library files older than the retention window.
type Janitor struct {
	root   string
	policy models.OldFiles
	clock  times.Clock
	pl     *logger.ProgramLogger
}

// NewJanitor returns a janitor for the library at root.
func NewJanitor(root string, policy models.OldFiles, clock times.Clock, pl *logger.ProgramLogger) *Janitor {
	return &Janitor{
		root:   root,
		policy: policy,
		clock:  clock,
		pl:     pl,
	}
}

// CleanupOldFiles removes every regular file under the library root whose
// modification time is strictly before now minus the retention window.
//
// Returns the number of files removed. Errors are logged and the walk carries
// on; cancelling ctx stops the walk.
func (j *Janitor) CleanupOldFiles(ctx context.Context) int {
	pl := logger.FromContext(ctx, j.pl)
	if !j.policy.Enabled {
		pl.D(2, "Old file cleanup disabled")
		return 0
	}

	cutoff := j.clock.Now().Add(-time.Duration(j.policy.RetentionDays) * 24 * time.Hour)
	pl.D(1, "Removing files under %q last modified before %s", j.root, cutoff.Format(time.RFC3339))

	removed := 0
	err := filepath.WalkDir(j.root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return filepath.SkipAll
		}
		if err != nil {
			pl.E("Cleanup could not read %q: %v", path, err)
			if d != nil && d.IsDir() && path != j.root {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			pl.E("Cleanup could not stat %q: %v", path, err)
			return nil
		}
		if !info.ModTime().Before(cutoff) {
			return nil
		}

		if err := os.Remove(path); err != nil {
			pl.E("Cleanup could not remove %q: %v", path, err)
			return nil
		}
		pl.D(3, "Removed %q (modified %s)", path, info.ModTime().Format(time.RFC3339))
		removed++
		return nil
	})
	if err != nil {
		pl.E("Cleanup error: %v", err)
	}

	if removed > 0 {
		pl.I("Cleaned up %d old files", removed)
	}
	return removed
}
