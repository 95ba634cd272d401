// Package library manages the on-disk media library: layout, media counting and retention.
package library

import (
	"fmt"
	"os"
	"path/filepath"

	"jellytube/internal/domain/consts"
)

// Provision creates the library subdirectories under root, and logDir.
//
// Existing directories are left alone.
func Provision(root, logDir string) error {
	dirs := make([]string, 0, len(consts.LibrarySubdirs)+1)
	for _, sub := range consts.LibrarySubdirs {
		dirs = append(dirs, filepath.Join(root, sub))
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, consts.PermsLibraryDir); err != nil {
			return fmt.Errorf("failed to make directory %q: %w", dir, err)
		}
	}

	if logDir != "" {
		if err := os.MkdirAll(logDir, consts.PermsLogDir); err != nil {
			return fmt.Errorf("failed to make log directory %q: %w", logDir, err)
		}
	}
	return nil
}

// ChannelDir returns the output directory for a creator segment.
func ChannelDir(root, segment string) string {
	return filepath.Join(root, consts.DirChannels, segment)
}

// PlaylistDir returns the output directory for a playlist segment.
func PlaylistDir(root, segment string) string {
	return filepath.Join(root, consts.DirPlaylists, segment)
}
