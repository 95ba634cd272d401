package library

import (
	"os"
	"path/filepath"
	"strings"

	"jellytube/internal/domain/consts"
)

// IsMediaFile reports whether name has one of the counted media container extensions.
func IsMediaFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, m := range consts.MediaExtensions {
		if ext == m {
			return true
		}
	}
	return false
}

// MediaFiles returns the set of media file names directly inside dir.
//
// A missing directory yields an empty set.
func MediaFiles(dir string) (map[string]struct{}, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]struct{}{}, nil
		}
		return nil, err
	}

	files := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || !IsMediaFile(e.Name()) {
			continue
		}
		files[e.Name()] = struct{}{}
	}
	return files, nil
}

// CountNew returns how many names in after are not in before.
func CountNew(before, after map[string]struct{}) int {
	n := 0
	for name := range after {
		if _, ok := before[name]; !ok {
			n++
		}
	}
	return n
}
