// Package errconsts holds sentinel errors and constant error messages.
package errconsts

import "errors"

// Sentinels
var (
	ErrTimeout  = errors.New("timed out")
	ErrNoAPIKey = errors.New("no Jellyfin API key configured")
)

// Programs
const (
	YTDLPFailure = "yt-dlp command failed: %w"
)

// File
const (
	ConfigFileLoadFail = "failed to load config file %q: %w"
)
