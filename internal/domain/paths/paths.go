// Package paths holds jellytube's default file and directory locations.
package paths

import "path/filepath"

// Config file names inside the config directory.
const (
	MainConfigFile     = "config.yml"
	CreatorsConfigFile = "creators.yaml"
	JellyfinConfigFile = "jellyfin_youtube.yaml"
)

// Defaults.
const (
	DefaultConfigDir = "/app/config"
	DefaultLogDir    = "/var/log/jellytube"
	LogFileName      = "jellytube.log"
)

// LogFilePath returns the log file location inside logDir.
func LogFilePath(logDir string) string {
	return filepath.Join(logDir, LogFileName)
}
