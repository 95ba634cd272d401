// Package keys holds viper keys and environment variable names.
package keys

// Terminal keys
const (
	ConfigDir  string = "config-dir"
	RunOnce    string = "once"
	DebugLevel string = "debug-level"
)

// Main config file keys
const (
	YtDLPPath     string = "ytdlp_path"
	LogDir        string = "log_dir"
	LogLevel      string = "debug_level"
	CycleInterval string = "schedule.interval"
	ChannelPause  string = "schedule.channel_pause"
	ErrorCooldown string = "schedule.error_cooldown"
)

// Environment overrides
const (
	NtfyServer     string = "ntfy.server"
	NtfyTopic      string = "ntfy.topic"
	JellyfinAPIKey string = "jellyfin.api_key"

	EnvNtfyServer     string = "NTFY_SERVER"
	EnvNtfyTopic      string = "NTFY_TOPIC_SUMMARY"
	EnvJellyfinAPIKey string = "JELLYFIN_API_KEY"
)
