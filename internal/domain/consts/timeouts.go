package consts

import "time"

// Download timeouts
const (
	ChannelDownloadTimeout  = 3600 * time.Second
	PlaylistDownloadTimeout = 7200 * time.Second
)

// Network timeouts
const (
	JellyfinTimeout = 30 * time.Second
	NotifyTimeout   = 10 * time.Second
)

// Scheduling
const (
	DefaultCycleInterval = time.Hour
	DefaultChannelPause  = 5 * time.Second
	DefaultErrorCooldown = 5 * time.Minute
)

// Scheduling floors
const (
	MinCycleInterval = time.Minute
	MinErrorCooldown = time.Minute
)
