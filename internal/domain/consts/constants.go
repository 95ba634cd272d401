// Package consts holds various global, unchanging values.
package consts

// Library subdirectories.
const (
	DirChannels  = "channels"
	DirMusic     = "music"
	DirPlaylists = "playlists"
	DirTemp      = "temp"
)

// LibrarySubdirs lists the directories created under the library root.
var LibrarySubdirs = [...]string{DirChannels, DirMusic, DirPlaylists, DirTemp}

// MediaExtensions are the container extensions counted as downloaded media.
var MediaExtensions = [...]string{".mp4", ".mkv", ".webm"}

// Creator and playlist defaults.
const (
	DefaultCategory       = "General"
	DefaultDownloadRecent = 30
	DefaultQuality        = "1080p"
	DefaultMaxVideos      = 50
	DefaultRetentionDays  = 180

	// AudioOnlyQuality skips subtitle fetching for a creator.
	AudioOnlyQuality = "audio_only"
)

// FallbackFormat is used when a creator's quality has no profile, and for all playlists.
const FallbackFormat = "best[height<=1080]"

// Subtitle languages requested for non audio-only creators.
const SubLangs = "en,en-US"

// Jellyfin.
const (
	JellyfinRefreshPath = "/Library/Refresh"
	JellyfinTokenHeader = "X-Emby-Token"
)

// Notifications.
const (
	NotifyTitlePrefix     = "[YouTube] "
	NotifyTags            = "youtube,automation"
	NotifyPriorityDefault = "default"
	NotifyPriorityHigh    = "high"
)
