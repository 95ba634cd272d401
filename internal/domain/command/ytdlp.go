// Package command holds yt-dlp argument constants.
package command

// Binary
const (
	YTDLP = "yt-dlp"
)

// General
const (
	Output      = "--output"
	Format      = "--format"
	DateAfter   = "--dateafter"
	PlaylistEnd = "--playlist-end"
)

// Sidecars and metadata
const (
	WriteThumbnail   = "--write-thumbnail"
	WriteDescription = "--write-description"
	WriteInfoJSON    = "--write-info-json"
	EmbedMetadata    = "--embed-metadata"
	AddMetadata      = "--add-metadata"
)

// Subtitles
const (
	WriteSubs     = "--write-subs"
	WriteAutoSubs = "--write-auto-subs"
	SubLangs      = "--sub-langs"
)

// Output templates
const (
	ChannelFilenameSyntax  = "%(upload_date)s - %(title)s.%(ext)s"
	PlaylistFilenameSyntax = "%(playlist_index)03d - %(title)s.%(ext)s"
)
