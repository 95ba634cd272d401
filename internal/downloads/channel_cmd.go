package downloads

import (
	"path/filepath"
	"time"

	"jellytube/internal/domain/command"
	"jellytube/internal/domain/consts"
	"jellytube/internal/models"
	"jellytube/internal/parsing"
)

// channelFormat returns the format selector for a creator's quality label.
func channelFormat(quality string, profiles models.QualityProfiles) string {
	if f, ok := profiles[quality]; ok && f != "" {
		return string(f)
	}
	return consts.FallbackFormat
}

// buildChannelArgs builds the yt-dlp arguments for one creator.
func buildChannelArgs(c models.Creator, outDir string, profiles models.QualityProfiles, now time.Time) []string {
	args := make([]string, 0, 20)

	args = append(args, c.URL,
		command.DateAfter, parsing.DateAfter(now, c.DownloadRecent),
		command.Output, filepath.Join(outDir, command.ChannelFilenameSyntax),
		command.WriteThumbnail,
		command.WriteDescription,
		command.WriteInfoJSON,
		command.EmbedMetadata,
		command.AddMetadata,
		command.Format, channelFormat(c.Quality, profiles))

	if c.Quality != consts.AudioOnlyQuality {
		args = append(args,
			command.WriteSubs,
			command.WriteAutoSubs,
			command.SubLangs, consts.SubLangs)
	}
	return args
}
