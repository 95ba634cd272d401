package downloads

import (
	"path/filepath"
	"strconv"

	"jellytube/internal/domain/command"
	"jellytube/internal/domain/consts"
	"jellytube/internal/models"
)

// buildPlaylistArgs builds the yt-dlp arguments for one playlist.
func buildPlaylistArgs(p models.Playlist, outDir string) []string {
	return []string{
		p.URL,
		command.PlaylistEnd, strconv.Itoa(p.MaxVideos),
		command.Output, filepath.Join(outDir, command.PlaylistFilenameSyntax),
		command.WriteThumbnail,
		command.WriteDescription,
		command.WriteInfoJSON,
		command.Format, consts.FallbackFormat,
	}
}
