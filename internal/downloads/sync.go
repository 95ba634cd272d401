// Package downloads builds and runs the yt-dlp invocations for creators and playlists.
package downloads

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"jellytube/internal/domain/consts"
	"jellytube/internal/domain/errconsts"
	"jellytube/internal/domain/logger"
	"jellytube/internal/library"
	"jellytube/internal/models"
	"jellytube/internal/parsing"
	"jellytube/internal/times"
	"jellytube/internal/validation"
)

// botDetectionHints are stderr fragments yt-dlp prints when YouTube wants a sign-in.
var botDetectionHints = [...]string{"confirm you're not a bot", "confirm you’re not a bot", "sign in to confirm"}

// Syncer runs one yt-dlp invocation per creator or playlist.
type Syncer struct {
	LibraryRoot     string
	YtDLPPath       string
	Profiles        models.QualityProfiles
	ChannelTimeout  time.Duration
	PlaylistTimeout time.Duration

	runner Runner
	clock  times.Clock
	pl     *logger.ProgramLogger
}

// NewSyncer returns a Syncer using the default timeouts.
func NewSyncer(c *models.Config, runner Runner, clock times.Clock, pl *logger.ProgramLogger) *Syncer {
	return &Syncer{
		LibraryRoot:     c.Jellyfin.Jellyfin.LibraryPath,
		YtDLPPath:       c.Main.YtDLPPath,
		Profiles:        c.Creators.QualityProfiles,
		ChannelTimeout:  consts.ChannelDownloadTimeout,
		PlaylistTimeout: consts.PlaylistDownloadTimeout,
		runner:          runner,
		clock:           clock,
		pl:              pl,
	}
}

// SyncCreator downloads a creator's uploads from within its lookback window.
//
// An entry that cannot be downloaded (no usable name or URL) is returned as a
// failed result without running yt-dlp.
func (s *Syncer) SyncCreator(ctx context.Context, c models.Creator) models.SyncResult {
	pl := logger.FromContext(ctx, s.pl)
	pl.I("Processing channel: %s (category: %s)", c.Name, c.Category)

	if err := validation.ValidateCreator(c); err != nil {
		return s.invalid(pl, models.KindChannel, c.Name, err)
	}

	outDir := library.ChannelDir(s.LibraryRoot, parsing.PathSegment(c.Name))
	args := buildChannelArgs(c, outDir, s.Profiles, s.clock.Now())
	pl.D(1, "Fetching uploads for %q since %s", c.Name, parsing.HyphenateYyyyMmDd(parsing.DateAfter(s.clock.Now(), c.DownloadRecent)))

	return s.run(ctx, models.KindChannel, c.Name, outDir, args, s.ChannelTimeout)
}

// SyncPlaylist downloads up to the playlist's item cap.
func (s *Syncer) SyncPlaylist(ctx context.Context, p models.Playlist) models.SyncResult {
	pl := logger.FromContext(ctx, s.pl)
	pl.I("Processing playlist: %s", p.Name)

	if err := validation.ValidatePlaylist(p); err != nil {
		return s.invalid(pl, models.KindPlaylist, p.Name, err)
	}

	outDir := library.PlaylistDir(s.LibraryRoot, parsing.PathSegment(p.Name))
	args := buildPlaylistArgs(p, outDir)

	return s.run(ctx, models.KindPlaylist, p.Name, outDir, args, s.PlaylistTimeout)
}

// invalid records a configuration problem as the item's failure.
func (s *Syncer) invalid(pl *logger.ProgramLogger, kind models.SyncKind, name string, err error) models.SyncResult {
	pl.E("Skipping %s %s: %v", kind, name, err)
	return models.SyncResult{Kind: kind, Name: name, Err: err}
}

// SyncPlaylists syncs every playlist in order. The result has one entry per playlist.
func (s *Syncer) SyncPlaylists(ctx context.Context, playlists []models.Playlist) []models.SyncResult {
	results := make([]models.SyncResult, 0, len(playlists))
	for _, p := range playlists {
		results = append(results, s.SyncPlaylist(ctx, p))
	}
	return results
}

// run executes one invocation and turns its outcome into a SyncResult.
//
// A panic while handling one item is recorded as that item's failure.
func (s *Syncer) run(ctx context.Context, kind models.SyncKind, name, outDir string, args []string, timeout time.Duration) (res models.SyncResult) {
	pl := logger.FromContext(ctx, s.pl)
	start := s.clock.Now()
	res = models.SyncResult{Kind: kind, Name: name}

	fail := func(err error) models.SyncResult {
		res.Success = false
		res.Files = 0
		res.Err = err
		res.Duration = s.clock.Now().Sub(start)
		pl.E("Failed to download %s %s: %v", kind, name, err)
		return res
	}
	defer func() {
		if r := recover(); r != nil {
			res = fail(fmt.Errorf("unexpected error processing %s %q: %v", kind, name, r))
		}
	}()

	if err := os.MkdirAll(outDir, consts.PermsLibraryDir); err != nil {
		return fail(fmt.Errorf("failed to make output directory %q: %w", outDir, err))
	}

	before, err := library.MediaFiles(outDir)
	if err != nil {
		pl.W("Could not list %q before download, counts may include older files: %v", outDir, err)
		before = map[string]struct{}{}
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pl.D(2, "Running %s %s", s.YtDLPPath, strings.Join(args, " "))
	stderr, err := s.runner.Run(runCtx, s.YtDLPPath, args)
	if err != nil {
		if errors.Is(err, errconsts.ErrTimeout) {
			return fail(fmt.Errorf("download timeout after %v: %w", timeout, err))
		}
		if isBotDetection(stderr) {
			pl.W("YouTube asked %s %q to confirm it is not a bot; consider passing cookies to yt-dlp", kind, name)
		}
		if stderr != "" {
			return fail(fmt.Errorf("%w: %s", err, stderr))
		}
		return fail(err)
	}

	after, err := library.MediaFiles(outDir)
	if err != nil {
		pl.W("Could not list %q after download: %v", outDir, err)
	}

	res.Success = true
	res.Files = library.CountNew(before, after)
	res.Duration = s.clock.Now().Sub(start)
	pl.S("Successfully processed %s %s - %d new files", kind, name, res.Files)
	return res
}

// isBotDetection reports whether yt-dlp's stderr looks like a sign-in challenge.
func isBotDetection(stderr string) bool {
	lower := strings.ToLower(stderr)
	for _, h := range botDetectionHints {
		if strings.Contains(lower, h) {
			return true
		}
	}
	return false
}
