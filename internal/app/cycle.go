// Package app runs jellytube's update cycles.
package app

import (
	"context"
	"time"

	"jellytube/internal/domain/logger"
	"jellytube/internal/models"
	"jellytube/internal/times"

	"github.com/google/uuid"
)

// Syncer downloads creators and playlists.
type Syncer interface {
	SyncCreator(ctx context.Context, c models.Creator) models.SyncResult
	SyncPlaylists(ctx context.Context, playlists []models.Playlist) []models.SyncResult
}

// LibraryRefresher triggers a media server rescan.
type LibraryRefresher interface {
	RefreshLibrary(ctx context.Context) bool
}

// Cleaner prunes old library files.
type Cleaner interface {
	CleanupOldFiles(ctx context.Context) int
}

// Notifier sends the end-of-cycle summary.
type Notifier interface {
	Send(ctx context.Context, title, message, priority string) error
}

// Cycle is one pass over every creator and playlist, followed by the
// library refresh, cleanup and summary notification.
type Cycle struct {
	creators  []models.Creator
	playlists []models.Playlist
	pause     time.Duration
	interval  time.Duration

	syncer   Syncer
	library  LibraryRefresher
	cleaner  Cleaner
	notifier Notifier
	clock    times.Clock
	pl       *logger.ProgramLogger
}

// NewCycle wires a cycle from the loaded configuration and its collaborators.
func NewCycle(c *models.Config, s Syncer, l LibraryRefresher, cl Cleaner, n Notifier, clock times.Clock, pl *logger.ProgramLogger) *Cycle {
	return &Cycle{
		creators:  c.Creators.Creators,
		playlists: c.Creators.Playlists,
		pause:     c.Main.ChannelPause,
		interval:  c.Main.CycleInterval,
		syncer:    s,
		library:   l,
		cleaner:   cl,
		notifier:  n,
		clock:     clock,
		pl:        pl,
	}
}

// Run executes one cycle.
//
// Item failures are folded into the result. The only error returned is the
// context's, when shutdown interrupts the cycle; no notification is sent then.
func (c *Cycle) Run(ctx context.Context) (models.CycleResult, error) {
	res := models.CycleResult{
		ID:      uuid.NewString(),
		Started: c.clock.Now(),
	}
	pl := c.pl.With("run_id", res.ID)
	ctx = pl.WithContext(ctx)
	pl.I("Starting YouTube update cycle (%d channels, %d playlists)", len(c.creators), len(c.playlists))

	// Channels
	for i, creator := range c.creators {
		// Pause before every creator but the first, whatever the previous
		// outcome. There is no pause after the last creator.
		if i > 0 {
			if err := times.WaitTime(ctx, c.clock, c.pause); err != nil {
				return res, err
			}
		}
		res.AddChannel(c.syncer.SyncCreator(ctx, creator))
		if err := ctx.Err(); err != nil {
			return res, err
		}
	}

	// Playlists
	res.Playlists = c.syncer.SyncPlaylists(ctx, c.playlists)
	if err := ctx.Err(); err != nil {
		return res, err
	}

	// Library
	res.LibraryUpdated = c.library.RefreshLibrary(ctx)

	// Cleanup
	res.FilesCleaned = c.cleaner.CleanupOldFiles(ctx)

	// Report
	now := c.clock.Now()
	res.Duration = now.Sub(res.Started)
	if err := c.notifier.Send(ctx, "Update Complete", Summary(&res, now.Add(c.interval)), Priority(&res)); err != nil {
		pl.W("Failed to send notification: %v", err)
	}

	pl.I("Update cycle completed - %d successful, %d failed, %d downloads, %d playlists in %v",
		res.ChannelsSucceeded, res.ChannelsFailed, res.Downloads, len(res.Playlists), res.Duration.Round(time.Second))
	return res, nil
}
