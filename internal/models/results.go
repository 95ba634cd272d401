// Package models holds jellytube's configuration records and run results.
package models

import (
	"time"
)

// SyncKind says what a SyncResult was for.
type SyncKind string

// Sync kinds.
const (
	KindChannel  SyncKind = "channel"
	KindPlaylist SyncKind = "playlist"
)

// SyncResult is the outcome of one yt-dlp invocation.
type SyncResult struct {
	Kind     SyncKind
	Name     string
	Success  bool
	Files    int
	Err      error
	Duration time.Duration
}

// CycleResult aggregates one full cycle.
type CycleResult struct {
	ID                string
	Started           time.Time
	Duration          time.Duration
	ChannelsSucceeded int
	ChannelsFailed    int
	Downloads         int
	Playlists         []SyncResult
	LibraryUpdated    bool
	FilesCleaned      int
}

// ChannelsProcessed returns the number of creators attempted.
func (c *CycleResult) ChannelsProcessed() int {
	return c.ChannelsSucceeded + c.ChannelsFailed
}

// AddChannel folds a channel result into the counters.
func (c *CycleResult) AddChannel(r SyncResult) {
	if r.Success {
		c.ChannelsSucceeded++
		c.Downloads += r.Files
		return
	}
	c.ChannelsFailed++
}
