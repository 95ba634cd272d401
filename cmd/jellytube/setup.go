package main

import (
	"fmt"
	"os"

	"jellytube/internal/app"
	"jellytube/internal/cfg"
	"jellytube/internal/domain/logger"
	"jellytube/internal/domain/paths"
	"jellytube/internal/downloads"
	"jellytube/internal/jellyfin"
	"jellytube/internal/library"
	"jellytube/internal/times"
)

// application holds the wired program.
type application struct {
	pl        *logger.ProgramLogger
	scheduler *app.Scheduler
}

// initializeApplication loads config, provisions directories, sets up logging
// and wires every component.
func initializeApplication(o cfg.Options) (*application, error) {
	console := logger.NewConsole(os.Stderr, o.DebugLevel)

	c, err := cfg.Load(o.ConfigDir)
	if err != nil {
		console.E("Failed to load configuration: %v", err)
		return nil, err
	}

	if err := library.Provision(c.Jellyfin.Jellyfin.LibraryPath, c.Main.LogDir); err != nil {
		console.E("Failed to set up directories: %v", err)
		return nil, err
	}

	debugLevel := c.Main.DebugLevel
	if o.DebugLevelSet {
		debugLevel = o.DebugLevel
	}

	pl, err := logger.SetupLogging(logger.LoggingConfig{
		LogFilePath: paths.LogFilePath(c.Main.LogDir),
		Console:     os.Stdout,
		Program:     "jellytube",
		DebugLevel:  debugLevel,
	})
	if err != nil {
		console.E("Failed to set up logging: %v", err)
		return nil, fmt.Errorf("logging setup: %w", err)
	}

	clock := times.RealClock{}
	syncer := downloads.NewSyncer(c, downloads.ExecRunner{}, clock, pl)
	refresher := jellyfin.NewClient(c.Jellyfin.Jellyfin.ServerURL, c.Jellyfin.APIKey, pl)
	janitor := library.NewJanitor(c.Jellyfin.Jellyfin.LibraryPath, c.Jellyfin.Cleanup.OldFiles, clock, pl)
	notifier := app.NewNtfy(c.Jellyfin.Notifications.Ntfy, pl)

	cycle := app.NewCycle(c, syncer, refresher, janitor, notifier, clock, pl)

	pl.I("Loaded %d creators and %d playlists, library at %q",
		len(c.Creators.Creators), len(c.Creators.Playlists), c.Jellyfin.Jellyfin.LibraryPath)

	return &application{
		pl:        pl,
		scheduler: app.NewScheduler(cycle, clock, c.Main.CycleInterval, c.Main.ErrorCooldown, pl),
	}, nil
}

// close flushes and closes the log file.
func (a *application) close() {
	if err := a.pl.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
	}
}
