// Package main is the entrypoint of jellytube.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jellytube/internal/cfg"
)

// main is the main entrypoint of the program.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd, err := cfg.NewRootCmd(run)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jellytube exiting with error: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

// run loads configuration, prepares the library and starts the update loop.
func run(ctx context.Context, o cfg.Options) error {
	startTime := time.Now()

	app, err := initializeApplication(o)
	if err != nil {
		return err
	}
	defer app.close()

	app.pl.I("jellytube (PID: %d) started at: %v", os.Getpid(), startTime.Format("2006-01-02 15:04:05.00 MST"))

	if o.Once {
		if err := app.scheduler.RunOnce(ctx); err != nil && ctx.Err() == nil {
			app.pl.E("Update cycle failed: %v", err)
		}
		return nil
	}
	return app.scheduler.Run(ctx)
}
