package app

import (
	"context"
	"fmt"
	"time"

	"jellytube/internal/domain/logger"
	"jellytube/internal/models"
	"jellytube/internal/times"
)

// CycleRunner runs one cycle.
type CycleRunner interface {
	Run(ctx context.Context) (models.CycleResult, error)
}

// Scheduler runs cycles forever, waiting interval between them and cooldown
// after a cycle that failed unexpectedly.
type Scheduler struct {
	cycle    CycleRunner
	clock    times.Clock
	interval time.Duration
	cooldown time.Duration
	pl       *logger.ProgramLogger
}

// NewScheduler returns a scheduler driving cycle.
func NewScheduler(cycle CycleRunner, clock times.Clock, interval, cooldown time.Duration, pl *logger.ProgramLogger) *Scheduler {
	return &Scheduler{
		cycle:    cycle,
		clock:    clock,
		interval: interval,
		cooldown: cooldown,
		pl:       pl,
	}
}

// Run loops until ctx is cancelled, then returns nil.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		wait := s.interval

		if err := s.RunOnce(ctx); err != nil {
			if ctx.Err() != nil {
				break
			}
			s.pl.E("Unexpected error in main loop: %v", err)
			s.pl.I("Waiting %v before retrying...", s.cooldown)
			wait = s.cooldown
		} else {
			s.pl.I("Waiting %v for next update cycle...", s.interval)
		}

		if err := times.WaitTime(ctx, s.clock, wait); err != nil {
			break
		}
	}

	s.pl.I("Shutting down YouTube updater")
	return nil
}

// RunOnce runs a single cycle, turning a panic into an error.
func (s *Scheduler) RunOnce(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cycle panicked: %v", r)
		}
	}()

	_, err = s.cycle.Run(ctx)
	return err
}
