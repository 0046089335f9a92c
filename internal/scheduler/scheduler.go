package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Purger is anything with expired entries worth sweeping.
type Purger interface {
	Purge() int
}

// Scheduler periodically sweeps expired entries out of the search cache.
// Expiry is enforced on read anyway; the sweep keeps memory bounded when
// queries stop repeating.
type Scheduler struct {
	scheduler *gocron.Scheduler
	cache     Purger
	interval  time.Duration
}

func New(cache Purger, interval time.Duration) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		cache:     cache,
		interval:  interval,
	}
}

// Start schedules the sweep job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	interval := s.interval
	if interval <= 0 {
		interval = time.Minute
	}

	_, err := s.scheduler.Every(interval).Do(func() {
		if removed := s.cache.Purge(); removed > 0 {
			log.Printf("scheduler: purged %d expired search cache entries", removed)
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
