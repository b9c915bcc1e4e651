package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/eventclima/eventclima/internal/metrics"
	"github.com/eventclima/eventclima/internal/store"
)

// Reporter periodically publishes the history-log size. It performs no domain
// work and never mutates the log.
type Reporter struct {
	scheduler *gocron.Scheduler
	history   *store.HistoryLog
	interval  time.Duration
}

// New creates a new Reporter.
func New(history *store.HistoryLog, interval time.Duration) *Reporter {
	s := gocron.NewScheduler(time.UTC)
	return &Reporter{
		scheduler: s,
		history:   history,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (r *Reporter) Start() error {
	minutes := int(r.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := r.scheduler.Every(minutes).Minutes().Do(func() {
		n := r.history.Len()
		metrics.HistoryEntries.Set(float64(n))
		log.Printf("reporter: %d entries in session history", n)
	})
	if err != nil {
		return err
	}

	r.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (r *Reporter) Stop() {
	if r.scheduler != nil {
		r.scheduler.Stop()
	}
}
