package cron

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Job represents a job scheduled on a fixed interval
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

// DailyJob represents a job that fires once per calendar day at a fixed
// local wall-clock time.
type DailyJob struct {
	Name string
	Hour int
	Min  int
	Loc  *time.Location
	Fn   func(ctx context.Context) error
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	jobs      []Job
	dailyJobs []DailyJob
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
}

// NewScheduler creates a new cron scheduler
func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob adds an interval job to the scheduler
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{
		Name:     name,
		Interval: interval,
		Fn:       fn,
	})
	slog.Info("Cron job registered", "name", name, "interval", interval)
}

// AddDailyJob adds a job that fires once per day at the given local
// wall-clock time ("15:04" format) in loc.
func (s *Scheduler) AddDailyJob(name string, at string, loc *time.Location, fn func(ctx context.Context) error) error {
	parsed, err := time.Parse("15:04", at)
	if err != nil {
		return fmt.Errorf("invalid daily job time %q: %w", at, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dailyJobs = append(s.dailyJobs, DailyJob{
		Name: name,
		Hour: parsed.Hour(),
		Min:  parsed.Minute(),
		Loc:  loc,
		Fn:   fn,
	})
	slog.Info("Daily cron job registered", "name", name, "at", at, "timezone", loc.String())
	return nil
}

// Start begins running all scheduled jobs
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(job)
	}
	for _, job := range s.dailyJobs {
		s.wg.Add(1)
		go s.runDailyJob(job)
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs)+len(s.dailyJobs))
}

// Stop gracefully stops all scheduled jobs
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

// runJob runs a single interval job on its schedule
func (s *Scheduler) runJob(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	// Run immediately on start
	s.executeJob(job.Name, job.Fn)

	for {
		select {
		case <-s.ctx.Done():
			slog.Info("Cron job stopping", "name", job.Name)
			return
		case <-ticker.C:
			s.executeJob(job.Name, job.Fn)
		}
	}
}

// runDailyJob sleeps until the job's next wall-clock firing, runs it, and
// repeats. A firing runs to completion; there is no mid-run cancellation
// and no retry inside the same calendar day.
func (s *Scheduler) runDailyJob(job DailyJob) {
	defer s.wg.Done()

	for {
		next := nextDailyRun(time.Now(), job.Hour, job.Min, job.Loc)
		timer := time.NewTimer(time.Until(next))

		select {
		case <-s.ctx.Done():
			timer.Stop()
			slog.Info("Daily cron job stopping", "name", job.Name)
			return
		case <-timer.C:
			s.executeJob(job.Name, job.Fn)
		}
	}
}

// nextDailyRun returns the earliest instant strictly after now that lands
// on hour:min of a calendar day in loc.
func nextDailyRun(now time.Time, hour, min int, loc *time.Location) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, min, 0, 0, loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// executeJob executes a job and logs results
func (s *Scheduler) executeJob(name string, fn func(ctx context.Context) error) {
	start := time.Now()
	slog.Debug("Cron job starting", "name", name)

	if err := fn(s.ctx); err != nil {
		slog.Error("Cron job failed", "name", name, "error", err, "duration", time.Since(start))
	} else {
		slog.Debug("Cron job completed", "name", name, "duration", time.Since(start))
	}
}

// RunOnce runs all jobs once (useful for testing)
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if err := job.Fn(ctx); err != nil {
			slog.Error("Cron job failed", "name", job.Name, "error", err)
		}
	}
	for _, job := range s.dailyJobs {
		if err := job.Fn(ctx); err != nil {
			slog.Error("Cron job failed", "name", job.Name, "error", err)
		}
	}
}
