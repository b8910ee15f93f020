// Package scheduler runs periodic maintenance jobs on a single ticker.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"restaurant-pos/logger"
)

type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

type entry struct {
	job     Job
	lastRun time.Time
}

type Scheduler struct {
	tick    time.Duration
	entries []*entry
	now     func() time.Time
}

func New(tick time.Duration, jobs ...Job) *Scheduler {
	if tick <= 0 {
		tick = time.Minute
	}
	s := &Scheduler{tick: tick, now: time.Now}
	for _, j := range jobs {
		if j.Interval <= 0 || j.Run == nil {
			logger.Warning(fmt.Sprintf("Skipping job %q without interval or body", j.Name))
			continue
		}
		s.entries = append(s.entries, &entry{job: j})
	}
	return s
}

// Run blocks until ctx is cancelled. Each job first runs one interval after
// start. A failing job is logged and retried on its next due tick.
func (s *Scheduler) Run(ctx context.Context) error {
	start := s.now()
	for _, e := range s.entries {
		e.lastRun = start
	}
	logger.Info(fmt.Sprintf("Scheduler started with %d jobs", len(s.entries)))

	t := time.NewTicker(s.tick)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Scheduler stopping")
			return nil
		case <-t.C:
			s.RunDue(ctx, s.now())
		}
	}
}

// RunDue runs every job whose interval has elapsed at now and returns the
// names of the jobs it ran.
func (s *Scheduler) RunDue(ctx context.Context, now time.Time) []string {
	var ran []string
	for _, e := range s.entries {
		if now.Sub(e.lastRun) < e.job.Interval {
			continue
		}
		e.lastRun = now
		ran = append(ran, e.job.Name)
		s.runJob(ctx, e.job)
	}
	return ran
}

func (s *Scheduler) runJob(ctx context.Context, j Job) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(fmt.Sprintf("Job %s panicked", j.Name), fmt.Errorf("%v", r))
		}
	}()
	started := s.now()
	if err := j.Run(ctx); err != nil {
		logger.Error(fmt.Sprintf("Job %s failed", j.Name), err)
		return
	}
	logger.Debug(fmt.Sprintf("Job %s finished in %s", j.Name, s.now().Sub(started)))
}
