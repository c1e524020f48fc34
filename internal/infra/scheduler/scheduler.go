// Package scheduler runs the background jobs on wall-clock cadence: the
// fine-grained activation tick and the daily quality recompute.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"graze/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Job is one scheduled unit of work. Errors are logged, never fatal: the next
// slot runs regardless.
type Job func(ctx context.Context) error

type job struct {
	name string
	run  Job
	// next returns the wake-up time after now.
	next func(now time.Time) time.Time
	// mu single-flights the job: a slot that fires while the previous run is
	// still in progress is skipped, not queued.
	mu sync.Mutex
}

// Scheduler owns the registered jobs and their goroutines.
type Scheduler struct {
	logger *slog.Logger
	clock  service.Clock

	jobs   []*job
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Params holds dependencies for the Scheduler, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Logger *slog.Logger
	Clock  service.Clock
}

// New creates the scheduler and ties it to the application lifecycle. Jobs
// are registered before the fx OnStart phase runs.
func New(params Params) *Scheduler {
	s := &Scheduler{
		logger: params.Logger,
		clock:  params.Clock,
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()

			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()

			return nil
		},
	})

	return s
}

// RegisterInterval schedules run every interval, first firing one interval
// after Start.
func (s *Scheduler) RegisterInterval(name string, interval time.Duration, run Job) {
	s.jobs = append(s.jobs, &job{
		name: name,
		run:  run,
		next: func(now time.Time) time.Time {
			return now.Add(interval)
		},
	})
}

// RegisterDailyAt schedules run once a day at the given local wall-clock time
// ("HH:MM") in the given IANA timezone.
func (s *Scheduler) RegisterDailyAt(name, at, timezone string, run Job) error {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return errors.Wrapf(err, "unknown timezone %s", timezone)
	}

	parsed, err := time.Parse("15:04", at)
	if err != nil {
		return errors.Wrapf(err, "invalid daily run time %s", at)
	}

	s.jobs = append(s.jobs, &job{
		name: name,
		run:  run,
		next: func(now time.Time) time.Time {
			return nextDailyRun(now, parsed.Hour(), parsed.Minute(), loc)
		},
	})

	return nil
}

// Start launches one goroutine per registered job.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(ctx, j)
	}

	s.logger.Info("Scheduler started", slog.Int("jobs", len(s.jobs)))
}

// Stop cancels every job loop and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}

	s.cancel()
	s.wg.Wait()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context, j *job) {
	defer s.wg.Done()

	for {
		now := s.clock.Now()
		wake := j.next(now)

		timer := time.NewTimer(wake.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()

			return
		case <-timer.C:
			s.runJob(ctx, j)
		}
	}
}

// runJob executes one slot, skipping it when the previous run still holds the
// lock.
func (s *Scheduler) runJob(ctx context.Context, j *job) {
	if !j.mu.TryLock() {
		s.logger.Warn("Previous run still in progress, skipping slot",
			slog.String("job", j.name),
		)

		return
	}
	defer j.mu.Unlock()

	if err := j.run(ctx); err != nil {
		s.logger.Error("Scheduled job failed",
			slog.String("job", j.name),
			slog.Any("error", err),
		)
	}
}

// nextDailyRun returns the next instant the daily slot fires strictly after
// now.
func nextDailyRun(now time.Time, hour, minute int, loc *time.Location) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}
