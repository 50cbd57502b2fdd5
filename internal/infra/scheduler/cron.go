package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is one scheduled unit of work. Errors are logged, never fatal.
type Job func(ctx context.Context) error

type Cron struct {
	cron   *cron.Cron
	name   string
	ctx    context.Context
	cancel context.CancelFunc
}

// New registers job on a standard five-field cron spec. A tick that fires while
// the previous run is still going is skipped.
func New(name, spec string, job Job) (*Cron, error) {
	logger := slogAdapter{logger: slog.Default().With("job", name)}
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	ctx, cancel := context.WithCancel(context.Background())
	s := &Cron{cron: c, name: name, ctx: ctx, cancel: cancel}

	if _, err := c.AddFunc(spec, s.wrap(job)); err != nil {
		cancel()
		return nil, fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}
	return s, nil
}

func (s *Cron) wrap(job Job) func() {
	return func() {
		started := time.Now()
		if err := job(s.ctx); err != nil {
			slog.Error("scheduled job failed", "job", s.name, "duration_ms", time.Since(started).Milliseconds(), "error", err.Error())
			return
		}
		slog.Debug("scheduled job finished", "job", s.name, "duration_ms", time.Since(started).Milliseconds())
	}
}

func (s *Cron) Start() {
	s.cron.Start()
	slog.Info("scheduler started", "job", s.name)
}

// Stop cancels the running job's context and waits for it, bounded by ctx.
func (s *Cron) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
		slog.Info("scheduler stopped", "job", s.name)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Next reports the next activation time, zero before Start.
func (s *Cron) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

type slogAdapter struct {
	logger *slog.Logger
}

func (a slogAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.Debug(msg, keysAndValues...)
}

func (a slogAdapter) Error(err error, msg string, keysAndValues ...interface{}) {
	a.logger.Error(msg, append(keysAndValues, "error", err)...)
}
