package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"RiskSentinel/internal/model"
	"RiskSentinel/internal/notifier"
)

// Runner produces one snapshot per call.
type Runner interface {
	Run(ctx context.Context) (*model.Snapshot, error)
}

// Scheduler re-runs the analysis on a cron schedule and hands each snapshot
// to the notifier. Overlapping ticks are skipped.
type Scheduler struct {
	Cron     *cron.Cron
	Runner   Runner
	Notifier notifier.Notifier
	Ctx      context.Context
	log      zerolog.Logger

	mu     sync.Mutex // serializes RunNow against cron ticks
	last   *model.Snapshot
	manual sync.WaitGroup
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, runner Runner, n notifier.Notifier, log zerolog.Logger) *Scheduler {
	log = log.With().Str("component", "scheduler").Logger()
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger{log})),
		),
		Runner:   runner,
		Notifier: n,
		Ctx:      ctx,
		log:      log,
	}
}

// Register schedules the refresh task.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info().Int("jobs", len(s.Cron.Entries())).Msg("scheduler started")
}

// Stop stops the scheduler and waits for running refreshes, cron-driven or
// started by RunAsync, to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.manual.Wait()
	s.log.Info().Msg("scheduler stopped")
}

// RunNow executes one refresh immediately (RUN_ON_START / manual trigger).
func (s *Scheduler) RunNow() (*model.Snapshot, error) {
	return s.refresh()
}

// RunAsync starts one refresh in the background. Stop waits for it.
func (s *Scheduler) RunAsync() {
	s.manual.Add(1)
	go func() {
		defer s.manual.Done()
		s.refreshTask()
	}()
}

// Last returns the most recent successful snapshot, or nil.
func (s *Scheduler) Last() *model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Scheduler) refreshTask() {
	if _, err := s.refresh(); err != nil {
		s.log.Error().Err(err).Msg("refresh failed")
	}
}

func (s *Scheduler) refresh() (*model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Info().Msg("running refresh")
	snap, err := s.Runner.Run(s.Ctx)
	if err != nil {
		return nil, fmt.Errorf("run analysis: %w", err)
	}
	s.last = snap
	if err := s.Notifier.Notify(s.Ctx, snap); err != nil {
		return snap, fmt.Errorf("notify: %w", err)
	}
	return snap, nil
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
