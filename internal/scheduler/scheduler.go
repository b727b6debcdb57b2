// Package scheduler runs periodic maintenance jobs on gocron, never letting two
// runs of the same job overlap.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

type Job interface {
	Name() string
	Interval() time.Duration
	Execute(ctx context.Context)
}

type Manager struct {
	logs      *zap.SugaredLogger
	scheduler gocron.Scheduler
}

func NewManager(logger *zap.SugaredLogger) (*Manager, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	return &Manager{
		logs:      logger,
		scheduler: s,
	}, nil
}

// Register adds job to the schedule. Each run receives ctx.
func (m *Manager) Register(ctx context.Context, job Job) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(job.Interval()),
		gocron.NewTask(func() {
			job.Execute(ctx)
		}),
		gocron.WithName(job.Name()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("register job %s: %w", job.Name(), err)
	}

	m.logs.Infow("job registered", "job", job.Name(), "interval", job.Interval())
	return nil
}

func (m *Manager) Start() {
	m.scheduler.Start()
	m.logs.Infow("scheduler started", "jobs", len(m.scheduler.Jobs()))
}

// Stop waits for running jobs to return.
func (m *Manager) Stop() error {
	if err := m.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("shutdown scheduler: %w", err)
	}
	m.logs.Infow("scheduler stopped")
	return nil
}

type funcJob struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context)
}

// NewFuncJob wraps fn as a Job.
func NewFuncJob(name string, interval time.Duration, fn func(ctx context.Context)) Job {
	return funcJob{name: name, interval: interval, fn: fn}
}

func (j funcJob) Name() string {
	return j.name
}

func (j funcJob) Interval() time.Duration {
	return j.interval
}

func (j funcJob) Execute(ctx context.Context) {
	j.fn(ctx)
}
