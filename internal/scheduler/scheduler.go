package scheduler

import (
	"context"
	"fmt"
	"time"

	"brand-dashboard-be/internal/pkg/logger"
	"brand-dashboard-be/internal/pkg/metrics"
	"brand-dashboard-be/internal/service"

	"github.com/robfig/cron/v3"
)

// Sweep moves due records forward and reports how many moved and how many failed.
type Sweep func(ctx context.Context) (int, int, error)

type Job struct {
	Name string
	Run  Sweep
}

// Jobs are the lifecycle sweeps, in the order they should run.
func Jobs(campaigns service.ICampaignService, enrollments service.IEnrollmentService, invoices service.IInvoiceService) []Job {
	return []Job{
		{Name: "activate_campaigns", Run: campaigns.ActivateDue},
		{Name: "end_campaigns", Run: campaigns.EndExpired},
		{Name: "expire_enrollments", Run: enrollments.ExpireOverdue},
		{Name: "overdue_invoices", Run: invoices.MarkOverdue},
	}
}

// Scheduler runs every job on one cron spec. A run that is still going when
// the next tick fires is skipped.
type Scheduler struct {
	cron    *cron.Cron
	jobs    []Job
	timeout time.Duration
	logger  logger.ILogger
}

func New(spec string, timeout time.Duration, log logger.ILogger, jobs []Job) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		jobs:    jobs,
		timeout: timeout,
		logger:  log,
	}
	if _, err := s.cron.AddFunc(spec, func() { s.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid scheduler spec %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler", "Scheduler started", map[string]interface{}{"jobs": len(s.jobs)})
}

// Stop waits for a running sweep to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("Scheduler", "Stopped before the running sweep finished", nil)
	}
}

// RunOnce runs every job in order. A failing job does not stop the rest.
func (s *Scheduler) RunOnce(ctx context.Context) {
	for _, job := range s.jobs {
		s.run(ctx, job)
	}
}

func (s *Scheduler) run(ctx context.Context, job Job) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	moved, failed, err := job.Run(ctx)
	metrics.RecordSchedulerJob(job.Name, "moved", moved)
	metrics.RecordSchedulerJob(job.Name, "failed", failed)

	details := map[string]interface{}{
		"job":         job.Name,
		"moved":       moved,
		"failed":      failed,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if err != nil {
		details["error"] = err.Error()
		s.logger.Error("Scheduler", "Job failed", details)
		return
	}
	if moved > 0 || failed > 0 {
		s.logger.Info("Scheduler", "Job finished", details)
		return
	}
	s.logger.Debug("Scheduler", "Job finished", details)
}
