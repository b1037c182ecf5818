package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/SamTech-crypto/audit-workflow-app/internal/workflow"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/log"
)

// Scheduler runs the reminder job on a cron schedule.
type Scheduler struct {
	l    log.Logger
	uc   workflow.UseCase
	cron *cron.Cron
	spec string
}

// New builds a scheduler for the given cron spec (standard 5-field
// syntax). An empty spec returns a scheduler that never fires.
func New(l log.Logger, uc workflow.UseCase, spec string, loc *time.Location) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}

	s := &Scheduler{
		l:    l,
		uc:   uc,
		cron: cron.New(cron.WithLocation(loc)),
		spec: spec,
	}

	if spec != "" {
		if _, err := s.cron.AddFunc(spec, s.runReminders); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Start begins the schedule in a background goroutine.
func (s *Scheduler) Start() {
	ctx := context.Background()
	if s.spec == "" {
		s.l.Info(ctx, "Reminder schedule disabled (empty cron spec)")
		return
	}

	s.cron.Start()
	s.l.Infof(ctx, "Reminder schedule started: %q", s.spec)
}

// Stop halts the schedule and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runReminders() {
	ctx := context.Background()

	out, err := s.uc.SendReminders(ctx)
	if err != nil {
		s.l.Errorf(ctx, "Scheduled reminder run failed: %v", err)
		return
	}

	s.l.Infof(ctx, "Scheduled reminder run: %d sent, %d skipped, %d failed",
		out.Sent, out.Skipped, out.Failed)
}
