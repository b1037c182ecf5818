package usecase

import (
	"context"
	"time"

	"github.com/SamTech-crypto/audit-workflow-app/internal/workflow/repository"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/datemath"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/excel"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/gcalendar"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/log"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/mailer"
)

// Calendar mirrors task due dates into an external calendar.
// *gcalendar.Client satisfies it.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// Config carries the tuning knobs for the workflow use case.
type Config struct {
	// ReminderWindowDays: pending tasks due within this many days (or
	// overdue) get a reminder. Zero falls back to 2, the audit default.
	ReminderWindowDays int
	// CalendarID is the Google Calendar to mirror due dates into.
	CalendarID string
	Timezone   string
	// Clock overrides time.Now for tests.
	Clock func() time.Time
}

// implUseCase is the private implementation of workflow.UseCase.
type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	mailer   mailer.IMailer
	excel    excel.IWriter
	calendar Calendar // optional, nil disables the mirror
	dates    *datemath.Parser
	cfg      Config
	now      func() time.Time
}

// New creates a new workflow UseCase implementation. calendar may be nil.
func New(
	l log.Logger,
	repo repository.Repository,
	m mailer.IMailer,
	xl excel.IWriter,
	calendar Calendar,
	dates *datemath.Parser,
	cfg Config,
) *implUseCase {
	if cfg.ReminderWindowDays <= 0 {
		cfg.ReminderWindowDays = 2
	}
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		mailer:   m,
		excel:    xl,
		calendar: calendar,
		dates:    dates,
		cfg:      cfg,
		now:      now,
	}
}
