package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SamTech-crypto/audit-workflow-app/internal/model"
	"github.com/SamTech-crypto/audit-workflow-app/internal/workflow"
	"github.com/SamTech-crypto/audit-workflow-app/internal/workflow/repository"
	"github.com/SamTech-crypto/audit-workflow-app/internal/workflow/usecase"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/datemath"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/excel"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/gcalendar"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/mailer"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo is an in-memory TaskRepository.
type mockRepo struct {
	tasks []model.Task

	failList   bool
	failCreate bool

	created []repository.CreateTaskOptions
	updated []repository.UpdateTaskOptions
	deleted []string
}

func (m *mockRepo) find(id string) (model.Task, bool) {
	for _, t := range m.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.failCreate {
		return model.Task{}, errors.New("db error")
	}
	m.created = append(m.created, opt)
	task := model.Task{
		ID:              opt.ID,
		Description:     opt.Description,
		DueDate:         opt.DueDate,
		AssigneeEmail:   opt.AssigneeEmail,
		Status:          model.StatusPending,
		Dependencies:    opt.Dependencies,
		CalendarEventID: opt.CalendarEventID,
	}
	m.tasks = append(m.tasks, task)
	return task, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	task, _ := m.find(opt.ID)
	return task, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	if m.failList {
		return nil, 0, errors.New("db error")
	}
	var out []model.Task
	for _, t := range m.tasks {
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		if opt.AssigneeEmail != "" && t.AssigneeEmail != opt.AssigneeEmail {
			continue
		}
		if !opt.DueBefore.IsZero() && t.DueDate.After(opt.DueBefore) {
			continue
		}
		out = append(out, t)
	}
	total := len(out)
	if opt.Offset > 0 {
		if opt.Offset >= len(out) {
			out = nil
		} else {
			out = out[opt.Offset:]
		}
	}
	if opt.Limit > 0 && opt.Limit < len(out) {
		out = out[:opt.Limit]
	}
	return out, total, nil
}

func (m *mockRepo) ListAllTasks(ctx context.Context) ([]model.Task, error) {
	if m.failList {
		return nil, errors.New("db error")
	}
	return m.tasks, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	m.updated = append(m.updated, opt)
	for i, t := range m.tasks {
		if t.ID != opt.ID {
			continue
		}
		t.Description = opt.Description
		t.DueDate = opt.DueDate
		t.AssigneeEmail = opt.AssigneeEmail
		t.Status = opt.Status
		if opt.Dependencies != nil {
			t.Dependencies = *opt.Dependencies
		}
		t.CalendarEventID = opt.CalendarEventID
		m.tasks[i] = t
		return t, nil
	}
	return model.Task{}, errors.New("update missed")
}

func (m *mockRepo) DeleteTask(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockRepo) ListDependents(ctx context.Context, id string) ([]string, error) {
	var out []string
	for _, t := range m.tasks {
		for _, dep := range t.Dependencies {
			if dep == id {
				out = append(out, t.ID)
			}
		}
	}
	return out, nil
}

func (m *mockRepo) CountTasks(ctx context.Context) (int, error) {
	return len(m.tasks), nil
}

// mockCalendar records mirrored events and can fail creation.
type mockCalendar struct {
	created    []gcalendar.CreateEventRequest
	deleted    []string
	nextID     int
	failCreate bool
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.failCreate {
		return nil, errors.New("calendar error")
	}
	m.nextID++
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: fmt.Sprintf("evt-%d", m.nextID)}, nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	m.deleted = append(m.deleted, eventID)
	return nil
}

// mockMailer records sent messages and can fail for one recipient.
type mockMailer struct {
	sent   []mailer.Message
	failTo string
}

func (m *mockMailer) Send(ctx context.Context, msg mailer.Message) error {
	if m.failTo != "" && msg.To == m.failTo {
		return errors.New("smtp error")
	}
	m.sent = append(m.sent, msg)
	return nil
}

// mockExcel returns canned workbook bytes.
type mockExcel struct {
	sheet excel.Sheet
	fail  bool
}

func (m *mockExcel) BuildWorkbook(sheet excel.Sheet) ([]byte, error) {
	if m.fail {
		return nil, errors.New("xlsx error")
	}
	m.sheet = sheet
	return []byte("PK-workbook"), nil
}

// testNow is the fixed clock for all usecase tests.
var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func dueOn(day string) time.Time {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestUC(repo *mockRepo, m *mockMailer, xl *mockExcel) workflow.UseCase {
	parser, _ := datemath.NewParser("UTC")
	return usecase.New(&mockLogger{}, repo, m, xl, nil, parser, usecase.Config{
		ReminderWindowDays: 2,
		Clock:              func() time.Time { return testNow },
	})
}

func newTestUCWithCalendar(repo *mockRepo, cal *mockCalendar) workflow.UseCase {
	parser, _ := datemath.NewParser("UTC")
	return usecase.New(&mockLogger{}, repo, &mockMailer{}, &mockExcel{}, cal, parser, usecase.Config{
		ReminderWindowDays: 2,
		CalendarID:         "audit-cal",
		Clock:              func() time.Time { return testNow },
	})
}
