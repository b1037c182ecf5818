package usecase_test

import (
	"context"
	"testing"

	"github.com/SamTech-crypto/audit-workflow-app/internal/model"
	"github.com/SamTech-crypto/audit-workflow-app/internal/workflow"
)

func TestCreateCalendarMirror(t *testing.T) {
	ctx := context.Background()

	t.Run("mirrored event ID is stored on the task", func(t *testing.T) {
		repo := &mockRepo{}
		cal := &mockCalendar{}
		uc := newTestUCWithCalendar(repo, cal)

		out, err := uc.Create(ctx, workflow.CreateTaskInput{
			ID:            "T1",
			Description:   "Inventory count",
			DueDate:       "2026-09-10",
			AssigneeEmail: "auditor@example.com",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if out.Task.CalendarEventID != "evt-1" {
			t.Errorf("event ID = %q, want evt-1", out.Task.CalendarEventID)
		}
		if len(cal.created) != 1 || len(cal.deleted) != 0 {
			t.Errorf("created/deleted = %d/%d", len(cal.created), len(cal.deleted))
		}
		if cal.created[0].CalendarID != "audit-cal" {
			t.Errorf("calendar ID = %q", cal.created[0].CalendarID)
		}
	})

	t.Run("failed insert removes the event again", func(t *testing.T) {
		repo := &mockRepo{failCreate: true}
		cal := &mockCalendar{}
		uc := newTestUCWithCalendar(repo, cal)

		_, err := uc.Create(ctx, workflow.CreateTaskInput{
			ID:            "T1",
			Description:   "Inventory count",
			DueDate:       "2026-09-10",
			AssigneeEmail: "auditor@example.com",
		})
		if err == nil {
			t.Fatal("expected create failure")
		}
		if len(cal.deleted) != 1 || cal.deleted[0] != "evt-1" {
			t.Errorf("deleted = %v, want the just-created event", cal.deleted)
		}
	})

	t.Run("calendar failure does not block the task", func(t *testing.T) {
		repo := &mockRepo{}
		cal := &mockCalendar{failCreate: true}
		uc := newTestUCWithCalendar(repo, cal)

		out, err := uc.Create(ctx, workflow.CreateTaskInput{
			ID:            "T1",
			Description:   "Inventory count",
			DueDate:       "2026-09-10",
			AssigneeEmail: "auditor@example.com",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if out.Task.CalendarEventID != "" {
			t.Errorf("event ID = %q, want empty", out.Task.CalendarEventID)
		}
	})
}

func TestUpdateCalendarResync(t *testing.T) {
	ctx := context.Background()

	seedTask := func() model.Task {
		return model.Task{
			ID:              "T1",
			Description:     "Inventory count",
			DueDate:         dueOn("2026-09-10"),
			AssigneeEmail:   "auditor@example.com",
			Status:          model.StatusPending,
			CalendarEventID: "evt-old",
		}
	}

	t.Run("moved due date recreates the event", func(t *testing.T) {
		repo := &mockRepo{tasks: []model.Task{seedTask()}}
		cal := &mockCalendar{}
		uc := newTestUCWithCalendar(repo, cal)

		out, err := uc.Update(ctx, workflow.UpdateTaskInput{ID: "T1", DueDate: "2026-09-20"})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if len(cal.deleted) != 1 || cal.deleted[0] != "evt-old" {
			t.Errorf("deleted = %v, want evt-old", cal.deleted)
		}
		if out.Task.CalendarEventID != "evt-1" {
			t.Errorf("event ID = %q, want evt-1", out.Task.CalendarEventID)
		}
		if len(cal.created) != 1 || !cal.created[0].StartTime.After(dueOn("2026-09-20")) {
			t.Errorf("created = %+v", cal.created)
		}
	})

	t.Run("status change leaves the event alone", func(t *testing.T) {
		repo := &mockRepo{tasks: []model.Task{seedTask()}}
		cal := &mockCalendar{}
		uc := newTestUCWithCalendar(repo, cal)

		out, err := uc.Update(ctx, workflow.UpdateTaskInput{ID: "T1", Status: "completed"})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if len(cal.created) != 0 || len(cal.deleted) != 0 {
			t.Errorf("created/deleted = %d/%d, want none", len(cal.created), len(cal.deleted))
		}
		if out.Task.CalendarEventID != "evt-old" {
			t.Errorf("event ID = %q, want evt-old", out.Task.CalendarEventID)
		}
	})

	t.Run("same due date is not a move", func(t *testing.T) {
		repo := &mockRepo{tasks: []model.Task{seedTask()}}
		cal := &mockCalendar{}
		uc := newTestUCWithCalendar(repo, cal)

		if _, err := uc.Update(ctx, workflow.UpdateTaskInput{ID: "T1", DueDate: "2026-09-10"}); err != nil {
			t.Fatalf("Update: %v", err)
		}
		if len(cal.created) != 0 || len(cal.deleted) != 0 {
			t.Errorf("created/deleted = %d/%d, want none", len(cal.created), len(cal.deleted))
		}
	})
}
