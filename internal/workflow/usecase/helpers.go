package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/SamTech-crypto/audit-workflow-app/internal/dag"
	"github.com/SamTech-crypto/audit-workflow-app/internal/model"
	"github.com/SamTech-crypto/audit-workflow-app/internal/workflow"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/gcalendar"
)

var emailRe = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// validEmail reports whether s looks like an email address.
func validEmail(s string) bool {
	return emailRe.MatchString(s)
}

// parseDueDate turns a raw due-date string into an absolute date.
func (uc *implUseCase) parseDueDate(raw string) (time.Time, error) {
	due, err := uc.dates.Parse(raw, uc.now())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", workflow.ErrInvalidDueDate, err)
	}
	return due, nil
}

// startOfToday returns midnight today in the service timezone.
func (uc *implUseCase) startOfToday() time.Time {
	t := uc.now().In(uc.dates.Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, uc.dates.Location())
}

// coalesce returns the first non-empty string — used for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

// buildGraph constructs the validated dependency DAG from tasks. override,
// when non-nil, substitutes the dependency set for the task with overrideID
// so that hypothetical updates can be checked before persisting.
func buildGraph(tasks []model.Task, overrideID string, override []string) (*dag.Graph, error) {
	nodes := make([]dag.Node, len(tasks))
	var edges []dag.Edge
	for i, t := range tasks {
		nodes[i] = dag.Node{ID: t.ID, Label: t.Description, Status: string(t.Status)}
		deps := t.Dependencies
		if t.ID == overrideID {
			deps = override
		}
		for _, dep := range deps {
			edges = append(edges, dag.Edge{From: dep, To: t.ID})
		}
	}
	return dag.New(nodes, edges)
}

// checkDependencies verifies every dependency references a known task ID.
func checkDependencies(deps []string, known map[string]bool) error {
	for _, dep := range deps {
		if !known[dep] {
			return fmt.Errorf("%w: %q", workflow.ErrUnknownDependency, dep)
		}
	}
	return nil
}

// taskStub builds an in-memory Task for hypothetical graph checks.
func taskStub(id, description string, deps []string) model.Task {
	return model.Task{
		ID:           id,
		Description:  description,
		Status:       model.StatusPending,
		Dependencies: deps,
	}
}

// wrapGraphErr maps dag validation failures onto domain errors, keeping the
// cycle witness in the message.
func wrapGraphErr(err error) error {
	if errors.Is(err, dag.ErrCycleFound) {
		return fmt.Errorf("%w: %v", workflow.ErrDependencyCycle, err)
	}
	return fmt.Errorf("%w: %v", workflow.ErrUnknownDependency, err)
}

// knownIDs collects the ID set of the given tasks.
func knownIDs(tasks []model.Task) map[string]bool {
	out := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		out[t.ID] = true
	}
	return out
}

// mirrorCalendarEvent creates the Google Calendar event for a task.
// Best-effort: failures are logged and an empty event ID is returned.
func (uc *implUseCase) mirrorCalendarEvent(ctx context.Context, id, description string, due time.Time) string {
	if uc.calendar == nil {
		return ""
	}

	start := due.Add(9 * time.Hour) // 09:00 on the due day
	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     fmt.Sprintf("Audit task %s due", id),
		Description: description,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Timezone:    uc.cfg.Timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "calendar mirror for %s failed: %v", id, err)
		return ""
	}
	return event.ID
}

// dropCalendarEvent removes a previously mirrored event. Best-effort.
func (uc *implUseCase) dropCalendarEvent(ctx context.Context, id, eventID string) {
	if eventID == "" || uc.calendar == nil {
		return
	}
	if err := uc.calendar.DeleteEvent(ctx, uc.cfg.CalendarID, eventID); err != nil {
		uc.l.Warnf(ctx, "calendar event %s for %s not removed: %v", eventID, id, err)
	}
}
