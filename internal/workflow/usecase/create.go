package usecase

import (
	"context"

	"github.com/SamTech-crypto/audit-workflow-app/internal/workflow"
	repo "github.com/SamTech-crypto/audit-workflow-app/internal/workflow/repository"
)

// Create validates and persists a new Task with its dependency edges.
func (uc *implUseCase) Create(ctx context.Context, input workflow.CreateTaskInput) (workflow.CreateTaskOutput, error) {
	if input.ID == "" {
		return workflow.CreateTaskOutput{}, workflow.ErrEmptyTaskID
	}
	if !validEmail(input.AssigneeEmail) {
		return workflow.CreateTaskOutput{}, workflow.ErrInvalidEmail
	}

	due, err := uc.parseDueDate(input.DueDate)
	if err != nil {
		return workflow.CreateTaskOutput{}, err
	}
	if due.Before(uc.startOfToday()) {
		return workflow.CreateTaskOutput{}, workflow.ErrDueDateInPast
	}

	// Uniqueness
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneTask: %v", err)
		return workflow.CreateTaskOutput{}, err
	}
	if existing.ID != "" {
		return workflow.CreateTaskOutput{}, workflow.ErrDuplicateTaskID
	}

	// Every dependency must already exist, and the extended graph must stay
	// a DAG. Deps referencing existing tasks cannot form a cycle on create,
	// but the graph build also catches self-references and duplicates.
	all, err := uc.repo.ListAllTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create ListAllTasks: %v", err)
		return workflow.CreateTaskOutput{}, err
	}
	if err := checkDependencies(input.Dependencies, knownIDs(all)); err != nil {
		return workflow.CreateTaskOutput{}, err
	}
	candidate := all
	candidate = append(candidate, taskStub(input.ID, input.Description, input.Dependencies))
	if _, err := buildGraph(candidate, "", nil); err != nil {
		return workflow.CreateTaskOutput{}, wrapGraphErr(err)
	}

	eventID := uc.mirrorCalendarEvent(ctx, input.ID, input.Description, due)

	task, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		ID:              input.ID,
		Description:     input.Description,
		DueDate:         due,
		AssigneeEmail:   input.AssigneeEmail,
		Dependencies:    input.Dependencies,
		CalendarEventID: eventID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		// The event was created ahead of the insert; take it back out so a
		// failed create leaves no orphan on the calendar.
		uc.dropCalendarEvent(ctx, input.ID, eventID)
		return workflow.CreateTaskOutput{}, err
	}

	return workflow.CreateTaskOutput{Task: task}, nil
}
