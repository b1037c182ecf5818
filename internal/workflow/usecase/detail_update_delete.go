package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/SamTech-crypto/audit-workflow-app/internal/model"
	"github.com/SamTech-crypto/audit-workflow-app/internal/workflow"
	repo "github.com/SamTech-crypto/audit-workflow-app/internal/workflow/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (workflow.DetailTaskOutput, error) {
	task, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return workflow.DetailTaskOutput{}, err
	}
	if task.ID == "" {
		return workflow.DetailTaskOutput{}, workflow.ErrTaskNotFound
	}
	return workflow.DetailTaskOutput{Task: task}, nil
}

// Update modifies an existing Task. Dependency changes are validated
// against the whole graph before anything is persisted.
func (uc *implUseCase) Update(ctx context.Context, input workflow.UpdateTaskInput) (workflow.UpdateTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return workflow.UpdateTaskOutput{}, err
	}
	if existing.ID == "" {
		return workflow.UpdateTaskOutput{}, workflow.ErrTaskNotFound
	}

	status := existing.Status
	if input.Status != "" {
		status = model.Status(input.Status)
		if !status.Valid() {
			return workflow.UpdateTaskOutput{}, workflow.ErrInvalidStatus
		}
	}

	if input.AssigneeEmail != "" && !validEmail(input.AssigneeEmail) {
		return workflow.UpdateTaskOutput{}, workflow.ErrInvalidEmail
	}

	// Past dates are rejected only at creation; audits get extended
	// retroactively.
	due := existing.DueDate
	if input.DueDate != "" {
		due, err = uc.parseDueDate(input.DueDate)
		if err != nil {
			return workflow.UpdateTaskOutput{}, err
		}
	}

	if input.Dependencies != nil {
		all, err := uc.repo.ListAllTasks(ctx)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update ListAllTasks: %v", err)
			return workflow.UpdateTaskOutput{}, err
		}
		known := knownIDs(all)
		delete(known, input.ID) // no self-dependency
		if err := checkDependencies(*input.Dependencies, known); err != nil {
			return workflow.UpdateTaskOutput{}, err
		}
		if _, err := buildGraph(all, input.ID, *input.Dependencies); err != nil {
			return workflow.UpdateTaskOutput{}, wrapGraphErr(err)
		}
	}

	// A moved due date makes the mirrored event stale. The calendar API has
	// no in-place update, so recreate the event at the new time.
	eventID := existing.CalendarEventID
	if eventID != "" && !due.Equal(existing.DueDate) {
		uc.dropCalendarEvent(ctx, input.ID, eventID)
		eventID = uc.mirrorCalendarEvent(ctx, input.ID, uc.coalesce(input.Description, existing.Description), due)
	}

	task, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:              input.ID,
		Description:     uc.coalesce(input.Description, existing.Description),
		DueDate:         due,
		AssigneeEmail:   uc.coalesce(input.AssigneeEmail, existing.AssigneeEmail),
		Status:          status,
		Dependencies:    input.Dependencies,
		CalendarEventID: eventID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return workflow.UpdateTaskOutput{}, err
	}
	return workflow.UpdateTaskOutput{Task: task}, nil
}

// Delete removes a Task by ID. Refused while other tasks depend on it.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return workflow.ErrTaskNotFound
	}

	dependents, err := uc.repo.ListDependents(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete ListDependents: %v", err)
		return err
	}
	if len(dependents) > 0 {
		return fmt.Errorf("%w: %s", workflow.ErrHasDependents, strings.Join(dependents, ", "))
	}

	uc.dropCalendarEvent(ctx, id, existing.CalendarEventID)

	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
