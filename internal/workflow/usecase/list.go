package usecase

import (
	"context"

	"github.com/SamTech-crypto/audit-workflow-app/internal/model"
	"github.com/SamTech-crypto/audit-workflow-app/internal/workflow"
	repo "github.com/SamTech-crypto/audit-workflow-app/internal/workflow/repository"
)

// List returns a paginated list of Tasks.
func (uc *implUseCase) List(ctx context.Context, input workflow.ListTasksInput) (workflow.ListTasksOutput, error) {
	status := model.Status(input.Status)
	if input.Status != "" && !status.Valid() {
		return workflow.ListTasksOutput{}, workflow.ErrInvalidStatus
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Status:        status,
		AssigneeEmail: input.AssigneeEmail,
		Limit:         input.Limit,
		Offset:        input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return workflow.ListTasksOutput{}, err
	}

	return workflow.ListTasksOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
