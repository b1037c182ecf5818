package repository

import (
	"context"

	"github.com/SamTech-crypto/audit-workflow-app/internal/model"
)

// Repository is the composed interface for the workflow domain data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
// Tasks are persisted together with their dependency edges.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	// ListAllTasks returns every task with dependencies, for report/graph
	// building.
	ListAllTasks(ctx context.Context) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	// ListDependents returns IDs of tasks that depend on the given task.
	ListDependents(ctx context.Context, id string) ([]string, error)
	CountTasks(ctx context.Context) (int, error)
}
