package workflow

import "errors"

// Domain-specific errors for the workflow package.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrDuplicateTaskID   = errors.New("task id already exists")
	ErrEmptyTaskID       = errors.New("task id must be non-empty")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrInvalidDueDate    = errors.New("invalid due date")
	ErrDueDateInPast     = errors.New("due date cannot be in the past")
	ErrUnknownDependency = errors.New("dependency does not exist")
	ErrDependencyCycle   = errors.New("dependency cycle")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrHasDependents     = errors.New("task has dependents")
)
