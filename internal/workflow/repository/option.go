package repository

import (
	"time"

	"github.com/SamTech-crypto/audit-workflow-app/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	ID              string
	Description     string
	DueDate         time.Time
	AssigneeEmail   string
	Dependencies    []string
	CalendarEventID string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	Status        model.Status
	AssigneeEmail string
	DueBefore     time.Time
	Limit         int
	Offset        int
	OrderBy       string
}

// UpdateTaskOptions holds parameters for updating an existing Task.
// Dependencies nil means keep the current edge set.
type UpdateTaskOptions struct {
	ID              string
	Description     string
	DueDate         time.Time
	AssigneeEmail   string
	Status          model.Status
	Dependencies    *[]string
	CalendarEventID string
}
