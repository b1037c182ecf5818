package model

import (
	"math"
	"time"
)

// Status is the lifecycle state of an audit task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task represents a single unit of audit work.
type Task struct {
	ID              string    // caller-supplied identifier, unique
	Description     string    // what has to be done
	DueDate         time.Time // start of day, service timezone
	AssigneeEmail   string    // who gets the reminder
	Status          Status
	Dependencies    []string // IDs of tasks that must complete first
	CalendarEventID string   // Google Calendar mirror, empty when not synced
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DaysUntilDue returns the calendar-day difference between now and the due
// date, negative when overdue. Both sides are taken at start of day, so the
// time of day never shifts the count.
func (t Task) DaysUntilDue(now time.Time) int {
	loc := t.DueDate.Location()
	n := now.In(loc)
	ref := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
	return int(math.Round(t.DueDate.Sub(ref).Hours() / 24))
}
