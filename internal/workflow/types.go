package workflow

import (
	"github.com/SamTech-crypto/audit-workflow-app/internal/model"
)

// --- UseCase Inputs ---

// CreateTaskInput carries the raw create request. DueDate stays a string
// here: the use case owns parsing ("2025-09-15", "tomorrow", "in 3 days").
type CreateTaskInput struct {
	ID            string
	Description   string
	DueDate       string
	AssigneeEmail string
	Dependencies  []string
}

type ListTasksInput struct {
	Status        string
	AssigneeEmail string
	Limit         int
	Offset        int
}

// UpdateTaskInput is a partial update. Empty strings mean "keep current";
// a nil Dependencies pointer leaves the dependency set untouched.
type UpdateTaskInput struct {
	ID            string
	Description   string
	DueDate       string
	AssigneeEmail string
	Status        string
	Dependencies  *[]string
}

type SeedInput struct {
	Count int
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}

// ReminderResult records the outcome of one reminder attempt.
type ReminderResult struct {
	TaskID        string
	AssigneeEmail string
	DaysLeft      int
	Sent          bool
	Reason        string // non-empty when Sent is false
}

// SendRemindersOutput summarizes one reminder run. Skipped counts the tasks
// left outside the window (wrong status or due too far out); those carry no
// per-task result.
type SendRemindersOutput struct {
	Results []ReminderResult
	Sent    int
	Skipped int
	Failed  int
}

type ExportReportOutput struct {
	Filename string
	Content  []byte
}

// GraphNode is a task as it appears in the JSON graph document.
type GraphNode struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date"`
}

// GraphEdge is a dependency relationship: source must complete before target.
type GraphEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// GraphStats holds aggregate task counts by status.
type GraphStats struct {
	TotalPending    int `json:"total_pending"`
	TotalInProgress int `json:"total_in_progress"`
	TotalCompleted  int `json:"total_completed"`
}

// GraphOutput is the workflow visualization: DOT source plus a JSON
// nodes/edges/stats document with a deterministic execution order.
type GraphOutput struct {
	DOT       string
	Nodes     []GraphNode
	Edges     []GraphEdge
	Stats     GraphStats
	TopoOrder []string
}

type SeedOutput struct {
	Tasks []model.Task
}
