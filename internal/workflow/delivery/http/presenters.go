package http

import (
	"github.com/SamTech-crypto/audit-workflow-app/internal/model"
	"github.com/SamTech-crypto/audit-workflow-app/internal/workflow"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	ID            string   `json:"id"             binding:"required,min=1,max=64"`
	Description   string   `json:"description"    binding:"max=1000"`
	DueDate       string   `json:"due_date"       binding:"required"`
	AssigneeEmail string   `json:"assignee_email" binding:"required"`
	Dependencies  []string `json:"dependencies"   binding:"max=50"`
}

func (r createReq) toInput() workflow.CreateTaskInput {
	return workflow.CreateTaskInput{
		ID:            r.ID,
		Description:   r.Description,
		DueDate:       r.DueDate,
		AssigneeEmail: r.AssigneeEmail,
		Dependencies:  r.Dependencies,
	}
}

// ---

type listReq struct {
	Status   string `form:"status"   binding:"omitempty,oneof=pending in_progress completed"`
	Assignee string `form:"assignee"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) toInput() workflow.ListTasksInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return workflow.ListTasksInput{
		Status:        r.Status,
		AssigneeEmail: r.Assignee,
		Limit:         limit,
		Offset:        offset,
	}
}

// ---

type updateReq struct {
	ID            string    `json:"-"` // populated from URI param
	Description   string    `json:"description"    binding:"omitempty,max=1000"`
	DueDate       string    `json:"due_date"       binding:"omitempty"`
	AssigneeEmail string    `json:"assignee_email" binding:"omitempty"`
	Status        string    `json:"status"         binding:"omitempty,oneof=pending in_progress completed"`
	Dependencies  *[]string `json:"dependencies"   binding:"omitempty,max=50"`
}

func (r updateReq) toInput() workflow.UpdateTaskInput {
	return workflow.UpdateTaskInput{
		ID:            r.ID,
		Description:   r.Description,
		DueDate:       r.DueDate,
		AssigneeEmail: r.AssigneeEmail,
		Status:        r.Status,
		Dependencies:  r.Dependencies,
	}
}

// ---

type seedReq struct {
	Count int `json:"count" binding:"omitempty,min=1,max=50"`
}

func (r seedReq) toInput() workflow.SeedInput {
	return workflow.SeedInput{Count: r.Count}
}

// --- Response DTOs ---

type taskResp struct {
	ID              string            `json:"id"`
	Description     string            `json:"description"`
	DueDate         response.Date     `json:"due_date"`
	AssigneeEmail   string            `json:"assignee_email"`
	Status          string            `json:"status"`
	Dependencies    []string          `json:"dependencies"`
	CalendarEventID string            `json:"calendar_event_id,omitempty"`
	CreatedAt       response.DateTime `json:"created_at"`
	UpdatedAt       response.DateTime `json:"updated_at"`
}

func newTaskResp(task model.Task) taskResp {
	deps := task.Dependencies
	if deps == nil {
		deps = []string{}
	}
	return taskResp{
		ID:              task.ID,
		Description:     task.Description,
		DueDate:         response.Date(task.DueDate),
		AssigneeEmail:   task.AssigneeEmail,
		Status:          string(task.Status),
		Dependencies:    deps,
		CalendarEventID: task.CalendarEventID,
		CreatedAt:       response.DateTime(task.CreatedAt),
		UpdatedAt:       response.DateTime(task.UpdatedAt),
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out workflow.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out workflow.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, task := range out.Tasks {
		tasks[i] = newTaskResp(task)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out workflow.DetailTaskOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out workflow.UpdateTaskOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}

type reminderResultResp struct {
	TaskID        string `json:"task_id"`
	AssigneeEmail string `json:"assignee_email"`
	DaysLeft      int    `json:"days_left"`
	Sent          bool   `json:"sent"`
	Reason        string `json:"reason,omitempty"`
}

type remindersResp struct {
	Sent    int                  `json:"sent"`
	Skipped int                  `json:"skipped"`
	Failed  int                  `json:"failed"`
	Results []reminderResultResp `json:"results"`
}

func (h *handler) newRemindersResp(out workflow.SendRemindersOutput) remindersResp {
	results := make([]reminderResultResp, len(out.Results))
	for i, r := range out.Results {
		results[i] = reminderResultResp{
			TaskID:        r.TaskID,
			AssigneeEmail: r.AssigneeEmail,
			DaysLeft:      r.DaysLeft,
			Sent:          r.Sent,
			Reason:        r.Reason,
		}
	}
	return remindersResp{Sent: out.Sent, Skipped: out.Skipped, Failed: out.Failed, Results: results}
}

type graphResp struct {
	Nodes     []workflow.GraphNode `json:"nodes"`
	Edges     []workflow.GraphEdge `json:"edges"`
	Stats     workflow.GraphStats  `json:"stats"`
	TopoOrder []string             `json:"topo_order"`
}

func (h *handler) newGraphResp(out workflow.GraphOutput) graphResp {
	return graphResp{
		Nodes:     out.Nodes,
		Edges:     out.Edges,
		Stats:     out.Stats,
		TopoOrder: out.TopoOrder,
	}
}

type seedResp struct {
	Created int        `json:"created"`
	Tasks   []taskResp `json:"tasks"`
}

func (h *handler) newSeedResp(out workflow.SeedOutput) seedResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, task := range out.Tasks {
		tasks[i] = newTaskResp(task)
	}
	return seedResp{Created: len(tasks), Tasks: tasks}
}
