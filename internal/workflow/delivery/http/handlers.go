package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SamTech-crypto/audit-workflow-app/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *handler) respondError(c *gin.Context, err error) {
	if httpErr := h.mapError(err); httpErr != nil {
		response.Error(c, httpErr)
		return
	}
	response.InternalError(c, err)
}

// Create godoc
// @Summary     Create a new audit task
// @Description Creates a task with a unique ID, due date, assignee and optional dependencies on existing tasks.
// @Tags        Workflow
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request - validation failed"
// @Failure     409 {object} response.Resp "Conflict - task id already exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/workflow/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List audit tasks
// @Description Returns a paginated list of tasks with optional status and assignee filters.
// @Tags        Workflow
// @Accept      json
// @Produce     json
// @Param       status   query string false "Filter by status (pending/in_progress/completed)"
// @Param       assignee query string false "Filter by assignee email"
// @Param       limit    query int    false "Page size (default: 20)"
// @Param       offset   query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/workflow/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by its ID.
// @Tags        Workflow
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/workflow/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Partially updates a task. Replacing dependencies re-validates the whole graph for cycles.
// @Tags        Workflow
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request - validation failed or dependency cycle"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/workflow/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes a task. Refused while other tasks depend on it.
// @Tags        Workflow
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - task has dependents"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/workflow/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// Seed godoc
// @Summary     Seed demo tasks
// @Description Generates fake tasks (default 5) through the normal create path.
// @Tags        Workflow
// @Accept      json
// @Produce     json
// @Param       body body seedReq false "Seed options"
// @Success     200 {object} seedResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/workflow/tasks/seed [POST]
func (h *handler) Seed(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSeedReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Seed(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Seed: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSeedResp(output))
}

// SendReminders godoc
// @Summary     Send due reminders
// @Description Emails the assignee of every pending task due within the reminder window.
// @Tags        Workflow
// @Accept      json
// @Produce     json
// @Success     200 {object} remindersResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/workflow/reminders [POST]
func (h *handler) SendReminders(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.SendReminders(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.SendReminders: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newRemindersResp(output))
}

// ExportReport godoc
// @Summary     Export the Excel report
// @Description Returns all tasks as an xlsx workbook attachment.
// @Tags        Workflow
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success     200 {file} file "audit_report.xlsx"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/workflow/report [GET]
func (h *handler) ExportReport(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ExportReport(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportReport: %v", err)
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, output.Content)
}

// Graph godoc
// @Summary     Get the dependency graph
// @Description Returns the task graph as nodes, edges, status counts and a topological order.
// @Tags        Workflow
// @Accept      json
// @Produce     json
// @Success     200 {object} graphResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/workflow/graph [GET]
func (h *handler) Graph(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Graph(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Graph: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newGraphResp(output))
}

// GraphDOT godoc
// @Summary     Get the dependency graph as DOT
// @Description Returns Graphviz DOT source for the task dependency graph.
// @Tags        Workflow
// @Produce     plain
// @Success     200 {string} string "DOT source"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/workflow/graph/dot [GET]
func (h *handler) GraphDOT(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Graph(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Graph: %v", err)
		h.respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", []byte(output.DOT))
}
