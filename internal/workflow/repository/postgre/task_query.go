package postgre

import (
	"fmt"
	"strings"

	repo "github.com/SamTech-crypto/audit-workflow-app/internal/workflow/repository"
)

// buildCountQuery builds WHERE clause + args for counting Tasks (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions, args := r.buildFilters(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string

	conditions, args := r.buildFilters(opt)
	idx := len(args) + 1

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "due_date ASC, id ASC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}

// buildFilters applies all non-empty fields as AND conditions.
func (r *implRepository) buildFilters(opt repo.ListTasksOptions) ([]string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}
	if opt.AssigneeEmail != "" {
		conditions = append(conditions, fmt.Sprintf("assignee_email = $%d", idx))
		args = append(args, opt.AssigneeEmail)
		idx++
	}
	if !opt.DueBefore.IsZero() {
		conditions = append(conditions, fmt.Sprintf("due_date <= $%d", idx))
		args = append(args, opt.DueBefore)
		idx++
	}

	return conditions, args
}
