package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/SamTech-crypto/audit-workflow-app/internal/model"
	repo "github.com/SamTech-crypto/audit-workflow-app/internal/workflow/repository"
)

const taskColumns = `id, description, due_date, assignee_email, status, calendar_event_id, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (model.Task, error) {
	var t model.Task
	var eventID sql.NullString
	err := row.Scan(&t.ID, &t.Description, &t.DueDate, &t.AssigneeEmail, &t.Status, &eventID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return model.Task{}, err
	}
	t.CalendarEventID = eventID.String
	return t, nil
}

// CreateTask inserts a new Task row plus its dependency edges in one
// transaction and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.scope("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO audit_tasks (id, description, due_date, assignee_email, status, calendar_event_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NOW(), NOW())
		RETURNING ` + taskColumns

	task, err := scanTask(tx.QueryRowContext(ctx, query,
		opt.ID, opt.Description, opt.DueDate, opt.AssigneeEmail, model.StatusPending, opt.CalendarEventID,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	for _, dep := range opt.Dependencies {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO audit_task_deps (task_id, depends_on) VALUES ($1, $2)`, opt.ID, dep,
		); err != nil {
			r.l.Errorf(ctx, "%s dep %s: %v", r.scope("CreateTask"), dep, err)
			return model.Task{}, repo.ErrFailedToInsert
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.scope("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	task.Dependencies = append([]string(nil), opt.Dependencies...)
	return task, nil
}

// GetOneTask retrieves a single Task by the provided filters.
// Returns zero-value Task (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM audit_tasks WHERE id = $1 LIMIT 1`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return model.Task{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}

	deps, err := r.loadDependencies(ctx, []string{task.ID})
	if err != nil {
		return model.Task{}, repo.ErrFailedToGet
	}
	task.Dependencies = deps[task.ID]
	return task, nil
}

// ListTasks returns a paginated list of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM audit_tasks WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.scope("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM audit_tasks %s`, taskColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks, err := collectTasks(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.scope("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	if err := r.attachDependencies(ctx, tasks); err != nil {
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// ListAllTasks returns every task with its dependencies, ordered by ID.
func (r *implRepository) ListAllTasks(ctx context.Context) ([]model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM audit_tasks ORDER BY id`, taskColumns)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("ListAllTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks, err := collectTasks(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.scope("ListAllTasks"), err)
		return nil, repo.ErrFailedToList
	}

	if err := r.attachDependencies(ctx, tasks); err != nil {
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask updates a Task by ID and returns the updated entity.
// A non-nil Dependencies replaces the whole edge set.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.scope("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	const query = `
		UPDATE audit_tasks
		SET description = $1, due_date = $2, assignee_email = $3, status = $4, calendar_event_id = NULLIF($5, ''), updated_at = $6
		WHERE id = $7
		RETURNING ` + taskColumns

	task, err := scanTask(tx.QueryRowContext(ctx, query,
		opt.Description, opt.DueDate, opt.AssigneeEmail, opt.Status, opt.CalendarEventID, time.Now(), opt.ID,
	))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	if opt.Dependencies != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM audit_task_deps WHERE task_id = $1`, opt.ID); err != nil {
			r.l.Errorf(ctx, "%s clear deps: %v", r.scope("UpdateTask"), err)
			return model.Task{}, repo.ErrFailedToUpdate
		}
		for _, dep := range *opt.Dependencies {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO audit_task_deps (task_id, depends_on) VALUES ($1, $2)`, opt.ID, dep,
			); err != nil {
				r.l.Errorf(ctx, "%s dep %s: %v", r.scope("UpdateTask"), dep, err)
				return model.Task{}, repo.ErrFailedToUpdate
			}
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.scope("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	deps, err := r.loadDependencies(ctx, []string{task.ID})
	if err != nil {
		return model.Task{}, repo.ErrFailedToUpdate
	}
	task.Dependencies = deps[task.ID]
	return task, nil
}

// DeleteTask removes a Task and its outgoing dependency edges.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.scope("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM audit_task_deps WHERE task_id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s deps: %v", r.scope("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM audit_tasks WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.scope("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ListDependents returns IDs of tasks that depend on the given task.
func (r *implRepository) ListDependents(ctx context.Context, id string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT task_id FROM audit_task_deps WHERE depends_on = $1 ORDER BY task_id`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("ListDependents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var dep string
		if err := rows.Scan(&dep); err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, dep)
	}
	return out, rows.Err()
}

// CountTasks returns the total number of tasks.
func (r *implRepository) CountTasks(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_tasks`).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("CountTasks"), err)
		return 0, repo.ErrFailedToGet
	}
	return total, nil
}

func collectTasks(rows *sql.Rows) ([]model.Task, error) {
	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// attachDependencies fills Dependencies for the given tasks in one query.
func (r *implRepository) attachDependencies(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	deps, err := r.loadDependencies(ctx, ids)
	if err != nil {
		return err
	}
	for i := range tasks {
		tasks[i].Dependencies = deps[tasks[i].ID]
	}
	return nil
}

func (r *implRepository) loadDependencies(ctx context.Context, taskIDs []string) (map[string][]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT task_id, depends_on FROM audit_task_deps WHERE task_id = ANY($1) ORDER BY task_id, depends_on`,
		pq.Array(taskIDs))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("loadDependencies"), err)
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var taskID, dep string
		if err := rows.Scan(&taskID, &dep); err != nil {
			return nil, err
		}
		out[taskID] = append(out[taskID], dep)
	}
	return out, rows.Err()
}
