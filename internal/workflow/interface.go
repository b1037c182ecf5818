package workflow

import "context"

// UseCase defines the business logic interface for the workflow domain.
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, id string) (DetailTaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, id string) error

	// SendReminders emails every pending task inside the reminder window.
	// One failed send does not abort the remaining tasks.
	SendReminders(ctx context.Context) (SendRemindersOutput, error)

	// ExportReport renders all tasks into an xlsx workbook.
	ExportReport(ctx context.Context) (ExportReportOutput, error)

	// Graph renders the dependency DAG as DOT plus a JSON document.
	Graph(ctx context.Context) (GraphOutput, error)

	// Seed generates fake demo tasks through the normal create path.
	Seed(ctx context.Context, input SeedInput) (SeedOutput, error)
}
