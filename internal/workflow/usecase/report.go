package usecase

import (
	"context"
	"strings"

	"github.com/SamTech-crypto/audit-workflow-app/internal/workflow"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/excel"
)

const reportFilename = "audit_report.xlsx"

var reportHeaders = []string{"ID", "Description", "Due Date", "Dependencies", "Assignee", "Status"}

// ExportReport renders every task into an xlsx workbook. An empty task set
// yields a headers-only sheet.
func (uc *implUseCase) ExportReport(ctx context.Context) (workflow.ExportReportOutput, error) {
	tasks, err := uc.repo.ListAllTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportReport ListAllTasks: %v", err)
		return workflow.ExportReportOutput{}, err
	}

	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		rows[i] = []string{
			t.ID,
			t.Description,
			t.DueDate.Format("2006-01-02"),
			strings.Join(t.Dependencies, ", "),
			t.AssigneeEmail,
			string(t.Status),
		}
	}

	content, err := uc.excel.BuildWorkbook(excel.Sheet{
		Name:    "Audit Tasks",
		Headers: reportHeaders,
		Rows:    rows,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportReport BuildWorkbook: %v", err)
		return workflow.ExportReportOutput{}, err
	}

	return workflow.ExportReportOutput{
		Filename: reportFilename,
		Content:  content,
	}, nil
}
