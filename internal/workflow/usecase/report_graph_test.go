package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SamTech-crypto/audit-workflow-app/internal/model"
	"github.com/SamTech-crypto/audit-workflow-app/internal/workflow"
)

func TestExportReport(t *testing.T) {
	ctx := context.Background()

	t.Run("tasks become rows", func(t *testing.T) {
		repo := chainedRepo()
		xl := &mockExcel{}
		uc := newTestUC(repo, &mockMailer{}, xl)

		out, err := uc.ExportReport(ctx)
		if err != nil {
			t.Fatalf("ExportReport: %v", err)
		}
		if out.Filename != "audit_report.xlsx" {
			t.Errorf("filename = %q", out.Filename)
		}
		if len(out.Content) == 0 {
			t.Error("empty workbook")
		}

		if xl.sheet.Name != "Audit Tasks" {
			t.Errorf("sheet = %q", xl.sheet.Name)
		}
		want := []string{"ID", "Description", "Due Date", "Dependencies", "Assignee", "Status"}
		if strings.Join(xl.sheet.Headers, "|") != strings.Join(want, "|") {
			t.Errorf("headers = %v", xl.sheet.Headers)
		}
		if len(xl.sheet.Rows) != 3 {
			t.Fatalf("rows = %d, want 3", len(xl.sheet.Rows))
		}
		if xl.sheet.Rows[1][3] != "T1" {
			t.Errorf("T2 dependencies cell = %q, want T1", xl.sheet.Rows[1][3])
		}
	})

	t.Run("empty set yields headers-only sheet", func(t *testing.T) {
		xl := &mockExcel{}
		uc := newTestUC(&mockRepo{}, &mockMailer{}, xl)

		if _, err := uc.ExportReport(ctx); err != nil {
			t.Fatalf("ExportReport: %v", err)
		}
		if len(xl.sheet.Rows) != 0 {
			t.Errorf("rows = %d, want 0", len(xl.sheet.Rows))
		}
	})
}

func TestGraph(t *testing.T) {
	ctx := context.Background()

	t.Run("nodes edges stats and order", func(t *testing.T) {
		repo := chainedRepo()
		uc := newTestUC(repo, &mockMailer{}, &mockExcel{})

		out, err := uc.Graph(ctx)
		if err != nil {
			t.Fatalf("Graph: %v", err)
		}

		if len(out.Nodes) != 3 || len(out.Edges) != 2 {
			t.Fatalf("nodes/edges = %d/%d, want 3/2", len(out.Nodes), len(out.Edges))
		}
		if out.Stats.TotalPending != 2 || out.Stats.TotalCompleted != 1 {
			t.Errorf("stats = %+v", out.Stats)
		}
		if strings.Join(out.TopoOrder, ",") != "T1,T2,T3" {
			t.Errorf("topo order = %v", out.TopoOrder)
		}
		if !strings.Contains(out.DOT, "digraph") {
			t.Errorf("DOT missing digraph: %q", out.DOT)
		}
		if !strings.Contains(out.DOT, "Fieldwork") {
			t.Error("DOT missing node label")
		}
	})

	t.Run("empty set yields empty graph", func(t *testing.T) {
		uc := newTestUC(&mockRepo{}, &mockMailer{}, &mockExcel{})

		out, err := uc.Graph(ctx)
		if err != nil {
			t.Fatalf("Graph: %v", err)
		}
		if len(out.Nodes) != 0 || len(out.Edges) != 0 || len(out.TopoOrder) != 0 {
			t.Errorf("graph not empty: %+v", out)
		}
	})
}

func TestSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("continues the T<n> sequence", func(t *testing.T) {
		repo := &mockRepo{tasks: []model.Task{
			{ID: "T1", Status: model.StatusPending, DueDate: dueOn("2026-09-02"), AssigneeEmail: "a@b.co"},
		}}
		uc := newTestUC(repo, &mockMailer{}, &mockExcel{})

		out, err := uc.Seed(ctx, workflow.SeedInput{Count: 3})
		if err != nil {
			t.Fatalf("Seed: %v", err)
		}
		if len(out.Tasks) != 3 {
			t.Fatalf("seeded = %d, want 3", len(out.Tasks))
		}
		if out.Tasks[0].ID != "T2" || out.Tasks[2].ID != "T4" {
			t.Errorf("ids = %s..%s, want T2..T4", out.Tasks[0].ID, out.Tasks[2].ID)
		}
		for _, task := range out.Tasks {
			if task.Status != model.StatusPending {
				t.Errorf("%s status = %s, want pending", task.ID, task.Status)
			}
			if len(task.Dependencies) > 2 {
				t.Errorf("%s has %d deps, want <= 2", task.ID, len(task.Dependencies))
			}
		}
	})

	t.Run("zero count uses the default", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newTestUC(repo, &mockMailer{}, &mockExcel{})

		out, err := uc.Seed(ctx, workflow.SeedInput{Count: 0})
		if err != nil {
			t.Fatalf("Seed: %v", err)
		}
		if len(out.Tasks) != 5 {
			t.Errorf("seeded = %d, want 5", len(out.Tasks))
		}
	})

	t.Run("oversized count is clamped", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newTestUC(repo, &mockMailer{}, &mockExcel{})

		out, err := uc.Seed(ctx, workflow.SeedInput{Count: 500})
		if err != nil {
			t.Fatalf("Seed: %v", err)
		}
		if len(out.Tasks) != 50 {
			t.Errorf("seeded = %d, want the 50 cap", len(out.Tasks))
		}
	})
}
