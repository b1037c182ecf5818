package usecase

import (
	"context"

	"github.com/SamTech-crypto/audit-workflow-app/internal/model"
	"github.com/SamTech-crypto/audit-workflow-app/internal/workflow"
)

// Graph renders the dependency DAG as DOT source plus a JSON-friendly
// nodes/edges/stats document. Stored tasks are always acyclic, so a graph
// build failure here is a data-integrity problem, not user error.
func (uc *implUseCase) Graph(ctx context.Context) (workflow.GraphOutput, error) {
	tasks, err := uc.repo.ListAllTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Graph ListAllTasks: %v", err)
		return workflow.GraphOutput{}, err
	}

	g, err := buildGraph(tasks, "", nil)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Graph stored graph invalid: %v", err)
		return workflow.GraphOutput{}, err
	}

	out := workflow.GraphOutput{
		DOT:       g.DOT(),
		Nodes:     make([]workflow.GraphNode, 0, len(tasks)),
		Edges:     make([]workflow.GraphEdge, 0, len(g.Edges())),
		TopoOrder: g.TopoOrder(),
	}

	for _, t := range tasks {
		out.Nodes = append(out.Nodes, workflow.GraphNode{
			ID:          t.ID,
			Description: t.Description,
			Status:      string(t.Status),
			DueDate:     t.DueDate.Format("2006-01-02"),
		})
		switch t.Status {
		case model.StatusPending:
			out.Stats.TotalPending++
		case model.StatusInProgress:
			out.Stats.TotalInProgress++
		case model.StatusCompleted:
			out.Stats.TotalCompleted++
		}
	}

	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, workflow.GraphEdge{Source: e.From, Target: e.To})
	}

	return out, nil
}
