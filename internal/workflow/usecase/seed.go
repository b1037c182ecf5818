package usecase

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/SamTech-crypto/audit-workflow-app/internal/workflow"
)

const (
	defaultSeedCount = 5
	maxSeedCount     = 50
)

// Seed generates fake demo tasks through the normal create path, so every
// validation rule applies. IDs continue the T<n> sequence after the current
// task count; each task may depend on up to two earlier tasks.
func (uc *implUseCase) Seed(ctx context.Context, input workflow.SeedInput) (workflow.SeedOutput, error) {
	count := input.Count
	if count <= 0 {
		count = defaultSeedCount
	}
	if count > maxSeedCount {
		count = maxSeedCount
	}

	existing, err := uc.repo.ListAllTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Seed ListAllTasks: %v", err)
		return workflow.SeedOutput{}, err
	}

	candidateIDs := make([]string, 0, len(existing)+count)
	for _, t := range existing {
		candidateIDs = append(candidateIDs, t.ID)
	}

	base := len(existing)
	out := workflow.SeedOutput{}

	for i := 0; i < count; i++ {
		id := fmt.Sprintf("T%d", base+i+1)
		deps := pickDependencies(candidateIDs)

		created, err := uc.Create(ctx, workflow.CreateTaskInput{
			ID:            id,
			Description:   gofakeit.Sentence(6),
			DueDate:       fmt.Sprintf("in %d days", gofakeit.Number(2, 10)),
			AssigneeEmail: gofakeit.Email(),
			Dependencies:  deps,
		})
		if err != nil {
			// ID collisions happen when manual T<n> tasks exist; skip and
			// keep the sequence moving.
			uc.l.Warnf(ctx, "uc.Seed skipping %s: %v", id, err)
			continue
		}

		out.Tasks = append(out.Tasks, created.Task)
		candidateIDs = append(candidateIDs, id)
	}

	return out, nil
}

// pickDependencies samples 0-2 distinct IDs from the candidates.
func pickDependencies(candidates []string) []string {
	if len(candidates) == 0 {
		return nil
	}
	n := gofakeit.Number(0, 2)
	if n > len(candidates) {
		n = len(candidates)
	}
	if n == 0 {
		return nil
	}

	shuffled := make([]string, len(candidates))
	copy(shuffled, candidates)
	gofakeit.ShuffleStrings(shuffled)
	return shuffled[:n]
}
