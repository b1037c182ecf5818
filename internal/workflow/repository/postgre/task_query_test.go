package postgre

import (
	"reflect"
	"testing"

	"github.com/SamTech-crypto/audit-workflow-app/internal/model"
	repo "github.com/SamTech-crypto/audit-workflow-app/internal/workflow/repository"
)

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{}

	tests := []struct {
		name     string
		opt      repo.ListTasksOptions
		wantMods string
		wantArgs []any
	}{
		{
			name:     "no filters uses the default order",
			opt:      repo.ListTasksOptions{},
			wantMods: "ORDER BY due_date ASC, id ASC",
			wantArgs: nil,
		},
		{
			name:     "status filter",
			opt:      repo.ListTasksOptions{Status: model.StatusPending},
			wantMods: "WHERE status = $1 ORDER BY due_date ASC, id ASC",
			wantArgs: []any{model.StatusPending},
		},
		{
			name:     "filters plus pagination keep placeholders in order",
			opt:      repo.ListTasksOptions{Status: model.StatusPending, AssigneeEmail: "a@b.co", Limit: 20, Offset: 40},
			wantMods: "WHERE status = $1 AND assignee_email = $2 ORDER BY due_date ASC, id ASC LIMIT $3 OFFSET $4",
			wantArgs: []any{model.StatusPending, "a@b.co", 20, 40},
		},
		{
			name:     "custom order",
			opt:      repo.ListTasksOptions{OrderBy: "id DESC"},
			wantMods: "ORDER BY id DESC",
			wantArgs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mods, args := r.buildListQuery(tt.opt)
			if mods != tt.wantMods {
				t.Errorf("mods = %q, want %q", mods, tt.wantMods)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestBuildCountQuery(t *testing.T) {
	r := &implRepository{}

	mods, args := r.buildCountQuery(repo.ListTasksOptions{})
	if mods != "1=1" || len(args) != 0 {
		t.Errorf("empty filters: mods = %q, args = %v", mods, args)
	}

	mods, args = r.buildCountQuery(repo.ListTasksOptions{AssigneeEmail: "a@b.co", Limit: 20})
	if mods != "assignee_email = $1" {
		t.Errorf("mods = %q", mods)
	}
	if len(args) != 1 {
		t.Errorf("pagination leaked into count args: %v", args)
	}
}
