package postgre

import (
	"database/sql"
	"fmt"

	"github.com/SamTech-crypto/audit-workflow-app/internal/workflow/repository"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the workflow domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("workflow/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// scope returns a method-scoped prefix for log lines.
func (r *implRepository) scope(method string) string {
	return fmt.Sprintf("workflow/repository/postgre.%s", method)
}
