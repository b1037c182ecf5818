package http

import (
	"errors"
	"net/http"

	"github.com/SamTech-crypto/audit-workflow-app/internal/workflow"
	pkgErrors "github.com/SamTech-crypto/audit-workflow-app/pkg/errors"
)

// mapError translates domain errors into HTTP errors. Unknown errors
// (repository failures included) return nil and are reported as 500 by the
// handler.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, workflow.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, workflow.ErrDuplicateTaskID),
		errors.Is(err, workflow.ErrHasDependents):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, workflow.ErrEmptyTaskID),
		errors.Is(err, workflow.ErrInvalidEmail),
		errors.Is(err, workflow.ErrInvalidDueDate),
		errors.Is(err, workflow.ErrDueDateInPast),
		errors.Is(err, workflow.ErrUnknownDependency),
		errors.Is(err, workflow.ErrDependencyCycle),
		errors.Is(err, workflow.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return nil
	}
}
