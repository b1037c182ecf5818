package http

import (
	"github.com/gin-gonic/gin"

	"github.com/SamTech-crypto/audit-workflow-app/internal/workflow"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/log"
)

// Handler is the public interface for the workflow HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Seed(c *gin.Context)
	SendReminders(c *gin.Context)
	ExportReport(c *gin.Context)
	Graph(c *gin.Context)
	GraphDOT(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc workflow.UseCase
}

// New creates a new HTTP handler for the workflow domain.
func New(l log.Logger, uc workflow.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
