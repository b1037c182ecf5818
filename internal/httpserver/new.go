package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/SamTech-crypto/audit-workflow-app/internal/middleware"
	workflowHTTP "github.com/SamTech-crypto/audit-workflow-app/internal/workflow/delivery/http"
	"github.com/SamTech-crypto/audit-workflow-app/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware
	mw middleware.Middleware

	// Workflow domain
	workflowHandler workflowHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	WorkflowHandler workflowHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		workflowHandler: cfg.WorkflowHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.workflowHandler == nil {
		return errors.New("workflow handler is required")
	}
	return nil
}
