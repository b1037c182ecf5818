package http

import (
	"github.com/gin-gonic/gin"

	"github.com/SamTech-crypto/audit-workflow-app/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes share the rate-limit middleware; the mutating routes are
// the ones most worth protecting, but reads go through the same bucket.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RateLimit())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.POST("/seed", h.Seed)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}

	rg.POST("/reminders", mw.RateLimit(), h.SendReminders)
	rg.GET("/report", mw.RateLimit(), h.ExportReport)
	rg.GET("/graph", mw.RateLimit(), h.Graph)
	rg.GET("/graph/dot", mw.RateLimit(), h.GraphDOT)
}
