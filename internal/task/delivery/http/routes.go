package http

import (
	"github.com/gin-gonic/gin"

	"eisenhower-task-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. All routes
// require authentication; AI-backed creation gets the tighter rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware, aiLimit gin.HandlerFunc) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.POST("", h.Create)
		tasks.POST("/ai", aiLimit, h.CreateWithAI)
		tasks.GET("", h.List)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/toggle", h.Toggle)
		tasks.POST("/:id/reflection", h.SubmitReflection)
		tasks.POST("/reorder", h.Reorder)
	}
}
