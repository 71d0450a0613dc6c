package http

import (
	"github.com/gin-gonic/gin"

	"eisenhower-task-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ideas := rg.Group("/ideas", mw.Auth())
	{
		ideas.POST("", h.Create)
		ideas.GET("", h.List)
		ideas.PUT("/:id", h.Update)
		ideas.DELETE("/:id", h.Delete)
		ideas.POST("/:id/convert", h.Convert)
	}
}
