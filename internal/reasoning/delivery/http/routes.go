package http

import (
	"github.com/gin-gonic/gin"

	"eisenhower-task-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	log := rg.Group("/reasoning", mw.Auth())
	{
		log.GET("", h.List)
		log.DELETE("/:task_id", h.Delete)
		log.DELETE("", h.Clear)
	}
}
