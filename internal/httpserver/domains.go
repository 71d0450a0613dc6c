package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	classifierHTTP "eisenhower-task-management/internal/classifier/delivery/http"
	ideaHTTP "eisenhower-task-management/internal/idea/delivery/http"
	ideaUC "eisenhower-task-management/internal/idea/usecase"
	"eisenhower-task-management/internal/middleware"
	reasoningHTTP "eisenhower-task-management/internal/reasoning/delivery/http"
	reasoningUC "eisenhower-task-management/internal/reasoning/usecase"
	taskHTTP "eisenhower-task-management/internal/task/delivery/http"
	taskUC "eisenhower-task-management/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, aiLimit gin.HandlerFunc) {
	uc := taskUC.New(srv.l, srv.sessions, srv.classifier, srv.bus)
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h, mw, aiLimit)
	srv.l.Infof(ctx, "Task domain registered")
}

// setupIdeaDomain initializes the Ideas Bank and registers its routes.
func (srv *HTTPServer) setupIdeaDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	uc := ideaUC.New(srv.l, srv.sessions, srv.bus)
	h := ideaHTTP.New(srv.l, uc)
	ideaHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Idea domain registered")
}

// setupReasoningDomain registers the classification audit log routes.
func (srv *HTTPServer) setupReasoningDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	uc := reasoningUC.New(srv.sessions)
	h := reasoningHTTP.New(srv.l, uc)
	reasoningHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Reasoning domain registered")
}

// setupClassifierRoutes registers the direct classification endpoint.
func (srv *HTTPServer) setupClassifierRoutes(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, aiLimit gin.HandlerFunc) {
	h := classifierHTTP.New(srv.l, srv.classifier)
	classifierHTTP.RegisterRoutes(api, h, mw, aiLimit)
	srv.l.Infof(ctx, "Classifier routes registered")
}
