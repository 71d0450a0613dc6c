package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"eisenhower-task-management/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.config)
	api := srv.gin.Group("/api/v1", mw.RateLimit(srv.config.RateLimit.RequestsPerMin))
	aiLimit := mw.RateLimit(srv.config.RateLimit.AIRequestsPerMin)

	srv.setupTaskDomain(ctx, api, mw, aiLimit)
	srv.setupIdeaDomain(ctx, api, mw)
	srv.setupReasoningDomain(ctx, api, mw)
	srv.setupClassifierRoutes(ctx, api, mw, aiLimit)

	return nil
}
