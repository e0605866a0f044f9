package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	listHTTP "listkeeper/internal/list/delivery/http"
	"listkeeper/internal/model"
	sessionHTTP "listkeeper/internal/session/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	sessionHTTP.RegisterRoutes(api, srv.sessionHandler, srv.mw)
	srv.l.Infof(ctx, "Session domain registered")

	listHTTP.RegisterRoutes(api, srv.listHandler, srv.mw)
	srv.l.Infof(ctx, "List domain registered")

	if srv.webhookHandler != nil {
		srv.gin.POST("/webhooks/changes", srv.webhookHandler.HandleChange)
		srv.l.Infof(ctx, "Change webhook route registered at POST /webhooks/changes")
	} else {
		srv.l.Infof(ctx, "Webhook handler not configured, skipping change webhook route")
	}

	return nil
}
