package main

import (
	"codeberg.org/trigonal/backend/api/rest/admin"
	"codeberg.org/trigonal/backend/api/rest/consult"
	"codeberg.org/trigonal/backend/api/rest/health"
	"codeberg.org/trigonal/backend/api/websocket"
	"codeberg.org/trigonal/backend/docs"
	"codeberg.org/trigonal/backend/internal/logger"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	cfg := server.config

	router.Use(logger.Middleware(), gin.Recovery(), CORSMiddleware(cfg.AllowedOrigins))

	router.GET("/health", health.Handler(cfg.ServiceName))
	router.GET("/", health.RootHandler(cfg.Title, cfg.Version))

	// interactive API docs outside production
	if !cfg.IsProduction() {
		docs.SwaggerInfo.Title = cfg.Title
		docs.SwaggerInfo.Version = cfg.Version
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := router.Group("/api")

	{
		consult.RegisterRoutes(api, server.briefRepo, server.hub, server.notifier, server.consultLimit)

		// without a signing secret the admin surface does not exist
		if cfg.AdminEnabled() {
			admin.RegisterRoutes(api, server.briefRepo, server.hub, cfg.JWTSecret)
			websocket.RegisterRoutes(api, server.hub, cfg.JWTSecret, cfg.AllowedOrigins, cfg.IsProduction())
		}
	}
}
