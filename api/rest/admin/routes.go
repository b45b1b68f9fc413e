package admin

import (
	"codeberg.org/trigonal/backend/internal/auth"
	"codeberg.org/trigonal/backend/trigonal/briefs"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, briefRepo briefs.Repository, publisher BriefPublisher, jwtSecret string) {
	admin := router.Group("/admin")
	admin.Use(auth.AdminAuthMiddleware(jwtSecret))

	admin.GET("/briefs", ListBriefs(briefRepo))
	admin.GET("/briefs/:id", GetBrief(briefRepo))
	admin.PATCH("/briefs/:id/status", UpdateBriefStatus(briefRepo, publisher))
}
