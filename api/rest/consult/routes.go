package consult

import (
	"codeberg.org/trigonal/backend/internal/notify"
	"codeberg.org/trigonal/backend/trigonal/briefs"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, briefRepo briefs.Repository, publisher BriefPublisher, notifier notify.Notifier, rateLimit gin.HandlerFunc) {
	router.POST("/consult", rateLimit, SubmitBrief(briefRepo, publisher, notifier))
}
