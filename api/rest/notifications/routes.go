package notifications

import (
	"github.com/gin-gonic/gin"
	"github.com/pbxops/server/internal/auth"
	"github.com/pbxops/server/internal/notifications"
)

// registers notification routes; all require a session
func RegisterRoutes(router *gin.RouterGroup, tm *auth.TokenManager, svc *notifications.Service) {
	group := router.Group("/notifications")
	group.Use(auth.RequireAuth(tm))
	{
		group.GET("", ListHandler(svc))
		group.PUT("/:id/read", MarkReadHandler(svc))
	}
}
