package system

import (
	"github.com/gin-gonic/gin"
	"github.com/pbxops/server/internal/auth"
	"github.com/pbxops/server/internal/pbx"
)

// registers system integration routes; all require a session
func RegisterRoutes(router *gin.RouterGroup, tm *auth.TokenManager, client *pbx.Client) {
	group := router.Group("/system")
	group.Use(auth.RequireAuth(tm))
	{
		group.POST("/fetch-info", FetchInfoHandler(client))
	}
}
