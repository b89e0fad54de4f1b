package licenses

import (
	"github.com/gin-gonic/gin"
	"github.com/pbxops/server/internal/auth"
	"github.com/pbxops/server/pbxops/licenses"
)

// registers license CRUD routes; all require a session
func RegisterRoutes(router *gin.RouterGroup, tm *auth.TokenManager, repo *licenses.Repository) {
	group := router.Group("/licenses")
	group.Use(auth.RequireAuth(tm))
	{
		group.GET("", ListHandler(repo))
		group.GET("/:id", GetHandler(repo))
		group.POST("", CreateHandler(repo))
		group.PUT("/:id", UpdateHandler(repo))
		group.DELETE("/:id", DeleteHandler(repo))
	}
}
