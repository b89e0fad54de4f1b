package maintenance

import (
	"github.com/gin-gonic/gin"
	"github.com/pbxops/server/internal/auth"
	"github.com/pbxops/server/pbxops/maintenance"
)

// registers maintenance CRUD routes; all require a session
func RegisterRoutes(router *gin.RouterGroup, tm *auth.TokenManager, repo *maintenance.Repository) {
	group := router.Group("/maintenance")
	group.Use(auth.RequireAuth(tm))
	{
		group.GET("", ListHandler(repo))
		group.GET("/customer/:customerId", ListByCustomerHandler(repo))
		group.GET("/:id", GetHandler(repo))
		group.POST("", CreateHandler(repo))
		group.PUT("/:id", UpdateHandler(repo))
		group.DELETE("/:id", DeleteHandler(repo))
	}
}
