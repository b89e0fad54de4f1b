package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/pbxops/server/internal/auth"
	"github.com/pbxops/server/internal/notifications"
	"github.com/pbxops/server/internal/oauth"
)

// registers all authentication routes. Nil verifiers disable the
// corresponding provider endpoint (it answers 503).
func RegisterRoutes(
	router *gin.RouterGroup,
	svc *auth.Service,
	tm *auth.TokenManager,
	notifier *notifications.Service,
	google *oauth.GoogleVerifier,
	microsoft *oauth.MicrosoftVerifier,
) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", LoginHandler(svc, tm))
		authGroup.POST("/register", RegisterHandler(svc, tm, notifier))
		authGroup.POST("/google", GoogleHandler(google, svc, tm))
		authGroup.POST("/microsoft", MicrosoftHandler(microsoft, svc, tm))
		authGroup.POST("/logout", LogoutHandler())
		authGroup.GET("/status", StatusHandler(tm))

		authGroup.GET("/oauth/:provider", BeginOAuthHandler())
		authGroup.GET("/oauth/:provider/callback", OAuthCallbackHandler(svc, tm))
	}
}
