package auth

import (
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
	"github.com/pbxops/server/internal/auth"
	apierrors "github.com/pbxops/server/internal/errors"
	"github.com/pbxops/server/internal/oauth"
)

// providers served by the browser-redirect flow; the SPA token endpoints are
// the primary path
var redirectProviders = []string{"google", "microsoftonline"}

// BeginOAuthHandler godoc
// @Summary Start browser-redirect OAuth
// @Description Redirects the browser to the provider's consent page
// @Tags auth
// @Param provider path string true "OAuth provider" Enums(google, microsoftonline)
// @Success 302 {string} string "Redirect to OAuth provider"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /api/auth/oauth/{provider} [get]
func BeginOAuthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !oauth.RedirectFlowEnabled() {
			apierrors.ServiceUnavailable(c, "redirect-flow sign-in is not configured")
			return
		}

		provider := c.Param("provider")
		if !slices.Contains(redirectProviders, provider) {
			apierrors.BadRequest(c, "invalid provider", nil)
			return
		}

		// set provider in query for gothic
		q := c.Request.URL.Query()
		q.Add("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// OAuthCallbackHandler godoc
// @Summary Browser-redirect OAuth callback
// @Description Completes the provider handshake and returns a session token
// @Tags auth
// @Produce json
// @Param provider path string true "OAuth provider" Enums(google, microsoftonline)
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/auth/oauth/{provider}/callback [get]
func OAuthCallbackHandler(svc *auth.Service, tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !oauth.RedirectFlowEnabled() {
			apierrors.ServiceUnavailable(c, "redirect-flow sign-in is not configured")
			return
		}

		provider := c.Param("provider")
		if !slices.Contains(redirectProviders, provider) {
			apierrors.BadRequest(c, "invalid provider", nil)
			return
		}

		q := c.Request.URL.Query()
		q.Add("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			apierrors.ExternalAuthFailed(c, err)
			return
		}

		linkAndIssue(c, svc, tm, &oauth.Identity{
			Provider: canonicalProvider(gothUser.Provider),
			Subject:  gothUser.UserID,
			Email:    gothUser.Email,
			Name:     gothUser.Name,
		})
	}
}

// both sign-in paths must link against the same provider namespace
func canonicalProvider(gothProvider string) string {
	if gothProvider == "microsoftonline" {
		return "microsoft"
	}

	return gothProvider
}
