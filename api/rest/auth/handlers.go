package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pbxops/server/internal/auth"
	apierrors "github.com/pbxops/server/internal/errors"
	"github.com/pbxops/server/internal/notifications"
	"github.com/pbxops/server/internal/oauth"
	"github.com/pbxops/server/pbxops/users"
)

// LoginHandler godoc
// @Summary Sign in with local credentials
// @Description Validates a username/password pair and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/auth/login [post]
func LoginHandler(svc *auth.Service, tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, "username and password are required")
			return
		}

		user, err := svc.Authenticate(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			writeAuthError(c, err)
			return
		}

		issueSession(c, tm, user)
	}
}

// RegisterHandler godoc
// @Summary Register a local account
// @Description Creates a user record and returns a session token. A welcome notification is sent best-effort.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/auth/register [post]
func RegisterHandler(svc *auth.Service, tm *auth.TokenManager, notifier *notifications.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, "username, email and password are required")
			return
		}

		user, err := svc.Register(c.Request.Context(), auth.RegisterParams{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
			Company:  req.Company,
		})

		if err != nil {
			writeAuthError(c, err)
			return
		}

		notifier.SendWelcome(user)

		issueSession(c, tm, user)
	}
}

// GoogleHandler godoc
// @Summary Sign in with a Google ID token
// @Description Verifies the ID token with Google and signs in the linked account, creating it on first use
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GoogleRequest true "Google ID token"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /api/auth/google [post]
func GoogleHandler(verifier *oauth.GoogleVerifier, svc *auth.Service, tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			apierrors.ServiceUnavailable(c, "google sign-in is not configured")
			return
		}

		var req GoogleRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, "credential is required")
			return
		}

		ident, err := verifier.Verify(c.Request.Context(), req.Credential)
		if err != nil {
			writeProviderError(c, err)
			return
		}

		linkAndIssue(c, svc, tm, ident)
	}
}

// MicrosoftHandler godoc
// @Summary Sign in with a Microsoft access token
// @Description Fetches the Graph profile with the token and signs in the linked account, creating it on first use
// @Tags auth
// @Accept json
// @Produce json
// @Param request body MicrosoftRequest true "Microsoft access token"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /api/auth/microsoft [post]
func MicrosoftHandler(verifier *oauth.MicrosoftVerifier, svc *auth.Service, tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			apierrors.ServiceUnavailable(c, "microsoft sign-in is not configured")
			return
		}

		var req MicrosoftRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, "access_token is required")
			return
		}

		ident, err := verifier.Verify(c.Request.Context(), req.AccessToken)
		if err != nil {
			writeProviderError(c, err)
			return
		}

		linkAndIssue(c, svc, tm, ident)
	}
}

// LogoutHandler godoc
// @Summary Logout
// @Description Sessions are stateless bearer tokens, so logout is a client-side concern; this endpoint exists for API symmetry
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /api/auth/logout [post]
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, MessageResponse{
			Success: true,
			Message: "logged out successfully",
		})
	}
}

// StatusHandler godoc
// @Summary Session status
// @Description Reports whether the Authorization header carries a valid session. A missing or invalid token is not an error.
// @Tags auth
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /api/auth/status [get]
func StatusHandler(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := tm.FromAuthHeader(c.GetHeader("Authorization"))
		if !ok {
			c.JSON(http.StatusOK, StatusResponse{
				Success:       true,
				Authenticated: false,
			})
			return
		}

		c.JSON(http.StatusOK, StatusResponse{
			Success:       true,
			Authenticated: true,
			User: &StatusUser{
				ID:       claims.UserID,
				Username: claims.Username,
				Email:    claims.Email,
			},
		})
	}
}

// verifies the provider identity is linked to a local account and issues a
// session for it
func linkAndIssue(c *gin.Context, svc *auth.Service, tm *auth.TokenManager, ident *oauth.Identity) {
	user, err := svc.LinkExternal(c.Request.Context(), auth.ExternalIdentity{
		Provider: ident.Provider,
		Subject:  ident.Subject,
		Email:    ident.Email,
		Name:     ident.Name,
	})

	if err != nil {
		writeAuthError(c, err)
		return
	}

	issueSession(c, tm, user)
}

// issues a session token for the user and writes the auth envelope
func issueSession(c *gin.Context, tm *auth.TokenManager, user *users.User) {
	token, err := tm.Generate(user)
	if err != nil {
		apierrors.InternalError(c, "failed to generate token", err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Token:   token,
		User:    user,
	})
}

// maps auth service errors onto the response envelope
func writeAuthError(c *gin.Context, err error) {
	var validationErr *auth.ValidationError

	switch {
	case errors.As(err, &validationErr):
		apierrors.ValidationError(c, validationErr.Reason)
	case errors.Is(err, auth.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c)
	case errors.Is(err, auth.ErrConflict):
		apierrors.Conflict(c, "username or email already registered")
	default:
		apierrors.InternalError(c, "authentication failed", err)
	}
}

// maps OAuth provider verification errors onto the response envelope
func writeProviderError(c *gin.Context, err error) {
	if errors.Is(err, oauth.ErrProviderUnreachable) {
		apierrors.ServiceUnavailable(c, "identity provider unreachable")
		return
	}

	apierrors.ExternalAuthFailed(c, err)
}
