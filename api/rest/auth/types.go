package auth

import "github.com/pbxops/server/pbxops/users"

// LoginRequest is a local credential sign-in payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is a local account registration payload.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,max=255"`
	Password string `json:"password" binding:"required"`
	Company  string `json:"company" binding:"max=100"`
}

// GoogleRequest carries a Google-issued ID token.
type GoogleRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// MicrosoftRequest carries a Microsoft-issued access token.
type MicrosoftRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

// AuthResponse is returned after any successful sign-in or registration.
type AuthResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    *users.User `json:"user"`
}

// StatusResponse reports whether the caller holds a valid session.
type StatusResponse struct {
	Success       bool        `json:"success"`
	Authenticated bool        `json:"authenticated"`
	User          *StatusUser `json:"user,omitempty"`
}

// StatusUser echoes the session claims.
type StatusUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
