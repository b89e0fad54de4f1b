package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pbxops/server/internal/auth"
	"github.com/pbxops/server/internal/config"
	"github.com/pbxops/server/internal/notifications"
	"github.com/pbxops/server/internal/oauth"
	"github.com/pbxops/server/internal/pbx"
	"github.com/pbxops/server/pbxops/customers"
	"github.com/pbxops/server/pbxops/licenses"
	"github.com/pbxops/server/pbxops/maintenance"
	"github.com/pbxops/server/pbxops/users"
)

// holds all dependencies and state for the API server
type Server struct {
	db     *pgxpool.Pool
	config *config.Config
	router *gin.Engine

	tokens      *auth.TokenManager
	authService *auth.Service

	userRepo        *users.Repository
	customerRepo    *customers.Repository
	licenseRepo     *licenses.Repository
	maintenanceRepo *maintenance.Repository

	notifier  *notifications.Service
	pbxClient *pbx.Client

	// nil when the provider is not configured; the endpoints answer 503
	googleVerifier    *oauth.GoogleVerifier
	microsoftVerifier *oauth.MicrosoftVerifier
}
