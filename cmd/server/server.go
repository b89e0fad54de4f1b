package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
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

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.SupabaseConnString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// configure connection pool for supabase free tier pooler compatibility
	// free tier has ~10-15 pooler connections, so keep our pool small
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// CRITICAL: use simple protocol for supabase pooler (PgBouncer) compatibility
	// pgBouncer in transaction mode doesn't support prepared statements,
	// which causes connections to hang on subsequent queries
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}

	userRepo := users.NewRepository(db)

	server := &Server{
		db:              db,
		config:          cfg,
		tokens:          tokens,
		authService:     auth.NewService(userRepo, cfg.BcryptCost, cfg.DemoLoginEnabled),
		userRepo:        userRepo,
		customerRepo:    customers.NewRepository(db),
		licenseRepo:     licenses.NewRepository(db),
		maintenanceRepo: maintenance.NewRepository(db),
		notifier:        notifications.New(db, cfg.NotificationsEnabled),
		pbxClient:       pbx.NewClient(),
	}

	if cfg.GoogleEnabled() {
		server.googleVerifier = oauth.NewGoogleVerifier(cfg.GoogleClientID)
	}

	if cfg.MicrosoftEnabled() {
		server.microsoftVerifier = oauth.NewMicrosoftVerifier()
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server.router = gin.Default()

	RegisterRoutes(server.router, server)

	return server, nil
}
