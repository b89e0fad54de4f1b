package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pbxops/server/api/rest/auth"
	"github.com/pbxops/server/api/rest/customers"
	"github.com/pbxops/server/api/rest/health"
	"github.com/pbxops/server/api/rest/licenses"
	"github.com/pbxops/server/api/rest/maintenance"
	"github.com/pbxops/server/api/rest/notifications"
	"github.com/pbxops/server/api/rest/system"
	"github.com/pbxops/server/internal/logger"
	"github.com/pbxops/server/internal/ratelimit"
)

const publicDir = "./public"

// sets up the middleware pipeline and all API routes. The pipeline order is
// deliberate: security headers, then CORS, then rate limiting, then routing.
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(SecurityHeadersMiddleware())
	router.Use(CORSMiddleware())

	api := router.Group("/api")

	limiterMiddleware, err := ratelimit.Middleware(server.config.RedisURL)
	if err != nil {
		// fall back to unlimited rather than refusing to start
		logger.ErrorErr(err, "failed to build rate limiter, /api is unthrottled")
	} else {
		api.Use(limiterMiddleware)
	}

	{
		api.GET("/health", health.Handler(server.config.SupabaseConnString != ""))

		auth.RegisterRoutes(api, server.authService, server.tokens, server.notifier, server.googleVerifier, server.microsoftVerifier)
		customers.RegisterRoutes(api, server.tokens, server.customerRepo)
		licenses.RegisterRoutes(api, server.tokens, server.licenseRepo)
		maintenance.RegisterRoutes(api, server.tokens, server.maintenanceRepo)
		notifications.RegisterRoutes(api, server.tokens, server.notifier)
		system.RegisterRoutes(api, server.tokens, server.pbxClient)
	}

	// serve the SPA: real files from public/, everything else falls back to
	// index.html so client-side routing works
	router.NoRoute(spaHandler())
}

func spaHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "not_found",
				"message": "endpoint not found",
			})
			return
		}

		candidate := filepath.Join(publicDir, filepath.Clean("/"+path))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			c.File(candidate)
			return
		}

		c.File(filepath.Join(publicDir, "index.html"))
	}
}
