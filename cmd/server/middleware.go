package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware sets the usual hardening headers. The SPA inlines
// styles, so no content security policy is sent.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return secure.New(secure.Config{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		IENoOpen:              true,
		ContentSecurityPolicy: "",
	})
}

// CORSMiddleware allows cross-origin requests from any origin; the API is
// bearer-token authenticated, not cookie authenticated, so this is safe.
func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}

	return cors.New(cfg)
}
