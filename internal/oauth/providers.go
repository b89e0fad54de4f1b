package oauth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
	"github.com/markbates/goth/providers/microsoftonline"
	"github.com/pbxops/server/internal/config"
)

// InitializeProviders sets up goth for the browser-redirect OAuth flow. The
// SPA normally posts provider tokens directly; the redirect flow exists for
// clients that cannot run the provider SDKs. Providers without a client
// secret are simply not registered.
func InitializeProviders(cfg *config.Config) error {
	var providers []goth.Provider

	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		providers = append(providers, google.New(
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.BaseURL+"/api/auth/oauth/google/callback",
			"email", "profile",
		))
	}

	if cfg.MicrosoftClientID != "" && cfg.MicrosoftClientSecret != "" {
		providers = append(providers, microsoftonline.New(
			cfg.MicrosoftClientID,
			cfg.MicrosoftClientSecret,
			cfg.BaseURL+"/api/auth/oauth/microsoftonline/callback",
			"User.Read",
		))
	}

	if len(providers) == 0 {
		return nil
	}

	if cfg.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET must be set when redirect-flow OAuth providers are configured")
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	// cookie only needs to survive the round trip to the provider
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   strings.HasPrefix(cfg.BaseURL, "https://"),
		SameSite: http.SameSiteLaxMode,
	}

	gothic.Store = store
	goth.UseProviders(providers...)

	return nil
}

// RedirectFlowEnabled reports whether any goth provider is registered.
func RedirectFlowEnabled() bool {
	return len(goth.GetProviders()) > 0
}
