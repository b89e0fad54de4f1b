package config

// Config holds process-wide settings loaded once at startup and read-only
// thereafter.
type Config struct {
	Environment string
	Port        string
	BaseURL     string

	// Supabase Postgres connection string used by pgx
	SupabaseConnString string

	// JWT signing secret, required, no fallback
	JWTSecret string

	// bcrypt work factor for password hashing
	BcryptCost int

	// OAuth provider credentials. An empty client ID disables the
	// corresponding provider endpoint (capability toggle).
	GoogleClientID        string
	GoogleClientSecret    string
	MicrosoftClientID     string
	MicrosoftClientSecret string

	// cookie secret for the browser-redirect OAuth flow
	SessionSecret string

	// optional shared rate-limit store
	RedisURL string

	// feature flags
	DemoLoginEnabled     bool
	NotificationsEnabled bool
}

// reports whether Google token sign-in is configured
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != ""
}

// reports whether Microsoft token sign-in is configured
func (c *Config) MicrosoftEnabled() bool {
	return c.MicrosoftClientID != ""
}
