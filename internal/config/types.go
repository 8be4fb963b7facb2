package config

// Config holds process-wide configuration loaded once at startup.
type Config struct {
	// Supabase project settings. URL and anon key are safe to hand to the
	// frontend; the connection string and JWT secret are backend-only.
	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseConnString string
	SupabaseJWTSecret  string

	OpenAIKey   string
	OpenAIModel string

	Port        string
	Environment string
}

// reports whether auth, quota accounting and history persistence are
// available. When false the server runs in anonymous-only mode.
func (c *Config) SupabaseConfigured() bool {
	return c.SupabaseURL != "" &&
		c.SupabaseAnonKey != "" &&
		c.SupabaseConnString != "" &&
		c.SupabaseJWTSecret != ""
}
