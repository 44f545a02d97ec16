package config

// SetupConfig holds the fixed values used by the admin bootstrap function.
type SetupConfig struct {
	Key              string `env:"SETUP_KEY"`
	AdminMemberID    string `env:"SETUP_ADMIN_MEMBER_ID" env-default:"540"`
	AdminPassword    string `env:"SETUP_ADMIN_PASSWORD"`
	AdminDefaultName string `env:"SETUP_ADMIN_DEFAULT_NAME" env-default:"Admin"`

	// Requests per minute per client IP on setup-admin, 0 disables the limit
	RateLimit int `env:"SETUP_RATE_LIMIT" env-default:"0"`
}

func (s SetupConfig) validate() ValidationErrors {
	return CollectErrors(
		RequireNonEmpty("SETUP_KEY", s.Key),
		RequireNonEmpty("SETUP_ADMIN_MEMBER_ID", s.AdminMemberID),
		RequireNonEmpty("SETUP_ADMIN_PASSWORD", s.AdminPassword),
		RequireNonNegative("SETUP_RATE_LIMIT", s.RateLimit),
	)
}
