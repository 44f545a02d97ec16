package config

import "time"

// DirectoryConfig points at the hosted identity service (GoTrue admin API).
type DirectoryConfig struct {
	URL        string        `env:"DIRECTORY_URL" env-default:"http://localhost:54321"`
	ServiceKey string        `env:"DIRECTORY_SERVICE_KEY"`
	Timeout    time.Duration `env:"DIRECTORY_TIMEOUT" env-default:"30s"`

	// Bounds for the paginated user-by-email search
	PageSize int `env:"DIRECTORY_PAGE_SIZE" env-default:"1000"`
	MaxPages int `env:"DIRECTORY_MAX_PAGES" env-default:"10"`
}

func (d DirectoryConfig) validate() ValidationErrors {
	return CollectErrors(
		RequireValidURL("DIRECTORY_URL", d.URL),
		RequireNonEmpty("DIRECTORY_SERVICE_KEY", d.ServiceKey),
		RequirePositiveDuration("DIRECTORY_TIMEOUT", d.Timeout),
		RequirePositive("DIRECTORY_PAGE_SIZE", d.PageSize),
		RequirePositive("DIRECTORY_MAX_PAGES", d.MaxPages),
	)
}
