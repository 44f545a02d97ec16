package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the full configuration of the portal functions server.
type Config struct {
	Database  DatabaseConfig
	Directory DirectoryConfig
	Setup     SetupConfig
	Log       LogConfig

	// Functions are mounted at the root and again under this prefix
	FunctionsPrefix string `env:"FUNCTIONS_PREFIX" env-default:"/functions/v1"`
}

// Load reads the environment into c and validates it
func (c *Config) Load() error {
	if err := cleanenv.ReadEnv(c); err != nil {
		return err
	}
	return c.Validate()
}

// Validate checks every section and reports all problems at once
func (c *Config) Validate() error {
	return Validate(
		c.Database.validate,
		c.Directory.validate,
		c.Setup.validate,
	)
}

// LoadEnvFile loads a .env file from the executable's directory, falling back
// to the working directory. A missing file is not an error.
func LoadEnvFile() {
	execPath, err := os.Executable()
	if err != nil {
		return
	}

	envFile := filepath.Join(filepath.Dir(execPath), ".env")
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		cwd, _ := os.Getwd()
		envFile = filepath.Join(cwd, ".env")
	}

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		slog.Debug("No .env file found (using environment variables or defaults)")
		return
	}

	slog.Info("Loading configuration from .env file", "path", envFile)
	if err := godotenv.Load(envFile); err != nil {
		slog.Warn("Failed to load .env file", "err", err)
	}
}
