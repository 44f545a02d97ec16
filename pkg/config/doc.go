// Package config loads member-portal configuration from the environment.
//
// All values are read once at startup with cleanenv struct tags. A .env file
// next to the binary (or in the working directory) is loaded first when present.
//
//	config.LoadEnvFile()
//	cfg := config.Config{}
//	if err := cfg.Load(); err != nil {
//		slog.Error("Failed to read configuration", "err", err)
//		os.Exit(1)
//	}
//
// The setup key, the admin member identifier and the admin password are fixed
// values injected here. They are never taken from a request.
package config
