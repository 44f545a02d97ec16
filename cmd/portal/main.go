// Package main runs the member portal functions against PostgreSQL and the
// hosted identity service.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/chi-demo/app"
	"github.com/tendant/member-portal/pkg/bootstrap"
	"github.com/tendant/member-portal/pkg/config"
	"github.com/tendant/member-portal/pkg/directory"
	"github.com/tendant/member-portal/pkg/member"
	"github.com/tendant/member-portal/pkg/profile"
	"github.com/tendant/member-portal/pkg/role"
	"github.com/tendant/member-portal/pkg/router"
)

type Config struct {
	config.Config

	// Server
	AppConfig app.AppConfig
}

func main() {
	config.LoadEnvFile()

	cfg := Config{}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		slog.Error("Failed to read configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.Log.NewLogger(os.Stdout))

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	pool, err := pgxpool.New(context.Background(), cfg.Database.ToDatabaseURL())
	if err != nil {
		slog.Error("Failed to connect to database",
			"host", cfg.Database.Host,
			"port", cfg.Database.Port,
			"database", cfg.Database.Database,
			"error", err)
		os.Exit(1)
	}
	defer pool.Close()
	slog.Info("Database connected", "database", cfg.Database.Database)

	profileRepo := profile.NewPostgresProfileRepository(pool)
	roleService := role.NewRoleService(role.NewPostgresRoleRepository(pool))
	dir := directory.NewClient(cfg.Directory.URL, cfg.Directory.ServiceKey,
		directory.WithTimeout(cfg.Directory.Timeout))

	bootstrapService, err := bootstrap.NewAdminBootstrapService(bootstrap.AdminBootstrapConfig{
		SetupKey:      cfg.Setup.Key,
		AdminMemberID: cfg.Setup.AdminMemberID,
		AdminPassword: cfg.Setup.AdminPassword,
		DefaultName:   cfg.Setup.AdminDefaultName,
		Search: directory.SearchOptions{
			PageSize: cfg.Directory.PageSize,
			MaxPages: cfg.Directory.MaxPages,
		},
	}, profileRepo, roleService, dir)
	if err != nil {
		slog.Error("Failed to create bootstrap service", "error", err)
		os.Exit(1)
	}

	server := app.DefaultApp()
	router.SetupRoutes(server.R, router.Config{
		MemberHandle:    member.NewHandle(member.NewMemberService(profileRepo, roleService, dir)),
		BootstrapHandle: bootstrap.NewHandle(bootstrapService),
		FunctionsPrefix: cfg.FunctionsPrefix,
		SetupRateLimit:  cfg.Setup.RateLimit,
	})

	slog.Info("Member portal functions ready",
		"directory", cfg.Directory.URL,
		"prefix", cfg.FunctionsPrefix)
	server.Run()
}
