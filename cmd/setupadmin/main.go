// Package main runs the admin bootstrap sequence out of band and prints the
// resulting account. It reads the same environment as the portal server.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/member-portal/pkg/bootstrap"
	"github.com/tendant/member-portal/pkg/config"
	"github.com/tendant/member-portal/pkg/directory"
	"github.com/tendant/member-portal/pkg/profile"
	"github.com/tendant/member-portal/pkg/role"
)

func main() {
	memberID := flag.String("member-id", "", "Admin member ID (overrides SETUP_ADMIN_MEMBER_ID)")
	password := flag.String("password", "", "Admin password (overrides SETUP_ADMIN_PASSWORD)")
	flag.Parse()

	config.LoadEnvFile()

	cfg := config.Config{}
	if err := cfg.Load(); err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.Log.NewLogger(os.Stderr))

	if *memberID != "" {
		cfg.Setup.AdminMemberID = *memberID
	}
	if *password != "" {
		cfg.Setup.AdminPassword = *password
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.ToDatabaseURL())
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	svc, err := bootstrap.NewAdminBootstrapService(bootstrap.AdminBootstrapConfig{
		SetupKey:      cfg.Setup.Key,
		AdminMemberID: cfg.Setup.AdminMemberID,
		AdminPassword: cfg.Setup.AdminPassword,
		DefaultName:   cfg.Setup.AdminDefaultName,
		Search: directory.SearchOptions{
			PageSize: cfg.Directory.PageSize,
			MaxPages: cfg.Directory.MaxPages,
		},
	},
		profile.NewPostgresProfileRepository(pool),
		role.NewRoleService(role.NewPostgresRoleRepository(pool)),
		directory.NewClient(cfg.Directory.URL, cfg.Directory.ServiceKey, directory.WithTimeout(cfg.Directory.Timeout)),
	)
	if err != nil {
		slog.Error("Failed to create bootstrap service", "error", err)
		os.Exit(1)
	}

	result, err := svc.Run(ctx)
	if err != nil {
		slog.Error("Admin setup failed", "error", err)
		os.Exit(1)
	}

	bootstrap.PrintBootstrapResult(os.Stdout, result)
}
