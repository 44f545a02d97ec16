// Package main runs the member portal functions without a database or a
// hosted identity service, using in-memory stores.
//
// The store is seeded with the admin profile (no identity yet) and one member
// profile. Call setup-admin first, then use the printed bearer token against
// create-member. All data is lost when the server stops.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/tendant/chi-demo/app"
	"github.com/tendant/member-portal/pkg/bootstrap"
	"github.com/tendant/member-portal/pkg/config"
	"github.com/tendant/member-portal/pkg/directory"
	"github.com/tendant/member-portal/pkg/member"
	"github.com/tendant/member-portal/pkg/profile"
	"github.com/tendant/member-portal/pkg/role"
	"github.com/tendant/member-portal/pkg/router"
)

const (
	setupKey      = "inmem-setup-key"
	adminMemberID = "540"
	adminEmail    = "admin@x.org"
	adminPassword = "inmem-admin-password"
)

func main() {
	logConfig := config.LogConfig{Format: "tint", Level: "debug"}
	slog.SetDefault(logConfig.NewLogger(os.Stdout))

	slog.Info("Starting in-memory member portal (no database required)")
	slog.Info(strings.Repeat("=", 60))

	profileRepo := profile.NewInMemoryProfileRepository()
	roleRepo := role.NewInMemoryRoleRepository()

	// Mirror the hosted service, which provisions a bare profile for every new identity
	dir := directory.NewInMemoryDirectory(func(ctx context.Context, u directory.User) error {
		profileRepo.SeedProfile(profile.Profile{
			UserID: uuid.NullUUID{UUID: u.ID, Valid: true},
			Email:  sql.NullString{String: u.Email, Valid: true},
		})
		return nil
	})

	seedInitialData(profileRepo)

	roleService := role.NewRoleService(roleRepo)
	bootstrapService, err := bootstrap.NewAdminBootstrapService(bootstrap.AdminBootstrapConfig{
		SetupKey:      setupKey,
		AdminMemberID: adminMemberID,
		AdminPassword: adminPassword,
	}, profileRepo, roleService, dir)
	if err != nil {
		slog.Error("Failed to create bootstrap service", "error", err)
		os.Exit(1)
	}

	server := app.NewApp(app.WithPort(4000))
	router.SetupRoutes(server.R, router.Config{
		MemberHandle:    member.NewHandle(member.NewMemberService(profileRepo, roleService, dir)),
		BootstrapHandle: bootstrap.NewHandle(bootstrapService),
		FunctionsPrefix: "/functions/v1",
	})

	// Bootstrap once so a token is available straight away
	result, err := bootstrapService.SetupAdmin(context.Background(), setupKey)
	if err != nil {
		slog.Error("Failed to set up admin", "error", err)
		os.Exit(1)
	}
	token := dir.IssueToken(result.UserID)

	slog.Info(strings.Repeat("=", 60))
	slog.Info("In-memory member portal ready")
	slog.Info("Setup key: " + setupKey)
	slog.Info("Admin: " + adminEmail + " / " + adminPassword)
	slog.Info("Admin bearer token: " + token)
	slog.Info("")
	slog.Info("Functions:")
	slog.Info("  POST /lookup-email   {\"member_id\": \"540\"}")
	slog.Info("  POST /create-member  (Authorization: Bearer <token>)")
	slog.Info("  POST /setup-admin    {\"setup_key\": \"" + setupKey + "\"}")
	slog.Info(strings.Repeat("=", 60))

	server.Run()
}

func seedInitialData(profiles *profile.InMemoryProfileRepository) {
	slog.Info("Seeding initial data...")

	admin := profiles.SeedProfile(profile.Profile{
		MemberID: adminMemberID,
		Email:    sql.NullString{String: adminEmail, Valid: true},
		FullName: "Portal Admin",
	})
	slog.Info("Created admin profile", "id", admin.ID, "member_id", admin.MemberID)

	m := profiles.SeedProfile(profile.Profile{
		MemberID:   "1001",
		Email:      sql.NullString{String: "member@x.org", Valid: true},
		FullName:   "Example Member",
		Department: "Engineering",
	})
	slog.Info("Created member profile", "id", m.ID, "member_id", m.MemberID)
}
