package bootstrap

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tendant/member-portal/pkg/directory"
	perrors "github.com/tendant/member-portal/pkg/errors"
	"github.com/tendant/member-portal/pkg/profile"
	"github.com/tendant/member-portal/pkg/role"
)

// AdminBootstrapConfig contains the fixed values of the admin account
type AdminBootstrapConfig struct {
	SetupKey      string
	AdminMemberID string
	AdminPassword string

	// Display name used when the admin profile has none
	DefaultName string

	Search directory.SearchOptions
}

// AdminBootstrapResult reports the resolved account and what each step changed
type AdminBootstrapResult struct {
	MemberID string
	Email    string
	Password string
	UserID   uuid.UUID

	IdentityCreated bool
	PasswordReset   bool
	LinkRepaired    bool
	PreviousUserID  uuid.NullUUID
	RoleMoved       bool
	RoleOutcome     role.Outcome
}

type AdminBootstrapService struct {
	cfg       AdminBootstrapConfig
	profiles  profile.ProfileRepository
	roles     *role.RoleService
	directory directory.Directory
}

func NewAdminBootstrapService(cfg AdminBootstrapConfig, profiles profile.ProfileRepository, roles *role.RoleService, dir directory.Directory) (*AdminBootstrapService, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid bootstrap configuration: %w", err)
	}
	if cfg.DefaultName == "" {
		cfg.DefaultName = "Admin"
	}
	return &AdminBootstrapService{
		cfg:       cfg,
		profiles:  profiles,
		roles:     roles,
		directory: dir,
	}, nil
}

func validateConfig(cfg AdminBootstrapConfig) error {
	if cfg.SetupKey == "" {
		return fmt.Errorf("setup key is required")
	}
	if cfg.AdminMemberID == "" {
		return fmt.Errorf("admin member id is required")
	}
	if cfg.AdminPassword == "" {
		return fmt.Errorf("admin password is required")
	}
	return nil
}

// CheckSetupKey compares key with the configured setup key in constant time
func (s *AdminBootstrapService) CheckSetupKey(key string) error {
	if subtle.ConstantTimeCompare([]byte(key), []byte(s.cfg.SetupKey)) != 1 {
		return perrors.Forbidden("Invalid setup key")
	}
	return nil
}

// SetupAdmin verifies the setup key before touching any store, then runs the
// bootstrap sequence
func (s *AdminBootstrapService) SetupAdmin(ctx context.Context, setupKey string) (*AdminBootstrapResult, error) {
	if err := s.CheckSetupKey(setupKey); err != nil {
		slog.Warn("Admin setup rejected: setup key mismatch")
		return nil, err
	}
	return s.Run(ctx)
}

// Run executes the bootstrap sequence without a key check. It is used by the
// operator CLI, which already holds the store and service credentials.
func (s *AdminBootstrapService) Run(ctx context.Context) (*AdminBootstrapResult, error) {
	p, err := s.loadAdminProfile(ctx)
	if err != nil {
		return nil, err
	}

	result := &AdminBootstrapResult{
		MemberID:       s.cfg.AdminMemberID,
		Email:          p.Email.String,
		Password:       s.cfg.AdminPassword,
		PreviousUserID: p.UserID,
	}

	if err := s.resolveIdentity(ctx, p, result); err != nil {
		return nil, err
	}

	if err := s.repairLink(ctx, p, result); err != nil {
		return nil, err
	}

	outcome, err := s.roles.EnsureRole(ctx, result.UserID, role.RoleAdmin)
	if err != nil {
		return nil, perrors.Wrap(err, perrors.ErrCodeUpdateFailed, "Failed to grant admin role")
	}
	result.RoleOutcome = outcome

	LogBootstrapSummary(result)
	return result, nil
}

// loadAdminProfile finds the admin profile, which must carry an email
func (s *AdminBootstrapService) loadAdminProfile(ctx context.Context) (profile.Profile, error) {
	p, err := s.profiles.FindByMemberID(ctx, s.cfg.AdminMemberID)
	if errors.Is(err, profile.ErrProfileNotFound) {
		return profile.Profile{}, perrors.NotFound("Admin profile not found")
	}
	if err != nil {
		return profile.Profile{}, perrors.Wrap(err, perrors.ErrCodeLookupFailed, "Failed to look up admin profile")
	}
	if !p.Email.Valid || p.Email.String == "" {
		return profile.Profile{}, perrors.NotFound("Admin profile has no email")
	}
	return p, nil
}

// resolveIdentity finds the identity by the profile's email and resets its
// password, or creates it
func (s *AdminBootstrapService) resolveIdentity(ctx context.Context, p profile.Profile, result *AdminBootstrapResult) error {
	user, found, err := directory.FindUserByEmail(ctx, s.directory, p.Email.String, s.cfg.Search)
	if err != nil {
		return perrors.Wrap(err, perrors.ErrCodeLookupFailed, "Failed to search identities")
	}

	if found {
		if _, err := s.directory.UpdateUserPassword(ctx, user.ID, s.cfg.AdminPassword); err != nil {
			return perrors.Wrap(err, perrors.ErrCodeUpdateFailed, directory.ErrorMessage(err))
		}
		result.UserID = user.ID
		result.PasswordReset = true
		return nil
	}

	name := p.FullName
	if name == "" {
		name = s.cfg.DefaultName
	}
	created, err := s.directory.CreateUser(ctx, directory.CreateUserParams{
		Email:        p.Email.String,
		Password:     s.cfg.AdminPassword,
		EmailConfirm: true,
		UserMetadata: map[string]interface{}{directory.MetadataFullName: name},
	})
	if err != nil {
		return perrors.Wrap(err, perrors.ErrCodeCreateFailed, directory.ErrorMessage(err))
	}
	result.UserID = created.ID
	result.IdentityCreated = true
	return nil
}

// detachOtherHolder clears the link of any other profile holding userID,
// such as the companion row the identity service provisions for a new
// identity. The detached profile is kept.
func (s *AdminBootstrapService) detachOtherHolder(ctx context.Context, p profile.Profile, userID uuid.UUID) error {
	holder, err := s.profiles.GetByUserID(ctx, userID)
	if errors.Is(err, profile.ErrProfileNotFound) {
		return nil
	}
	if err != nil {
		return perrors.Wrap(err, perrors.ErrCodeLookupFailed, "Failed to look up linked profile")
	}
	if holder.ID == p.ID {
		return nil
	}

	if err := s.profiles.UnlinkIdentity(ctx, holder.ID); err != nil {
		return perrors.Wrap(err, perrors.ErrCodeUpdateFailed, "Failed to link admin profile")
	}
	slog.Info("Detached profile from admin identity",
		"profile_id", holder.ID,
		"user_id", userID)
	return nil
}

// repairLink points the profile at the resolved identity when it does not
// already, then moves the role assignment of the identity it used to point at.
// A failed move is logged and does not fail the run.
func (s *AdminBootstrapService) repairLink(ctx context.Context, p profile.Profile, result *AdminBootstrapResult) error {
	if p.IsLinkedTo(result.UserID) {
		return nil
	}

	if err := s.detachOtherHolder(ctx, p, result.UserID); err != nil {
		return err
	}

	err := s.profiles.LinkIdentity(ctx, profile.LinkIdentityParams{
		ProfileID:     p.ID,
		UserID:        result.UserID,
		PasswordPlain: s.cfg.AdminPassword,
	})
	if err != nil {
		return perrors.Wrap(err, perrors.ErrCodeUpdateFailed, "Failed to link admin profile")
	}
	result.LinkRepaired = true

	if !p.UserID.Valid {
		return nil
	}

	n, err := s.roles.MoveAssignment(ctx, p.UserID.UUID, result.UserID)
	if err != nil {
		slog.Warn("Failed to move role assignment from superseded identity",
			"from_user_id", p.UserID.UUID,
			"to_user_id", result.UserID,
			"err", err)
		return nil
	}
	result.RoleMoved = n > 0
	return nil
}
