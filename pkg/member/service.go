package member

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tendant/member-portal/pkg/directory"
	perrors "github.com/tendant/member-portal/pkg/errors"
	"github.com/tendant/member-portal/pkg/profile"
	"github.com/tendant/member-portal/pkg/role"
	"github.com/tendant/member-portal/pkg/utils"
)

// Admin is a caller whose admin role has been verified for this request
type Admin struct {
	directory.User
}

type CreateMemberParams struct {
	Email      string `validate:"required"`
	Password   string `validate:"required"`
	FullName   string `validate:"required"`
	MemberID   string
	Phone      string
	Department string
}

type MemberService struct {
	profiles  profile.ProfileRepository
	roles     *role.RoleService
	directory directory.Directory
	validate  *validator.Validate
}

func NewMemberService(profiles profile.ProfileRepository, roles *role.RoleService, dir directory.Directory) *MemberService {
	return &MemberService{
		profiles:  profiles,
		roles:     roles,
		directory: dir,
		validate:  validator.New(),
	}
}

// LookupEmail returns the email of the member with the given identifier, or
// nil when no profile matches. Surrounding whitespace is ignored.
func (s *MemberService) LookupEmail(ctx context.Context, memberID string) (*string, error) {
	memberID = strings.TrimSpace(memberID)

	p, err := s.profiles.FindByMemberID(ctx, memberID)
	if errors.Is(err, profile.ErrProfileNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, perrors.Wrap(err, perrors.ErrCodeLookupFailed, "Failed to look up member")
	}

	if !p.Email.Valid {
		return nil, nil
	}
	email := p.Email.String
	return &email, nil
}

// AuthorizeAdmin resolves token to an identity and requires it to hold the
// admin role
func (s *MemberService) AuthorizeAdmin(ctx context.Context, token string) (Admin, error) {
	if token == "" {
		return Admin{}, perrors.Unauthorized("Missing authorization header")
	}

	user, err := s.directory.GetUserByToken(ctx, token)
	if err != nil {
		slog.Info("Rejected caller token", "err", err)
		return Admin{}, perrors.Unauthorized("Unauthorized")
	}

	isAdmin, err := s.roles.HasRole(ctx, user.ID, role.RoleAdmin)
	if err != nil {
		return Admin{}, perrors.Wrap(err, perrors.ErrCodeLookupFailed, "Failed to check caller role")
	}
	if !isAdmin {
		slog.Warn("Non-admin attempted to create a member", "user_id", user.ID)
		return Admin{}, perrors.Forbidden("Only admins can create members")
	}

	return Admin{User: user}, nil
}

// CreateMember creates a pre-confirmed identity for the member and then
// writes the member details onto the profile keyed by that identity. The
// profile is written only after the identity exists.
func (s *MemberService) CreateMember(ctx context.Context, admin Admin, params CreateMemberParams) (directory.User, error) {
	if err := s.validate.Struct(params); err != nil {
		return directory.User{}, perrors.InvalidInput("Email, password, and full name are required")
	}

	user, err := s.directory.CreateUser(ctx, directory.CreateUserParams{
		Email:        params.Email,
		Password:     params.Password,
		EmailConfirm: true,
		UserMetadata: map[string]interface{}{directory.MetadataFullName: params.FullName},
	})
	if err != nil {
		return directory.User{}, perrors.Wrap(err, perrors.ErrCodeCreateFailed, directory.ErrorMessage(err))
	}

	_, err = s.profiles.UpsertMember(ctx, profile.UpsertMemberParams{
		UserID:        user.ID,
		Email:         user.Email,
		MemberID:      params.MemberID,
		FullName:      params.FullName,
		Phone:         params.Phone,
		Department:    params.Department,
		PasswordPlain: params.Password,
	})
	if errors.Is(err, profile.ErrMemberIDConflict) {
		return directory.User{}, perrors.Wrap(err, perrors.ErrCodeUpdateFailed, "Member ID is already in use")
	}
	if err != nil {
		return directory.User{}, perrors.Wrap(err, perrors.ErrCodeUpdateFailed, "Failed to update member profile")
	}

	slog.Info("Member created",
		"user_id", user.ID,
		"email", utils.MaskEmail(user.Email),
		"member_id", params.MemberID,
		"created_by", admin.ID)

	return user, nil
}
