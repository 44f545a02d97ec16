package role

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
)

// RoleService provides methods for role assignment management
type RoleService struct {
	repo RoleRepository
}

func NewRoleService(repo RoleRepository) *RoleService {
	return &RoleService{
		repo: repo,
	}
}

// GetRole returns the role of userID, or "" when the identity has no row
func (s *RoleService) GetRole(ctx context.Context, userID uuid.UUID) (string, error) {
	a, err := s.repo.GetByUserID(ctx, userID)
	if errors.Is(err, ErrRoleAssignmentNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return a.Role, nil
}

// HasRole reports whether userID currently holds roleName
func (s *RoleService) HasRole(ctx context.Context, userID uuid.UUID, roleName string) (bool, error) {
	current, err := s.GetRole(ctx, userID)
	if err != nil {
		return false, err
	}
	return current == roleName, nil
}

// EnsureRole makes userID hold roleName: inserts when there is no row,
// updates in place when the role differs, and does nothing otherwise.
func (s *RoleService) EnsureRole(ctx context.Context, userID uuid.UUID, roleName string) (Outcome, error) {
	if roleName == "" {
		return "", ErrEmptyRoleName
	}

	a, err := s.repo.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, ErrRoleAssignmentNotFound):
		if _, err := s.repo.CreateAssignment(ctx, userID, roleName); err != nil {
			return "", err
		}
		slog.Info("Role granted", "user_id", userID, "role", roleName)
		return OutcomeGranted, nil
	case err != nil:
		return "", err
	case a.Role == roleName:
		return OutcomeUnchanged, nil
	}

	if err := s.repo.UpdateRole(ctx, a.ID, roleName); err != nil {
		return "", err
	}
	slog.Info("Role updated", "user_id", userID, "from", a.Role, "to", roleName)
	return OutcomeUpdated, nil
}

// MoveAssignment repoints the assignment of fromUserID at toUserID. If
// toUserID already holds a row, the old row is dropped so the identity
// keeps a single assignment.
func (s *RoleService) MoveAssignment(ctx context.Context, fromUserID, toUserID uuid.UUID) (int64, error) {
	if fromUserID == toUserID {
		return 0, nil
	}

	_, err := s.repo.GetByUserID(ctx, toUserID)
	switch {
	case errors.Is(err, ErrRoleAssignmentNotFound):
		return s.repo.ReassignUser(ctx, fromUserID, toUserID)
	case err != nil:
		return 0, err
	}

	n, err := s.repo.DeleteByUserID(ctx, fromUserID)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Info("Dropped superseded role assignment", "from_user_id", fromUserID, "to_user_id", toUserID)
	}
	return n, nil
}
