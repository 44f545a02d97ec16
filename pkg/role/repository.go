package role

import (
	"context"

	"github.com/google/uuid"
)

// RoleRepository defines the storage operations on user_roles
type RoleRepository interface {
	// GetByUserID returns the single assignment of userID
	GetByUserID(ctx context.Context, userID uuid.UUID) (RoleAssignment, error)
	CreateAssignment(ctx context.Context, userID uuid.UUID, role string) (RoleAssignment, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role string) error
	// ReassignUser repoints every assignment of fromUserID at toUserID
	ReassignUser(ctx context.Context, fromUserID, toUserID uuid.UUID) (int64, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
