package role

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

var (
	ErrEmptyRoleName          = errors.New("role name cannot be empty")
	ErrRoleAssignmentNotFound = errors.New("role assignment not found")
)

// RoleAssignment maps one identity to one role
type RoleAssignment struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Outcome describes what EnsureRole had to do
type Outcome string

const (
	OutcomeUnchanged Outcome = "unchanged"
	OutcomeGranted   Outcome = "granted"
	OutcomeUpdated   Outcome = "updated"
)
