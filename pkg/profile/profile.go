package profile

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrMemberIDConflict = errors.New("member id already in use")
	ErrIdentityLinked   = errors.New("identity already linked to another profile")
)

// Profile is one member of the association
type Profile struct {
	ID         uuid.UUID
	UserID     uuid.NullUUID // identity link, may be unset or stale
	MemberID   string
	Email      sql.NullString
	FullName   string
	Phone      string
	Department string

	// Readable copy of the member's password, shown to administrators
	PasswordPlain string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLinkedTo reports whether the profile's identity link points at userID
func (p Profile) IsLinkedTo(userID uuid.UUID) bool {
	return p.UserID.Valid && p.UserID.UUID == userID
}

// UpsertMemberParams describes the member details written for a freshly
// created identity. Empty optional fields are stored as NULL.
type UpsertMemberParams struct {
	UserID        uuid.UUID
	Email         string
	MemberID      string
	FullName      string
	Phone         string
	Department    string
	PasswordPlain string
}

// LinkIdentityParams points a profile at a (new) identity
type LinkIdentityParams struct {
	ProfileID     uuid.UUID
	UserID        uuid.UUID
	PasswordPlain string
}
