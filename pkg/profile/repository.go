package profile

import (
	"context"

	"github.com/google/uuid"
)

// ProfileRepository defines the interface for profile storage operations
type ProfileRepository interface {
	// FindByMemberID returns the profile whose member identifier matches exactly
	FindByMemberID(ctx context.Context, memberID string) (Profile, error)
	// GetByUserID returns the profile linked to the given identity
	GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	// UpsertMember writes member details onto the profile keyed by the identity,
	// creating the row if the identity service has not provisioned one yet
	UpsertMember(ctx context.Context, arg UpsertMemberParams) (Profile, error)
	// LinkIdentity sets the identity link and the password shadow of a profile.
	// It fails with ErrIdentityLinked when another profile holds the identity.
	LinkIdentity(ctx context.Context, arg LinkIdentityParams) error
	// UnlinkIdentity clears the identity link of a profile. The profile is kept.
	UnlinkIdentity(ctx context.Context, profileID uuid.UUID) error
}
