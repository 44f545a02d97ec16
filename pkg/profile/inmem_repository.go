package profile

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tendant/member-portal/pkg/utils"
)

// InMemoryProfileRepository implements ProfileRepository using in-memory storage
type InMemoryProfileRepository struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]Profile // profileID -> Profile
}

// NewInMemoryProfileRepository creates a new in-memory profile repository
func NewInMemoryProfileRepository() *InMemoryProfileRepository {
	return &InMemoryProfileRepository{
		profiles: make(map[uuid.UUID]Profile),
	}
}

// FindByMemberID returns the profile with the exact member identifier
func (r *InMemoryProfileRepository) FindByMemberID(ctx context.Context, memberID string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.profiles {
		if p.MemberID != "" && p.MemberID == memberID {
			return p, nil
		}
	}
	return Profile{}, ErrProfileNotFound
}

// GetByUserID returns the profile linked to userID
func (r *InMemoryProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.profiles {
		if p.IsLinkedTo(userID) {
			return p, nil
		}
	}
	return Profile{}, ErrProfileNotFound
}

// UpsertMember updates the profile linked to arg.UserID or inserts one
func (r *InMemoryProfileRepository) UpsertMember(ctx context.Context, arg UpsertMemberParams) (Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var existing *Profile
	for _, p := range r.profiles {
		if p.IsLinkedTo(arg.UserID) {
			p := p
			existing = &p
			break
		}
	}

	if arg.MemberID != "" {
		for _, p := range r.profiles {
			if p.MemberID == arg.MemberID && !p.IsLinkedTo(arg.UserID) {
				return Profile{}, ErrMemberIDConflict
			}
		}
	}

	now := time.Now().UTC()
	if existing == nil {
		existing = &Profile{
			ID:        uuid.New(),
			UserID:    uuid.NullUUID{UUID: arg.UserID, Valid: true},
			Email:     utils.ToNullString(arg.Email),
			CreatedAt: now,
		}
	}

	existing.MemberID = arg.MemberID
	existing.FullName = arg.FullName
	existing.Phone = arg.Phone
	existing.Department = arg.Department
	existing.PasswordPlain = arg.PasswordPlain
	existing.UpdatedAt = now

	r.profiles[existing.ID] = *existing
	return *existing, nil
}

// LinkIdentity repoints a profile at arg.UserID
func (r *InMemoryProfileRepository) LinkIdentity(ctx context.Context, arg LinkIdentityParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[arg.ProfileID]
	if !ok {
		return ErrProfileNotFound
	}
	for id, other := range r.profiles {
		if id != arg.ProfileID && other.IsLinkedTo(arg.UserID) {
			return ErrIdentityLinked
		}
	}
	p.UserID = uuid.NullUUID{UUID: arg.UserID, Valid: true}
	p.PasswordPlain = arg.PasswordPlain
	p.UpdatedAt = time.Now().UTC()
	r.profiles[arg.ProfileID] = p
	return nil
}

// UnlinkIdentity clears the identity link of a profile
func (r *InMemoryProfileRepository) UnlinkIdentity(ctx context.Context, profileID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[profileID]
	if !ok {
		return ErrProfileNotFound
	}
	p.UserID = uuid.NullUUID{}
	p.UpdatedAt = time.Now().UTC()
	r.profiles[profileID] = p
	return nil
}

// SeedProfile adds a profile directly (for testing/initialization)
func (r *InMemoryProfileRepository) SeedProfile(p Profile) Profile {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
		p.UpdatedAt = p.CreatedAt
	}
	r.profiles[p.ID] = p
	return p
}

// GetByID returns a profile by its internal ID
func (r *InMemoryProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[id]
	if !ok {
		return Profile{}, ErrProfileNotFound
	}
	return p, nil
}

// Count returns the number of stored profiles
func (r *InMemoryProfileRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.profiles)
}
