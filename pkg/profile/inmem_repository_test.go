package profile

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryProfileRepository_FindByMemberID(t *testing.T) {
	repo := NewInMemoryProfileRepository()
	ctx := context.Background()

	seeded := repo.SeedProfile(Profile{
		MemberID: "540",
		Email:    sql.NullString{String: "admin@x.org", Valid: true},
	})

	p, err := repo.FindByMemberID(ctx, "540")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, p.ID)
	assert.Equal(t, "admin@x.org", p.Email.String)

	_, err = repo.FindByMemberID(ctx, " 540")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	// Profiles without a member id never match the empty identifier
	repo.SeedProfile(Profile{Email: sql.NullString{String: "nobody@x.org", Valid: true}})
	_, err = repo.FindByMemberID(ctx, "")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestInMemoryProfileRepository_UpsertMember(t *testing.T) {
	repo := NewInMemoryProfileRepository()
	ctx := context.Background()
	userID := uuid.New()

	// No auto-provisioned row: the upsert creates it
	created, err := repo.UpsertMember(ctx, UpsertMemberParams{
		UserID:        userID,
		Email:         "jane@x.org",
		MemberID:      "1001",
		FullName:      "Jane Doe",
		PasswordPlain: "secret",
	})
	require.NoError(t, err)
	assert.True(t, created.IsLinkedTo(userID))
	assert.Equal(t, "jane@x.org", created.Email.String)
	assert.Equal(t, 1, repo.Count())

	// Second upsert updates the same row in place
	updated, err := repo.UpsertMember(ctx, UpsertMemberParams{
		UserID:     userID,
		Email:      "ignored@x.org",
		MemberID:   "1001",
		FullName:   "Jane Q. Doe",
		Department: "Finance",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Jane Q. Doe", updated.FullName)
	assert.Equal(t, "Finance", updated.Department)
	assert.Equal(t, "jane@x.org", updated.Email.String)
	assert.Equal(t, 1, repo.Count())

	// Member id belongs to someone else
	_, err = repo.UpsertMember(ctx, UpsertMemberParams{UserID: uuid.New(), MemberID: "1001"})
	assert.ErrorIs(t, err, ErrMemberIDConflict)
}

func TestInMemoryProfileRepository_LinkIdentity(t *testing.T) {
	repo := NewInMemoryProfileRepository()
	ctx := context.Background()

	stale := uuid.New()
	seeded := repo.SeedProfile(Profile{
		MemberID: "540",
		UserID:   uuid.NullUUID{UUID: stale, Valid: true},
	})

	fresh := uuid.New()
	require.NoError(t, repo.LinkIdentity(ctx, LinkIdentityParams{
		ProfileID:     seeded.ID,
		UserID:        fresh,
		PasswordPlain: "admin-pass",
	}))

	p, err := repo.GetByUserID(ctx, fresh)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, p.ID)
	assert.Equal(t, "admin-pass", p.PasswordPlain)

	_, err = repo.GetByUserID(ctx, stale)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	err = repo.LinkIdentity(ctx, LinkIdentityParams{ProfileID: uuid.New(), UserID: fresh})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestInMemoryProfileRepository_LinkIdentityConflict(t *testing.T) {
	repo := NewInMemoryProfileRepository()
	ctx := context.Background()

	userID := uuid.New()
	companion := repo.SeedProfile(Profile{UserID: uuid.NullUUID{UUID: userID, Valid: true}})
	admin := repo.SeedProfile(Profile{MemberID: "540"})

	err := repo.LinkIdentity(ctx, LinkIdentityParams{ProfileID: admin.ID, UserID: userID})
	assert.ErrorIs(t, err, ErrIdentityLinked)

	// Relinking the holder itself is allowed
	require.NoError(t, repo.LinkIdentity(ctx, LinkIdentityParams{ProfileID: companion.ID, UserID: userID}))

	require.NoError(t, repo.UnlinkIdentity(ctx, companion.ID))
	detached, err := repo.GetByID(ctx, companion.ID)
	require.NoError(t, err)
	assert.False(t, detached.UserID.Valid)
	assert.Equal(t, 2, repo.Count())

	require.NoError(t, repo.LinkIdentity(ctx, LinkIdentityParams{ProfileID: admin.ID, UserID: userID}))
	p, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, p.ID)

	assert.ErrorIs(t, repo.UnlinkIdentity(ctx, uuid.New()), ErrProfileNotFound)
}
