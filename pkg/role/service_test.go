package role

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasRole(t *testing.T) {
	repo := NewInMemoryRoleRepository()
	service := NewRoleService(repo)
	ctx := context.Background()

	admin := uuid.New()
	member := uuid.New()
	repo.SeedAssignment(admin, RoleAdmin)
	repo.SeedAssignment(member, RoleMember)

	tests := []struct {
		name   string
		userID uuid.UUID
		want   bool
	}{
		{"admin holds admin", admin, true},
		{"member does not", member, false},
		{"no row means no role", uuid.New(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.HasRole(ctx, tt.userID, RoleAdmin)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnsureRole(t *testing.T) {
	repo := NewInMemoryRoleRepository()
	service := NewRoleService(repo)
	ctx := context.Background()
	userID := uuid.New()

	outcome, err := service.EnsureRole(ctx, userID, RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, OutcomeGranted, outcome)

	outcome, err = service.EnsureRole(ctx, userID, RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnchanged, outcome)
	assert.Len(t, repo.All(), 1)

	other := uuid.New()
	repo.SeedAssignment(other, RoleMember)
	outcome, err = service.EnsureRole(ctx, other, RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, outcome)
	assert.Len(t, repo.All(), 2)

	_, err = service.EnsureRole(ctx, userID, "")
	assert.ErrorIs(t, err, ErrEmptyRoleName)
}

func TestMoveAssignment(t *testing.T) {
	ctx := context.Background()

	t.Run("moves when target has no row", func(t *testing.T) {
		repo := NewInMemoryRoleRepository()
		service := NewRoleService(repo)
		stale, fresh := uuid.New(), uuid.New()
		seeded := repo.SeedAssignment(stale, RoleAdmin)

		n, err := service.MoveAssignment(ctx, stale, fresh)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		all := repo.All()
		require.Len(t, all, 1)
		assert.Equal(t, seeded.ID, all[0].ID)
		assert.Equal(t, fresh, all[0].UserID)
	})

	t.Run("drops old row when target already has one", func(t *testing.T) {
		repo := NewInMemoryRoleRepository()
		service := NewRoleService(repo)
		stale, fresh := uuid.New(), uuid.New()
		repo.SeedAssignment(stale, RoleAdmin)
		kept := repo.SeedAssignment(fresh, RoleMember)

		_, err := service.MoveAssignment(ctx, stale, fresh)
		require.NoError(t, err)

		all := repo.All()
		require.Len(t, all, 1)
		assert.Equal(t, kept.ID, all[0].ID)
	})

	t.Run("same identity is a no-op", func(t *testing.T) {
		repo := NewInMemoryRoleRepository()
		service := NewRoleService(repo)
		id := uuid.New()
		repo.SeedAssignment(id, RoleAdmin)

		n, err := service.MoveAssignment(ctx, id, id)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Len(t, repo.All(), 1)
	})
}
