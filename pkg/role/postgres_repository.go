package role

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRoleRepository implements RoleRepository on the user_roles table
type PostgresRoleRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRoleRepository(pool *pgxpool.Pool) *PostgresRoleRepository {
	return &PostgresRoleRepository{
		pool: pool,
	}
}

// GetByUserID implements RoleRepository.GetByUserID
func (r *PostgresRoleRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (RoleAssignment, error) {
	var a RoleAssignment
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, role, created_at, updated_at FROM user_roles WHERE user_id = $1`,
		userID,
	).Scan(&a.ID, &a.UserID, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return RoleAssignment{}, ErrRoleAssignmentNotFound
	}
	if err != nil {
		return RoleAssignment{}, fmt.Errorf("failed to get role assignment: %w", err)
	}
	return a, nil
}

// CreateAssignment implements RoleRepository.CreateAssignment
func (r *PostgresRoleRepository) CreateAssignment(ctx context.Context, userID uuid.UUID, role string) (RoleAssignment, error) {
	var a RoleAssignment
	err := r.pool.QueryRow(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2)
		RETURNING id, user_id, role, created_at, updated_at`,
		userID, role,
	).Scan(&a.ID, &a.UserID, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return RoleAssignment{}, fmt.Errorf("failed to create role assignment: %w", err)
	}
	return a, nil
}

// UpdateRole implements RoleRepository.UpdateRole
func (r *PostgresRoleRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE user_roles SET role = $2, updated_at = now() WHERE id = $1`, id, role)
	if err != nil {
		return fmt.Errorf("failed to update role assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRoleAssignmentNotFound
	}
	return nil
}

// ReassignUser implements RoleRepository.ReassignUser
func (r *PostgresRoleRepository) ReassignUser(ctx context.Context, fromUserID, toUserID uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE user_roles SET user_id = $2, updated_at = now() WHERE user_id = $1`, fromUserID, toUserID)
	if err != nil {
		return 0, fmt.Errorf("failed to reassign role assignment: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByUserID implements RoleRepository.DeleteByUserID
func (r *PostgresRoleRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete role assignment: %w", err)
	}
	return tag.RowsAffected(), nil
}
