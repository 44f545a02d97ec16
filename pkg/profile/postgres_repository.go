package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/member-portal/pkg/utils"
)

const profileColumns = `id, user_id, COALESCE(member_id, ''), email, COALESCE(full_name, ''),
	COALESCE(phone, ''), COALESCE(department, ''), COALESCE(password_plain, ''), created_at, updated_at`

// PostgresProfileRepository implements ProfileRepository on the profiles table
type PostgresProfileRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository
func NewPostgresProfileRepository(pool *pgxpool.Pool) *PostgresProfileRepository {
	return &PostgresProfileRepository{
		pool: pool,
	}
}

func scanProfile(row pgx.Row) (Profile, error) {
	var p Profile
	err := row.Scan(&p.ID, &p.UserID, &p.MemberID, &p.Email, &p.FullName,
		&p.Phone, &p.Department, &p.PasswordPlain, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, ErrProfileNotFound
	}
	return p, err
}

// FindByMemberID implements ProfileRepository.FindByMemberID
func (r *PostgresProfileRepository) FindByMemberID(ctx context.Context, memberID string) (Profile, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE member_id = $1`, memberID)
	p, err := scanProfile(row)
	if err != nil && !errors.Is(err, ErrProfileNotFound) {
		return Profile{}, fmt.Errorf("failed to find profile by member id: %w", err)
	}
	return p, err
}

// GetByUserID implements ProfileRepository.GetByUserID
func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID)
	p, err := scanProfile(row)
	if err != nil && !errors.Is(err, ErrProfileNotFound) {
		return Profile{}, fmt.Errorf("failed to get profile by user id: %w", err)
	}
	return p, err
}

// UpsertMember implements ProfileRepository.UpsertMember. The email is only
// written when the row is created; an auto-provisioned row keeps its own.
func (r *PostgresProfileRepository) UpsertMember(ctx context.Context, arg UpsertMemberParams) (Profile, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO profiles (user_id, email, member_id, full_name, phone, department, password_plain)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			member_id = EXCLUDED.member_id,
			full_name = EXCLUDED.full_name,
			phone = EXCLUDED.phone,
			department = EXCLUDED.department,
			password_plain = EXCLUDED.password_plain,
			updated_at = now()
		RETURNING `+profileColumns,
		arg.UserID,
		utils.ToNullString(arg.Email),
		utils.ToNullString(arg.MemberID),
		utils.ToNullString(arg.FullName),
		utils.ToNullString(arg.Phone),
		utils.ToNullString(arg.Department),
		arg.PasswordPlain,
	)
	p, err := scanProfile(row)
	if err != nil {
		if isUniqueViolation(err, "profiles_member_id_key") {
			return Profile{}, ErrMemberIDConflict
		}
		return Profile{}, fmt.Errorf("failed to upsert member profile: %w", err)
	}
	return p, nil
}

// LinkIdentity implements ProfileRepository.LinkIdentity
func (r *PostgresProfileRepository) LinkIdentity(ctx context.Context, arg LinkIdentityParams) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE profiles SET user_id = $2, password_plain = $3, updated_at = now()
		WHERE id = $1`,
		arg.ProfileID, arg.UserID, arg.PasswordPlain)
	if err != nil {
		if isUniqueViolation(err, "profiles_user_id_key") {
			return ErrIdentityLinked
		}
		return fmt.Errorf("failed to link profile identity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// UnlinkIdentity implements ProfileRepository.UnlinkIdentity
func (r *PostgresProfileRepository) UnlinkIdentity(ctx context.Context, profileID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE profiles SET user_id = NULL, updated_at = now()
		WHERE id = $1`,
		profileID)
	if err != nil {
		return fmt.Errorf("failed to unlink profile identity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraint
}
