package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/remittance_app/internal/apperrors"
	"github.com/SscSPs/remittance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/remittance_app/internal/core/ports/repositories"
	"github.com/SscSPs/remittance_app/internal/models"
	"github.com/SscSPs/remittance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileColumns = `user_id, email, full_name, phone, client_code, role, password_hash,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxProfileRepository struct {
	BaseRepository
}

func newPgxProfileRepository(pool *pgxpool.Pool) *PgxProfileRepository {
	return &PgxProfileRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxProfileRepository implements portsrepo.ProfileRepositoryFacade
var _ portsrepo.ProfileRepositoryFacade = (*PgxProfileRepository)(nil)

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var m models.Profile
	err := row.Scan(
		&m.UserID,
		&m.Email,
		&m.FullName,
		&m.Phone,
		&m.ClientCode,
		&m.Role,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	p := mapping.ToDomainProfile(m)
	return &p, nil
}

func (r *PgxProfileRepository) findOne(ctx context.Context, where string, arg any) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE ` + where + ` LIMIT 1;`
	p, err := scanProfile(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return p, nil
}

func (r *PgxProfileRepository) FindProfileByID(ctx context.Context, userID string) (*domain.Profile, error) {
	return r.findOne(ctx, "user_id = $1", userID)
}

func (r *PgxProfileRepository) FindProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return r.findOne(ctx, "lower(email) = lower($1)", email)
}

func (r *PgxProfileRepository) FindProfileByPhone(ctx context.Context, phone string) (*domain.Profile, error) {
	return r.findOne(ctx, "phone = $1", phone)
}

func (r *PgxProfileRepository) ListProfiles(ctx context.Context, limit int, offset int) ([]domain.Profile, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY full_name, user_id LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	profiles := []domain.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		profiles = append(profiles, *p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", rows.Err())
	}
	return profiles, nil
}

func (r *PgxProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	m := mapping.ToModelProfile(profile)
	query := `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Email, m.FullName, m.Phone, m.ClientCode, m.Role, m.PasswordHash,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("profile %s: %w", m.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert profile: %w", err)
	}
	return nil
}

func (r *PgxProfileRepository) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	m := mapping.ToModelProfile(profile)
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE profiles
		SET full_name = $1, client_code = $2, role = $3, last_updated_at = $4, last_updated_by = $5
		WHERE user_id = $6;`,
		m.FullName, m.ClientCode, m.Role, m.LastUpdatedAt, m.LastUpdatedBy, m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update profile query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", m.UserID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProfileRepository) UpdateProfileRole(ctx context.Context, userID string, role domain.Role, updatedAt time.Time, updatedBy string) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE profiles SET role = $1, last_updated_at = $2, last_updated_by = $3 WHERE user_id = $4;`,
		string(role), updatedAt, updatedBy, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile role: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProfileRepository) UpdatePasswordHash(ctx context.Context, userID, passwordHash string, updatedAt time.Time) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE profiles SET password_hash = $1, last_updated_at = $2, last_updated_by = $3 WHERE user_id = $3;`,
		passwordHash, updatedAt, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}
