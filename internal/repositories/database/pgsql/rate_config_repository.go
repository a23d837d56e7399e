package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/remittance_app/internal/apperrors"
	"github.com/SscSPs/remittance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/remittance_app/internal/core/ports/repositories"
	"github.com/SscSPs/remittance_app/internal/models"
	"github.com/SscSPs/remittance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRateConfigRepository stores rate configurations. Every save is a new
// row; the row with the newest last_updated_at is the live one.
type PgxRateConfigRepository struct {
	BaseRepository
}

func newPgxRateConfigRepository(pool *pgxpool.Pool) *PgxRateConfigRepository {
	return &PgxRateConfigRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RateConfigRepositoryFacade = (*PgxRateConfigRepository)(nil)

func (r *PgxRateConfigRepository) FindLatestRateConfiguration(ctx context.Context) (*domain.RateConfiguration, error) {
	query := `
		SELECT id, usdt_prices, indicators, margins, created_at, created_by, last_updated_at, last_updated_by
		FROM rates_configuration
		ORDER BY last_updated_at DESC, created_at DESC
		LIMIT 1;
	`
	var m models.RateConfiguration
	err := r.Pool.QueryRow(ctx, query).Scan(
		&m.ID,
		&m.USDTPrices,
		&m.Indicators,
		&m.Margins,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load latest rate configuration: %w", err)
	}

	cfg := mapping.ToDomainRateConfiguration(m)
	return &cfg, nil
}

func (r *PgxRateConfigRepository) SaveRateConfiguration(ctx context.Context, cfg domain.RateConfiguration) error {
	m := mapping.ToModelRateConfiguration(cfg)
	query := `
		INSERT INTO rates_configuration (id, usdt_prices, indicators, margins, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID,
		m.USDTPrices,
		m.Indicators,
		m.Margins,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save rate configuration: %w", err)
	}
	return nil
}
