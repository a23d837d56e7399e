package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/remittance_app/internal/apperrors"
	"github.com/SscSPs/remittance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/remittance_app/internal/core/ports/repositories"
	"github.com/SscSPs/remittance_app/internal/models"
	"github.com/SscSPs/remittance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentMethodColumns = `payment_method_id, region, method_type, bank_name, account_number,
	holder_name, holder_id, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentMethodRepository struct {
	BaseRepository
}

func newPgxPaymentMethodRepository(pool *pgxpool.Pool) *PgxPaymentMethodRepository {
	return &PgxPaymentMethodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentMethodRepositoryFacade = (*PgxPaymentMethodRepository)(nil)

func scanPaymentMethod(row pgx.Row) (domain.PaymentMethod, error) {
	var m models.PaymentMethod
	err := row.Scan(
		&m.PaymentMethodID,
		&m.Region,
		&m.MethodType,
		&m.BankName,
		&m.AccountNumber,
		&m.HolderName,
		&m.HolderID,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return mapping.ToDomainPaymentMethod(m), err
}

func (r *PgxPaymentMethodRepository) FindPaymentMethodByID(ctx context.Context, paymentMethodID string) (*domain.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE payment_method_id = $1;`
	pm, err := scanPaymentMethod(r.Pool.QueryRow(ctx, query, paymentMethodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment method %s: %w", paymentMethodID, err)
	}
	return &pm, nil
}

func (r *PgxPaymentMethodRepository) ListPaymentMethods(ctx context.Context, region *domain.Region, activeOnly bool) ([]domain.PaymentMethod, error) {
	conditions := []string{"TRUE"}
	var args []any
	if region != nil {
		args = append(args, string(*region))
		conditions = append(conditions, fmt.Sprintf("region = $%d", len(args)))
	}
	if activeOnly {
		conditions = append(conditions, "is_active")
	}
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY region, method_type, created_at;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment methods: %w", err)
	}
	defer rows.Close()

	pms := []domain.PaymentMethod{}
	for rows.Next() {
		pm, err := scanPaymentMethod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment method row: %w", err)
		}
		pms = append(pms, pm)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment method rows: %w", rows.Err())
	}
	return pms, nil
}

func (r *PgxPaymentMethodRepository) SavePaymentMethod(ctx context.Context, pm domain.PaymentMethod) error {
	m := mapping.ToModelPaymentMethod(pm)
	query := `
		INSERT INTO payment_methods (` + paymentMethodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PaymentMethodID, m.Region, m.MethodType, m.BankName, m.AccountNumber,
		m.HolderName, m.HolderID, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment method: %w", err)
	}
	return nil
}

func (r *PgxPaymentMethodRepository) UpdatePaymentMethod(ctx context.Context, pm domain.PaymentMethod) error {
	m := mapping.ToModelPaymentMethod(pm)
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE payment_methods
		SET method_type = $1, bank_name = $2, account_number = $3, holder_name = $4,
		    holder_id = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE payment_method_id = $9;`,
		m.MethodType, m.BankName, m.AccountNumber, m.HolderName,
		m.HolderID, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy, m.PaymentMethodID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment method: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payment method %s: %w", m.PaymentMethodID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPaymentMethodRepository) DeletePaymentMethod(ctx context.Context, paymentMethodID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM payment_methods WHERE payment_method_id = $1;`, paymentMethodID)
	if err != nil {
		return fmt.Errorf("failed to delete payment method: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payment method %s: %w", paymentMethodID, apperrors.ErrNotFound)
	}
	return nil
}
