package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/remittance_app/internal/apperrors"
	"github.com/SscSPs/remittance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/remittance_app/internal/core/ports/repositories"
	"github.com/SscSPs/remittance_app/internal/models"
	"github.com/SscSPs/remittance_app/internal/utils/mapping"
	"github.com/SscSPs/remittance_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const transactionColumns = `t.transaction_id, t.user_id, t.status, t.amount_sent, t.currency_sent,
	t.amount_received, t.currency_received, t.exchange_rate, t.reference_id,
	t.payment_proof_url, t.completion_proof_url,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by`

// PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade using pgxpool.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func transactionScanTargets(m *models.Transaction) []any {
	return []any{
		&m.TransactionID,
		&m.UserID,
		&m.Status,
		&m.AmountSent,
		&m.CurrencySent,
		&m.AmountReceived,
		&m.CurrencyReceived,
		&m.ExchangeRate,
		&m.ReferenceID,
		&m.PaymentProofURL,
		&m.CompletionProofURL,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	}
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (
			transaction_id, user_id, status, amount_sent, currency_sent,
			amount_received, currency_received, exchange_rate, reference_id,
			payment_proof_url, completion_proof_url,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID, m.UserID, m.Status, m.AmountSent, m.CurrencySent,
		m.AmountReceived, m.CurrencyReceived, m.ExchangeRate, m.ReferenceID,
		m.PaymentProofURL, m.CompletionProofURL,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("transaction %s: %w", m.TransactionID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions t WHERE t.transaction_id = $1;`

	var m models.Transaction
	if err := r.Pool.QueryRow(ctx, query, transactionID).Scan(transactionScanTargets(&m)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// keysetClause appends the "(created_at, transaction_id) < cursor" condition
// for the page after nextToken.
func keysetClause(conditions []string, args []any, nextToken *string) ([]string, []any, error) {
	if nextToken == nil || *nextToken == "" {
		return conditions, args, nil
	}
	createdAt, id, err := pagination.DecodeToken(*nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	args = append(args, createdAt, id)
	conditions = append(conditions, fmt.Sprintf("(t.created_at, t.transaction_id) < ($%d, $%d)", len(args)-1, len(args)))
	return conditions, args, nil
}

// nextPageToken trims the look-ahead row and returns the cursor of the last kept row.
func nextPageToken[T any](rows []T, limit int, key func(T) (time.Time, string)) ([]T, *string) {
	if len(rows) <= limit {
		return rows, nil
	}
	rows = rows[:limit]
	createdAt, id := key(rows[len(rows)-1])
	token := pagination.EncodeToken(createdAt, id)
	return rows, &token
}

func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	conditions, args, err := keysetClause([]string{"t.user_id = $1"}, []any{userID}, nextToken)
	if err != nil {
		return nil, nil, err
	}
	args = append(args, limit+1)
	query := fmt.Sprintf(`SELECT %s FROM transactions t WHERE %s ORDER BY t.created_at DESC, t.transaction_id DESC LIMIT $%d;`,
		transactionColumns, strings.Join(conditions, " AND "), len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(transactionScanTargets(&m)...); err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	page, next := nextPageToken(modelTxns, limit, func(m models.Transaction) (time.Time, string) {
		return m.CreatedAt, m.TransactionID
	})
	return mapping.ToDomainTransactionSlice(page), next, nil
}

func (r *PgxTransactionRepository) ListTransactionOverviews(ctx context.Context, filter portsrepo.TransactionListFilter) ([]domain.TransactionOverview, *string, error) {
	conditions := []string{"TRUE"}
	var args []any
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", len(args)))
	}
	conditions, args, err := keysetClause(conditions, args, filter.NextToken)
	if err != nil {
		return nil, nil, err
	}
	args = append(args, filter.Limit+1)
	query := fmt.Sprintf(`
		SELECT %s, COALESCE(p.email, ''), COALESCE(p.full_name, '')
		FROM transactions t
		LEFT JOIN profiles p ON p.user_id = t.user_id
		WHERE %s
		ORDER BY t.created_at DESC, t.transaction_id DESC
		LIMIT $%d;`,
		transactionColumns, strings.Join(conditions, " AND "), len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transaction overviews: %w", err)
	}
	defer rows.Close()

	overviews := []models.TransactionOverview{}
	for rows.Next() {
		var m models.TransactionOverview
		targets := append(transactionScanTargets(&m.Transaction), &m.OwnerEmail, &m.OwnerFullName)
		if err := rows.Scan(targets...); err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction overview row: %w", err)
		}
		overviews = append(overviews, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating transaction overview rows: %w", rows.Err())
	}

	page, next := nextPageToken(overviews, filter.Limit, func(m models.TransactionOverview) (time.Time, string) {
		return m.CreatedAt, m.TransactionID
	})
	out := make([]domain.TransactionOverview, len(page))
	for i, m := range page {
		out[i] = mapping.ToDomainTransactionOverview(m)
	}
	return out, next, nil
}

func (r *PgxTransactionRepository) CountTransactionsByStatus(ctx context.Context) (map[domain.TransactionStatus]int, error) {
	rows, err := r.Pool.Query(ctx, `SELECT status, COUNT(*) FROM transactions GROUP BY status;`)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.TransactionStatus]int)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[domain.TransactionStatus(status)] = count
	}
	return counts, rows.Err()
}

func (r *PgxTransactionRepository) SumOpenVolume(ctx context.Context) (map[domain.CurrencyCode]decimal.Decimal, error) {
	query := `
		SELECT currency_sent, SUM(amount_sent)
		FROM transactions
		WHERE status IN ($1, $2)
		GROUP BY currency_sent;
	`
	rows, err := r.Pool.Query(ctx, query, string(domain.StatusVerifying), string(domain.StatusVerified))
	if err != nil {
		return nil, fmt.Errorf("failed to sum open volume: %w", err)
	}
	defer rows.Close()

	volume := make(map[domain.CurrencyCode]decimal.Decimal)
	for rows.Next() {
		var (
			currency string
			total    decimal.Decimal
		)
		if err := rows.Scan(&currency, &total); err != nil {
			return nil, fmt.Errorf("failed to scan open volume: %w", err)
		}
		volume[domain.CurrencyCode(currency)] = total
	}
	return volume, rows.Err()
}

// lockStatus reads the current status under a row lock.
func lockStatus(ctx context.Context, tx pgx.Tx, transactionID string) (domain.TransactionStatus, error) {
	var status string
	err := tx.QueryRow(ctx, `SELECT status FROM transactions WHERE transaction_id = $1 FOR UPDATE;`, transactionID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to lock transaction %s: %w", transactionID, err)
	}
	return domain.TransactionStatus(status), nil
}

func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, upd domain.StatusUpdate) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		current, err := lockStatus(ctx, tx, upd.TransactionID)
		if err != nil {
			return err
		}
		if current != upd.ExpectedStatus {
			return fmt.Errorf("%w: expected %s, found %s", apperrors.ErrConcurrentModification, upd.ExpectedStatus, current)
		}

		var proof *string
		if upd.CompletionProofURL != nil && *upd.CompletionProofURL != "" {
			proof = upd.CompletionProofURL
		}
		_, err = tx.Exec(ctx, `
			UPDATE transactions
			SET status = $1,
			    completion_proof_url = COALESCE($2, completion_proof_url),
			    last_updated_at = $3,
			    last_updated_by = $4
			WHERE transaction_id = $5;`,
			string(upd.NewStatus), proof, upd.UpdatedAt, upd.UpdatedBy, upd.TransactionID,
		)
		if err != nil {
			return fmt.Errorf("failed to update transaction status: %w", err)
		}
		return nil
	})
}

func (r *PgxTransactionRepository) UpdatePaymentProof(ctx context.Context, transactionID, proofURL string, updatedAt time.Time, updatedBy string) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE transactions
		SET payment_proof_url = $1, last_updated_at = $2, last_updated_by = $3
		WHERE transaction_id = $4 AND status = $5;`,
		proofURL, updatedAt, updatedBy, transactionID, string(domain.StatusVerifying),
	)
	if err != nil {
		return fmt.Errorf("failed to update payment proof: %w", err)
	}
	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM transactions WHERE transaction_id = $1);`, transactionID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check transaction %s: %w", transactionID, err)
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf("%w: transaction is no longer %s", apperrors.ErrConcurrentModification, domain.StatusVerifying)
}
