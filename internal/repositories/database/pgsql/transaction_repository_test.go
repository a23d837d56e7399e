package pgsql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/SscSPs/remittance_app/internal/apperrors"
	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lockStatusSQL   = `SELECT status FROM transactions WHERE transaction_id = $1 FOR UPDATE;`
	updateStatusSQL = `UPDATE transactions SET status = $1`
	updateProofSQL  = `UPDATE transactions SET payment_proof_url = $1`
	existsSQL       = `SELECT EXISTS (SELECT 1 FROM transactions WHERE transaction_id = $1);`
)

var whitespace = regexp.MustCompile(`\s+`)

// sqlPattern matches a statement regardless of its whitespace layout.
func sqlPattern(sql string) string {
	return whitespace.ReplaceAllLiteralString(regexp.QuoteMeta(sql), `\s+`)
}

func newMockTransactionRepository(t *testing.T) (*PgxTransactionRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}, pool
}

func statusUpdate(expected, next domain.TransactionStatus) domain.StatusUpdate {
	return domain.StatusUpdate{
		TransactionID:  "tx-1",
		ExpectedStatus: expected,
		NewStatus:      next,
		UpdatedAt:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		UpdatedBy:      "op-1",
	}
}

func TestUpdateTransactionStatus_Applies(t *testing.T) {
	repo, pool := newMockTransactionRepository(t)
	proof := "https://storage.example/settlements/tx-1/a.png"
	upd := statusUpdate(domain.StatusVerified, domain.StatusCompleted)
	upd.CompletionProofURL = &proof

	pool.ExpectBegin()
	pool.ExpectQuery(sqlPattern(lockStatusSQL)).WithArgs("tx-1").
		WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow("verified"))
	pool.ExpectExec(sqlPattern(updateStatusSQL)).
		WithArgs("completed", &proof, upd.UpdatedAt, "op-1", "tx-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	pool.ExpectCommit()

	require.NoError(t, repo.UpdateTransactionStatus(context.Background(), upd))
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestUpdateTransactionStatus_StatusMovedUnderneath(t *testing.T) {
	repo, pool := newMockTransactionRepository(t)

	pool.ExpectBegin()
	pool.ExpectQuery(sqlPattern(lockStatusSQL)).WithArgs("tx-1").
		WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow("rejected"))
	pool.ExpectRollback()

	err := repo.UpdateTransactionStatus(context.Background(), statusUpdate(domain.StatusVerified, domain.StatusCompleted))

	assert.ErrorIs(t, err, apperrors.ErrConcurrentModification)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestUpdateTransactionStatus_Missing(t *testing.T) {
	repo, pool := newMockTransactionRepository(t)

	pool.ExpectBegin()
	pool.ExpectQuery(sqlPattern(lockStatusSQL)).WithArgs("tx-1").WillReturnError(pgx.ErrNoRows)
	pool.ExpectRollback()

	err := repo.UpdateTransactionStatus(context.Background(), statusUpdate(domain.StatusVerifying, domain.StatusVerified))

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestUpdatePaymentProof(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		affected int64
		exists   *bool
		wantErr  error
	}{
		{name: "still verifying", affected: 1},
		{name: "no longer verifying", affected: 0, exists: ptr(true), wantErr: apperrors.ErrConcurrentModification},
		{name: "missing", affected: 0, exists: ptr(false), wantErr: apperrors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, pool := newMockTransactionRepository(t)
			pool.ExpectExec(sqlPattern(updateProofSQL)).
				WithArgs("https://storage.example/proofs/tx-1/a.png", at, "user-1", "tx-1", "verifying").
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))
			if tt.exists != nil {
				pool.ExpectQuery(sqlPattern(existsSQL)).WithArgs("tx-1").
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(*tt.exists))
			}

			err := repo.UpdatePaymentProof(context.Background(), "tx-1", "https://storage.example/proofs/tx-1/a.png", at, "user-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, pool.ExpectationsWereMet())
		})
	}
}

func ptr[T any](v T) *T { return &v }
