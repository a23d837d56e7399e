package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionListFilter narrows the operator queue.
type TransactionListFilter struct {
	Status    *domain.TransactionStatus
	Limit     int
	NextToken *string
}

// TransactionReader defines read operations for transactions
type TransactionReader interface {
	// FindTransactionByID returns apperrors.ErrNotFound when the id is unknown.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByUser returns a user's transactions, newest first, and the token of the next page.
	ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListTransactionOverviews returns every transaction joined with its owner, newest first.
	ListTransactionOverviews(ctx context.Context, filter TransactionListFilter) ([]domain.TransactionOverview, *string, error)
}

// TransactionStatsReader defines aggregate reads for the operator dashboard
type TransactionStatsReader interface {
	CountTransactionsByStatus(ctx context.Context) (map[domain.TransactionStatus]int, error)

	// SumOpenVolume sums the amount sent of transactions not yet completed or rejected, per currency.
	SumOpenVolume(ctx context.Context) (map[domain.CurrencyCode]decimal.Decimal, error)
}

// TransactionWriter defines write operations for transactions.
// No method may change the rate, the amounts or the currencies of a stored transaction.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransactionStatus applies upd only if the stored status still equals
	// upd.ExpectedStatus, otherwise it returns apperrors.ErrConcurrentModification.
	UpdateTransactionStatus(ctx context.Context, upd domain.StatusUpdate) error

	// UpdatePaymentProof stores the customer's proof reference while the
	// transaction is still verifying, otherwise it returns apperrors.ErrConcurrentModification.
	UpdatePaymentProof(ctx context.Context, transactionID, proofURL string, updatedAt time.Time, updatedBy string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionStatsReader
	TransactionWriter
}
