package pgsql

import (
	portsrepo "github.com/SscSPs/remittance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RateConfigRepo:    newPgxRateConfigRepository(dbPool),
		TransactionRepo:   newPgxTransactionRepository(dbPool),
		ProfileRepo:       newPgxProfileRepository(dbPool),
		PaymentMethodRepo: newPgxPaymentMethodRepository(dbPool),
	}
}
