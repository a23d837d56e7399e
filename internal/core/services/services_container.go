package services

import (
	portsrepo "github.com/SscSPs/remittance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/remittance_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// storage may be nil, which disables artifact uploads.
func NewServiceContainer(repos portsrepo.RepositoryProvider, storage portssvc.ProofStorage) *portssvc.ServiceContainer {
	var txnOptions []TransactionServiceOption
	if storage != nil {
		txnOptions = append(txnOptions, WithProofStorage(storage))
	}

	return &portssvc.ServiceContainer{
		Rates:         NewRateService(repos.RateConfigRepo, repos.ProfileRepo),
		Transaction:   NewTransactionService(repos.TransactionRepo, repos.RateConfigRepo, repos.ProfileRepo, txnOptions...),
		User:          NewUserService(repos.ProfileRepo),
		PaymentMethod: NewPaymentMethodService(repos.PaymentMethodRepo, repos.ProfileRepo),
		Dashboard:     NewDashboardService(repos.RateConfigRepo, repos.TransactionRepo, repos.ProfileRepo),
	}
}
