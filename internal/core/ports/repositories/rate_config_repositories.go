package repositories

import (
	"context"

	"github.com/SscSPs/remittance_app/internal/core/domain"
)

// RateConfigReader defines read operations for rate configurations
type RateConfigReader interface {
	// FindLatestRateConfiguration returns the most recently updated configuration,
	// or apperrors.ErrNotFound when none was ever saved.
	FindLatestRateConfiguration(ctx context.Context) (*domain.RateConfiguration, error)
}

// RateConfigWriter defines write operations for rate configurations
type RateConfigWriter interface {
	// SaveRateConfiguration inserts a new configuration row. Older rows are kept as history.
	SaveRateConfiguration(ctx context.Context, cfg domain.RateConfiguration) error
}

// RateConfigRepositoryFacade combines all rate configuration repository interfaces
type RateConfigRepositoryFacade interface {
	RateConfigReader
	RateConfigWriter
}
