package services

import (
	"context"

	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/SscSPs/remittance_app/internal/dto"
)

// RateReaderSvc defines read operations over the rate configuration
type RateReaderSvc interface {
	// GetLatestConfiguration returns the authoritative configuration.
	GetLatestConfiguration(ctx context.Context) (*domain.RateConfiguration, error)

	// Quote prices a transfer from the latest configuration. A quote with a
	// zero rate is returned as is; it means no quote is available.
	Quote(ctx context.Context, req dto.QuoteRequest) (*domain.Quote, error)

	// Board returns every quotable pair, for operators only.
	Board(ctx context.Context, operatorID string) (*domain.RateConfiguration, []domain.BoardEntry, error)
}

// RateWriterSvc defines write operations over the rate configuration
type RateWriterSvc interface {
	// UpdateConfiguration stores a new configuration row, for operators only.
	UpdateConfiguration(ctx context.Context, operatorID string, req dto.UpdateRateConfigRequest) (*domain.RateConfiguration, error)
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	RateWriterSvc
}
