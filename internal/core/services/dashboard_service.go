package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/remittance_app/internal/apperrors"
	"github.com/SscSPs/remittance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/remittance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/remittance_app/internal/core/ports/services"
	"github.com/SscSPs/remittance_app/internal/core/rates"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	BaseService
	configRepo portsrepo.RateConfigReader
	statsRepo  portsrepo.TransactionStatsReader
}

// NewDashboardService creates the operator overview service.
func NewDashboardService(configRepo portsrepo.RateConfigReader, statsRepo portsrepo.TransactionStatsReader, profiles portsrepo.ProfileReader) portssvc.DashboardSvc {
	return &dashboardService{
		BaseService: newBaseService(profiles),
		configRepo:  configRepo,
		statsRepo:   statsRepo,
	}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) GetDashboard(ctx context.Context, operatorID string) (*domain.Dashboard, error) {
	if _, err := s.RequireOperator(ctx, operatorID); err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)

	var (
		cfg    *domain.RateConfiguration
		counts map[domain.TransactionStatus]int
		volume map[domain.CurrencyCode]decimal.Decimal
	)

	g.Go(func() error {
		var err error
		cfg, err = s.configRepo.FindLatestRateConfiguration(gctx)
		if errors.Is(err, apperrors.ErrNotFound) {
			cfg, err = nil, nil
		}
		return err
	})

	g.Go(func() error {
		var err error
		counts, err = s.statsRepo.CountTransactionsByStatus(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		volume, err = s.statsRepo.SumOpenVolume(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build dashboard")
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	dash := &domain.Dashboard{
		Configuration: cfg,
		Board:         []domain.BoardEntry{},
		StatusCounts:  counts,
		PendingVolume: volume,
	}
	if dash.StatusCounts == nil {
		dash.StatusCounts = map[domain.TransactionStatus]int{}
	}
	if dash.PendingVolume == nil {
		dash.PendingVolume = map[domain.CurrencyCode]decimal.Decimal{}
	}
	if cfg != nil {
		dash.Board = rates.Board(*cfg)
	}
	return dash, nil
}
