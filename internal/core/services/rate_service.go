package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/SscSPs/remittance_app/internal/apperrors"
	"github.com/SscSPs/remittance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/remittance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/remittance_app/internal/core/ports/services"
	"github.com/SscSPs/remittance_app/internal/core/rates"
	"github.com/SscSPs/remittance_app/internal/dto"
	"github.com/SscSPs/remittance_app/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type rateService struct {
	BaseService
	configRepo portsrepo.RateConfigRepositoryFacade
}

// NewRateService creates the rate configuration and quoting service.
func NewRateService(configRepo portsrepo.RateConfigRepositoryFacade, profiles portsrepo.ProfileReader) portssvc.RateSvcFacade {
	return &rateService{
		BaseService: newBaseService(profiles),
		configRepo:  configRepo,
	}
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

func (s *rateService) GetLatestConfiguration(ctx context.Context) (*domain.RateConfiguration, error) {
	cfg, err := s.configRepo.FindLatestRateConfiguration(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("no rate configuration has been saved yet")
		}
		s.LogError(ctx, err, "Failed to load rate configuration")
		return nil, fmt.Errorf("failed to load rate configuration: %w", err)
	}
	return cfg, nil
}

// snapshot returns the latest configuration, or an empty one when none exists
// so that every rate degrades to zero.
func (s *rateService) snapshot(ctx context.Context) (domain.RateConfiguration, error) {
	cfg, err := s.configRepo.FindLatestRateConfiguration(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.RateConfiguration{}, nil
		}
		s.LogError(ctx, err, "Failed to load rate configuration")
		return domain.RateConfiguration{}, fmt.Errorf("failed to load rate configuration: %w", err)
	}
	return *cfg, nil
}

func (s *rateService) Quote(ctx context.Context, req dto.QuoteRequest) (*domain.Quote, error) {
	source, target, err := parseQuotablePair(req.Source, req.Target)
	if err != nil {
		return nil, err
	}

	cfg, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	quote := rates.NewQuote(cfg, source, target, rates.ParseAmount(req.Amount), parseDirection(req.Direction))
	metrics.QuotesTotal.WithLabelValues(domain.PairKey(source, target), strconv.FormatBool(quote.Available())).Inc()
	if !quote.Available() {
		s.LogWarn(ctx, "No rate available for pair", slog.String("pair", domain.PairKey(source, target)))
	}
	return &quote, nil
}

func (s *rateService) Board(ctx context.Context, operatorID string) (*domain.RateConfiguration, []domain.BoardEntry, error) {
	if _, err := s.RequireOperator(ctx, operatorID); err != nil {
		return nil, nil, err
	}
	cfg, err := s.snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	return &cfg, rates.Board(cfg), nil
}

func (s *rateService) UpdateConfiguration(ctx context.Context, operatorID string, req dto.UpdateRateConfigRequest) (*domain.RateConfiguration, error) {
	if _, err := s.RequireOperator(ctx, operatorID); err != nil {
		return nil, err
	}

	cfg, err := buildRateConfiguration(req)
	if err != nil {
		return nil, err
	}

	now := s.now()
	cfg.ID = uuid.NewString()
	cfg.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     operatorID,
		LastUpdatedAt: now,
		LastUpdatedBy: operatorID,
	}

	if err := s.configRepo.SaveRateConfiguration(ctx, cfg); err != nil {
		s.LogError(ctx, err, "Failed to save rate configuration", slog.String("configuration_id", cfg.ID))
		return nil, fmt.Errorf("failed to save rate configuration: %w", err)
	}

	s.LogInfo(ctx, "Rate configuration updated",
		slog.String("configuration_id", cfg.ID),
		slog.Int("base_prices", len(cfg.BasePrices)),
		slog.Int("margins", len(cfg.Margins)))
	return &cfg, nil
}

// buildRateConfiguration maps a request onto the domain. Indicator prices may
// arrive inside basePrices, the shape the admin screen has always sent.
func buildRateConfiguration(req dto.UpdateRateConfigRequest) (domain.RateConfiguration, error) {
	cfg := domain.RateConfiguration{
		BasePrices: make(map[domain.Region]decimal.Decimal, len(req.BasePrices)),
		Indicators: make(map[domain.Indicator]decimal.Decimal, 2),
	}

	putIndicator := func(key string, price decimal.Decimal) bool {
		ind := domain.Indicator(strings.ToUpper(strings.TrimSpace(key)))
		if ind != domain.IndicatorMonitor && ind != domain.IndicatorBCV {
			return false
		}
		cfg.Indicators[ind] = price
		return true
	}

	for key, price := range req.BasePrices {
		if putIndicator(key, price) {
			continue
		}
		region, ok := domain.ParseRegion(key)
		if !ok {
			return cfg, fmt.Errorf("%w: unknown region %q in basePrices", apperrors.ErrValidation, key)
		}
		cfg.BasePrices[region] = price
	}
	for key, price := range req.Indicators {
		if !putIndicator(key, price) {
			return cfg, fmt.Errorf("%w: unknown indicator %q", apperrors.ErrValidation, key)
		}
	}

	margins, invalid := domain.NormalizeMargins(req.Margins)
	if len(invalid) > 0 {
		return cfg, fmt.Errorf("%w: invalid margin keys %v", apperrors.ErrValidation, invalid)
	}
	cfg.Margins = margins

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return cfg, nil
}

// parseQuotablePair resolves and checks a source/target pair at the boundary.
func parseQuotablePair(rawSource, rawTarget string) (domain.Region, domain.Region, error) {
	source, ok := domain.ParseRegion(rawSource)
	if !ok {
		return "", "", fmt.Errorf("%w: unknown source region %q", apperrors.ErrValidation, rawSource)
	}
	target, ok := domain.ParseRegion(rawTarget)
	if !ok {
		return "", "", fmt.Errorf("%w: unknown target region %q", apperrors.ErrValidation, rawTarget)
	}
	if source == target {
		return "", "", fmt.Errorf("%w: source and target regions must differ", apperrors.ErrValidation)
	}
	if source == domain.RegionVenezuela {
		return "", "", fmt.Errorf("%w: transfers cannot be sent from %s", apperrors.ErrValidation, source)
	}
	return source, target, nil
}

func parseDirection(raw string) domain.ConvertDirection {
	if domain.ConvertDirection(raw) == domain.DirectionBackward {
		return domain.DirectionBackward
	}
	return domain.DirectionForward
}
