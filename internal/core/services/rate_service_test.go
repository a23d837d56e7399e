package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/remittance_app/internal/apperrors"
	"github.com/SscSPs/remittance_app/internal/core/domain"
	portssvc "github.com/SscSPs/remittance_app/internal/core/ports/services"
	"github.com/SscSPs/remittance_app/internal/core/services"
	"github.com/SscSPs/remittance_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RateServiceTestSuite struct {
	suite.Suite
	configRepo  *MockRateConfigRepository
	profileRepo *MockProfileRepository
	service     portssvc.RateSvcFacade
	ctx         context.Context
}

func (s *RateServiceTestSuite) SetupTest() {
	s.configRepo = new(MockRateConfigRepository)
	s.profileRepo = new(MockProfileRepository)
	expectProfiles(s.profileRepo)
	s.service = services.NewRateService(s.configRepo, s.profileRepo)
	s.ctx = context.Background()
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}

func (s *RateServiceTestSuite) TestQuote_Forward() {
	s.configRepo.On("FindLatestRateConfiguration", mock.Anything).Return(peruVenezuelaConfig(), nil).Once()

	q, err := s.service.Quote(s.ctx, dto.QuoteRequest{Source: "PEN", Target: "VES", Amount: "100"})

	s.Require().NoError(err)
	s.True(q.Available())
	s.True(q.ExchangeRate.Equal(d("9.75")))
	s.True(q.AmountReceived.Equal(d("975")))
	s.Equal("cfg-1", q.ConfigurationID)
}

func (s *RateServiceTestSuite) TestQuote_InversePair() {
	s.configRepo.On("FindLatestRateConfiguration", mock.Anything).Return(peruVenezuelaConfig(), nil)

	q, err := s.service.Quote(s.ctx, dto.QuoteRequest{Source: "COLOMBIA", Target: "VENEZUELA", Amount: "100000"})

	s.Require().NoError(err)
	s.True(q.Pair.IsInverse)
	s.True(q.ExchangeRate.Equal(d("111.43")), "rate %s", q.ExchangeRate)
}

func (s *RateServiceTestSuite) TestQuote_NoConfigurationIsUnavailable() {
	s.configRepo.On("FindLatestRateConfiguration", mock.Anything).Return(nil, apperrors.ErrNotFound)

	q, err := s.service.Quote(s.ctx, dto.QuoteRequest{Source: "PERU", Target: "VES", Amount: "100"})

	s.Require().NoError(err)
	s.False(q.Available())
	s.True(q.ExchangeRate.IsZero())
}

func (s *RateServiceTestSuite) TestQuote_RejectsBadPairs() {
	for _, req := range []dto.QuoteRequest{
		{Source: "VES", Target: "PERU", Amount: "1"},
		{Source: "PERU", Target: "PEN", Amount: "1"},
		{Source: "PERU", Target: "BRAZIL", Amount: "1"},
	} {
		_, err := s.service.Quote(s.ctx, req)
		s.ErrorIs(err, apperrors.ErrValidation, "%s -> %s", req.Source, req.Target)
	}
	s.configRepo.AssertNotCalled(s.T(), "FindLatestRateConfiguration", mock.Anything)
}

func (s *RateServiceTestSuite) TestQuote_StorageError() {
	dbErr := errors.New("timeout")
	s.configRepo.On("FindLatestRateConfiguration", mock.Anything).Return(nil, dbErr)

	_, err := s.service.Quote(s.ctx, dto.QuoteRequest{Source: "PERU", Target: "VES", Amount: "1"})

	s.ErrorIs(err, dbErr)
}

func (s *RateServiceTestSuite) TestGetLatestConfiguration_NotFound() {
	s.configRepo.On("FindLatestRateConfiguration", mock.Anything).Return(nil, apperrors.ErrNotFound)

	_, err := s.service.GetLatestConfiguration(s.ctx)

	var appErr *apperrors.AppError
	s.Require().ErrorAs(err, &appErr)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RateServiceTestSuite) TestBoard() {
	s.configRepo.On("FindLatestRateConfiguration", mock.Anything).Return(peruVenezuelaConfig(), nil)

	cfg, board, err := s.service.Board(s.ctx, operatorID)

	s.Require().NoError(err)
	s.Equal("cfg-1", cfg.ID)
	s.Len(board, 16)

	_, _, err = s.service.Board(s.ctx, customerID)
	s.ErrorIs(err, apperrors.ErrNotAuthorized)
}

func (s *RateServiceTestSuite) TestUpdateConfiguration_NormalizesKeys() {
	s.configRepo.On("SaveRateConfiguration", mock.Anything, mock.MatchedBy(func(cfg domain.RateConfiguration) bool {
		_, mixed := cfg.Margins["PERU_VES"]
		_, generic := cfg.Margins[domain.GenericMarginKey]
		return cfg.ID != "" &&
			cfg.CreatedBy == operatorID &&
			cfg.BasePrices[domain.RegionPeru].Equal(d("3.75")) &&
			cfg.BasePrices[domain.RegionVenezuela].Equal(d("38.5")) &&
			cfg.Indicators[domain.IndicatorBCV].Equal(d("36.1")) &&
			cfg.Indicators[domain.IndicatorMonitor].Equal(d("40")) &&
			mixed && generic && len(cfg.Margins) == 2
	})).Return(nil).Once()

	cfg, err := s.service.UpdateConfiguration(s.ctx, operatorID, dto.UpdateRateConfigRequest{
		BasePrices: map[string]decimal.Decimal{
			"PEN":     d("3.75"),
			"VES":     d("38.5"),
			"monitor": d("40"),
		},
		Indicators: map[string]decimal.Decimal{"BCV": d("36.1")},
		Margins: map[string]decimal.Decimal{
			"PEN_VENEZUELA": d("5"),
			"GENERIC":       d("3"),
		},
	})

	s.Require().NoError(err)
	s.NotEmpty(cfg.ID)
	s.configRepo.AssertExpectations(s.T())
}

func (s *RateServiceTestSuite) TestUpdateConfiguration_Invalid() {
	tests := []struct {
		name string
		req  dto.UpdateRateConfigRequest
	}{
		{"unknown region", dto.UpdateRateConfigRequest{BasePrices: map[string]decimal.Decimal{"BRL": d("5")}}},
		{"negative price", dto.UpdateRateConfigRequest{BasePrices: map[string]decimal.Decimal{"PERU": d("-1")}}},
		{"bad margin key", dto.UpdateRateConfigRequest{
			BasePrices: map[string]decimal.Decimal{"PERU": d("3.75")},
			Margins:    map[string]decimal.Decimal{"PERU-VES": d("5")},
		}},
		{"unknown indicator", dto.UpdateRateConfigRequest{
			BasePrices: map[string]decimal.Decimal{"PERU": d("3.75")},
			Indicators: map[string]decimal.Decimal{"PARALELO": d("1")},
		}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.UpdateConfiguration(s.ctx, operatorID, tt.req)
			s.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	s.configRepo.AssertNotCalled(s.T(), "SaveRateConfiguration", mock.Anything, mock.Anything)
}

func (s *RateServiceTestSuite) TestUpdateConfiguration_RequiresOperator() {
	_, err := s.service.UpdateConfiguration(s.ctx, customerID, dto.UpdateRateConfigRequest{
		BasePrices: map[string]decimal.Decimal{"PERU": d("3.75")},
	})

	s.ErrorIs(err, apperrors.ErrNotAuthorized)
	s.configRepo.AssertNotCalled(s.T(), "SaveRateConfiguration", mock.Anything, mock.Anything)
}
