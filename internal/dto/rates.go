package dto

import (
	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// QuoteRequest defines the query parameters of a price quote.
// Amount is taken as typed by the customer and may use either decimal separator.
type QuoteRequest struct {
	Source    string `form:"source" binding:"required,region"`
	Target    string `form:"target" binding:"required,region"`
	Amount    string `form:"amount" binding:"required"`
	Direction string `form:"direction" binding:"omitempty,oneof=sent received"`
}

// QuoteResponse is a priced offer plus its receipt-ready strings.
type QuoteResponse struct {
	Source                  domain.Region       `json:"source"`
	Target                  domain.Region       `json:"target"`
	CurrencySent            domain.CurrencyCode `json:"currencySent"`
	CurrencyReceived        domain.CurrencyCode `json:"currencyReceived"`
	AmountSent              decimal.Decimal     `json:"amountSent"`
	AmountReceived          decimal.Decimal     `json:"amountReceived"`
	ExchangeRate            decimal.Decimal     `json:"exchangeRate"`
	FormattedRate           string              `json:"formattedRate"`
	FormattedAmountSent     string              `json:"formattedAmountSent"`
	FormattedAmountReceived string              `json:"formattedAmountReceived"`
	Decimals                int32               `json:"decimals"`
	IsInverse               bool                `json:"isInverse"`
	Available               bool                `json:"available"`
	ConfigurationID         string              `json:"configurationID,omitempty"`
}

// UpdateRateConfigRequest replaces the whole basket. Region and margin keys may
// be written with region names or currency codes.
type UpdateRateConfigRequest struct {
	BasePrices map[string]decimal.Decimal `json:"basePrices" binding:"required"`
	Indicators map[string]decimal.Decimal `json:"indicators"`
	Margins    map[string]decimal.Decimal `json:"margins"`
}

// RateConfigResponse defines the data returned for a rate configuration.
type RateConfigResponse struct {
	ID            string                     `json:"id"`
	BasePrices    map[string]decimal.Decimal `json:"basePrices"`
	Indicators    map[string]decimal.Decimal `json:"indicators"`
	Margins       map[string]decimal.Decimal `json:"margins"`
	LastUpdatedAt string                     `json:"lastUpdatedAt"`
	LastUpdatedBy string                     `json:"lastUpdatedBy"`
}

// RegionResponse describes one region for pickers.
type RegionResponse struct {
	Region   domain.Region       `json:"region"`
	Currency domain.CurrencyCode `json:"currency"`
	Label    string              `json:"label"`
	CanSend  bool                `json:"canSend"`
}

// BoardResponse wraps the operator rate board.
type BoardResponse struct {
	ConfigurationID string              `json:"configurationID"`
	Entries         []domain.BoardEntry `json:"entries"`
}

// ToRateConfigResponse converts a domain.RateConfiguration to its response DTO.
func ToRateConfigResponse(cfg *domain.RateConfiguration) RateConfigResponse {
	resp := RateConfigResponse{
		ID:            cfg.ID,
		BasePrices:    make(map[string]decimal.Decimal, len(cfg.BasePrices)),
		Indicators:    make(map[string]decimal.Decimal, len(cfg.Indicators)),
		Margins:       make(map[string]decimal.Decimal, len(cfg.Margins)),
		LastUpdatedAt: cfg.LastUpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		LastUpdatedBy: cfg.LastUpdatedBy,
	}
	for r, p := range cfg.BasePrices {
		resp.BasePrices[string(r)] = p
	}
	for i, p := range cfg.Indicators {
		resp.Indicators[string(i)] = p
	}
	for k, m := range cfg.Margins {
		resp.Margins[k] = m
	}
	return resp
}

// ToRegionResponses lists every region in display order.
func ToRegionResponses() []RegionResponse {
	regions := domain.AllRegions()
	out := make([]RegionResponse, len(regions))
	for i, r := range regions {
		out[i] = RegionResponse{
			Region:   r,
			Currency: r.Currency(),
			Label:    r.Label(),
			CanSend:  r != domain.RegionVenezuela,
		}
	}
	return out
}
