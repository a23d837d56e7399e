package mapping

import (
	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/SscSPs/remittance_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelRateConfiguration converts a domain RateConfiguration to its row form.
func ToModelRateConfiguration(d domain.RateConfiguration) models.RateConfiguration {
	prices := make(map[string]decimal.Decimal, len(d.BasePrices))
	for region, price := range d.BasePrices {
		prices[string(region)] = price
	}
	indicators := make(map[string]decimal.Decimal, len(d.Indicators))
	for ind, price := range d.Indicators {
		indicators[string(ind)] = price
	}
	margins := make(map[string]decimal.Decimal, len(d.Margins))
	for key, m := range d.Margins {
		margins[key] = m
	}
	return models.RateConfiguration{
		ID:          d.ID,
		USDTPrices:  prices,
		Indicators:  indicators,
		Margins:     margins,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRateConfiguration converts a stored row back to the domain. Rows
// written by older admin screens may carry currency codes or the indicator
// prices inside usdt_prices; both are folded into place here.
func ToDomainRateConfiguration(m models.RateConfiguration) domain.RateConfiguration {
	cfg := domain.RateConfiguration{
		ID:          m.ID,
		BasePrices:  make(map[domain.Region]decimal.Decimal, len(m.USDTPrices)),
		Indicators:  make(map[domain.Indicator]decimal.Decimal, len(m.Indicators)),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	for key, price := range m.USDTPrices {
		if ind := domain.Indicator(key); ind == domain.IndicatorMonitor || ind == domain.IndicatorBCV {
			cfg.Indicators[ind] = price
			continue
		}
		if region, ok := domain.ParseRegion(key); ok {
			cfg.BasePrices[region] = price
		}
	}
	for key, price := range m.Indicators {
		cfg.Indicators[domain.Indicator(key)] = price
	}
	cfg.Margins, _ = domain.NormalizeMargins(m.Margins)
	return cfg
}
