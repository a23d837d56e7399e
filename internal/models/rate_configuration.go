package models

import "github.com/shopspring/decimal"

// RateConfiguration is a row of rates_configuration. The maps are stored as
// JSONB, keyed by region name, indicator name and pair key respectively.
type RateConfiguration struct {
	ID         string                     `db:"id"`
	USDTPrices map[string]decimal.Decimal `db:"usdt_prices"`
	Indicators map[string]decimal.Decimal `db:"indicators"`
	Margins    map[string]decimal.Decimal `db:"margins"`
	AuditFields
}
