package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// GenericMarginKey is the fallback margin entry used when a pair has no margin of its own.
const GenericMarginKey = "GENERIC"

// Indicator is a Venezuela-specific informational price shown next to the rates.
// Indicators never take part in the rate formula.
type Indicator string

const (
	IndicatorMonitor Indicator = "MONITOR"
	IndicatorBCV     Indicator = "BCV"
)

// RateConfiguration is the operator-maintained basket of base prices and margins.
// Only the most recently updated configuration is authoritative.
type RateConfiguration struct {
	ID         string                        `json:"id"`
	BasePrices map[Region]decimal.Decimal    `json:"basePrices"` // price of one reference unit (USDT) in each region's currency
	Indicators map[Indicator]decimal.Decimal `json:"indicators"`
	Margins    map[string]decimal.Decimal    `json:"margins"` // canonical pair key or GENERIC -> percentage
	AuditFields
}

// BasePrice returns the base price of r and whether it is usable (present and positive).
func (c RateConfiguration) BasePrice(r Region) (decimal.Decimal, bool) {
	price, ok := c.BasePrices[r]
	if !ok || !price.IsPositive() {
		return decimal.Zero, false
	}
	return price, true
}

// MarginFor returns the margin percentage of source -> target: the pair's own
// entry, else the GENERIC entry, else zero.
func (c RateConfiguration) MarginFor(source, target Region) decimal.Decimal {
	if m, ok := c.Margins[PairKey(source, target)]; ok {
		return m
	}
	if m, ok := c.Margins[GenericMarginKey]; ok {
		return m
	}
	return decimal.Zero
}

// NormalizeMargins rewrites every margin key to its canonical pair form.
// Keys that are neither GENERIC nor a parseable pair are returned in invalid.
func NormalizeMargins(in map[string]decimal.Decimal) (normalized map[string]decimal.Decimal, invalid []string) {
	normalized = make(map[string]decimal.Decimal, len(in))
	for key, margin := range in {
		if key == GenericMarginKey {
			normalized[GenericMarginKey] = margin
			continue
		}
		source, target, ok := ParsePairKey(key)
		if !ok {
			invalid = append(invalid, key)
			continue
		}
		normalized[PairKey(source, target)] = margin
	}
	sort.Strings(invalid)
	return normalized, invalid
}

// Validate checks a configuration before it is persisted.
func (c RateConfiguration) Validate() error {
	for region, price := range c.BasePrices {
		if !region.IsValid() {
			return fmt.Errorf("unknown region %q in base prices", region)
		}
		if price.IsNegative() {
			return fmt.Errorf("base price for %s must not be negative", region)
		}
	}
	for indicator, price := range c.Indicators {
		if indicator != IndicatorMonitor && indicator != IndicatorBCV {
			return fmt.Errorf("unknown indicator %q", indicator)
		}
		if price.IsNegative() {
			return fmt.Errorf("indicator %s must not be negative", indicator)
		}
	}
	if _, invalid := NormalizeMargins(c.Margins); len(invalid) > 0 {
		return fmt.Errorf("invalid margin keys: %v", invalid)
	}
	return nil
}
