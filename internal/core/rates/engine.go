// Package rates prices transfers between regions from an explicit
// configuration snapshot. Nothing here touches storage and nothing returns an
// error: a zero rate means no quote is available.
package rates

import (
	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RawRate returns the margin-adjusted rate of source -> target before rounding.
func RawRate(source, target domain.Region, cfg domain.RateConfiguration) decimal.Decimal {
	sourcePrice, ok := cfg.BasePrice(source)
	if !ok {
		return decimal.Zero
	}
	targetPrice, ok := cfg.BasePrice(target)
	if !ok {
		return decimal.Zero
	}

	pc := domain.LookupPairConfig(source, target)
	var ratio decimal.Decimal
	if pc.IsInverse {
		ratio = sourcePrice.Div(targetPrice)
	} else {
		ratio = targetPrice.Div(sourcePrice)
	}
	return ApplyMargin(ratio, cfg.MarginFor(source, target), pc)
}

// ComputeRate returns the authoritative rate of source -> target, rounded to
// the pair's decimals. Every conversion must use this value, not RawRate.
func ComputeRate(source, target domain.Region, cfg domain.RateConfiguration) decimal.Decimal {
	pc := domain.LookupPairConfig(source, target)
	return RawRate(source, target, cfg).Round(pc.Decimals)
}

// ApplyMargin moves ratio against the customer by margin percent. Inverse
// pairs are a cost per unit received, so the margin raises them; forward pairs
// are a yield per unit sent, so the margin lowers them.
func ApplyMargin(ratio, margin decimal.Decimal, pc domain.PairConfig) decimal.Decimal {
	factor := margin.Div(hundred)
	if pc.IsInverse {
		return ratio.Mul(decimal.NewFromInt(1).Add(factor))
	}
	return ratio.Mul(decimal.NewFromInt(1).Sub(factor))
}
