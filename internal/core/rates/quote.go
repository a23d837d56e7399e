package rates

import (
	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NewQuote prices one transfer. The amount to send is settled first, rounded to
// cents whether typed or derived backward, then the amount received is
// computed from it, so AmountReceived always equals AmountSent * ExchangeRate.
func NewQuote(cfg domain.RateConfiguration, source, target domain.Region, amount decimal.Decimal, direction domain.ConvertDirection) domain.Quote {
	rate := ComputeRate(source, target, cfg)
	q := domain.Quote{
		Source:           source,
		Target:           target,
		CurrencySent:     source.Currency(),
		CurrencyReceived: target.Currency(),
		ExchangeRate:     rate,
		Pair:             domain.LookupPairConfig(source, target),
		ConfigurationID:  cfg.ID,
	}

	if direction == domain.DirectionBackward {
		q.AmountSent = Convert(amount, domain.DirectionBackward, rate)
	} else {
		q.AmountSent = amount.Round(sentDecimals)
	}
	q.AmountReceived = Convert(q.AmountSent, domain.DirectionForward, rate)
	return q
}

// Board lists every quotable pair with its margin and rates, for the operator
// rate screen.
func Board(cfg domain.RateConfiguration) []domain.BoardEntry {
	sources := domain.SourceRegions()
	targets := domain.AllRegions()
	out := make([]domain.BoardEntry, 0, len(sources)*(len(targets)-1))
	for _, source := range sources {
		for _, target := range targets {
			if source == target {
				continue
			}
			pc := domain.LookupPairConfig(source, target)
			rate := ComputeRate(source, target, cfg)
			out = append(out, domain.BoardEntry{
				Source:    source,
				Target:    target,
				PairKey:   domain.PairKey(source, target),
				Margin:    cfg.MarginFor(source, target),
				RawRate:   RawRate(source, target, cfg),
				Rate:      rate,
				Formatted: FormatRateWith(rate, pc),
				Pair:      pc,
			})
		}
	}
	return out
}
