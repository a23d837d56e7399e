package rates_test

import (
	"testing"

	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/SscSPs/remittance_app/internal/core/rates"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuote_Forward(t *testing.T) {
	cfg := testConfig(map[string]decimal.Decimal{"PERU_VES": d("5")})

	q := rates.NewQuote(cfg, domain.RegionPeru, domain.RegionVenezuela, d("100"), domain.DirectionForward)

	assert.True(t, q.Available())
	assert.Equal(t, domain.CurrencyPEN, q.CurrencySent)
	assert.Equal(t, domain.CurrencyVES, q.CurrencyReceived)
	assert.True(t, q.AmountSent.Equal(d("100")))
	assert.True(t, q.AmountReceived.Equal(d("975")))
	assert.Equal(t, "cfg-1", q.ConfigurationID)
}

func TestNewQuote_ForwardRoundsAmountSentToCents(t *testing.T) {
	cfg := testConfig(map[string]decimal.Decimal{"PERU_VES": d("5")})

	q := rates.NewQuote(cfg, domain.RegionPeru, domain.RegionVenezuela, d("100.555"), domain.DirectionForward)

	assert.Equal(t, "100.56", q.AmountSent.String())
	assert.True(t, q.AmountReceived.Equal(q.AmountSent.Mul(q.ExchangeRate)))
	assert.Equal(t, "980.46", q.AmountReceived.String())
}

func TestNewQuote_BackwardRecomputesReceived(t *testing.T) {
	cfg := testConfig(map[string]decimal.Decimal{"PERU_VES": d("5")})

	q := rates.NewQuote(cfg, domain.RegionPeru, domain.RegionVenezuela, d("1000"), domain.DirectionBackward)

	assert.Equal(t, "102.56", q.AmountSent.String())
	assert.True(t, q.AmountReceived.Equal(q.AmountSent.Mul(q.ExchangeRate)))
	assert.Equal(t, "999.96", q.AmountReceived.StringFixed(2))
}

func TestNewQuote_Unavailable(t *testing.T) {
	q := rates.NewQuote(domain.RateConfiguration{}, domain.RegionPeru, domain.RegionVenezuela, d("100"), domain.DirectionForward)

	assert.False(t, q.Available())
	assert.True(t, q.AmountReceived.IsZero())
}

func TestBoard(t *testing.T) {
	cfg := testConfig(map[string]decimal.Decimal{"PERU_VES": d("5")})

	board := rates.Board(cfg)

	require.Len(t, board, 16)
	var found bool
	for _, e := range board {
		assert.NotEqual(t, e.Source, e.Target)
		assert.NotEqual(t, domain.RegionVenezuela, e.Source)
		if e.PairKey == "PERU_VES" {
			found = true
			assert.Equal(t, "9,75", e.Formatted)
			assert.True(t, e.Margin.Equal(d("5")))
		}
	}
	assert.True(t, found)
}
