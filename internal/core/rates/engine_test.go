package rates_test

import (
	"testing"

	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/SscSPs/remittance_app/internal/core/rates"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testConfig(margins map[string]decimal.Decimal) domain.RateConfiguration {
	return domain.RateConfiguration{
		ID: "cfg-1",
		BasePrices: map[domain.Region]decimal.Decimal{
			domain.RegionPeru:      d("3.75"),
			domain.RegionChile:     d("950"),
			domain.RegionColombia:  d("3900"),
			domain.RegionUSA:       d("1"),
			domain.RegionVenezuela: d("38.5"),
		},
		Margins: margins,
	}
}

func TestComputeRate_WorkedExamples(t *testing.T) {
	t.Run("PERU to VES forward pair", func(t *testing.T) {
		cfg := testConfig(map[string]decimal.Decimal{"PERU_VES": d("5")})

		rate := rates.ComputeRate(domain.RegionPeru, domain.RegionVenezuela, cfg)

		assert.Equal(t, "9.75", rate.StringFixed(2))
		received := rates.Convert(d("100"), domain.DirectionForward, rate)
		assert.Equal(t, "975.00", received.StringFixed(2))
	})

	t.Run("COLOMBIA to VES inverse pair", func(t *testing.T) {
		cfg := testConfig(map[string]decimal.Decimal{"COLOMBIA_VES": d("10")})

		rate := rates.ComputeRate(domain.RegionColombia, domain.RegionVenezuela, cfg)

		assert.Equal(t, "111.43", rate.StringFixed(2))
	})
}

func TestComputeRate_ZeroMarginIsExactRatio(t *testing.T) {
	cfg := testConfig(nil)

	raw := rates.RawRate(domain.RegionPeru, domain.RegionVenezuela, cfg)
	assert.True(t, raw.Equal(d("38.5").Div(d("3.75"))))

	raw = rates.RawRate(domain.RegionColombia, domain.RegionVenezuela, cfg)
	assert.True(t, raw.Equal(d("3900").Div(d("38.5"))))

	// rounded to the pair's decimals, half away from zero
	assert.Equal(t, "10.27", rates.ComputeRate(domain.RegionPeru, domain.RegionVenezuela, cfg).String())
}

func TestComputeRate_MissingOrZeroPrice(t *testing.T) {
	for _, margin := range []string{"0", "5", "-3", "150"} {
		cfg := testConfig(map[string]decimal.Decimal{domain.GenericMarginKey: d(margin)})
		cfg.BasePrices[domain.RegionChile] = decimal.Zero
		delete(cfg.BasePrices, domain.RegionUSA)

		assert.True(t, rates.ComputeRate(domain.RegionPeru, domain.RegionChile, cfg).IsZero(), "margin %s", margin)
		assert.True(t, rates.ComputeRate(domain.RegionChile, domain.RegionPeru, cfg).IsZero(), "margin %s", margin)
		assert.True(t, rates.ComputeRate(domain.RegionUSA, domain.RegionVenezuela, cfg).IsZero(), "margin %s", margin)
	}

	assert.True(t, rates.ComputeRate(domain.RegionPeru, domain.RegionVenezuela, domain.RateConfiguration{}).IsZero())
}

func TestComputeRate_MarginMonotonicity(t *testing.T) {
	low := testConfig(map[string]decimal.Decimal{domain.GenericMarginKey: d("2")})
	high := testConfig(map[string]decimal.Decimal{domain.GenericMarginKey: d("8")})

	// forward pair: more margin, fewer units received
	assert.True(t, rates.RawRate(domain.RegionPeru, domain.RegionVenezuela, high).
		LessThan(rates.RawRate(domain.RegionPeru, domain.RegionVenezuela, low)))

	// inverse pair: more margin, higher cost per unit
	assert.True(t, rates.RawRate(domain.RegionColombia, domain.RegionVenezuela, high).
		GreaterThan(rates.RawRate(domain.RegionColombia, domain.RegionVenezuela, low)))
}

func TestComputeRate_GenericFallback(t *testing.T) {
	cfg := testConfig(map[string]decimal.Decimal{
		domain.GenericMarginKey: d("5"),
		"USA_VES":               decimal.Zero,
	})

	// USA_VES has an explicit zero and is not affected by GENERIC
	assert.Equal(t, "38.50", rates.ComputeRate(domain.RegionUSA, domain.RegionVenezuela, cfg).StringFixed(2))
	assert.Equal(t, "9.75", rates.ComputeRate(domain.RegionPeru, domain.RegionVenezuela, cfg).StringFixed(2))
}

func TestApplyMargin(t *testing.T) {
	ratio := d("100")

	assert.True(t, rates.ApplyMargin(ratio, d("10"), domain.PairConfig{IsInverse: true}).Equal(d("110")))
	assert.True(t, rates.ApplyMargin(ratio, d("10"), domain.PairConfig{}).Equal(d("90")))
	assert.True(t, rates.ApplyMargin(ratio, decimal.Zero, domain.PairConfig{}).Equal(ratio))
}
