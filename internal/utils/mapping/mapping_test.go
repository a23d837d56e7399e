package mapping_test

import (
	"testing"

	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/SscSPs/remittance_app/internal/models"
	"github.com/SscSPs/remittance_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDomainRateConfiguration_FoldsLegacyKeys(t *testing.T) {
	row := models.RateConfiguration{
		ID: "cfg-1",
		USDTPrices: map[string]decimal.Decimal{
			"PEN":     decimal.RequireFromString("3.75"),
			"VES":     decimal.RequireFromString("38.5"),
			"BCV":     decimal.RequireFromString("36.1"),
			"UNKNOWN": decimal.RequireFromString("1"),
		},
		Margins: map[string]decimal.Decimal{
			"PEN_VENEZUELA": decimal.RequireFromString("5"),
			"GENERIC":       decimal.RequireFromString("3"),
		},
	}

	cfg := mapping.ToDomainRateConfiguration(row)

	assert.Len(t, cfg.BasePrices, 2)
	assert.True(t, cfg.BasePrices[domain.RegionPeru].Equal(decimal.RequireFromString("3.75")))
	assert.True(t, cfg.Indicators[domain.IndicatorBCV].Equal(decimal.RequireFromString("36.1")))
	assert.Contains(t, cfg.Margins, "PERU_VES")
	assert.Contains(t, cfg.Margins, domain.GenericMarginKey)
}

func TestTransactionMapping_OptionalFields(t *testing.T) {
	proof := "https://storage.example/p.png"
	empty := ""
	txn := domain.Transaction{
		TransactionID:   "tx-1",
		Status:          domain.StatusVerifying,
		PaymentProofURL: &proof,
		ReferenceID:     &empty,
	}

	row := mapping.ToModelTransaction(txn)
	assert.True(t, row.PaymentProofURL.Valid)
	assert.False(t, row.ReferenceID.Valid)
	assert.False(t, row.CompletionProofURL.Valid)

	back := mapping.ToDomainTransaction(row)
	assert.Equal(t, proof, *back.PaymentProofURL)
	assert.Nil(t, back.ReferenceID)
	assert.Nil(t, back.CompletionProofURL)
}

func TestToDomainProfile_UnknownRole(t *testing.T) {
	p := mapping.ToDomainProfile(models.Profile{UserID: "u", Role: "superuser"})
	assert.Equal(t, domain.RoleUser, p.Role)
}
