package mapping

import (
	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/SscSPs/remittance_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:      d.TransactionID,
		UserID:             d.UserID,
		Status:             string(d.Status),
		AmountSent:         d.AmountSent,
		CurrencySent:       string(d.CurrencySent),
		AmountReceived:     d.AmountReceived,
		CurrencyReceived:   string(d.CurrencyReceived),
		ExchangeRate:       d.ExchangeRate,
		ReferenceID:        nullStringPtr(d.ReferenceID),
		PaymentProofURL:    nullStringPtr(d.PaymentProofURL),
		CompletionProofURL: nullStringPtr(d.CompletionProofURL),
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:      m.TransactionID,
		UserID:             m.UserID,
		Status:             domain.TransactionStatus(m.Status),
		AmountSent:         m.AmountSent,
		CurrencySent:       domain.CurrencyCode(m.CurrencySent),
		AmountReceived:     m.AmountReceived,
		CurrencyReceived:   domain.CurrencyCode(m.CurrencyReceived),
		ExchangeRate:       m.ExchangeRate,
		ReferenceID:        stringPtr(m.ReferenceID),
		PaymentProofURL:    stringPtr(m.PaymentProofURL),
		CompletionProofURL: stringPtr(m.CompletionProofURL),
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToDomainTransactionOverview converts a joined row to a domain TransactionOverview
func ToDomainTransactionOverview(m models.TransactionOverview) domain.TransactionOverview {
	return domain.TransactionOverview{
		Transaction:   ToDomainTransaction(m.Transaction),
		OwnerEmail:    m.OwnerEmail,
		OwnerFullName: m.OwnerFullName,
	}
}
