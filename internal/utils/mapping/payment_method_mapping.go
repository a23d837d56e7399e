package mapping

import (
	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/SscSPs/remittance_app/internal/models"
)

// ToModelPaymentMethod converts a domain PaymentMethod to a model PaymentMethod
func ToModelPaymentMethod(d domain.PaymentMethod) models.PaymentMethod {
	return models.PaymentMethod{
		PaymentMethodID: d.PaymentMethodID,
		Region:          string(d.Region),
		MethodType:      d.MethodType,
		BankName:        nullString(d.BankName),
		AccountNumber:   d.AccountNumber,
		HolderName:      d.HolderName,
		HolderID:        nullString(d.HolderID),
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPaymentMethod converts a model PaymentMethod to a domain PaymentMethod
func ToDomainPaymentMethod(m models.PaymentMethod) domain.PaymentMethod {
	return domain.PaymentMethod{
		PaymentMethodID: m.PaymentMethodID,
		Region:          domain.Region(m.Region),
		MethodType:      m.MethodType,
		BankName:        m.BankName.String,
		AccountNumber:   m.AccountNumber,
		HolderName:      m.HolderName,
		HolderID:        m.HolderID.String,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
