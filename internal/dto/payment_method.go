package dto

import "github.com/SscSPs/remittance_app/internal/core/domain"

// CreatePaymentMethodRequest defines the data needed to add a collection account.
type CreatePaymentMethodRequest struct {
	Region        string `json:"region" binding:"required,region"`
	MethodType    string `json:"methodType" binding:"required"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	HolderName    string `json:"holderName" binding:"required"`
	HolderID      string `json:"holderID"`
	IsActive      *bool  `json:"isActive"`
}

// UpdatePaymentMethodRequest defines the updatable fields of a collection account.
type UpdatePaymentMethodRequest struct {
	MethodType    *string `json:"methodType"`
	BankName      *string `json:"bankName"`
	AccountNumber *string `json:"accountNumber"`
	HolderName    *string `json:"holderName"`
	HolderID      *string `json:"holderID"`
	IsActive      *bool   `json:"isActive"`
}

// ListPaymentMethodsParams filters collection accounts.
type ListPaymentMethodsParams struct {
	Region        *string `form:"region" binding:"omitempty,region"`
	IncludeHidden bool    `form:"includeInactive"`
}

// PaymentMethodResponse defines the data returned for a collection account.
type PaymentMethodResponse struct {
	PaymentMethodID string              `json:"paymentMethodID"`
	Region          domain.Region       `json:"region"`
	Currency        domain.CurrencyCode `json:"currency"`
	MethodType      string              `json:"methodType"`
	BankName        string              `json:"bankName,omitempty"`
	AccountNumber   string              `json:"accountNumber"`
	HolderName      string              `json:"holderName"`
	HolderID        string              `json:"holderID,omitempty"`
	IsActive        bool                `json:"isActive"`
}

// ToPaymentMethodResponse converts a domain.PaymentMethod to its response DTO.
func ToPaymentMethodResponse(pm *domain.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		PaymentMethodID: pm.PaymentMethodID,
		Region:          pm.Region,
		Currency:        pm.Region.Currency(),
		MethodType:      pm.MethodType,
		BankName:        pm.BankName,
		AccountNumber:   pm.AccountNumber,
		HolderName:      pm.HolderName,
		HolderID:        pm.HolderID,
		IsActive:        pm.IsActive,
	}
}

// ToPaymentMethodResponses converts a slice of domain.PaymentMethod.
func ToPaymentMethodResponses(pms []domain.PaymentMethod) []PaymentMethodResponse {
	out := make([]PaymentMethodResponse, len(pms))
	for i := range pms {
		out[i] = ToPaymentMethodResponse(&pms[i])
	}
	return out
}
