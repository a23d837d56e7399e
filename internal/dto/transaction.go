package dto

import (
	"time"

	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to open a transfer.
// QuotedRate, when sent, must still match the current rate.
type CreateTransactionRequest struct {
	Source      string           `json:"source" binding:"required,region"`
	Target      string           `json:"target" binding:"required,region"`
	Amount      string           `json:"amount" binding:"required"`
	Direction   string           `json:"direction" binding:"omitempty,oneof=sent received"`
	QuotedRate  *decimal.Decimal `json:"quotedRate"`
	ReferenceID *string          `json:"referenceID" binding:"omitempty,max=64"`
}

// AttachPaymentProofRequest carries a reference to an already stored artifact.
type AttachPaymentProofRequest struct {
	PaymentProofURL string `json:"paymentProofURL" binding:"required,url"`
}

// UpdateTransactionStatusRequest is the operator's transition request.
type UpdateTransactionStatusRequest struct {
	Status             string  `json:"status" binding:"required,txstatus"`
	CompletionProofURL *string `json:"completionProofURL" binding:"omitempty,url"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
	Status    *string `form:"status" binding:"omitempty,txstatus"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID      string                   `json:"transactionID"`
	UserID             string                   `json:"userID"`
	Status             domain.TransactionStatus `json:"status"`
	AmountSent         decimal.Decimal          `json:"amountSent"`
	CurrencySent       domain.CurrencyCode      `json:"currencySent"`
	AmountReceived     decimal.Decimal          `json:"amountReceived"`
	CurrencyReceived   domain.CurrencyCode      `json:"currencyReceived"`
	ExchangeRate       decimal.Decimal          `json:"exchangeRate"`
	FormattedRate      string                   `json:"formattedRate"`
	ReferenceID        *string                  `json:"referenceID,omitempty"`
	PaymentProofURL    *string                  `json:"paymentProofURL,omitempty"`
	CompletionProofURL *string                  `json:"completionProofURL,omitempty"`
	CreatedAt          time.Time                `json:"createdAt"`
	LastUpdatedAt      time.Time                `json:"lastUpdatedAt"`
	LastUpdatedBy      string                   `json:"lastUpdatedBy"`
	OwnerEmail         string                   `json:"ownerEmail,omitempty"`
	OwnerFullName      string                   `json:"ownerFullName,omitempty"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
// formattedRate is supplied by the caller, which knows the pair's precision.
func ToTransactionResponse(txn *domain.Transaction, formattedRate string) TransactionResponse {
	return TransactionResponse{
		TransactionID:      txn.TransactionID,
		UserID:             txn.UserID,
		Status:             txn.Status,
		AmountSent:         txn.AmountSent,
		CurrencySent:       txn.CurrencySent,
		AmountReceived:     txn.AmountReceived,
		CurrencyReceived:   txn.CurrencyReceived,
		ExchangeRate:       txn.ExchangeRate,
		FormattedRate:      formattedRate,
		ReferenceID:        txn.ReferenceID,
		PaymentProofURL:    txn.PaymentProofURL,
		CompletionProofURL: txn.CompletionProofURL,
		CreatedAt:          txn.CreatedAt,
		LastUpdatedAt:      txn.LastUpdatedAt,
		LastUpdatedBy:      txn.LastUpdatedBy,
	}
}
