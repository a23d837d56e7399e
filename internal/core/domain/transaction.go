package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of a remittance.
type TransactionStatus string

const (
	StatusVerifying TransactionStatus = "verifying"
	StatusVerified  TransactionStatus = "verified"
	StatusCompleted TransactionStatus = "completed"
	StatusRejected  TransactionStatus = "rejected"
)

// transitions lists the forward edges of the lifecycle graph.
var transitions = map[TransactionStatus][]TransactionStatus{
	StatusVerifying: {StatusVerified, StatusRejected},
	StatusVerified:  {StatusCompleted, StatusRejected},
}

// IsValid reports whether s is a known status.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusVerifying, StatusVerified, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// CanTransitionTo reports whether s -> next is an edge of the lifecycle graph.
// Staying in the same status is not an edge.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ConvertDirection says which side of a quote the customer typed.
type ConvertDirection string

const (
	// DirectionForward converts an amount sent into the amount received.
	DirectionForward ConvertDirection = "sent"
	// DirectionBackward converts an amount received back into the amount to send.
	DirectionBackward ConvertDirection = "received"
)

// Quote is a priced offer for one transfer, computed from a single
// configuration snapshot.
type Quote struct {
	Source           Region          `json:"source"`
	Target           Region          `json:"target"`
	AmountSent       decimal.Decimal `json:"amountSent"`
	CurrencySent     CurrencyCode    `json:"currencySent"`
	AmountReceived   decimal.Decimal `json:"amountReceived"`
	CurrencyReceived CurrencyCode    `json:"currencyReceived"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	Pair             PairConfig      `json:"pair"`
	ConfigurationID  string          `json:"configurationID"`
}

// Available reports whether the quote carries a real rate. Zero is never a
// valid market rate, so a zero rate means the configuration was incomplete.
func (q Quote) Available() bool {
	return q.ExchangeRate.IsPositive()
}

// Transaction is one remittance attempt.
type Transaction struct {
	TransactionID      string            `json:"transactionID"`
	UserID             string            `json:"userID"`
	Status             TransactionStatus `json:"status"`
	AmountSent         decimal.Decimal   `json:"amountSent"`
	CurrencySent       CurrencyCode      `json:"currencySent"`
	AmountReceived     decimal.Decimal   `json:"amountReceived"`
	CurrencyReceived   CurrencyCode      `json:"currencyReceived"`
	ExchangeRate       decimal.Decimal   `json:"exchangeRate"` // frozen at creation
	ReferenceID        *string           `json:"referenceID,omitempty"`
	PaymentProofURL    *string           `json:"paymentProofURL,omitempty"`
	CompletionProofURL *string           `json:"completionProofURL,omitempty"`
	AuditFields
}

// NewTransaction builds the record for a freshly quoted transfer. The rate and
// amounts are copied from the quote and never recomputed.
func NewTransaction(id, ownerID string, quote Quote, now time.Time) Transaction {
	return Transaction{
		TransactionID:    id,
		UserID:           ownerID,
		Status:           StatusVerifying,
		AmountSent:       quote.AmountSent,
		CurrencySent:     quote.CurrencySent,
		AmountReceived:   quote.AmountReceived,
		CurrencyReceived: quote.CurrencyReceived,
		ExchangeRate:     quote.ExchangeRate,
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}
}

// HasCompletionProof reports whether a payout proof is already on the record.
func (t Transaction) HasCompletionProof() bool {
	return t.CompletionProofURL != nil && *t.CompletionProofURL != ""
}

// OwnedBy reports whether userID created the transaction.
func (t Transaction) OwnedBy(userID string) bool {
	return t.UserID == userID
}

// StatusUpdate is the only mutation applied to a transaction after creation.
type StatusUpdate struct {
	TransactionID      string
	ExpectedStatus     TransactionStatus // optimistic check: the status that was read
	NewStatus          TransactionStatus
	CompletionProofURL *string
	UpdatedAt          time.Time
	UpdatedBy          string
}

// TransactionOverview adds the owner's identity for the operator queue.
type TransactionOverview struct {
	Transaction
	OwnerEmail    string `json:"ownerEmail"`
	OwnerFullName string `json:"ownerFullName"`
}
