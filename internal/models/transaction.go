package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID      string          `db:"transaction_id"`
	UserID             string          `db:"user_id"`
	Status             string          `db:"status"`
	AmountSent         decimal.Decimal `db:"amount_sent"`
	CurrencySent       string          `db:"currency_sent"`
	AmountReceived     decimal.Decimal `db:"amount_received"`
	CurrencyReceived   string          `db:"currency_received"`
	ExchangeRate       decimal.Decimal `db:"exchange_rate"`
	ReferenceID        sql.NullString  `db:"reference_id"`
	PaymentProofURL    sql.NullString  `db:"payment_proof_url"`
	CompletionProofURL sql.NullString  `db:"completion_proof_url"`
	AuditFields
}

// TransactionOverview is a transaction joined with its owner's profile.
type TransactionOverview struct {
	Transaction
	OwnerEmail    string `db:"owner_email"`
	OwnerFullName string `db:"owner_full_name"`
}
