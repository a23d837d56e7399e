package models

import "database/sql"

// PaymentMethod is a row of the payment_methods table.
type PaymentMethod struct {
	PaymentMethodID string         `db:"payment_method_id"`
	Region          string         `db:"region"`
	MethodType      string         `db:"method_type"`
	BankName        sql.NullString `db:"bank_name"`
	AccountNumber   string         `db:"account_number"`
	HolderName      string         `db:"holder_name"`
	HolderID        sql.NullString `db:"holder_id"`
	IsActive        bool           `db:"is_active"`
	AuditFields
}
