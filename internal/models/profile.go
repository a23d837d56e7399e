package models

import "database/sql"

// Profile is a row of the profiles table.
type Profile struct {
	UserID       string         `db:"user_id"`
	Email        string         `db:"email"`
	FullName     string         `db:"full_name"`
	Phone        sql.NullString `db:"phone"`
	ClientCode   sql.NullString `db:"client_code"`
	Role         string         `db:"role"`
	PasswordHash string         `db:"password_hash"`
	AuditFields
}
