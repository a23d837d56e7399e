package domain

// PaymentMethod is an operator collection account that customers pay into.
type PaymentMethod struct {
	PaymentMethodID string `json:"paymentMethodID"` // Primary Key (UUID)
	Region          Region `json:"region"`
	MethodType      string `json:"methodType"` // e.g. "BANK_TRANSFER", "ZELLE", "YAPE"
	BankName        string `json:"bankName"`
	AccountNumber   string `json:"accountNumber"`
	HolderName      string `json:"holderName"`
	HolderID        string `json:"holderID"` // national id of the holder, optional
	IsActive        bool   `json:"isActive"`
	AuditFields
}
