package domain

import "github.com/shopspring/decimal"

// BoardEntry is one cell of the operator's rate board.
type BoardEntry struct {
	Source    Region          `json:"source"`
	Target    Region          `json:"target"`
	PairKey   string          `json:"pairKey"`
	Margin    decimal.Decimal `json:"margin"`
	RawRate   decimal.Decimal `json:"rawRate"`
	Rate      decimal.Decimal `json:"rate"`
	Formatted string          `json:"formatted"`
	Pair      PairConfig      `json:"pair"`
}

// Dashboard is the operator overview.
type Dashboard struct {
	Configuration *RateConfiguration                `json:"configuration,omitempty"`
	Board         []BoardEntry                      `json:"board"`
	StatusCounts  map[TransactionStatus]int         `json:"statusCounts"`
	PendingVolume map[CurrencyCode]decimal.Decimal `json:"pendingVolume"` // amount sent not yet settled
}
