package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending = "pending"
	StatusSent    = "sent"
)

type Order struct {
	ID            int64           `json:"id" db:"id"`
	Username      string          `json:"username" db:"username"`
	StarAmount    int             `json:"star_amount" db:"star_amount"`
	PriceUSD      decimal.Decimal `json:"price_usd" db:"price_usd"`
	Status        string          `json:"status" db:"status"`
	TransactionID string          `json:"transaction_id" db:"transaction_id"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     *time.Time      `json:"updated_at" db:"updated_at"`
}
