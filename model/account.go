package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Balances go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// StatusActive is the only account status this service produces.
// No lifecycle transitions exist: accounts are created active and stay active.
const StatusActive = "ACTIVE"

type Account struct {
	ID            uuid.UUID       `json:"id"`
	CustomerID    uuid.UUID       `json:"customerId"`
	AccountNumber string          `json:"accountNumber"`
	Currency      string          `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
