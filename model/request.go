// file: model/request.go

package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the payload for opening a new account.
// It includes validation tags to ensure data integrity at the entry point.
//
// OpeningBalance is a pointer so that an absent field can be told apart from
// a legitimate zero opening balance.
type CreateAccountRequest struct {
	CustomerID     uuid.UUID        `json:"customerId" validate:"required"`
	AccountNumber  string           `json:"accountNumber" validate:"required,max=32"`
	Currency       string           `json:"currency" validate:"required,len=3,alpha,uppercase"`
	OpeningBalance *decimal.Decimal `json:"openingBalance" validate:"required,gte=0"`
}
