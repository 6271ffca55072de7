package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType indicates whether a movement credits or debits the account.
type MovementType string

const (
	Credit MovementType = "CREDIT"
	Debit  MovementType = "DEBIT"
)

// Movement is a single credit or debit recorded against an account,
// immutable once persisted. Value is always positive; the direction is
// carried by MovementType. Balance is the account balance after this
// movement, computed at insertion time.
type Movement struct {
	MovementID   string          `json:"movementID"`
	AccountID    string          `json:"accountID"`
	MovementType MovementType    `json:"movementType"`
	Value        decimal.Decimal `json:"value"`
	MovementDate time.Time       `json:"movementDate"`
	Balance      decimal.Decimal `json:"balance"`
	// AccountNumber is attached for display when the movement is returned
	// with its account loaded; it is not stored on the movement row.
	AccountNumber string `json:"accountNumber,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SignedValue returns the value with the sign implied by the movement type.
func (m Movement) SignedValue() decimal.Decimal {
	if m.MovementType == Debit {
		return m.Value.Neg()
	}
	return m.Value
}
