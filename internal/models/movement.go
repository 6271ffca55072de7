package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType mirrors domain.MovementType for DB storage.
type MovementType string

const (
	Debit  MovementType = "DEBIT"
	Credit MovementType = "CREDIT"
)

// Movement is the DB representation of a ledger movement. Balance is the
// account balance after this movement and is immutable once written.
type Movement struct {
	MovementID   string          `db:"movement_id"`
	AccountID    string          `db:"account_id"`
	MovementType MovementType    `db:"movement_type"`
	Value        decimal.Decimal `db:"value"`
	MovementDate time.Time       `db:"movement_date"`
	Balance      decimal.Decimal `db:"balance"`
	CreatedAt    time.Time       `db:"created_at"`
}
