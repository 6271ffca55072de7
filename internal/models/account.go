package models

import (
	"github.com/shopspring/decimal"
)

// AccountType mirrors domain.AccountType for DB storage.
type AccountType string

const (
	Savings  AccountType = "SAVINGS"
	Checking AccountType = "CHECKING"
)

// Account is the DB representation of a bank account.
type Account struct {
	AccountID      string          `db:"account_id"`
	Number         string          `db:"number"`
	AccountType    AccountType     `db:"account_type"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	Status         string          `db:"status"`
	CustomerID     int64           `db:"customer_id"`
	AuditFields
}
