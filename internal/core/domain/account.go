package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType identifies the product kind of a bank account.
type AccountType string

const (
	Savings  AccountType = "SAVINGS"
	Checking AccountType = "CHECKING"
)

// Account represents a bank account owned by a customer.
// InitialBalance is set once at creation and is the baseline balance while
// the account has no movements.
type Account struct {
	AccountID      string          `json:"accountID"`
	Number         string          `json:"number"`
	AccountType    AccountType     `json:"accountType"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Status         StatusType      `json:"status"`
	CustomerID     int64           `json:"customerID"`
	AuditFields
}
