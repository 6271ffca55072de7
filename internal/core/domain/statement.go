package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine is a movement projected into a statement: stored values are
// read back as persisted, never re-derived.
type StatementLine struct {
	MovementType MovementType    `json:"movementType"`
	Value        decimal.Decimal `json:"value"`
	MovementDate time.Time       `json:"movementDate"`
	Balance      decimal.Decimal `json:"balance"`
}

// StatementAccount is one account's section within a statement. Key is
// "{number}-{accountType}", unique within a customer's active accounts.
type StatementAccount struct {
	Key            string          `json:"key"`
	Number         string          `json:"number"`
	AccountType    AccountType     `json:"accountType"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Lines          []StatementLine `json:"lines"`
}

// Statement groups a customer's account movements over a date range.
type Statement struct {
	Customer  CustomerReference  `json:"customer"`
	StartDate time.Time          `json:"startDate"`
	EndDate   time.Time          `json:"endDate"`
	Accounts  []StatementAccount `json:"accounts"`
}

// Movements returns the per-account movement lists keyed by account key,
// last write winning should the storage layer ever hand back a duplicate key.
func (s Statement) Movements() map[string][]StatementLine {
	out := make(map[string][]StatementLine, len(s.Accounts))
	for _, acc := range s.Accounts {
		out[acc.Key] = acc.Lines
	}
	return out
}
