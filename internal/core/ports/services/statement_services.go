package services

import (
	"context"
	"time"

	"github.com/andinabank/ledger-service/internal/core/domain"
)

// StatementSvc assembles per-customer account statements.
type StatementSvc interface {
	// GetStatement gathers the customer's ACTIVE accounts and, per account,
	// the ordered movement history within [from, to]. Fails with
	// apperrors.ErrNotFound when the customer projection is absent. An
	// account with no movements in range yields an empty list, not an error.
	GetStatement(ctx context.Context, customerID int64, from, to time.Time) (*domain.Statement, error)

	// ExportStatementXLSX renders the statement as a spreadsheet, including
	// each account's current balance resolved at export time.
	ExportStatementXLSX(ctx context.Context, customerID int64, from, to time.Time) ([]byte, error)
}
