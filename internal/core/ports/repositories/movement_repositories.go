package repositories

import (
	"context"
	"time"

	"github.com/andinabank/ledger-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MovementReader defines read operations for movement data.
type MovementReader interface {
	// FindMovementByID retrieves a movement with its account number attached.
	FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error)

	// FindLatestBalance returns the stored balance of the account's most
	// recent movement, ordered by movement date descending. It returns
	// (nil, nil) when the account has no movements yet; the caller falls
	// back to the account's initial balance.
	FindLatestBalance(ctx context.Context, accountID string) (*decimal.Decimal, error)

	// FindMovementsByAccountAndRange retrieves the account's movements with
	// movement date in [from, to], ascending.
	FindMovementsByAccountAndRange(ctx context.Context, accountID string, from, to time.Time) ([]domain.Movement, error)

	// ListMovements retrieves a page of movements ordered by movement date
	// descending, with a token for the next page.
	ListMovements(ctx context.Context, limit int, nextToken *string) ([]domain.Movement, *string, error)
}

// MovementWriter defines write operations for movement data.
type MovementWriter interface {
	// SaveMovementGuarded persists a movement whose balance was derived from
	// expectedBase (nil when the account had no movements). The write runs in
	// a transaction that locks the account row and re-reads the latest
	// balance; a mismatch against expectedBase fails with
	// apperrors.ErrConflict and writes nothing.
	SaveMovementGuarded(ctx context.Context, movement domain.Movement, expectedBase *decimal.Decimal) error

	// SaveMovement persists a movement as-is, trusting the caller-supplied
	// balance. Lower-level primitive beneath the guarded register path.
	SaveMovement(ctx context.Context, movement domain.Movement) error

	// UpdateMovement re-persists a movement wholesale under its identifier.
	UpdateMovement(ctx context.Context, movement domain.Movement) error

	// DeleteMovement removes a movement row. Later movements' stored
	// balances are left untouched.
	DeleteMovement(ctx context.Context, movementID string) error
}

// MovementRepository is the full movement persistence contract.
type MovementRepository interface {
	MovementReader
	MovementWriter
}
