package services

import (
	"context"

	"github.com/andinabank/ledger-service/internal/core/domain"
	"github.com/andinabank/ledger-service/internal/dto"
	"github.com/shopspring/decimal"
)

// MovementSvc exposes ledger movement operations.
type MovementSvc interface {
	// RegisterMovement validates and records a credit or debit against an
	// account, deriving the resulting balance from the current one. It
	// fails with apperrors.ErrValidation for a non-positive value,
	// apperrors.ErrNotFound for a missing account,
	// apperrors.ErrAccountDeleted for a soft-deleted account and
	// apperrors.ErrInsufficientBalance when a debit would drive the balance
	// negative. No error path performs a write.
	RegisterMovement(ctx context.Context, req dto.RegisterMovementRequest) (*domain.Movement, error)

	// CreateMovement persists a movement with the caller-supplied balance,
	// only checking that the value is positive. It is the generic CRUD path
	// beneath RegisterMovement and does not re-derive the balance.
	CreateMovement(ctx context.Context, req dto.CreateMovementRequest) (*domain.Movement, error)

	// UpdateMovement re-persists a movement wholesale under an existing
	// identifier; the target must exist.
	UpdateMovement(ctx context.Context, movementID string, req dto.CreateMovementRequest) (*domain.Movement, error)

	// DeleteMovement removes a movement. Stored balances of later movements
	// are not recomputed.
	DeleteMovement(ctx context.Context, movementID string) error

	// GetMovementByID retrieves a movement by identifier.
	GetMovementByID(ctx context.Context, movementID string) (*domain.Movement, error)

	// ListMovements retrieves a page of movements.
	ListMovements(ctx context.Context, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error)

	// GetCurrentBalance resolves the account's most recent known balance:
	// the latest movement's stored balance, or nil when no movement exists
	// (callers fall back to the account's initial balance). Read-only.
	GetCurrentBalance(ctx context.Context, accountID string) (*decimal.Decimal, error)
}
