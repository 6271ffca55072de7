package services

import (
	"context"

	"github.com/andinabank/ledger-service/internal/core/domain"
	"github.com/andinabank/ledger-service/internal/dto"
)

// AccountSvc exposes account lifecycle operations on the ledger service.
type AccountSvc interface {
	// CreateAccount opens a new account for a customer. The initial balance
	// is set once here and never mutated afterwards.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// GetAccountByID retrieves an account by identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves ACTIVE accounts, paginated.
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)

	// UpdateAccount updates mutable account fields. Fails with
	// apperrors.ErrAccountDeleted when the account is soft-deleted.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount flips the account status to DELETED. Movement history
	// is preserved and stays readable.
	DeleteAccount(ctx context.Context, accountID string) error
}
