package repositories

import (
	"context"
	"time"

	"github.com/andinabank/ledger-service/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByCustomerID retrieves all accounts owned by a customer
	// with the given lifecycle status, in creation order.
	FindAccountsByCustomerID(ctx context.Context, customerID int64, status domain.StatusType) ([]domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts with the given status.
	ListAccounts(ctx context.Context, status domain.StatusType, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// MarkAccountDeleted flips the account status to DELETED. The row and
	// its movement history are preserved.
	MarkAccountDeleted(ctx context.Context, accountID string, now time.Time) error
}

// AccountRepository is the full account persistence contract.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
