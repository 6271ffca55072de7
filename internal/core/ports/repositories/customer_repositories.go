package repositories

import (
	"context"
	"time"

	"github.com/andinabank/ledger-service/internal/core/domain"
)

// CustomerReferenceRepository persists the ledger-side customer projection.
type CustomerReferenceRepository interface {
	// UpsertCustomerReference inserts or overwrites the projection row.
	UpsertCustomerReference(ctx context.Context, ref domain.CustomerReference, now time.Time) error

	// FindCustomerReferenceByID retrieves a projection row.
	FindCustomerReferenceByID(ctx context.Context, customerID int64) (*domain.CustomerReference, error)

	// UpdateCustomerReference overwrites an existing projection row.
	UpdateCustomerReference(ctx context.Context, ref domain.CustomerReference, now time.Time) error

	// MarkCustomerReferenceDeleted flips the projection status to DELETED,
	// preserving name and identification.
	MarkCustomerReferenceDeleted(ctx context.Context, customerID int64, now time.Time) error
}

// CustomerRepository persists authoritative customer records (registry side).
type CustomerRepository interface {
	// SaveCustomer persists a new customer and returns the generated identifier.
	SaveCustomer(ctx context.Context, customer domain.Customer) (int64, error)

	// FindCustomerByID retrieves a customer by identifier.
	FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)

	// ListCustomersByStatus retrieves all customers with the given status.
	ListCustomersByStatus(ctx context.Context, status domain.StatusType) ([]domain.Customer, error)

	// UpdateCustomer updates an existing customer record.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
}
