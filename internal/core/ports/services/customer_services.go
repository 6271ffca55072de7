package services

import (
	"context"

	"github.com/andinabank/ledger-service/internal/core/domain"
	"github.com/andinabank/ledger-service/internal/dto"
	"github.com/andinabank/ledger-service/internal/events"
)

// CustomerSvc exposes customer lifecycle operations on the registry service.
// Create, update and delete publish the corresponding lifecycle event.
type CustomerSvc interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID int64, req dto.UpdateCustomerRequest) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
}

// CustomerReferenceSvc maintains the ledger-side customer projection from
// registry lifecycle events. All handlers are idempotent: events are
// delivered at least once and may arrive more than once or out of order
// relative to other customers.
type CustomerReferenceSvc interface {
	// HandleCustomerCreated inserts or overwrites the projection row.
	HandleCustomerCreated(ctx context.Context, event events.CustomerCreatedEvent) error

	// HandleCustomerUpdated overwrites an existing projection row. An update
	// for an unknown customer is logged and dropped, never backfilled.
	HandleCustomerUpdated(ctx context.Context, event events.CustomerUpdatedEvent) error

	// HandleCustomerDeleted flips an existing projection row to DELETED. A
	// delete for an unknown customer is logged and dropped.
	HandleCustomerDeleted(ctx context.Context, event events.CustomerDeletedEvent) error

	// GetCustomerReference retrieves a projection row.
	GetCustomerReference(ctx context.Context, customerID int64) (*domain.CustomerReference, error)
}

// CustomerEventPublisher is the outbound port for customer lifecycle events.
type CustomerEventPublisher interface {
	PublishCustomerCreated(ctx context.Context, event events.CustomerCreatedEvent) error
	PublishCustomerUpdated(ctx context.Context, event events.CustomerUpdatedEvent) error
	PublishCustomerDeleted(ctx context.Context, event events.CustomerDeletedEvent) error
}
