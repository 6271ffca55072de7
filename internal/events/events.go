// Package events defines the customer lifecycle event contract shared by the
// registry (producer) and the ledger (consumer). Payloads are JSON; delivery
// is at-least-once, so every consumer handler must be idempotent.
package events

const (
	TopicCustomerCreated = "customer-created"
	TopicCustomerUpdated = "customer-updated"
	TopicCustomerDeleted = "customer-deleted"
)

// CustomerCreatedEvent is emitted when a customer is registered.
type CustomerCreatedEvent struct {
	CustomerID     int64  `json:"customerId" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Identification string `json:"identification" validate:"required"`
	Status         string `json:"status" validate:"required,oneof=ACTIVE DELETED"`
}

// CustomerUpdatedEvent is emitted when a customer record changes.
type CustomerUpdatedEvent struct {
	CustomerID     int64  `json:"customerId" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Identification string `json:"identification" validate:"required"`
	Status         string `json:"status" validate:"required,oneof=ACTIVE DELETED"`
}

// CustomerDeletedEvent is emitted when a customer is soft-deleted.
type CustomerDeletedEvent struct {
	CustomerID int64 `json:"customerId" validate:"required"`
}
