package domain

import "time"

// StatusType is the lifecycle state shared by accounts and customers.
// Deletion is always a status flip, never a physical delete.
type StatusType string

const (
	StatusActive  StatusType = "ACTIVE"
	StatusDeleted StatusType = "DELETED"
)

// AuditFields holds standard audit timestamps for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
