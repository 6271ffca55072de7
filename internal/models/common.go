package models

import "time"

// AuditFields holds standard audit timestamps stored with each row.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
