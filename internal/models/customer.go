package models

import "time"

// Customer is the DB representation of a registry customer.
type Customer struct {
	CustomerID     int64  `db:"customer_id"`
	Name           string `db:"name"`
	Gender         string `db:"gender"`
	Identification string `db:"identification"`
	Address        string `db:"address"`
	Phone          string `db:"phone"`
	PasswordHash   string `db:"password_hash"`
	Status         string `db:"status"`
	AuditFields
}

// CustomerReference is the DB representation of the ledger-side customer projection.
type CustomerReference struct {
	CustomerID     int64     `db:"customer_id"`
	Name           string    `db:"name"`
	Identification string    `db:"identification"`
	Status         string    `db:"status"`
	LastUpdatedAt  time.Time `db:"last_updated_at"`
}
