package domain

// GenderType is the customer's declared gender.
type GenderType string

const (
	Male   GenderType = "MALE"
	Female GenderType = "FEMALE"
	Other  GenderType = "OTHER"
)

// Customer is the authoritative customer record held by the registry service.
type Customer struct {
	CustomerID     int64      `json:"customerID"`
	Name           string     `json:"name"`
	Gender         GenderType `json:"gender"`
	Identification string     `json:"identification"`
	Address        string     `json:"address"`
	Phone          string     `json:"phone"`
	PasswordHash   string     `json:"-"`
	Status         StatusType `json:"status"`
	AuditFields
}

// CustomerReference is the ledger-side projection of a customer, maintained
// from registry lifecycle events. It is a read-only cache and may be
// transiently stale or absent; it is never created by the ledger itself.
type CustomerReference struct {
	CustomerID     int64      `json:"customerID"`
	Name           string     `json:"name"`
	Identification string     `json:"identification"`
	Status         StatusType `json:"status"`
}
