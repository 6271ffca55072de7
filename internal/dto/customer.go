package dto

import (
	"time"

	"github.com/andinabank/ledger-service/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to register a customer.
type CreateCustomerRequest struct {
	Name           string            `json:"name" binding:"required"`
	Gender         domain.GenderType `json:"gender" binding:"required,oneof=MALE FEMALE OTHER"`
	Identification string            `json:"identification" binding:"required"`
	Address        string            `json:"address" binding:"required"`
	Phone          string            `json:"phone" binding:"required"`
	Password       string            `json:"password" binding:"required,min=8"`
}

// UpdateCustomerRequest defines the fields allowed for updating a customer.
type UpdateCustomerRequest struct {
	Name           *string            `json:"name"`
	Gender         *domain.GenderType `json:"gender"`
	Identification *string            `json:"identification"`
	Address        *string            `json:"address"`
	Phone          *string            `json:"phone"`
}

// CustomerResponse defines the data returned for a customer. The password
// hash never leaves the service.
type CustomerResponse struct {
	CustomerID     int64             `json:"customerID"`
	Name           string            `json:"name"`
	Gender         domain.GenderType `json:"gender"`
	Identification string            `json:"identification"`
	Address        string            `json:"address"`
	Phone          string            `json:"phone"`
	Status         domain.StatusType `json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
	LastUpdatedAt  time.Time         `json:"lastUpdatedAt"`
}

// ToCustomerResponse converts a domain.Customer to its response DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:     c.CustomerID,
		Name:           c.Name,
		Gender:         c.Gender,
		Identification: c.Identification,
		Address:        c.Address,
		Phone:          c.Phone,
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
		LastUpdatedAt:  c.LastUpdatedAt,
	}
}

// ToListCustomerResponse converts a slice of domain customers to response DTOs.
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return res
}
