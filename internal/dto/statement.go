package dto

import (
	"time"

	"github.com/andinabank/ledger-service/internal/core/domain"
)

// StatementParams defines query parameters for statement retrieval.
type StatementParams struct {
	CustomerID int64  `form:"customerId" binding:"required"`
	From       string `form:"from" binding:"required"`
	To         string `form:"to" binding:"required"`
}

// StatementResponse groups a customer's movements per account key for a period.
type StatementResponse struct {
	Customer  CustomerReferenceResponse         `json:"customer"`
	StartDate time.Time                         `json:"startDate"`
	EndDate   time.Time                         `json:"endDate"`
	Movements map[string][]domain.StatementLine `json:"movements"`
	Accounts  []domain.StatementAccount         `json:"accounts"`
}

// CustomerReferenceResponse is the customer identity block of a statement.
type CustomerReferenceResponse struct {
	CustomerID     int64             `json:"customerID"`
	Name           string            `json:"name"`
	Identification string            `json:"identification"`
	Status         domain.StatusType `json:"status"`
}

// ToStatementResponse converts a domain.Statement to its response DTO.
func ToStatementResponse(s *domain.Statement) StatementResponse {
	return StatementResponse{
		Customer: CustomerReferenceResponse{
			CustomerID:     s.Customer.CustomerID,
			Name:           s.Customer.Name,
			Identification: s.Customer.Identification,
			Status:         s.Customer.Status,
		},
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Movements: s.Movements(),
		Accounts:  s.Accounts,
	}
}
