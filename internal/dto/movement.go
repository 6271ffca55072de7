package dto

import (
	"time"

	"github.com/andinabank/ledger-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterMovementRequest is the typed path for recording a credit or debit:
// the resulting balance is derived by the service, never supplied by the caller.
type RegisterMovementRequest struct {
	AccountID    string              `json:"accountID" binding:"required"`
	MovementType domain.MovementType `json:"movementType" binding:"required,oneof=CREDIT DEBIT"`
	Value        decimal.Decimal     `json:"value" binding:"required"`
}

// CreateMovementRequest is the generic low-level path: the caller supplies
// the resulting balance as-is.
type CreateMovementRequest struct {
	AccountID    string              `json:"accountID" binding:"required"`
	MovementType domain.MovementType `json:"movementType" binding:"required,oneof=CREDIT DEBIT"`
	Value        decimal.Decimal     `json:"value" binding:"required"`
	MovementDate *time.Time          `json:"movementDate"`
	Balance      decimal.Decimal     `json:"balance"`
}

// MovementResponse defines the data returned for a movement.
type MovementResponse struct {
	MovementID    string              `json:"movementID"`
	AccountID     string              `json:"accountID"`
	AccountNumber string              `json:"accountNumber,omitempty"`
	MovementType  domain.MovementType `json:"movementType"`
	Value         decimal.Decimal     `json:"value"`
	MovementDate  time.Time           `json:"movementDate"`
	Balance       decimal.Decimal     `json:"balance"`
}

// ListMovementsParams defines query parameters for listing movements.
type ListMovementsParams struct {
	Limit     int     `form:"limit,default=50"`
	NextToken *string `form:"nextToken"`
}

// ListMovementsResponse wraps a page of movements with the token for the next page.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToMovementResponse converts a domain.Movement to its response DTO.
func ToMovementResponse(m *domain.Movement) MovementResponse {
	return MovementResponse{
		MovementID:    m.MovementID,
		AccountID:     m.AccountID,
		AccountNumber: m.AccountNumber,
		MovementType:  m.MovementType,
		Value:         m.Value,
		MovementDate:  m.MovementDate,
		Balance:       m.Balance,
	}
}

// ToListMovementResponse converts a slice of domain movements to response DTOs.
func ToListMovementResponse(movements []domain.Movement) []MovementResponse {
	res := make([]MovementResponse, len(movements))
	for i, m := range movements {
		res[i] = ToMovementResponse(&m)
	}
	return res
}
