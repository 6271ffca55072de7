package dto

import (
	"time"

	"github.com/andinabank/ledger-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a new account.
type CreateAccountRequest struct {
	Number         string             `json:"number" binding:"required"`
	AccountType    domain.AccountType `json:"accountType" binding:"required,oneof=SAVINGS CHECKING"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
	CustomerID     int64              `json:"customerID" binding:"required"`
}

// UpdateAccountRequest defines the fields allowed for updating an account.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateAccountRequest struct {
	Number      *string             `json:"number"`
	AccountType *domain.AccountType `json:"accountType"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string             `json:"accountID"`
	Number         string             `json:"number"`
	AccountType    domain.AccountType `json:"accountType"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
	Status         domain.StatusType  `json:"status"`
	CustomerID     int64              `json:"customerID"`
	CreatedAt      time.Time          `json:"createdAt"`
	LastUpdatedAt  time.Time          `json:"lastUpdatedAt"`
}

// AccountBalanceResponse defines the data returned for a balance query.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Number:         acc.Number,
		AccountType:    acc.AccountType,
		InitialBalance: acc.InitialBalance,
		Status:         acc.Status,
		CustomerID:     acc.CustomerID,
		CreatedAt:      acc.CreatedAt,
		LastUpdatedAt:  acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain accounts to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
