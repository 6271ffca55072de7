package mapping

import (
	"github.com/andinabank/ledger-service/internal/core/domain"
	"github.com/andinabank/ledger-service/internal/models"
)

// ToModelAccount converts a domain Account to its DB model.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		Number:         d.Number,
		AccountType:    models.AccountType(d.AccountType),
		InitialBalance: d.InitialBalance,
		Status:         string(d.Status),
		CustomerID:     d.CustomerID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainAccount converts a DB model Account to its domain form.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		Number:         m.Number,
		AccountType:    domain.AccountType(m.AccountType),
		InitialBalance: m.InitialBalance,
		Status:         domain.StatusType(m.Status),
		CustomerID:     m.CustomerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
