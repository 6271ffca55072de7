package mapping

import (
	"github.com/andinabank/ledger-service/internal/core/domain"
	"github.com/andinabank/ledger-service/internal/models"
)

// ToModelCustomer converts a domain Customer to its DB model.
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:     d.CustomerID,
		Name:           d.Name,
		Gender:         string(d.Gender),
		Identification: d.Identification,
		Address:        d.Address,
		Phone:          d.Phone,
		PasswordHash:   d.PasswordHash,
		Status:         string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainCustomer converts a DB model Customer to its domain form.
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:     m.CustomerID,
		Name:           m.Name,
		Gender:         domain.GenderType(m.Gender),
		Identification: m.Identification,
		Address:        m.Address,
		Phone:          m.Phone,
		PasswordHash:   m.PasswordHash,
		Status:         domain.StatusType(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainCustomerReference converts a DB model CustomerReference to its domain form.
func ToDomainCustomerReference(m models.CustomerReference) domain.CustomerReference {
	return domain.CustomerReference{
		CustomerID:     m.CustomerID,
		Name:           m.Name,
		Identification: m.Identification,
		Status:         domain.StatusType(m.Status),
	}
}
