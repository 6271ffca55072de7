package mapping

import (
	"github.com/andinabank/ledger-service/internal/core/domain"
	"github.com/andinabank/ledger-service/internal/models"
)

// ToModelMovement converts a domain Movement to its DB model. The display
// account number is not stored with the movement row.
func ToModelMovement(d domain.Movement) models.Movement {
	return models.Movement{
		MovementID:   d.MovementID,
		AccountID:    d.AccountID,
		MovementType: models.MovementType(d.MovementType),
		Value:        d.Value,
		MovementDate: d.MovementDate,
		Balance:      d.Balance,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainMovement converts a DB model Movement to its domain form.
func ToDomainMovement(m models.Movement) domain.Movement {
	return domain.Movement{
		MovementID:   m.MovementID,
		AccountID:    m.AccountID,
		MovementType: domain.MovementType(m.MovementType),
		Value:        m.Value,
		MovementDate: m.MovementDate,
		Balance:      m.Balance,
		CreatedAt:    m.CreatedAt,
	}
}
