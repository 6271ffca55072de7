package pgsql

import (
	portsrepo "github.com/andinabank/ledger-service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewLedgerRepositoryProvider wires the repositories the ledger backend uses.
func NewLedgerRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.LedgerRepositoryProvider {
	return portsrepo.LedgerRepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		MovementRepo:    newPgxMovementRepository(dbPool),
		CustomerRefRepo: newPgxCustomerReferenceRepository(dbPool),
	}
}

// NewCustomerRepositoryProvider wires the repositories the customer registry uses.
func NewCustomerRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.CustomerRepositoryProvider {
	return portsrepo.CustomerRepositoryProvider{
		CustomerRepo: newPgxCustomerRepository(dbPool),
	}
}
