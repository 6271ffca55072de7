package services

import (
	portsrepo "github.com/andinabank/ledger-service/internal/core/ports/repositories"
	portssvc "github.com/andinabank/ledger-service/internal/core/ports/services"
)

// NewLedgerServiceContainer wires the ledger-side services over the given repositories.
func NewLedgerServiceContainer(repos portsrepo.LedgerRepositoryProvider) *portssvc.LedgerServiceContainer {
	accountSvc := NewAccountService(repos.AccountRepo,
		WithCustomerReferenceRepository(repos.CustomerRefRepo))
	movementSvc := NewMovementService(repos.MovementRepo, repos.AccountRepo)
	statementSvc := NewStatementService(repos.AccountRepo, repos.MovementRepo, repos.CustomerRefRepo)
	customerRefSvc := NewCustomerReferenceService(repos.CustomerRefRepo)

	return &portssvc.LedgerServiceContainer{
		Account:     accountSvc,
		Movement:    movementSvc,
		Statement:   statementSvc,
		CustomerRef: customerRefSvc,
	}
}

// NewCustomerServiceContainer wires the registry-side services.
func NewCustomerServiceContainer(repos portsrepo.CustomerRepositoryProvider, publisher portssvc.CustomerEventPublisher) *portssvc.CustomerServiceContainer {
	return &portssvc.CustomerServiceContainer{
		Customer: NewCustomerService(repos.CustomerRepo, publisher),
	}
}
