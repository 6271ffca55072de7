package repositories

// LedgerRepositoryProvider bundles the repositories used by the ledger service.
type LedgerRepositoryProvider struct {
	AccountRepo     AccountRepository
	MovementRepo    MovementRepository
	CustomerRefRepo CustomerReferenceRepository
}

// CustomerRepositoryProvider bundles the repositories used by the registry service.
type CustomerRepositoryProvider struct {
	CustomerRepo CustomerRepository
}
