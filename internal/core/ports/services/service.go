package services

// LedgerServiceContainer bundles the services wired into the ledger binary.
type LedgerServiceContainer struct {
	Account     AccountSvc
	Movement    MovementSvc
	Statement   StatementSvc
	CustomerRef CustomerReferenceSvc
}

// CustomerServiceContainer bundles the services wired into the registry binary.
type CustomerServiceContainer struct {
	Customer CustomerSvc
}
