package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/andinabank/ledger-service/internal/apperrors"
	"github.com/andinabank/ledger-service/internal/core/domain"
	portsrepo "github.com/andinabank/ledger-service/internal/core/ports/repositories"
	portssvc "github.com/andinabank/ledger-service/internal/core/ports/services"
	"github.com/andinabank/ledger-service/internal/utils/reports"
)

// statementService implements the StatementSvc interface.
type statementService struct {
	BaseService
	accountRepo     portsrepo.AccountReader
	movementRepo    portsrepo.MovementReader
	customerRefRepo portsrepo.CustomerReferenceRepository
}

// NewStatementService creates a new statement service.
func NewStatementService(
	accountRepo portsrepo.AccountReader,
	movementRepo portsrepo.MovementReader,
	customerRefRepo portsrepo.CustomerReferenceRepository,
) portssvc.StatementSvc {
	return &statementService{
		accountRepo:     accountRepo,
		movementRepo:    movementRepo,
		customerRefRepo: customerRefRepo,
	}
}

// Ensure statementService implements the StatementSvc interface
var _ portssvc.StatementSvc = (*statementService)(nil)

func (s *statementService) GetStatement(ctx context.Context, customerID int64, from, to time.Time) (*domain.Statement, error) {
	statement, err := s.buildStatement(ctx, customerID, from, to, false)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Statement assembled",
		slog.Int64("customer_id", customerID),
		slog.Int("account_count", len(statement.Accounts)))
	return statement, nil
}

func (s *statementService) ExportStatementXLSX(ctx context.Context, customerID int64, from, to time.Time) ([]byte, error) {
	statement, err := s.buildStatement(ctx, customerID, from, to, true)
	if err != nil {
		return nil, err
	}

	data, err := reports.BuildStatementXLSX(statement)
	if err != nil {
		s.LogError(ctx, err, "Failed to render statement spreadsheet",
			slog.Int64("customer_id", customerID))
		return nil, fmt.Errorf("failed to render statement: %w", err)
	}

	s.LogInfo(ctx, "Statement exported",
		slog.Int64("customer_id", customerID),
		slog.Int("account_count", len(statement.Accounts)))
	return data, nil
}

// buildStatement gathers the customer's active accounts and their movement
// history within the range. Current balances are only resolved for the
// export variant, which displays them in each account's section header.
func (s *statementService) buildStatement(ctx context.Context, customerID int64, from, to time.Time, withBalances bool) (*domain.Statement, error) {
	customer, err := s.customerRefRepo.FindCustomerReferenceByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Customer not found for statement",
				slog.Int64("customer_id", customerID))
			return nil, fmt.Errorf("%w: customer %d", apperrors.ErrNotFound, customerID)
		}
		s.LogError(ctx, err, "Failed to resolve customer for statement",
			slog.Int64("customer_id", customerID))
		return nil, err
	}

	accounts, err := s.accountRepo.FindAccountsByCustomerID(ctx, customerID, domain.StatusActive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customer accounts",
			slog.Int64("customer_id", customerID))
		return nil, fmt.Errorf("failed to list accounts for customer %d: %w", customerID, err)
	}

	statement := &domain.Statement{
		Customer:  *customer,
		StartDate: from,
		EndDate:   to,
		Accounts:  make([]domain.StatementAccount, 0, len(accounts)),
	}

	for _, account := range accounts {
		movements, err := s.movementRepo.FindMovementsByAccountAndRange(ctx, account.AccountID, from, to)
		if err != nil {
			s.LogError(ctx, err, "Failed to load movements for statement",
				slog.String("account_id", account.AccountID))
			return nil, fmt.Errorf("failed to load movements for account %s: %w", account.AccountID, err)
		}

		// Stored balances are read back verbatim, never re-derived.
		lines := make([]domain.StatementLine, len(movements))
		for i, m := range movements {
			lines[i] = domain.StatementLine{
				MovementType: m.MovementType,
				Value:        m.Value,
				MovementDate: m.MovementDate,
				Balance:      m.Balance,
			}
		}

		section := domain.StatementAccount{
			Key:         fmt.Sprintf("%s-%s", account.Number, account.AccountType),
			Number:      account.Number,
			AccountType: account.AccountType,
			Lines:       lines,
		}

		if withBalances {
			latest, err := s.movementRepo.FindLatestBalance(ctx, account.AccountID)
			if err != nil {
				s.LogError(ctx, err, "Failed to resolve balance for statement export",
					slog.String("account_id", account.AccountID))
				return nil, fmt.Errorf("failed to resolve balance for account %s: %w", account.AccountID, err)
			}
			section.CurrentBalance = account.InitialBalance
			if latest != nil {
				section.CurrentBalance = *latest
			}
		}

		statement.Accounts = append(statement.Accounts, section)
	}

	return statement, nil
}
