package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/andinabank/ledger-service/internal/apperrors"
	"github.com/andinabank/ledger-service/internal/core/domain"
	portsrepo "github.com/andinabank/ledger-service/internal/core/ports/repositories"
	portssvc "github.com/andinabank/ledger-service/internal/core/ports/services"
	"github.com/andinabank/ledger-service/internal/dto"
)

// accountService implements the AccountSvc interface.
type accountService struct {
	BaseService
	accountRepo     portsrepo.AccountRepository
	customerRefRepo portsrepo.CustomerReferenceRepository
}

// AccountServiceOption is a functional option for configuring the account service.
type AccountServiceOption func(*accountService)

// WithCustomerReferenceRepository makes account creation verify the owning
// customer against the local projection when one is configured.
func WithCustomerReferenceRepository(repo portsrepo.CustomerReferenceRepository) AccountServiceOption {
	return func(s *accountService) {
		s.customerRefRepo = repo
	}
}

// NewAccountService creates a new account service with the provided options.
func NewAccountService(repo portsrepo.AccountRepository, options ...AccountServiceOption) portssvc.AccountSvc {
	svc := &accountService{
		accountRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountService implements the AccountSvc interface
var _ portssvc.AccountSvc = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	if req.InitialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", apperrors.ErrValidation)
	}

	// The projection may legitimately lag behind the registry, so a missing
	// reference is only a warning: the account creation request may have
	// raced ahead of the propagating event.
	if s.customerRefRepo != nil {
		ref, err := s.customerRefRepo.FindCustomerReferenceByID(ctx, req.CustomerID)
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			s.LogWarn(ctx, "Customer reference not yet replicated, creating account anyway",
				slog.Int64("customer_id", req.CustomerID))
		case err != nil:
			s.LogError(ctx, err, "Failed to check customer reference",
				slog.Int64("customer_id", req.CustomerID))
			return nil, err
		case ref.Status == domain.StatusDeleted:
			return nil, fmt.Errorf("%w: customer %d", apperrors.ErrCustomerDeleted, req.CustomerID)
		}
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		Number:         req.Number,
		AccountType:    req.AccountType,
		InitialBalance: req.InitialBalance,
		Status:         domain.StatusActive,
		CustomerID:     req.CustomerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID),
			slog.String("number", account.Number))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.Int64("customer_id", account.CustomerID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, domain.StatusActive, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts",
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	// Deleted accounts keep their history readable but reject updates.
	if account.Status == domain.StatusDeleted {
		s.LogWarn(ctx, "Rejected update of deleted account",
			slog.String("account_id", accountID))
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountDeleted, accountID)
	}

	updated := false
	if req.Number != nil {
		account.Number = *req.Number
		updated = true
	}
	if req.AccountType != nil {
		account.AccountType = *req.AccountType
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for account update",
			slog.String("account_id", accountID))
		return account, nil
	}

	account.LastUpdatedAt = time.Now().UTC()
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account",
			slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.Status == domain.StatusDeleted {
		return fmt.Errorf("%w: account %s", apperrors.ErrAccountDeleted, accountID)
	}

	if err := s.accountRepo.MarkAccountDeleted(ctx, accountID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to mark account deleted",
			slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account marked deleted", slog.String("account_id", accountID))
	return nil
}
