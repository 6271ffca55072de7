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
	"github.com/shopspring/decimal"
)

// movementService implements the MovementSvc interface.
type movementService struct {
	BaseService
	movementRepo portsrepo.MovementRepository
	accountRepo  portsrepo.AccountReader
}

// NewMovementService creates a new movement service.
func NewMovementService(movementRepo portsrepo.MovementRepository, accountRepo portsrepo.AccountReader) portssvc.MovementSvc {
	return &movementService{
		movementRepo: movementRepo,
		accountRepo:  accountRepo,
	}
}

// Ensure movementService implements the MovementSvc interface
var _ portssvc.MovementSvc = (*movementService)(nil)

// GetCurrentBalance resolves the most recent known balance for the account:
// the latest movement's stored balance, or nil when no movement exists yet.
func (s *movementService) GetCurrentBalance(ctx context.Context, accountID string) (*decimal.Decimal, error) {
	balance, err := s.movementRepo.FindLatestBalance(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve latest balance",
			slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to resolve balance for account %s: %w", accountID, err)
	}
	return balance, nil
}

func (s *movementService) RegisterMovement(ctx context.Context, req dto.RegisterMovementRequest) (*domain.Movement, error) {
	if req.Value.LessThanOrEqual(decimal.Zero) {
		s.LogWarn(ctx, "Rejected non-positive movement value",
			slog.String("account_id", req.AccountID),
			slog.String("value", req.Value.String()))
		return nil, fmt.Errorf("%w: movement value must be greater than zero", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load account for movement registration",
				slog.String("account_id", req.AccountID))
		}
		return nil, err
	}
	if account.Status == domain.StatusDeleted {
		s.LogWarn(ctx, "Rejected movement against deleted account",
			slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountDeleted, account.AccountID)
	}

	// Base balance: latest movement, or the initial balance when none exists.
	latest, err := s.movementRepo.FindLatestBalance(ctx, account.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve latest balance",
			slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to resolve balance for account %s: %w", account.AccountID, err)
	}
	base := account.InitialBalance
	if latest != nil {
		base = *latest
	}

	next := base.Add(req.Value)
	if req.MovementType == domain.Debit {
		next = base.Sub(req.Value)
	}
	if next.IsNegative() {
		s.LogWarn(ctx, "Rejected debit that would overdraw account",
			slog.String("account_id", account.AccountID),
			slog.String("base_balance", base.String()),
			slog.String("value", req.Value.String()))
		return nil, fmt.Errorf("%w: balance %s cannot cover debit of %s", apperrors.ErrInsufficientBalance, base.String(), req.Value.String())
	}

	now := time.Now().UTC()
	movement := domain.Movement{
		MovementID:   uuid.NewString(),
		AccountID:    account.AccountID,
		MovementType: req.MovementType,
		Value:        req.Value,
		MovementDate: now,
		Balance:      next,
		CreatedAt:    now,
	}

	// The guarded write re-checks the base balance under a row lock so two
	// concurrent registrations cannot both derive from the same base.
	if err := s.movementRepo.SaveMovementGuarded(ctx, movement, latest); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogWarn(ctx, "Movement registration lost balance race",
				slog.String("account_id", account.AccountID))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save movement",
			slog.String("account_id", account.AccountID),
			slog.String("movement_id", movement.MovementID))
		return nil, err
	}

	movement.AccountNumber = account.Number
	s.LogInfo(ctx, "Movement registered",
		slog.String("movement_id", movement.MovementID),
		slog.String("account_id", account.AccountID),
		slog.String("type", string(movement.MovementType)),
		slog.String("balance", movement.Balance.String()))
	return &movement, nil
}

func (s *movementService) CreateMovement(ctx context.Context, req dto.CreateMovementRequest) (*domain.Movement, error) {
	if req.Value.LessThanOrEqual(decimal.Zero) {
		s.LogWarn(ctx, "Rejected non-positive movement value",
			slog.String("account_id", req.AccountID),
			slog.String("value", req.Value.String()))
		return nil, fmt.Errorf("%w: movement value must be greater than zero", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load account for movement creation",
				slog.String("account_id", req.AccountID))
		}
		return nil, err
	}

	now := time.Now().UTC()
	movementDate := now
	if req.MovementDate != nil {
		movementDate = req.MovementDate.UTC()
	}

	// Generic path: the caller-supplied balance is persisted as-is.
	movement := domain.Movement{
		MovementID:   uuid.NewString(),
		AccountID:    account.AccountID,
		MovementType: req.MovementType,
		Value:        req.Value,
		MovementDate: movementDate,
		Balance:      req.Balance,
		CreatedAt:    now,
	}

	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		s.LogError(ctx, err, "Failed to save movement",
			slog.String("movement_id", movement.MovementID))
		return nil, err
	}

	movement.AccountNumber = account.Number
	s.LogInfo(ctx, "Movement created",
		slog.String("movement_id", movement.MovementID),
		slog.String("account_id", account.AccountID))
	return &movement, nil
}

func (s *movementService) UpdateMovement(ctx context.Context, movementID string, req dto.CreateMovementRequest) (*domain.Movement, error) {
	existing, err := s.movementRepo.FindMovementByID(ctx, movementID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load movement for update",
				slog.String("movement_id", movementID))
		}
		return nil, err
	}

	if req.Value.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: movement value must be greater than zero", apperrors.ErrValidation)
	}

	movementDate := existing.MovementDate
	if req.MovementDate != nil {
		movementDate = req.MovementDate.UTC()
	}

	// Wholesale replace under the same identifier; there is no
	// partial-field mutation of a movement.
	movement := domain.Movement{
		MovementID:   existing.MovementID,
		AccountID:    existing.AccountID,
		MovementType: req.MovementType,
		Value:        req.Value,
		MovementDate: movementDate,
		Balance:      req.Balance,
		CreatedAt:    existing.CreatedAt,
	}

	if err := s.movementRepo.UpdateMovement(ctx, movement); err != nil {
		s.LogError(ctx, err, "Failed to update movement",
			slog.String("movement_id", movementID))
		return nil, err
	}

	movement.AccountNumber = existing.AccountNumber
	s.LogInfo(ctx, "Movement updated", slog.String("movement_id", movementID))
	return &movement, nil
}

func (s *movementService) DeleteMovement(ctx context.Context, movementID string) error {
	if _, err := s.movementRepo.FindMovementByID(ctx, movementID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load movement for deletion",
				slog.String("movement_id", movementID))
		}
		return err
	}

	// Deleting a historical movement leaves later movements' stored
	// balances untouched.
	if err := s.movementRepo.DeleteMovement(ctx, movementID); err != nil {
		s.LogError(ctx, err, "Failed to delete movement",
			slog.String("movement_id", movementID))
		return err
	}

	s.LogInfo(ctx, "Movement deleted", slog.String("movement_id", movementID))
	return nil
}

func (s *movementService) GetMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	movement, err := s.movementRepo.FindMovementByID(ctx, movementID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find movement by ID",
				slog.String("movement_id", movementID))
		}
		return nil, err
	}
	return movement, nil
}

func (s *movementService) ListMovements(ctx context.Context, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error) {
	movements, nextToken, err := s.movementRepo.ListMovements(ctx, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list movements")
		return nil, fmt.Errorf("failed to retrieve movements: %w", err)
	}

	return &dto.ListMovementsResponse{
		Movements: dto.ToListMovementResponse(movements),
		NextToken: nextToken,
	}, nil
}
