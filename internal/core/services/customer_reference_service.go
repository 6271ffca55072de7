package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/andinabank/ledger-service/internal/apperrors"
	"github.com/andinabank/ledger-service/internal/core/domain"
	portsrepo "github.com/andinabank/ledger-service/internal/core/ports/repositories"
	portssvc "github.com/andinabank/ledger-service/internal/core/ports/services"
	"github.com/andinabank/ledger-service/internal/events"
)

// customerReferenceService maintains the local customer projection from
// registry lifecycle events. Handlers never raise on a missing projection
// row: the cache is eventually consistent and absence is a valid state.
type customerReferenceService struct {
	BaseService
	customerRefRepo portsrepo.CustomerReferenceRepository
}

// NewCustomerReferenceService creates a new customer reference service.
func NewCustomerReferenceService(repo portsrepo.CustomerReferenceRepository) portssvc.CustomerReferenceSvc {
	return &customerReferenceService{
		customerRefRepo: repo,
	}
}

// Ensure customerReferenceService implements the CustomerReferenceSvc interface
var _ portssvc.CustomerReferenceSvc = (*customerReferenceService)(nil)

func (s *customerReferenceService) HandleCustomerCreated(ctx context.Context, event events.CustomerCreatedEvent) error {
	ref := domain.CustomerReference{
		CustomerID:     event.CustomerID,
		Name:           event.Name,
		Identification: event.Identification,
		Status:         domain.StatusType(event.Status),
	}

	// Unconditional upsert: replaying the same creation event is a no-op change.
	if err := s.customerRefRepo.UpsertCustomerReference(ctx, ref, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to upsert customer reference",
			slog.Int64("customer_id", event.CustomerID))
		return err
	}

	s.LogInfo(ctx, "Customer reference created",
		slog.Int64("customer_id", event.CustomerID))
	return nil
}

func (s *customerReferenceService) HandleCustomerUpdated(ctx context.Context, event events.CustomerUpdatedEvent) error {
	existing, err := s.customerRefRepo.FindCustomerReferenceByID(ctx, event.CustomerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// The projection never synthesizes identity from partial data:
			// an update for an unknown customer is dropped, not backfilled.
			s.LogWarn(ctx, "Customer reference not found for update event, dropping",
				slog.Int64("customer_id", event.CustomerID))
			return nil
		}
		s.LogError(ctx, err, "Failed to look up customer reference for update",
			slog.Int64("customer_id", event.CustomerID))
		return err
	}

	existing.Name = event.Name
	existing.Identification = event.Identification
	existing.Status = domain.StatusType(event.Status)

	if err := s.customerRefRepo.UpdateCustomerReference(ctx, *existing, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to update customer reference",
			slog.Int64("customer_id", event.CustomerID))
		return err
	}

	s.LogInfo(ctx, "Customer reference updated",
		slog.Int64("customer_id", event.CustomerID))
	return nil
}

func (s *customerReferenceService) HandleCustomerDeleted(ctx context.Context, event events.CustomerDeletedEvent) error {
	_, err := s.customerRefRepo.FindCustomerReferenceByID(ctx, event.CustomerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Customer reference not found for delete event, dropping",
				slog.Int64("customer_id", event.CustomerID))
			return nil
		}
		s.LogError(ctx, err, "Failed to look up customer reference for delete",
			slog.Int64("customer_id", event.CustomerID))
		return err
	}

	// Soft delete: name and identification stay for historical statements.
	if err := s.customerRefRepo.MarkCustomerReferenceDeleted(ctx, event.CustomerID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to mark customer reference deleted",
			slog.Int64("customer_id", event.CustomerID))
		return err
	}

	s.LogInfo(ctx, "Customer reference marked deleted",
		slog.Int64("customer_id", event.CustomerID))
	return nil
}

func (s *customerReferenceService) GetCustomerReference(ctx context.Context, customerID int64) (*domain.CustomerReference, error) {
	ref, err := s.customerRefRepo.FindCustomerReferenceByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer reference",
				slog.Int64("customer_id", customerID))
		}
		return nil, err
	}
	return ref, nil
}
