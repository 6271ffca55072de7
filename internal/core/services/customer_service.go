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
	"github.com/andinabank/ledger-service/internal/dto"
	"github.com/andinabank/ledger-service/internal/events"
	"github.com/andinabank/ledger-service/internal/utils"
)

// customerService implements the CustomerSvc interface on the registry side.
// Lifecycle changes publish events for the ledger's projection; publish
// failures are logged but do not roll back the local write (the consumer
// tolerates a stale projection).
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepository
	publisher    portssvc.CustomerEventPublisher
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo portsrepo.CustomerRepository, publisher portssvc.CustomerEventPublisher) portssvc.CustomerSvc {
	return &customerService{
		customerRepo: repo,
		publisher:    publisher,
	}
}

// Ensure customerService implements the CustomerSvc interface
var _ portssvc.CustomerSvc = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash customer password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		Name:           req.Name,
		Gender:         req.Gender,
		Identification: req.Identification,
		Address:        req.Address,
		Phone:          req.Phone,
		PasswordHash:   hash,
		Status:         domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	id, err := s.customerRepo.SaveCustomer(ctx, customer)
	if err != nil {
		s.LogError(ctx, err, "Failed to save customer",
			slog.String("identification", req.Identification))
		return nil, err
	}
	customer.CustomerID = id

	s.publishCreated(ctx, customer)

	s.LogInfo(ctx, "Customer created", slog.Int64("customer_id", id))
	return &customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer by ID",
				slog.Int64("customer_id", customerID))
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomersByStatus(ctx, domain.StatusActive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID int64, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer.Status == domain.StatusDeleted {
		s.LogWarn(ctx, "Rejected update of deleted customer",
			slog.Int64("customer_id", customerID))
		return nil, fmt.Errorf("%w: customer %d", apperrors.ErrCustomerDeleted, customerID)
	}

	updated := false
	if req.Name != nil {
		customer.Name = *req.Name
		updated = true
	}
	if req.Gender != nil {
		customer.Gender = *req.Gender
		updated = true
	}
	if req.Identification != nil {
		customer.Identification = *req.Identification
		updated = true
	}
	if req.Address != nil {
		customer.Address = *req.Address
		updated = true
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for customer update",
			slog.Int64("customer_id", customerID))
		return customer, nil
	}

	customer.LastUpdatedAt = time.Now().UTC()
	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer",
			slog.Int64("customer_id", customerID))
		return nil, err
	}

	s.publishUpdated(ctx, *customer)

	s.LogInfo(ctx, "Customer updated", slog.Int64("customer_id", customerID))
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	customer, err := s.GetCustomerByID(ctx, customerID)
	if err != nil {
		return err
	}
	if customer.Status == domain.StatusDeleted {
		return fmt.Errorf("%w: customer %d", apperrors.ErrCustomerDeleted, customerID)
	}

	customer.Status = domain.StatusDeleted
	customer.LastUpdatedAt = time.Now().UTC()
	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to mark customer deleted",
			slog.Int64("customer_id", customerID))
		return err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishCustomerDeleted(ctx, events.CustomerDeletedEvent{CustomerID: customerID}); err != nil {
			s.LogError(ctx, err, "Failed to publish customer deleted event",
				slog.Int64("customer_id", customerID))
		}
	}

	s.LogInfo(ctx, "Customer marked deleted", slog.Int64("customer_id", customerID))
	return nil
}

func (s *customerService) publishCreated(ctx context.Context, customer domain.Customer) {
	if s.publisher == nil {
		return
	}
	event := events.CustomerCreatedEvent{
		CustomerID:     customer.CustomerID,
		Name:           customer.Name,
		Identification: customer.Identification,
		Status:         string(customer.Status),
	}
	if err := s.publisher.PublishCustomerCreated(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish customer created event",
			slog.Int64("customer_id", customer.CustomerID))
	}
}

func (s *customerService) publishUpdated(ctx context.Context, customer domain.Customer) {
	if s.publisher == nil {
		return
	}
	event := events.CustomerUpdatedEvent{
		CustomerID:     customer.CustomerID,
		Name:           customer.Name,
		Identification: customer.Identification,
		Status:         string(customer.Status),
	}
	if err := s.publisher.PublishCustomerUpdated(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish customer updated event",
			slog.Int64("customer_id", customer.CustomerID))
	}
}
