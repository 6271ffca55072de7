package services_test

import (
	"context"
	"time"

	"github.com/andinabank/ledger-service/internal/core/domain"
	"github.com/andinabank/ledger-service/internal/events"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByCustomerID(ctx context.Context, customerID int64, status domain.StatusType) ([]domain.Account, error) {
	args := m.Called(ctx, customerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, status domain.StatusType, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) MarkAccountDeleted(ctx context.Context, accountID string, now time.Time) error {
	args := m.Called(ctx, accountID, now)
	return args.Error(0)
}

// MockMovementRepository is a mock type for the MovementRepository interface
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) FindLatestBalance(ctx context.Context, accountID string) (*decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*decimal.Decimal), args.Error(1)
}

func (m *MockMovementRepository) FindMovementsByAccountAndRange(ctx context.Context, accountID string, from, to time.Time) ([]domain.Movement, error) {
	args := m.Called(ctx, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) ListMovements(ctx context.Context, limit int, nextToken *string) ([]domain.Movement, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var movements []domain.Movement
	if args.Get(0) != nil {
		movements = args.Get(0).([]domain.Movement)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return movements, token, args.Error(2)
}

func (m *MockMovementRepository) SaveMovementGuarded(ctx context.Context, movement domain.Movement, expectedBase *decimal.Decimal) error {
	args := m.Called(ctx, movement, expectedBase)
	return args.Error(0)
}

func (m *MockMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) UpdateMovement(ctx context.Context, movement domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) DeleteMovement(ctx context.Context, movementID string) error {
	args := m.Called(ctx, movementID)
	return args.Error(0)
}

// MockCustomerReferenceRepository is a mock type for the CustomerReferenceRepository interface
type MockCustomerReferenceRepository struct {
	mock.Mock
}

func (m *MockCustomerReferenceRepository) UpsertCustomerReference(ctx context.Context, ref domain.CustomerReference, now time.Time) error {
	args := m.Called(ctx, ref, now)
	return args.Error(0)
}

func (m *MockCustomerReferenceRepository) FindCustomerReferenceByID(ctx context.Context, customerID int64) (*domain.CustomerReference, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerReference), args.Error(1)
}

func (m *MockCustomerReferenceRepository) UpdateCustomerReference(ctx context.Context, ref domain.CustomerReference, now time.Time) error {
	args := m.Called(ctx, ref, now)
	return args.Error(0)
}

func (m *MockCustomerReferenceRepository) MarkCustomerReferenceDeleted(ctx context.Context, customerID int64, now time.Time) error {
	args := m.Called(ctx, customerID, now)
	return args.Error(0)
}

// MockCustomerRepository is a mock type for the CustomerRepository interface
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (int64, error) {
	args := m.Called(ctx, customer)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomersByStatus(ctx context.Context, status domain.StatusType) ([]domain.Customer, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// MockEventPublisher is a mock type for the CustomerEventPublisher interface
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishCustomerCreated(ctx context.Context, event events.CustomerCreatedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishCustomerUpdated(ctx context.Context, event events.CustomerUpdatedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishCustomerDeleted(ctx context.Context, event events.CustomerDeletedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
