package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andinabank/ledger-service/internal/apperrors"
	"github.com/andinabank/ledger-service/internal/core/domain"
	portssvc "github.com/andinabank/ledger-service/internal/core/ports/services"
	"github.com/andinabank/ledger-service/internal/dto"
	"github.com/andinabank/ledger-service/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvc = (*MockAccountService)(nil)

// --- Mock MovementService ---
type MockMovementService struct {
	mock.Mock
}

func (m *MockMovementService) RegisterMovement(ctx context.Context, req dto.RegisterMovementRequest) (*domain.Movement, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}
func (m *MockMovementService) CreateMovement(ctx context.Context, req dto.CreateMovementRequest) (*domain.Movement, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}
func (m *MockMovementService) UpdateMovement(ctx context.Context, movementID string, req dto.CreateMovementRequest) (*domain.Movement, error) {
	args := m.Called(ctx, movementID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}
func (m *MockMovementService) DeleteMovement(ctx context.Context, movementID string) error {
	args := m.Called(ctx, movementID)
	return args.Error(0)
}
func (m *MockMovementService) GetMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}
func (m *MockMovementService) ListMovements(ctx context.Context, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListMovementsResponse), args.Error(1)
}
func (m *MockMovementService) GetCurrentBalance(ctx context.Context, accountID string) (*decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*decimal.Decimal), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.MovementSvc = (*MockMovementService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockAccountService  *MockAccountService
	mockMovementService *MockMovementService
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockAccountService = new(MockAccountService)
	suite.mockMovementService = new(MockMovementService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterAccountRoutes(v1, suite.mockAccountService, suite.mockMovementService)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	accountID := uuid.NewString()
	expected := &domain.Account{
		AccountID:      accountID,
		Number:         "478758",
		AccountType:    domain.Savings,
		InitialBalance: decimal.NewFromInt(2000),
		Status:         domain.StatusActive,
		CustomerID:     12,
		AuditFields: domain.AuditFields{
			CreatedAt:     time.Now(),
			LastUpdatedAt: time.Now(),
		},
	}

	suite.mockAccountService.On("CreateAccount",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
			return req.Number == "478758" &&
				req.AccountType == domain.Savings &&
				req.InitialBalance.Equal(decimal.NewFromInt(2000)) &&
				req.CustomerID == 12
		}),
	).Return(expected, nil).Once()

	body := `{"number":"478758","accountType":"SAVINGS","initialBalance":"2000","customerID":12}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AccountResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(accountID, resp.AccountID)
	suite.Equal("478758", resp.Number)
	suite.True(resp.InitialBalance.Equal(decimal.NewFromInt(2000)))

	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_DuplicateNumberConflict() {
	suite.mockAccountService.On("CreateAccount", mock.Anything, mock.AnythingOfType("dto.CreateAccountRequest")).
		Return(nil, fmt.Errorf("%w: account number 478758 already exists", apperrors.ErrDuplicate)).Once()

	body := `{"number":"478758","accountType":"SAVINGS","initialBalance":"2000","customerID":12}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_InvalidAccountType() {
	body := `{"number":"478758","accountType":"BROKERAGE","initialBalance":"2000","customerID":12}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	accountID := uuid.NewString()

	suite.mockAccountService.On("GetAccountByID", mock.Anything, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts/"+accountID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetAccountBalance_LatestMovementWins() {
	accountID := uuid.NewString()
	latest := decimal.NewFromInt(1425)

	suite.mockAccountService.On("GetAccountByID", mock.Anything, accountID).Return(&domain.Account{
		AccountID:      accountID,
		Number:         "478758",
		AccountType:    domain.Savings,
		InitialBalance: decimal.NewFromInt(2000),
		Status:         domain.StatusActive,
	}, nil).Once()
	suite.mockMovementService.On("GetCurrentBalance", mock.Anything, accountID).
		Return(&latest, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/accounts/%s/balance", accountID), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.AccountBalanceResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(accountID, resp.AccountID)
	suite.True(resp.Balance.Equal(latest))
}

func (suite *AccountHandlerTestSuite) TestGetAccountBalance_FallsBackToInitialBalance() {
	accountID := uuid.NewString()

	suite.mockAccountService.On("GetAccountByID", mock.Anything, accountID).Return(&domain.Account{
		AccountID:      accountID,
		Number:         "478758",
		AccountType:    domain.Savings,
		InitialBalance: decimal.NewFromInt(2000),
		Status:         domain.StatusActive,
	}, nil).Once()
	suite.mockMovementService.On("GetCurrentBalance", mock.Anything, accountID).
		Return((*decimal.Decimal)(nil), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/accounts/%s/balance", accountID), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.AccountBalanceResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.NewFromInt(2000)))
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_AlreadyDeletedConflict() {
	accountID := uuid.NewString()

	suite.mockAccountService.On("DeleteAccount", mock.Anything, accountID).
		Return(fmt.Errorf("%w: account %s", apperrors.ErrAccountDeleted, accountID)).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/accounts/"+accountID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
}

// --- Run Test Suite ---
func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
