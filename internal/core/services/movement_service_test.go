package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/andinabank/ledger-service/internal/apperrors"
	"github.com/andinabank/ledger-service/internal/core/domain"
	portssvc "github.com/andinabank/ledger-service/internal/core/ports/services"
	"github.com/andinabank/ledger-service/internal/core/services"
	"github.com/andinabank/ledger-service/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MovementServiceTestSuite struct {
	suite.Suite
	mockMovementRepo *MockMovementRepository
	mockAccountRepo  *MockAccountRepository
	service          portssvc.MovementSvc
}

func (suite *MovementServiceTestSuite) SetupTest() {
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewMovementService(suite.mockMovementRepo, suite.mockAccountRepo)
}

func activeAccount(initial int64) *domain.Account {
	now := time.Now().UTC()
	return &domain.Account{
		AccountID:      uuid.NewString(),
		Number:         "478758",
		AccountType:    domain.Savings,
		InitialBalance: decimal.NewFromInt(initial),
		Status:         domain.StatusActive,
		CustomerID:     12,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
}

func (suite *MovementServiceTestSuite) TestRegisterMovement_CreditOnInitialBalance() {
	ctx := context.Background()
	account := activeAccount(1000)

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockMovementRepo.On("FindLatestBalance", ctx, account.AccountID).Return(nil, nil).Once()
	suite.mockMovementRepo.On("SaveMovementGuarded", ctx, mock.AnythingOfType("domain.Movement"), (*decimal.Decimal)(nil)).Return(nil).Once()

	movement, err := suite.service.RegisterMovement(ctx, dto.RegisterMovementRequest{
		AccountID:    account.AccountID,
		MovementType: domain.Credit,
		Value:        decimal.NewFromInt(500),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(movement)
	suite.True(movement.Balance.Equal(decimal.NewFromInt(1500)))
	suite.Equal(account.Number, movement.AccountNumber)
	suite.NotEmpty(movement.MovementID)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestRegisterMovement_DebitOnLatestBalance() {
	ctx := context.Background()
	account := activeAccount(1000)
	latest := decimal.NewFromInt(1500)

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockMovementRepo.On("FindLatestBalance", ctx, account.AccountID).Return(&latest, nil).Once()
	suite.mockMovementRepo.On("SaveMovementGuarded", ctx, mock.MatchedBy(func(m domain.Movement) bool {
		return m.Balance.Equal(decimal.NewFromInt(1300)) && m.MovementType == domain.Debit
	}), &latest).Return(nil).Once()

	movement, err := suite.service.RegisterMovement(ctx, dto.RegisterMovementRequest{
		AccountID:    account.AccountID,
		MovementType: domain.Debit,
		Value:        decimal.NewFromInt(200),
	})

	suite.Require().NoError(err)
	suite.True(movement.Balance.Equal(decimal.NewFromInt(1300)))
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestRegisterMovement_DebitToExactlyZero() {
	ctx := context.Background()
	account := activeAccount(1000)
	latest := decimal.NewFromInt(300)

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockMovementRepo.On("FindLatestBalance", ctx, account.AccountID).Return(&latest, nil).Once()
	suite.mockMovementRepo.On("SaveMovementGuarded", ctx, mock.MatchedBy(func(m domain.Movement) bool {
		return m.Balance.IsZero()
	}), &latest).Return(nil).Once()

	movement, err := suite.service.RegisterMovement(ctx, dto.RegisterMovementRequest{
		AccountID:    account.AccountID,
		MovementType: domain.Debit,
		Value:        decimal.NewFromInt(300),
	})

	suite.Require().NoError(err)
	suite.True(movement.Balance.IsZero())
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestRegisterMovement_InsufficientBalance() {
	ctx := context.Background()
	account := activeAccount(1000)
	latest := decimal.NewFromInt(1300)

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockMovementRepo.On("FindLatestBalance", ctx, account.AccountID).Return(&latest, nil).Once()

	movement, err := suite.service.RegisterMovement(ctx, dto.RegisterMovementRequest{
		AccountID:    account.AccountID,
		MovementType: domain.Debit,
		Value:        decimal.NewFromInt(1500),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.Nil(movement)
	// No write may happen on the rejection path.
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovementGuarded", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MovementServiceTestSuite) TestRegisterMovement_NonPositiveValue() {
	ctx := context.Background()

	for _, value := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		movement, err := suite.service.RegisterMovement(ctx, dto.RegisterMovementRequest{
			AccountID:    uuid.NewString(),
			MovementType: domain.Credit,
			Value:        value,
		})

		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Nil(movement)
	}
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, mock.Anything)
}

func (suite *MovementServiceTestSuite) TestRegisterMovement_AccountNotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	movement, err := suite.service.RegisterMovement(ctx, dto.RegisterMovementRequest{
		AccountID:    accountID,
		MovementType: domain.Credit,
		Value:        decimal.NewFromInt(100),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(movement)
}

func (suite *MovementServiceTestSuite) TestRegisterMovement_DeletedAccount() {
	ctx := context.Background()
	account := activeAccount(1000)
	account.Status = domain.StatusDeleted

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()

	movement, err := suite.service.RegisterMovement(ctx, dto.RegisterMovementRequest{
		AccountID:    account.AccountID,
		MovementType: domain.Credit,
		Value:        decimal.NewFromInt(100),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAccountDeleted)
	suite.Nil(movement)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovementGuarded", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MovementServiceTestSuite) TestRegisterMovement_ConflictPropagated() {
	ctx := context.Background()
	account := activeAccount(1000)

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockMovementRepo.On("FindLatestBalance", ctx, account.AccountID).Return(nil, nil).Once()
	suite.mockMovementRepo.On("SaveMovementGuarded", ctx, mock.AnythingOfType("domain.Movement"), (*decimal.Decimal)(nil)).Return(apperrors.ErrConflict).Once()

	movement, err := suite.service.RegisterMovement(ctx, dto.RegisterMovementRequest{
		AccountID:    account.AccountID,
		MovementType: domain.Credit,
		Value:        decimal.NewFromInt(100),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(movement)
}

func (suite *MovementServiceTestSuite) TestCreateMovement_KeepsCallerBalance() {
	ctx := context.Background()
	account := activeAccount(1000)

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockMovementRepo.On("SaveMovement", ctx, mock.MatchedBy(func(m domain.Movement) bool {
		return m.Balance.Equal(decimal.NewFromInt(999))
	})).Return(nil).Once()

	movement, err := suite.service.CreateMovement(ctx, dto.CreateMovementRequest{
		AccountID:    account.AccountID,
		MovementType: domain.Credit,
		Value:        decimal.NewFromInt(50),
		Balance:      decimal.NewFromInt(999),
	})

	suite.Require().NoError(err)
	suite.True(movement.Balance.Equal(decimal.NewFromInt(999)))
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestUpdateMovement_NotFound() {
	ctx := context.Background()
	movementID := uuid.NewString()

	suite.mockMovementRepo.On("FindMovementByID", ctx, movementID).Return(nil, apperrors.ErrNotFound).Once()

	movement, err := suite.service.UpdateMovement(ctx, movementID, dto.CreateMovementRequest{
		AccountID:    uuid.NewString(),
		MovementType: domain.Credit,
		Value:        decimal.NewFromInt(100),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(movement)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "UpdateMovement", mock.Anything, mock.Anything)
}

func (suite *MovementServiceTestSuite) TestUpdateMovement_ReplacesWholesale() {
	ctx := context.Background()
	existing := &domain.Movement{
		MovementID:   uuid.NewString(),
		AccountID:    uuid.NewString(),
		MovementType: domain.Credit,
		Value:        decimal.NewFromInt(100),
		MovementDate: time.Now().UTC().Add(-time.Hour),
		Balance:      decimal.NewFromInt(1100),
		CreatedAt:    time.Now().UTC().Add(-time.Hour),
	}

	suite.mockMovementRepo.On("FindMovementByID", ctx, existing.MovementID).Return(existing, nil).Once()
	suite.mockMovementRepo.On("UpdateMovement", ctx, mock.MatchedBy(func(m domain.Movement) bool {
		return m.MovementID == existing.MovementID &&
			m.MovementType == domain.Debit &&
			m.Value.Equal(decimal.NewFromInt(60)) &&
			m.Balance.Equal(decimal.NewFromInt(1040))
	})).Return(nil).Once()

	movement, err := suite.service.UpdateMovement(ctx, existing.MovementID, dto.CreateMovementRequest{
		AccountID:    existing.AccountID,
		MovementType: domain.Debit,
		Value:        decimal.NewFromInt(60),
		Balance:      decimal.NewFromInt(1040),
	})

	suite.Require().NoError(err)
	suite.Equal(existing.MovementID, movement.MovementID)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestDeleteMovement_NoBalanceRecompute() {
	ctx := context.Background()
	existing := &domain.Movement{
		MovementID: uuid.NewString(),
		AccountID:  uuid.NewString(),
	}

	suite.mockMovementRepo.On("FindMovementByID", ctx, existing.MovementID).Return(existing, nil).Once()
	suite.mockMovementRepo.On("DeleteMovement", ctx, existing.MovementID).Return(nil).Once()

	err := suite.service.DeleteMovement(ctx, existing.MovementID)

	suite.Require().NoError(err)
	// Neither a balance read nor any movement rewrite happens on delete.
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "FindLatestBalance", mock.Anything, mock.Anything)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "UpdateMovement", mock.Anything, mock.Anything)
}

func (suite *MovementServiceTestSuite) TestGetCurrentBalance_NoMovements() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockMovementRepo.On("FindLatestBalance", ctx, accountID).Return(nil, nil).Once()

	balance, err := suite.service.GetCurrentBalance(ctx, accountID)

	suite.Require().NoError(err)
	suite.Nil(balance)
}

func (suite *MovementServiceTestSuite) TestListMovements_PassesToken() {
	ctx := context.Background()
	token := "b3BhcXVl"
	next := "bmV4dA"

	suite.mockMovementRepo.On("ListMovements", ctx, 25, &token).Return([]domain.Movement{
		{MovementID: uuid.NewString(), Value: decimal.NewFromInt(10)},
	}, &next, nil).Once()

	page, err := suite.service.ListMovements(ctx, dto.ListMovementsParams{Limit: 25, NextToken: &token})

	suite.Require().NoError(err)
	suite.Len(page.Movements, 1)
	suite.Equal(&next, page.NextToken)
}

func TestMovementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MovementServiceTestSuite))
}
