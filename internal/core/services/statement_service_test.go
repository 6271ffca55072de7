package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/andinabank/ledger-service/internal/apperrors"
	"github.com/andinabank/ledger-service/internal/core/domain"
	portssvc "github.com/andinabank/ledger-service/internal/core/ports/services"
	"github.com/andinabank/ledger-service/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type StatementServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockMovementRepo *MockMovementRepository
	mockRefRepo      *MockCustomerReferenceRepository
	service          portssvc.StatementSvc

	from time.Time
	to   time.Time
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockRefRepo = new(MockCustomerReferenceRepository)
	suite.service = services.NewStatementService(suite.mockAccountRepo, suite.mockMovementRepo, suite.mockRefRepo)

	suite.from, _ = time.Parse("2006-01-02", "2024-02-01")
	suite.to, _ = time.Parse("2006-01-02", "2024-02-29")
}

func (suite *StatementServiceTestSuite) TestGetStatement_CustomerNotFound() {
	ctx := context.Background()

	suite.mockRefRepo.On("FindCustomerReferenceByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	statement, err := suite.service.GetStatement(ctx, 404, suite.from, suite.to)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(statement)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountsByCustomerID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestGetStatement_GroupsPerAccountKey() {
	ctx := context.Background()
	savings := domain.Account{
		AccountID:      uuid.NewString(),
		Number:         "478758",
		AccountType:    domain.Savings,
		InitialBalance: decimal.NewFromInt(2000),
		Status:         domain.StatusActive,
		CustomerID:     12,
	}
	checking := domain.Account{
		AccountID:      uuid.NewString(),
		Number:         "478758",
		AccountType:    domain.Checking,
		InitialBalance: decimal.NewFromInt(100),
		Status:         domain.StatusActive,
		CustomerID:     12,
	}

	suite.mockRefRepo.On("FindCustomerReferenceByID", ctx, int64(12)).Return(&domain.CustomerReference{
		CustomerID: 12,
		Name:       "Jose Lema",
		Status:     domain.StatusActive,
	}, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByCustomerID", ctx, int64(12), domain.StatusActive).
		Return([]domain.Account{savings, checking}, nil).Once()
	suite.mockMovementRepo.On("FindMovementsByAccountAndRange", ctx, savings.AccountID, suite.from, suite.to).
		Return([]domain.Movement{
			{
				MovementID:   uuid.NewString(),
				AccountID:    savings.AccountID,
				MovementType: domain.Debit,
				Value:        decimal.NewFromInt(575),
				MovementDate: suite.from.Add(12 * time.Hour),
				Balance:      decimal.NewFromInt(1425),
			},
		}, nil).Once()
	suite.mockMovementRepo.On("FindMovementsByAccountAndRange", ctx, checking.AccountID, suite.from, suite.to).
		Return([]domain.Movement{}, nil).Once()

	statement, err := suite.service.GetStatement(ctx, 12, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(statement.Accounts, 2)

	// Same number, different type: two distinct keys.
	movements := statement.Movements()
	suite.Require().Len(movements, 2)
	suite.Len(movements["478758-SAVINGS"], 1)
	suite.Empty(movements["478758-CHECKING"])

	// Stored balances are surfaced verbatim.
	line := movements["478758-SAVINGS"][0]
	suite.True(line.Balance.Equal(decimal.NewFromInt(1425)))
	suite.Equal(domain.Debit, line.MovementType)
}

func (suite *StatementServiceTestSuite) TestGetStatement_EmptyRangeYieldsEmptyLines() {
	ctx := context.Background()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Number:      "496825",
		AccountType: domain.Savings,
		Status:      domain.StatusActive,
		CustomerID:  7,
	}

	suite.mockRefRepo.On("FindCustomerReferenceByID", ctx, int64(7)).Return(&domain.CustomerReference{
		CustomerID: 7,
		Name:       "Marianela Montalvo",
		Status:     domain.StatusActive,
	}, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByCustomerID", ctx, int64(7), domain.StatusActive).
		Return([]domain.Account{account}, nil).Once()
	suite.mockMovementRepo.On("FindMovementsByAccountAndRange", ctx, account.AccountID, suite.from, suite.to).
		Return([]domain.Movement{}, nil).Once()

	statement, err := suite.service.GetStatement(ctx, 7, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(statement.Accounts, 1)
	suite.Empty(statement.Accounts[0].Lines)
}

func (suite *StatementServiceTestSuite) TestGetStatement_NoBalanceResolution() {
	ctx := context.Background()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Number:      "478758",
		AccountType: domain.Savings,
		Status:      domain.StatusActive,
		CustomerID:  12,
	}

	suite.mockRefRepo.On("FindCustomerReferenceByID", ctx, int64(12)).Return(&domain.CustomerReference{
		CustomerID: 12,
		Status:     domain.StatusActive,
	}, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByCustomerID", ctx, int64(12), domain.StatusActive).
		Return([]domain.Account{account}, nil).Once()
	suite.mockMovementRepo.On("FindMovementsByAccountAndRange", ctx, account.AccountID, suite.from, suite.to).
		Return([]domain.Movement{}, nil).Once()

	_, err := suite.service.GetStatement(ctx, 12, suite.from, suite.to)

	suite.Require().NoError(err)
	// The JSON statement never resolves current balances; only the export does.
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "FindLatestBalance", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestExportStatementXLSX_ResolvesBalances() {
	ctx := context.Background()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		Number:         "478758",
		AccountType:    domain.Savings,
		InitialBalance: decimal.NewFromInt(2000),
		Status:         domain.StatusActive,
		CustomerID:     12,
	}

	suite.mockRefRepo.On("FindCustomerReferenceByID", ctx, int64(12)).Return(&domain.CustomerReference{
		CustomerID:     12,
		Name:           "Jose Lema",
		Identification: "1717171717",
		Status:         domain.StatusActive,
	}, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByCustomerID", ctx, int64(12), domain.StatusActive).
		Return([]domain.Account{account}, nil).Once()
	suite.mockMovementRepo.On("FindMovementsByAccountAndRange", ctx, account.AccountID, suite.from, suite.to).
		Return([]domain.Movement{}, nil).Once()
	// No movements at all: the export falls back to the initial balance.
	suite.mockMovementRepo.On("FindLatestBalance", ctx, account.AccountID).Return(nil, nil).Once()

	data, err := suite.service.ExportStatementXLSX(ctx, 12, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.NotEmpty(data)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
