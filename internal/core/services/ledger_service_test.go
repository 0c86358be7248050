package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lucasmbp/fluxo_caixa_app/internal/apperrors"
	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	portssvc "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/services"
	"github.com/lucasmbp/fluxo_caixa_app/internal/core/services"
	"github.com/lucasmbp/fluxo_caixa_app/internal/dto"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo     *MockLedgerRepository
	mockCostCenterRepo *MockCostCenterRepository
	service            portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockCostCenterRepo = new(MockCostCenterRepository)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockCostCenterRepo)
}

func (suite *LedgerServiceTestSuite) expectNoCostCenter(name string) {
	suite.mockCostCenterRepo.On("FindCostCenterByName", mock.Anything, name, mock.Anything).
		Return(nil, apperrors.ErrNotFound)
}

// --- CreateRecord Tests ---

func (suite *LedgerServiceTestSuite) TestCreateRecord_UppercasesAndDefaults() {
	ctx := context.Background()
	suite.expectNoCostCenter("SUPPLIES")
	suite.mockLedgerRepo.On("SaveRecord", ctx, mock.MatchedBy(func(r domain.LedgerRecord) bool {
		return r.Description == "OFFICE CHAIRS" &&
			r.CostCenter == "SUPPLIES" &&
			r.Account == domain.DefaultAccount &&
			r.Status == domain.StatusPending &&
			r.RecordID != ""
	})).Return(nil).Once()

	record, err := suite.service.CreateRecord(ctx, dto.CreateRecordRequest{
		Direction:   domain.Payable,
		DueDate:     "2024-03-05",
		Description: "office chairs",
		Amount:      decimal.NewFromInt(100),
		CostCenter:  "supplies",
	})

	suite.Require().NoError(err)
	suite.Equal("OFFICE CHAIRS", record.Description)
	suite.Equal(domain.DefaultAccount, record.Account)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateRecord_SettledWithoutDateSettlesOnDueDate() {
	ctx := context.Background()
	suite.expectNoCostCenter("RENT")
	suite.mockLedgerRepo.On("SaveRecord", ctx, mock.Anything).Return(nil).Once()

	record, err := suite.service.CreateRecord(ctx, dto.CreateRecordRequest{
		Direction:   domain.Payable,
		DueDate:     "2024-03-05",
		Description: "rent",
		Amount:      decimal.NewFromInt(900),
		Status:      "SETTLED",
		CostCenter:  "rent",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.StatusSettled, record.Status)
	suite.Equal("2024-03-05", record.SettledDate)
}

func (suite *LedgerServiceTestSuite) TestCreateRecord_SettledDateImpliesSettledStatus() {
	ctx := context.Background()
	suite.expectNoCostCenter("RENT")
	suite.mockLedgerRepo.On("SaveRecord", ctx, mock.Anything).Return(nil).Once()

	record, err := suite.service.CreateRecord(ctx, dto.CreateRecordRequest{
		Direction:   domain.Receivable,
		DueDate:     "2024-03-05",
		SettledDate: "2024-03-01",
		Description: "rent",
		Amount:      decimal.NewFromInt(900),
		CostCenter:  "rent",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.StatusSettled, record.Status)
	suite.Equal("2024-03-01", record.SettledDate)
}

func (suite *LedgerServiceTestSuite) TestCreateRecord_BadDueDate() {
	ctx := context.Background()

	_, err := suite.service.CreateRecord(ctx, dto.CreateRecordRequest{
		Direction:   domain.Payable,
		DueDate:     "05/03/2024",
		Description: "rent",
		Amount:      decimal.NewFromInt(900),
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveRecord")
}

func (suite *LedgerServiceTestSuite) TestCreateRecord_NegativeAmount() {
	ctx := context.Background()

	_, err := suite.service.CreateRecord(ctx, dto.CreateRecordRequest{
		Direction:   domain.Payable,
		DueDate:     "2024-03-05",
		Description: "rent",
		Amount:      decimal.NewFromInt(-1),
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestCreateRecord_CostCenterOfOppositeKind() {
	ctx := context.Background()
	// SALES is registered as an income cost center only.
	suite.mockCostCenterRepo.On("FindCostCenterByName", mock.Anything, "SALES", domain.KindExpense).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCostCenterRepo.On("FindCostCenterByName", mock.Anything, "SALES", domain.KindIncome).
		Return(&domain.CostCenter{Name: "SALES", Kind: domain.KindIncome}, nil).Once()

	_, err := suite.service.CreateRecord(ctx, dto.CreateRecordRequest{
		Direction:   domain.Payable,
		DueDate:     "2024-03-05",
		Description: "misfiled",
		Amount:      decimal.NewFromInt(10),
		CostCenter:  "sales",
	})

	suite.Require().ErrorIs(err, apperrors.ErrDomainViolation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveRecord")
}

// --- UpdateRecord Tests ---

func (suite *LedgerServiceTestSuite) TestUpdateRecord_PendingClearsSettledDate() {
	ctx := context.Background()
	existing := &domain.LedgerRecord{
		RecordID:    "rec-1",
		Direction:   domain.Payable,
		DueDate:     "2024-03-05",
		SettledDate: "2024-03-05",
		Description: "RENT",
		Amount:      decimal.NewFromInt(900),
		Status:      domain.StatusSettled,
	}
	suite.mockLedgerRepo.On("FindRecordByID", ctx, "rec-1").Return(existing, nil).Once()
	suite.mockLedgerRepo.On("UpdateRecord", ctx, mock.MatchedBy(func(r domain.LedgerRecord) bool {
		return r.Status == domain.StatusPending && r.SettledDate == ""
	})).Return(nil).Once()

	pending := "PENDING"
	record, err := suite.service.UpdateRecord(ctx, "rec-1", dto.UpdateRecordRequest{Status: &pending})

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, record.Status)
	suite.Empty(record.SettledDate)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

// --- ListRecords Tests ---

func (suite *LedgerServiceTestSuite) TestListRecords_FiltersDirectionAndAccount() {
	ctx := context.Background()
	records := []domain.LedgerRecord{
		{RecordID: "1", Direction: domain.Payable, Account: "NUBANK"},
		{RecordID: "2", Direction: domain.Payable, Account: ""},
		{RecordID: "3", Direction: domain.Receivable, Account: "NUBANK"},
	}
	suite.mockLedgerRepo.On("FindRecords", ctx).Return(records, nil)

	payablesNubank, err := suite.service.ListRecords(ctx, dto.ListRecordsParams{Direction: "PAYABLE", Account: "nubank"})
	suite.Require().NoError(err)
	suite.Len(payablesNubank, 1)
	suite.Equal("1", payablesNubank[0].RecordID)

	allPayables, err := suite.service.ListRecords(ctx, dto.ListRecordsParams{Direction: "PAYABLE", Account: domain.AllAccounts})
	suite.Require().NoError(err)
	suite.Len(allPayables, 2)
}

func (suite *LedgerServiceTestSuite) TestListAccounts_SortedWithDefault() {
	ctx := context.Background()
	records := []domain.LedgerRecord{
		{RecordID: "1", Account: "NUBANK"},
		{RecordID: "2", Account: ""},
		{RecordID: "3", Account: "CAIXA"},
		{RecordID: "4", Account: "NUBANK"},
	}
	suite.mockLedgerRepo.On("FindRecords", ctx).Return(records, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx)

	suite.Require().NoError(err)
	suite.Equal([]string{"CAIXA", domain.DefaultAccount, "NUBANK"}, accounts)
}

// --- DeleteRecords Tests ---

func (suite *LedgerServiceTestSuite) TestDeleteRecords_EmptyIDs() {
	ctx := context.Background()

	err := suite.service.DeleteRecords(ctx, nil)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "DeleteRecords")
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
