package services_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
	portssvc "github.com/lucasmbp/fluxo_caixa_app/internal/core/ports/services"
	"github.com/lucasmbp/fluxo_caixa_app/internal/core/services"
	"github.com/lucasmbp/fluxo_caixa_app/internal/dto"
)

type CashFlowServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo     *MockLedgerRepository
	mockCostCenterRepo *MockCostCenterRepository
	service            portssvc.CashFlowSvc
}

func (suite *CashFlowServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockCostCenterRepo = new(MockCostCenterRepository)
	suite.service = services.NewCashFlowService(suite.mockLedgerRepo, suite.mockCostCenterRepo)
}

func (suite *CashFlowServiceTestSuite) TestBuildMatrix_RendersFixedDecimals() {
	ctx := context.Background()
	records := []domain.LedgerRecord{
		{RecordID: "1", Direction: domain.Receivable, DueDate: "2024-01-10", CostCenter: "SALES", Amount: decimal.RequireFromString("100.5")},
	}
	suite.mockLedgerRepo.On("FindRecords", ctx).Return(records, nil).Once()
	suite.mockCostCenterRepo.On("FindCostCenters", ctx).Return(nil, nil).Once()

	matrix, err := suite.service.BuildMatrix(ctx, dto.CashFlowParams{})

	suite.Require().NoError(err)
	suite.Require().Len(matrix.IncomeRows, 1)
	suite.Equal("100.50", matrix.IncomeRows[0].Months[0])
	suite.Equal("100.50", matrix.TotalIn[0])
	suite.Equal("0.00", matrix.TotalOut[0])
	suite.Equal("100.50", matrix.AnnualBalance)
	suite.Equal("JAN", matrix.MonthLabels[0])
}

func (suite *CashFlowServiceTestSuite) TestBuildMatrix_AccountScope() {
	ctx := context.Background()
	records := []domain.LedgerRecord{
		{RecordID: "1", Direction: domain.Receivable, DueDate: "2024-01-10", CostCenter: "SALES", Account: "NUBANK", Amount: decimal.NewFromInt(100)},
		{RecordID: "2", Direction: domain.Receivable, DueDate: "2024-01-10", CostCenter: "SALES", Account: "CAIXA", Amount: decimal.NewFromInt(40)},
	}
	suite.mockLedgerRepo.On("FindRecords", ctx).Return(records, nil).Once()
	suite.mockCostCenterRepo.On("FindCostCenters", ctx).Return(nil, nil).Once()

	matrix, err := suite.service.BuildMatrix(ctx, dto.CashFlowParams{Account: "nubank"})

	suite.Require().NoError(err)
	suite.Equal("100.00", matrix.TotalIn[0])
}

func (suite *CashFlowServiceTestSuite) TestBuildSummary_TotalsAndPending() {
	ctx := context.Background()
	records := []domain.LedgerRecord{
		{RecordID: "1", Direction: domain.Receivable, DueDate: "2024-01-10", Status: domain.StatusSettled, Amount: decimal.NewFromInt(500)},
		{RecordID: "2", Direction: domain.Receivable, DueDate: "2024-02-10", Status: domain.StatusPending, Amount: decimal.NewFromInt(200)},
		{RecordID: "3", Direction: domain.Payable, DueDate: "2024-01-15", Status: domain.StatusPending, CostCenter: "RENT", Amount: decimal.NewFromInt(300)},
		{RecordID: "4", Direction: domain.Payable, DueDate: "2024-03-15", Status: domain.StatusSettled, CostCenter: "SUPPLIES", Amount: decimal.NewFromInt(100)},
	}
	suite.mockLedgerRepo.On("FindRecords", ctx).Return(records, nil).Once()

	summary, err := suite.service.BuildSummary(ctx, dto.SummaryParams{})

	suite.Require().NoError(err)
	suite.Equal("700.00", summary.TotalIncome)
	suite.Equal("400.00", summary.TotalExpense)
	suite.Equal("300.00", summary.Balance)
	suite.Equal("300.00", summary.PendingPayable)
	suite.Equal("200.00", summary.PendingReceivable)
	suite.Equal("500.00", summary.MonthlyIncome[0])
	suite.Equal("200.00", summary.MonthlyIncome[1])
	suite.Equal("300.00", summary.MonthlyExpense[0])

	suite.Require().Len(summary.TopExpenses, 2)
	suite.Equal("RENT", summary.TopExpenses[0].CostCenter)
	suite.Equal("SUPPLIES", summary.TopExpenses[1].CostCenter)
}

func (suite *CashFlowServiceTestSuite) TestBuildReport_Filters() {
	ctx := context.Background()
	records := []domain.LedgerRecord{
		{RecordID: "1", Direction: domain.Payable, DueDate: "2024-01-10", Status: domain.StatusSettled, PaymentMethod: "PIX", CostCenter: "RENT", Amount: decimal.NewFromInt(100)},
		{RecordID: "2", Direction: domain.Payable, DueDate: "2023-01-10", Status: domain.StatusSettled, PaymentMethod: "PIX", CostCenter: "RENT", Amount: decimal.NewFromInt(50)},
		{RecordID: "3", Direction: domain.Receivable, DueDate: "2024-01-10", Status: domain.StatusPending, PaymentMethod: "TED", CostCenter: "SALES", Amount: decimal.NewFromInt(70)},
	}
	suite.mockLedgerRepo.On("FindRecords", ctx).Return(records, nil).Once()

	report, err := suite.service.BuildReport(ctx, dto.ReportParams{
		Direction: "PAYABLE",
		Status:    "SETTLED",
		Year:      2024,
	})

	suite.Require().NoError(err)
	suite.Require().Len(report.Records, 1)
	suite.Equal("1", report.Records[0].RecordID)
	suite.Equal("100.00", report.Total)
}

func (suite *CashFlowServiceTestSuite) TestExportReportCSV_SpreadsheetFriendly() {
	ctx := context.Background()
	records := []domain.LedgerRecord{
		{
			RecordID:      "1",
			Direction:     domain.Payable,
			DueDate:       "2024-01-10",
			Description:   "RENT; JANUARY",
			Status:        domain.StatusSettled,
			PaymentMethod: "PIX",
			CostCenter:    "RENT",
			Amount:        decimal.RequireFromString("1234.56"),
		},
		{
			RecordID:  "2",
			Direction: domain.Receivable,
			DueDate:   "2024-01-12",
			Status:    domain.StatusSettled,
			Amount:    decimal.NewFromInt(10),
		},
		{
			RecordID:  "3",
			Direction: domain.Payable,
			DueDate:   "2024-01-15",
			Status:    domain.StatusPending,
			Amount:    decimal.NewFromInt(5),
		},
	}
	suite.mockLedgerRepo.On("FindRecords", ctx).Return(records, nil).Once()

	out, err := suite.service.ExportReportCSV(ctx, dto.ReportParams{})

	suite.Require().NoError(err)
	suite.True(bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))

	lines := strings.Split(strings.TrimRight(string(out[3:]), "\r\n"), "\r\n")
	suite.Require().Len(lines, 4)
	suite.Equal("Due Date;Account;Cost Center;Sub-Item;Description;Payment Method;Status;Amount", lines[0])

	// Decimal comma, and the semicolon inside the description downgraded.
	suite.Contains(lines[1], "1234,56")
	suite.Contains(lines[1], "RENT, JANUARY")
	suite.Contains(lines[1], ";PAGO;")
	suite.Contains(lines[2], ";RECEBIDO;")
	suite.Contains(lines[3], ";PENDENTE;")
	suite.Contains(lines[2], domain.DefaultAccount)
}

func TestCashFlowServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashFlowServiceTestSuite))
}
