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

// --- Mock LedgerWriterSvc ---
type MockLedgerWriterSvc struct {
	mock.Mock
}

func (m *MockLedgerWriterSvc) CreateRecord(ctx context.Context, req dto.CreateRecordRequest) (*domain.LedgerRecord, error) {
	args := m.Called(ctx, req)
	var record *domain.LedgerRecord
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.LedgerRecord)
	}
	return record, args.Error(1)
}

func (m *MockLedgerWriterSvc) UpdateRecord(ctx context.Context, recordID string, req dto.UpdateRecordRequest) (*domain.LedgerRecord, error) {
	args := m.Called(ctx, recordID, req)
	var record *domain.LedgerRecord
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.LedgerRecord)
	}
	return record, args.Error(1)
}

func (m *MockLedgerWriterSvc) DeleteRecords(ctx context.Context, recordIDs []string) error {
	args := m.Called(ctx, recordIDs)
	return args.Error(0)
}

type ImporterServiceTestSuite struct {
	suite.Suite
	mockLedgerSvc *MockLedgerWriterSvc
	service       portssvc.ImporterSvc
}

func (suite *ImporterServiceTestSuite) SetupTest() {
	suite.mockLedgerSvc = new(MockLedgerWriterSvc)
	suite.service = services.NewImporterService(suite.mockLedgerSvc)
}

func (suite *ImporterServiceTestSuite) TestPreviewImport_BankExportEndToEnd() {
	ctx := context.Background()
	content := "Vencimento;Descrição;Valor;Status;Forma de Pagamento;Centro de Custo;Sub-item;Conta\n" +
		"05/03/2024;Aluguel;1.234,56;PAGO;PIX;Moradia;;Nubank\n" +
		"10/03/2024;Internet;abc;;;;;\n" +
		"15/03/2024;Luz\n" +
		"20/03/24;Agua;45,90;PENDENTE;Boleto;Moradia;;\n"

	preview, err := suite.service.PreviewImport(ctx, dto.ImportPreviewRequest{
		Direction: domain.Payable,
		Content:   content,
	})

	suite.Require().NoError(err)
	suite.Equal(";", preview.Report.Delimiter)
	suite.Equal(3, preview.Report.Parsed)
	suite.Equal(1, preview.Report.Skipped)
	suite.Equal(1, preview.Report.SuspiciousRows)
	suite.Require().Len(preview.Candidates, 3)

	rent := preview.Candidates[0]
	suite.Equal("2024-03-05", rent.DueDate)
	suite.Equal("ALUGUEL", rent.Description)
	suite.Equal("1234.56", rent.Amount.String())
	suite.Equal("SETTLED", rent.Status)
	suite.Equal("2024-03-05", rent.SettledDate)
	suite.Equal("MORADIA", rent.CostCenter)
	suite.Equal("NUBANK", rent.Account)
	suite.NotEmpty(rent.RecordID)

	internet := preview.Candidates[1]
	suite.Equal("0", internet.Amount.String())
	suite.Equal("PENDING", internet.Status)
	suite.Equal("PIX", internet.PaymentMethod)
	suite.Equal("OTHERS", internet.CostCenter)
	suite.Equal(domain.DefaultAccount, internet.Account)

	water := preview.Candidates[2]
	suite.Equal("2024-03-20", water.DueDate)
	suite.Equal("45.9", water.Amount.String())
	suite.Equal("PENDING", water.Status)
	suite.Equal("BOLETO", water.PaymentMethod)
}

func (suite *ImporterServiceTestSuite) TestPreviewImport_CommaDelimiterAndISODatePassThrough() {
	ctx := context.Background()
	content := "Due Date,Description,Amount,Status,Payment Method\n" +
		"2024-04-01,Consulting,150,RECEBIDO,TED\n"

	preview, err := suite.service.PreviewImport(ctx, dto.ImportPreviewRequest{
		Direction: domain.Receivable,
		Content:   content,
	})

	suite.Require().NoError(err)
	suite.Equal(",", preview.Report.Delimiter)
	suite.Require().Len(preview.Candidates, 1)

	row := preview.Candidates[0]
	suite.Equal("2024-04-01", row.DueDate)
	suite.Equal("CONSULTING", row.Description)
	suite.Equal("SETTLED", row.Status)
	suite.Equal("TED", row.PaymentMethod)
}

func (suite *ImporterServiceTestSuite) TestPreviewImport_CurrencyPrefixIsSuspicious() {
	ctx := context.Background()
	content := "Vencimento;Descrição;Valor;Status;Conta\n" +
		"01/05/2024;Venda;R$ 2.500,00;RECEB;Caixa\n"

	preview, err := suite.service.PreviewImport(ctx, dto.ImportPreviewRequest{
		Direction: domain.Receivable,
		Content:   content,
	})

	suite.Require().NoError(err)
	suite.Require().Len(preview.Candidates, 1)
	suite.Equal("0", preview.Candidates[0].Amount.String())
	suite.Equal("SETTLED", preview.Candidates[0].Status)
	suite.Equal("CAIXA", preview.Candidates[0].Account)
	suite.Equal(1, preview.Report.SuspiciousRows)
}

func (suite *ImporterServiceTestSuite) TestPreviewImport_ReadsBackOwnExport() {
	ctx := context.Background()
	records := []domain.LedgerRecord{
		{
			RecordID:      "1",
			Direction:     domain.Payable,
			DueDate:       "2024-03-05",
			Description:   "ALUGUEL",
			Amount:        decimal.RequireFromString("1234.56"),
			Status:        domain.StatusSettled,
			SettledDate:   "2024-03-05",
			PaymentMethod: "PIX",
			CostCenter:    "MORADIA",
			Account:       "NUBANK",
		},
		{
			RecordID:      "2",
			Direction:     domain.Payable,
			DueDate:       "2024-04-10",
			Description:   "INTERNET",
			Amount:        decimal.RequireFromString("99.90"),
			Status:        domain.StatusPending,
			PaymentMethod: "BOLETO",
			CostCenter:    "MORADIA",
			Account:       "CAIXA",
		},
	}
	mockLedgerRepo := new(MockLedgerRepository)
	mockLedgerRepo.On("FindRecords", ctx).Return(records, nil).Once()
	exporter := services.NewCashFlowService(mockLedgerRepo, new(MockCostCenterRepository))

	out, err := exporter.ExportReportCSV(ctx, dto.ReportParams{})
	suite.Require().NoError(err)

	preview, err := suite.service.PreviewImport(ctx, dto.ImportPreviewRequest{
		Direction: domain.Payable,
		Content:   string(out),
	})

	suite.Require().NoError(err)
	suite.Equal(0, preview.Report.Skipped)
	suite.Equal(0, preview.Report.SuspiciousRows)
	suite.Require().Len(preview.Candidates, 2)

	rent := preview.Candidates[0]
	suite.Equal("2024-03-05", rent.DueDate)
	suite.True(rent.Amount.Equal(records[0].Amount))
	suite.Equal("ALUGUEL", rent.Description)
	suite.Equal("SETTLED", rent.Status)
	suite.Equal("MORADIA", rent.CostCenter)
	suite.Equal("NUBANK", rent.Account)

	internet := preview.Candidates[1]
	suite.Equal("2024-04-10", internet.DueDate)
	suite.True(internet.Amount.Equal(records[1].Amount))
	suite.Equal("PENDING", internet.Status)
	suite.Equal("BOLETO", internet.PaymentMethod)
	suite.Equal("CAIXA", internet.Account)
}

func (suite *ImporterServiceTestSuite) TestPreviewImport_EmptyContent() {
	ctx := context.Background()

	_, err := suite.service.PreviewImport(ctx, dto.ImportPreviewRequest{
		Direction: domain.Payable,
		Content:   "\n\n",
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ImporterServiceTestSuite) TestPreviewImport_NothingPersisted() {
	ctx := context.Background()
	content := "Vencimento;Descrição;Valor;Status;Conta\n" +
		"01/05/2024;Venda;100,00;PAGO;Caixa\n"

	_, err := suite.service.PreviewImport(ctx, dto.ImportPreviewRequest{
		Direction: domain.Payable,
		Content:   content,
	})

	suite.Require().NoError(err)
	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "CreateRecord")
}

func (suite *ImporterServiceTestSuite) TestCommitImport_CreatesEveryRow() {
	ctx := context.Background()
	records := []dto.CreateRecordRequest{
		{Direction: domain.Payable, DueDate: "2024-03-05", Description: "ALUGUEL"},
		{Direction: domain.Payable, DueDate: "2024-03-10", Description: "INTERNET"},
	}
	suite.mockLedgerSvc.On("CreateRecord", ctx, mock.Anything).
		Return(&domain.LedgerRecord{RecordID: "rec"}, nil).Twice()

	result, err := suite.service.CommitImport(ctx, dto.ImportCommitRequest{Records: records})

	suite.Require().NoError(err)
	suite.Equal(2, result.Created)
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *ImporterServiceTestSuite) TestCommitImport_StopsOnFirstFailure() {
	ctx := context.Background()
	records := []dto.CreateRecordRequest{
		{Direction: domain.Payable, DueDate: "bad-date", Description: "X"},
	}
	suite.mockLedgerSvc.On("CreateRecord", ctx, mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()

	_, err := suite.service.CommitImport(ctx, dto.ImportCommitRequest{Records: records})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func TestImporterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImporterServiceTestSuite))
}
