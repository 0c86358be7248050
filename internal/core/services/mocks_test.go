package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lucasmbp/fluxo_caixa_app/internal/core/domain"
)

// --- Mock UserRepositoryFacade ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByLogin(ctx context.Context, login string) (*domain.UserAccount, error) {
	args := m.Called(ctx, login)
	var user *domain.UserAccount
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.UserAccount)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context) ([]domain.UserAccount, error) {
	args := m.Called(ctx)
	var users []domain.UserAccount
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.UserAccount)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.UserAccount) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpsertUser(ctx context.Context, user domain.UserAccount) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, login string) error {
	args := m.Called(ctx, login)
	return args.Error(0)
}

// --- Mock LedgerRepositoryFacade ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.LedgerRecord, error) {
	args := m.Called(ctx, recordID)
	var record *domain.LedgerRecord
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.LedgerRecord)
	}
	return record, args.Error(1)
}

func (m *MockLedgerRepository) FindRecords(ctx context.Context) ([]domain.LedgerRecord, error) {
	args := m.Called(ctx)
	var records []domain.LedgerRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.LedgerRecord)
	}
	return records, args.Error(1)
}

func (m *MockLedgerRepository) SaveRecord(ctx context.Context, record domain.LedgerRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockLedgerRepository) UpdateRecord(ctx context.Context, record domain.LedgerRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteRecords(ctx context.Context, recordIDs []string) error {
	args := m.Called(ctx, recordIDs)
	return args.Error(0)
}

// --- Mock CostCenterRepositoryFacade ---
type MockCostCenterRepository struct {
	mock.Mock
}

func (m *MockCostCenterRepository) FindCostCenters(ctx context.Context) ([]domain.CostCenter, error) {
	args := m.Called(ctx)
	var costCenters []domain.CostCenter
	if args.Get(0) != nil {
		costCenters = args.Get(0).([]domain.CostCenter)
	}
	return costCenters, args.Error(1)
}

func (m *MockCostCenterRepository) FindCostCenterByName(ctx context.Context, name string, kind domain.CostCenterKind) (*domain.CostCenter, error) {
	args := m.Called(ctx, name, kind)
	var costCenter *domain.CostCenter
	if args.Get(0) != nil {
		costCenter = args.Get(0).(*domain.CostCenter)
	}
	return costCenter, args.Error(1)
}

func (m *MockCostCenterRepository) UpsertCostCenter(ctx context.Context, costCenter domain.CostCenter) error {
	args := m.Called(ctx, costCenter)
	return args.Error(0)
}

func (m *MockCostCenterRepository) DeleteCostCenter(ctx context.Context, costCenterID string) error {
	args := m.Called(ctx, costCenterID)
	return args.Error(0)
}
