package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AssignmentRuleRepository ---

type MockAssignmentRuleRepository struct {
	mock.Mock
}

func (m *MockAssignmentRuleRepository) FindRuleByID(ctx context.Context, workplaceID, ruleID string) (*domain.AssignmentRule, error) {
	args := m.Called(ctx, workplaceID, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssignmentRule), args.Error(1)
}

func (m *MockAssignmentRuleRepository) ListActiveRules(ctx context.Context, workplaceID string) ([]domain.AssignmentRule, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssignmentRule), args.Error(1)
}

func (m *MockAssignmentRuleRepository) ListRules(ctx context.Context, workplaceID string, includeArchived bool) ([]domain.AssignmentRule, error) {
	args := m.Called(ctx, workplaceID, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssignmentRule), args.Error(1)
}

func (m *MockAssignmentRuleRepository) SaveRule(ctx context.Context, rule domain.AssignmentRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockAssignmentRuleRepository) UpdateRule(ctx context.Context, rule domain.AssignmentRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockAssignmentRuleRepository) ArchiveRule(ctx context.Context, workplaceID, ruleID, userID string, at time.Time) error {
	args := m.Called(ctx, workplaceID, ruleID, userID, at)
	return args.Error(0)
}

// --- Mock CostCenterRepository ---

type MockCostCenterRepository struct {
	mock.Mock
}

func (m *MockCostCenterRepository) FindCostCenterByID(ctx context.Context, workplaceID, costCenterID string) (*domain.CostCenter, error) {
	args := m.Called(ctx, workplaceID, costCenterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostCenter), args.Error(1)
}

func (m *MockCostCenterRepository) ListCostCenters(ctx context.Context, workplaceID string, includeArchived bool) ([]domain.CostCenter, error) {
	args := m.Called(ctx, workplaceID, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostCenter), args.Error(1)
}

func (m *MockCostCenterRepository) SaveCostCenter(ctx context.Context, costCenter domain.CostCenter) error {
	args := m.Called(ctx, costCenter)
	return args.Error(0)
}

func (m *MockCostCenterRepository) ArchiveCostCenter(ctx context.Context, workplaceID, costCenterID, userID string, at time.Time) error {
	args := m.Called(ctx, workplaceID, costCenterID, userID, at)
	return args.Error(0)
}

// --- Mock TransactionLineRepository ---

type MockTransactionLineRepository struct {
	mock.Mock
}

func (m *MockTransactionLineRepository) ListLinesByDocument(ctx context.Context, workplaceID, documentID string) ([]domain.TransactionLine, error) {
	args := m.Called(ctx, workplaceID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionLine), args.Error(1)
}

func (m *MockTransactionLineRepository) AssignCostCenters(ctx context.Context, workplaceID string, assignments []domain.LineAssignment, userID string, at time.Time) ([]string, error) {
	args := m.Called(ctx, workplaceID, assignments, userID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- Mock TransactionManager ---

type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock DocumentRepository ---

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, workplaceID, documentID string) (*domain.FinancialDocument, error) {
	args := m.Called(ctx, workplaceID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialDocument), args.Error(1)
}

func (m *MockDocumentRepository) ListPayableDocuments(ctx context.Context, workplaceID string) ([]domain.FinancialDocument, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialDocument), args.Error(1)
}

func (m *MockDocumentRepository) FindDocumentForUpdate(ctx context.Context, tx pgx.Tx, workplaceID, documentID string) (*domain.FinancialDocument, error) {
	args := m.Called(ctx, tx, workplaceID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Hand out a copy so the service can mutate it freely between calls.
	doc := *args.Get(0).(*domain.FinancialDocument)
	return &doc, args.Error(1)
}

func (m *MockDocumentRepository) UpdateDerivedFieldsInTx(ctx context.Context, tx pgx.Tx, documentID string, paid decimal.Decimal, status domain.DocumentStatus, userID string, at time.Time) (int64, error) {
	args := m.Called(ctx, tx, documentID, paid, status, userID, at)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock LedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) SumCompletedByDocument(ctx context.Context, documentID string) (decimal.Decimal, error) {
	args := m.Called(ctx, documentID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) SumCompletedByDocumentInTx(ctx context.Context, tx pgx.Tx, documentID string) (decimal.Decimal, error) {
	args := m.Called(ctx, tx, documentID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) FindPaymentByID(ctx context.Context, workplaceID, paymentID string) (*domain.PaymentLedgerEntry, error) {
	args := m.Called(ctx, workplaceID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentLedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListPaymentsByDocument(ctx context.Context, workplaceID, documentID string, limit int, nextToken *string) ([]domain.PaymentLedgerEntry, *string, error) {
	args := m.Called(ctx, workplaceID, documentID, limit, nextToken)
	var entries []domain.PaymentLedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.PaymentLedgerEntry)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

func (m *MockLedgerRepository) HasReversalInTx(ctx context.Context, tx pgx.Tx, paymentID string) (bool, error) {
	args := m.Called(ctx, tx, paymentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerRepository) InsertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.PaymentLedgerEntry) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) NextPaymentSequenceInTx(ctx context.Context, tx pgx.Tx, workplaceID, prefix, period string) (int64, error) {
	args := m.Called(ctx, tx, workplaceID, prefix, period)
	return args.Get(0).(int64), args.Error(1)
}

// --- Fake pgx.Tx ---

// fakeTx stands in for a database transaction. Nested Begin calls return savepoints.
type fakeTx struct {
	pgx.Tx
	beginErr   error
	commitErr  error
	committed  bool
	rolledBack bool
	savepoints []*fakeTx
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) {
	if t.beginErr != nil {
		return nil, t.beginErr
	}
	sp := &fakeTx{}
	t.savepoints = append(t.savepoints, sp)
	return sp, nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

func ptr(s string) *string {
	return &s
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// decEq matches a decimal argument by value rather than representation.
func decEq(s string) interface{} {
	want := dec(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}
