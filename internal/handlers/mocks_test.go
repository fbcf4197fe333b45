package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
	portssvc "github.com/SscSPs/furniture_erp/internal/core/ports/services"
	"github.com/SscSPs/furniture_erp/internal/dto"
	"github.com/SscSPs/furniture_erp/internal/handlers"
	"github.com/SscSPs/furniture_erp/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// --- Mock CostCenterService ---

type MockCostCenterService struct {
	mock.Mock
}

func (m *MockCostCenterService) CreateCostCenter(ctx context.Context, workplaceID string, req dto.CreateCostCenterRequest, userID string) (*domain.CostCenter, error) {
	args := m.Called(ctx, workplaceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostCenter), args.Error(1)
}

func (m *MockCostCenterService) GetCostCenter(ctx context.Context, workplaceID, costCenterID string) (*domain.CostCenter, error) {
	args := m.Called(ctx, workplaceID, costCenterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostCenter), args.Error(1)
}

func (m *MockCostCenterService) ListCostCenters(ctx context.Context, workplaceID string, params dto.ListCostCentersParams) ([]domain.CostCenter, error) {
	args := m.Called(ctx, workplaceID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostCenter), args.Error(1)
}

func (m *MockCostCenterService) ArchiveCostCenter(ctx context.Context, workplaceID, costCenterID, userID string) error {
	args := m.Called(ctx, workplaceID, costCenterID, userID)
	return args.Error(0)
}

var _ portssvc.CostCenterSvcFacade = (*MockCostCenterService)(nil)

// --- Mock RuleService ---

type MockRuleService struct {
	mock.Mock
}

func (m *MockRuleService) GetRule(ctx context.Context, workplaceID, ruleID string) (*domain.AssignmentRule, error) {
	args := m.Called(ctx, workplaceID, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssignmentRule), args.Error(1)
}

func (m *MockRuleService) ListRules(ctx context.Context, workplaceID string, params dto.ListAssignmentRulesParams) ([]domain.AssignmentRule, error) {
	args := m.Called(ctx, workplaceID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssignmentRule), args.Error(1)
}

func (m *MockRuleService) CreateRule(ctx context.Context, workplaceID string, req dto.CreateAssignmentRuleRequest, userID string) (*domain.AssignmentRule, error) {
	args := m.Called(ctx, workplaceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssignmentRule), args.Error(1)
}

func (m *MockRuleService) UpdateRule(ctx context.Context, workplaceID, ruleID string, req dto.UpdateAssignmentRuleRequest, userID string) (*domain.AssignmentRule, error) {
	args := m.Called(ctx, workplaceID, ruleID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssignmentRule), args.Error(1)
}

func (m *MockRuleService) ArchiveRule(ctx context.Context, workplaceID, ruleID, userID string) error {
	args := m.Called(ctx, workplaceID, ruleID, userID)
	return args.Error(0)
}

var _ portssvc.RuleSvcFacade = (*MockRuleService)(nil)

// --- Mock AssignmentService ---

type MockAssignmentService struct {
	mock.Mock
}

func (m *MockAssignmentService) Evaluate(ctx context.Context, workplaceID string, counterpartyID, itemID *string) (domain.MatchResult, error) {
	args := m.Called(ctx, workplaceID, counterpartyID, itemID)
	return args.Get(0).(domain.MatchResult), args.Error(1)
}

func (m *MockAssignmentService) EvaluateBatch(ctx context.Context, workplaceID string, lines []domain.LineInput) ([]domain.LineAssignment, error) {
	args := m.Called(ctx, workplaceID, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineAssignment), args.Error(1)
}

func (m *MockAssignmentService) AssignTransactionLines(ctx context.Context, workplaceID, documentID, userID string) ([]domain.LineAssignment, error) {
	args := m.Called(ctx, workplaceID, documentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineAssignment), args.Error(1)
}

func (m *MockAssignmentService) InvalidateRuleCache(workplaceID string) {
	m.Called(workplaceID)
}

var _ portssvc.AssignmentSvcFacade = (*MockAssignmentService)(nil)

// --- Mock PaymentService ---

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Pay(ctx context.Context, workplaceID, documentID string, req dto.CreatePaymentRequest, userID string) (*domain.PaymentResult, error) {
	args := m.Called(ctx, workplaceID, documentID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentResult), args.Error(1)
}

func (m *MockPaymentService) ReversePayment(ctx context.Context, workplaceID, paymentID string, req dto.ReversePaymentRequest, userID string) (*domain.PaymentResult, error) {
	args := m.Called(ctx, workplaceID, paymentID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentResult), args.Error(1)
}

func (m *MockPaymentService) GetBalance(ctx context.Context, workplaceID, documentID string) (*domain.DocumentBalance, error) {
	args := m.Called(ctx, workplaceID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentBalance), args.Error(1)
}

func (m *MockPaymentService) ListPayments(ctx context.Context, workplaceID, documentID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	args := m.Called(ctx, workplaceID, documentID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPaymentsResponse), args.Error(1)
}

func (m *MockPaymentService) RecomputeDocument(ctx context.Context, workplaceID, documentID, userID string) (*domain.FinancialDocument, error) {
	args := m.Called(ctx, workplaceID, documentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialDocument), args.Error(1)
}

func (m *MockPaymentService) Reconcile(ctx context.Context, workplaceID string, progress portssvc.ReconcileProgress) (*domain.ReconcileReport, error) {
	args := m.Called(ctx, workplaceID, progress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconcileReport), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Shared helpers ---

// newTestRouter mounts the real auth middleware and the given routes under the workplace group.
func newTestRouter(register func(rg *gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handlers.RegisterValidators()

	router := gin.New()
	router.Use(middleware.AuthMiddleware(testJWTSecret))
	register(router.Group("/api/v1/workplaces/:workplaceID"))
	return router
}

// generateTestToken creates a signed HS256 token for userID.
func generateTestToken(s *suite.Suite, userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "erp-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		s.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

// doRequest serves one request with a bearer token for userID. An empty userID sends no token.
func doRequest(s *suite.Suite, router *gin.Engine, method, url string, body any, userID string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+generateTestToken(s, userID))
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorBody(s *suite.Suite, w *httptest.ResponseRecorder) string {
	var body map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func strPtr(v string) *string {
	return &v
}

func doRaw(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
