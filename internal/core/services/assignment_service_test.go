package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
	"github.com/SscSPs/furniture_erp/internal/core/ports/repositories/mocks"
	portssvc "github.com/SscSPs/furniture_erp/internal/core/ports/services"
	"github.com/SscSPs/furniture_erp/internal/core/services"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AssignmentServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	ruleRepo   *MockAssignmentRuleRepository
	lineRepo   *MockTransactionLineRepository
	tags       *mocks.MockCounterpartyTagReader
	categories *mocks.MockItemCategoryReader
	service    portssvc.AssignmentSvcFacade
	ctx        context.Context
	rules      []domain.AssignmentRule
}

func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ruleRepo = new(MockAssignmentRuleRepository)
	suite.lineRepo = new(MockTransactionLineRepository)
	suite.tags = mocks.NewMockCounterpartyTagReader(suite.ctrl)
	suite.categories = mocks.NewMockItemCategoryReader(suite.ctrl)

	cache := services.NewRuleCache(suite.ruleRepo, time.Minute)
	builder := services.NewContextBuilder(suite.tags, suite.categories)
	suite.service = services.NewAssignmentService(cache, builder, suite.lineRepo)
	suite.ctx = context.Background()

	// Tag VIP -> CC-001, category Living Room -> CC-002, both together -> CC-003.
	suite.rules = []domain.AssignmentRule{
		{RuleID: "rule-vip-living", WorkplaceID: "wp-1", CounterpartyTagID: ptr("tag-vip"), ItemCategoryID: ptr("cat-living"), CostCenterID: "CC-003", Specificity: 2, Priority: 2},
		{RuleID: "rule-vip", WorkplaceID: "wp-1", CounterpartyTagID: ptr("tag-vip"), CostCenterID: "CC-001", Specificity: 1, Priority: 1},
		{RuleID: "rule-living", WorkplaceID: "wp-1", ItemCategoryID: ptr("cat-living"), CostCenterID: "CC-002", Specificity: 1, Priority: 1},
	}
}

func (suite *AssignmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}

func (suite *AssignmentServiceTestSuite) TestEvaluate_MostSpecificRuleWins() {
	suite.ruleRepo.On("ListActiveRules", mock.Anything, "wp-1").Return(suite.rules, nil).Once()
	suite.tags.EXPECT().FindTagIDsByCounterparty(gomock.Any(), "wp-1", "cust-1").Return([]string{"tag-vip"}, nil)
	suite.categories.EXPECT().FindCategoryByItem(gomock.Any(), "wp-1", "sofa-1").Return(ptr("cat-living"), nil)

	result, err := suite.service.Evaluate(suite.ctx, "wp-1", ptr("cust-1"), ptr("sofa-1"))

	suite.Require().NoError(err)
	suite.True(result.Matched())
	suite.Equal("rule-vip-living", *result.RuleID)
	suite.Equal("CC-003", *result.CostCenterID)
	suite.Equal(2, result.Score)
	suite.Equal([]string{domain.FieldCounterpartyTag, domain.FieldItemCategory}, result.MatchedFields)
	suite.ruleRepo.AssertExpectations(suite.T())
}

func (suite *AssignmentServiceTestSuite) TestEvaluate_NoMatchIsNotAnError() {
	suite.ruleRepo.On("ListActiveRules", mock.Anything, "wp-1").Return(suite.rules, nil).Once()
	suite.tags.EXPECT().FindTagIDsByCounterparty(gomock.Any(), "wp-1", "cust-9").Return([]string{}, nil)

	result, err := suite.service.Evaluate(suite.ctx, "wp-1", ptr("cust-9"), nil)

	suite.Require().NoError(err)
	suite.False(result.Matched())
	suite.Nil(result.RuleID)
	suite.Nil(result.CostCenterID)
}

func (suite *AssignmentServiceTestSuite) TestEvaluate_RuleLoadFailure() {
	suite.ruleRepo.On("ListActiveRules", mock.Anything, "wp-1").Return(nil, assert.AnError).Once()

	_, err := suite.service.Evaluate(suite.ctx, "wp-1", ptr("cust-1"), nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *AssignmentServiceTestSuite) TestEvaluateBatch_EmptyInput() {
	assignments, err := suite.service.EvaluateBatch(suite.ctx, "wp-1", nil)

	suite.Require().NoError(err)
	suite.NotNil(assignments)
	suite.Empty(assignments)
	suite.ruleRepo.AssertNotCalled(suite.T(), "ListActiveRules", mock.Anything, mock.Anything)
}

func (suite *AssignmentServiceTestSuite) TestEvaluateBatch_ReadsFreshRules() {
	// The first Evaluate warms the cache; the batch must read the store again anyway.
	suite.ruleRepo.On("ListActiveRules", mock.Anything, "wp-1").Return(suite.rules, nil).Twice()
	suite.tags.EXPECT().FindTagIDsByCounterparty(gomock.Any(), "wp-1", "cust-1").Return([]string{"tag-vip"}, nil)
	suite.tags.EXPECT().
		FindTagIDsByCounterparties(gomock.Any(), "wp-1", []string{"cust-1", "cust-2"}).
		Return(map[string][]string{"cust-1": {"tag-vip"}}, nil)
	suite.categories.EXPECT().
		FindCategoriesByItems(gomock.Any(), "wp-1", []string{"sofa-1"}).
		Return(map[string]string{"sofa-1": "cat-living"}, nil)

	_, err := suite.service.Evaluate(suite.ctx, "wp-1", ptr("cust-1"), nil)
	suite.Require().NoError(err)

	assignments, err := suite.service.EvaluateBatch(suite.ctx, "wp-1", []domain.LineInput{
		{LineID: "l1", CounterpartyID: ptr("cust-1"), ItemID: ptr("sofa-1")},
		{LineID: "l2", CounterpartyID: ptr("cust-1")},
		{LineID: "l3", CounterpartyID: ptr("cust-2")},
	})

	suite.Require().NoError(err)
	suite.Require().Len(assignments, 3)
	suite.Equal("l1", assignments[0].LineID)
	suite.Equal("CC-003", *assignments[0].AssignedCostCenterID)
	suite.Equal("CC-001", *assignments[1].AssignedCostCenterID)
	suite.Equal("rule-vip", *assignments[1].RuleID)
	suite.Nil(assignments[2].AssignedCostCenterID)
	suite.Nil(assignments[2].RuleID)
	suite.ruleRepo.AssertNumberOfCalls(suite.T(), "ListActiveRules", 2)
}

func (suite *AssignmentServiceTestSuite) TestAssignTransactionLines_NeverOverwritesManualAssignments() {
	lines := []domain.TransactionLine{
		{LineID: "l1", DocumentID: "doc-1", CounterpartyID: ptr("cust-1"), ItemID: ptr("sofa-1"), CostCenterID: ptr("CC-MANUAL")},
		{LineID: "l2", DocumentID: "doc-1", CounterpartyID: ptr("cust-1"), ItemID: ptr("sofa-1")},
		{LineID: "l3", DocumentID: "doc-1"},
	}
	suite.lineRepo.On("ListLinesByDocument", mock.Anything, "wp-1", "doc-1").Return(lines, nil).Once()
	suite.ruleRepo.On("ListActiveRules", mock.Anything, "wp-1").Return(suite.rules, nil).Once()
	suite.tags.EXPECT().FindTagIDsByCounterparties(gomock.Any(), "wp-1", []string{"cust-1"}).Return(map[string][]string{"cust-1": {"tag-vip"}}, nil)
	suite.categories.EXPECT().FindCategoriesByItems(gomock.Any(), "wp-1", []string{"sofa-1"}).Return(map[string]string{"sofa-1": "cat-living"}, nil)
	suite.lineRepo.On("AssignCostCenters", mock.Anything, "wp-1",
		mock.MatchedBy(func(a []domain.LineAssignment) bool {
			return len(a) == 1 && a[0].LineID == "l2" && *a[0].AssignedCostCenterID == "CC-003"
		}),
		"user-1", mock.AnythingOfType("time.Time")).
		Return([]string{"l2"}, nil).Once()

	result, err := suite.service.AssignTransactionLines(suite.ctx, "wp-1", "doc-1", "user-1")

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("l2", result[0].LineID)
	suite.Equal("rule-vip-living", *result[0].RuleID)
	suite.Equal("l3", result[1].LineID)
	suite.Nil(result[1].AssignedCostCenterID)
	suite.lineRepo.AssertExpectations(suite.T())
}

func (suite *AssignmentServiceTestSuite) TestAssignTransactionLines_SkipsLinesAssignedConcurrently() {
	lines := []domain.TransactionLine{
		{LineID: "l1", DocumentID: "doc-1", CounterpartyID: ptr("cust-1")},
	}
	suite.lineRepo.On("ListLinesByDocument", mock.Anything, "wp-1", "doc-1").Return(lines, nil).Once()
	suite.ruleRepo.On("ListActiveRules", mock.Anything, "wp-1").Return(suite.rules, nil).Once()
	suite.tags.EXPECT().FindTagIDsByCounterparties(gomock.Any(), "wp-1", []string{"cust-1"}).Return(map[string][]string{"cust-1": {"tag-vip"}}, nil)
	suite.lineRepo.On("AssignCostCenters", mock.Anything, "wp-1", mock.Anything, "user-1", mock.Anything).Return([]string{}, nil).Once()

	result, err := suite.service.AssignTransactionLines(suite.ctx, "wp-1", "doc-1", "user-1")

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *AssignmentServiceTestSuite) TestAssignTransactionLines_NothingMatchedWritesNothing() {
	lines := []domain.TransactionLine{{LineID: "l1", DocumentID: "doc-1"}}
	suite.lineRepo.On("ListLinesByDocument", mock.Anything, "wp-1", "doc-1").Return(lines, nil).Once()
	suite.ruleRepo.On("ListActiveRules", mock.Anything, "wp-1").Return(suite.rules, nil).Once()

	result, err := suite.service.AssignTransactionLines(suite.ctx, "wp-1", "doc-1", "user-1")

	suite.Require().NoError(err)
	suite.Len(result, 1)
	suite.lineRepo.AssertNotCalled(suite.T(), "AssignCostCenters", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AssignmentServiceTestSuite) TestAssignTransactionLines_ListFailure() {
	suite.lineRepo.On("ListLinesByDocument", mock.Anything, "wp-1", "doc-1").Return(nil, assert.AnError).Once()

	_, err := suite.service.AssignTransactionLines(suite.ctx, "wp-1", "doc-1", "user-1")

	suite.ErrorIs(err, assert.AnError)
}

func (suite *AssignmentServiceTestSuite) TestArchivedRuleIsNotReturnedByNextEvaluate() {
	// An hour-long TTL: only invalidation can make the second Evaluate see the archive.
	cache := services.NewRuleCache(suite.ruleRepo, time.Hour)
	assignments := services.NewAssignmentService(cache, services.NewContextBuilder(suite.tags, suite.categories), suite.lineRepo)
	rules := services.NewRuleService(suite.ruleRepo, new(MockCostCenterRepository), cache)

	winner := suite.rules[0]
	suite.ruleRepo.On("ListActiveRules", mock.Anything, "wp-1").Return(suite.rules, nil).Once()
	suite.ruleRepo.On("ListActiveRules", mock.Anything, "wp-1").Return(suite.rules[1:], nil).Once()
	suite.ruleRepo.On("FindRuleByID", mock.Anything, "wp-1", winner.RuleID).Return(&winner, nil).Once()
	suite.ruleRepo.On("ArchiveRule", mock.Anything, "wp-1", winner.RuleID, "user-1", mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.tags.EXPECT().FindTagIDsByCounterparty(gomock.Any(), "wp-1", "cust-1").Return([]string{"tag-vip"}, nil).Times(3)
	suite.categories.EXPECT().FindCategoryByItem(gomock.Any(), "wp-1", "sofa-1").Return(ptr("cat-living"), nil).Times(3)

	before, err := assignments.Evaluate(suite.ctx, "wp-1", ptr("cust-1"), ptr("sofa-1"))
	suite.Require().NoError(err)
	suite.Equal("rule-vip-living", *before.RuleID)

	// Served from the cache.
	again, err := assignments.Evaluate(suite.ctx, "wp-1", ptr("cust-1"), ptr("sofa-1"))
	suite.Require().NoError(err)
	suite.Equal("rule-vip-living", *again.RuleID)

	suite.Require().NoError(rules.ArchiveRule(suite.ctx, "wp-1", winner.RuleID, "user-1"))

	after, err := assignments.Evaluate(suite.ctx, "wp-1", ptr("cust-1"), ptr("sofa-1"))
	suite.Require().NoError(err)
	suite.Require().True(after.Matched())
	suite.NotEqual("rule-vip-living", *after.RuleID)
	suite.Equal("rule-living", *after.RuleID)
	suite.ruleRepo.AssertNumberOfCalls(suite.T(), "ListActiveRules", 2)
	suite.ruleRepo.AssertExpectations(suite.T())
}
