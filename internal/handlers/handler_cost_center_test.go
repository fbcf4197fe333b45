package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/SscSPs/furniture_erp/internal/apperrors"
	"github.com/SscSPs/furniture_erp/internal/core/domain"
	"github.com/SscSPs/furniture_erp/internal/dto"
	"github.com/SscSPs/furniture_erp/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CostCenterHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockCostCenterService
}

func (suite *CostCenterHandlerTestSuite) SetupTest() {
	suite.mockService = new(MockCostCenterService)
	suite.router = newTestRouter(func(rg *gin.RouterGroup) {
		handlers.RegisterCostCenterRoutes(rg, suite.mockService)
	})
}

func TestCostCenterHandler(t *testing.T) {
	suite.Run(t, new(CostCenterHandlerTestSuite))
}

func (suite *CostCenterHandlerTestSuite) TestCreateCostCenter_Success() {
	req := dto.CreateCostCenterRequest{Code: "CC-001", Name: "Showroom"}
	created := &domain.CostCenter{CostCenterID: "cc-1", WorkplaceID: "wp-1", Code: "CC-001", Name: "Showroom"}
	suite.mockService.On("CreateCostCenter", mock.Anything, "wp-1", req, "user-1").Return(created, nil).Once()

	w := doRequest(&suite.Suite, suite.router, http.MethodPost, "/api/v1/workplaces/wp-1/cost-centers", req, "user-1")

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.CostCenterResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("cc-1", body.CostCenterID)
	suite.Equal("CC-001", body.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CostCenterHandlerTestSuite) TestCreateCostCenter_InvalidCode() {
	req := dto.CreateCostCenterRequest{Code: "bad code!", Name: "Showroom"}

	w := doRequest(&suite.Suite, suite.router, http.MethodPost, "/api/v1/workplaces/wp-1/cost-centers", req, "user-1")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(errorBody(&suite.Suite, w), "Invalid request format")
	suite.mockService.AssertNotCalled(suite.T(), "CreateCostCenter", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CostCenterHandlerTestSuite) TestCreateCostCenter_DuplicateCode() {
	req := dto.CreateCostCenterRequest{Code: "CC-001", Name: "Showroom"}
	suite.mockService.On("CreateCostCenter", mock.Anything, "wp-1", req, "user-1").Return(nil, apperrors.ErrDuplicate).Once()

	w := doRequest(&suite.Suite, suite.router, http.MethodPost, "/api/v1/workplaces/wp-1/cost-centers", req, "user-1")

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *CostCenterHandlerTestSuite) TestCreateCostCenter_Unauthenticated() {
	req := dto.CreateCostCenterRequest{Code: "CC-001", Name: "Showroom"}

	w := doRequest(&suite.Suite, suite.router, http.MethodPost, "/api/v1/workplaces/wp-1/cost-centers", req, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Authorization header required", errorBody(&suite.Suite, w))
}

func (suite *CostCenterHandlerTestSuite) TestGetCostCenter_NotFound() {
	suite.mockService.On("GetCostCenter", mock.Anything, "wp-1", "missing").Return(nil, apperrors.ErrNotFound).Once()

	w := doRequest(&suite.Suite, suite.router, http.MethodGet, "/api/v1/workplaces/wp-1/cost-centers/missing", nil, "user-1")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CostCenterHandlerTestSuite) TestListCostCenters_IncludeArchived() {
	ccs := []domain.CostCenter{{CostCenterID: "cc-1", Code: "CC-001"}, {CostCenterID: "cc-2", Code: "CC-002", IsArchived: true}}
	suite.mockService.On("ListCostCenters", mock.Anything, "wp-1", dto.ListCostCentersParams{IncludeArchived: true}).Return(ccs, nil).Once()

	w := doRequest(&suite.Suite, suite.router, http.MethodGet, "/api/v1/workplaces/wp-1/cost-centers?includeArchived=true", nil, "user-1")

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.CostCenterResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body, 2)
}

func (suite *CostCenterHandlerTestSuite) TestListCostCenters_InternalErrorHidesDetail() {
	suite.mockService.On("ListCostCenters", mock.Anything, "wp-1", dto.ListCostCentersParams{}).Return(nil, assert.AnError).Once()

	w := doRequest(&suite.Suite, suite.router, http.MethodGet, "/api/v1/workplaces/wp-1/cost-centers", nil, "user-1")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to list cost centers", errorBody(&suite.Suite, w))
}

func (suite *CostCenterHandlerTestSuite) TestArchiveCostCenter() {
	suite.mockService.On("ArchiveCostCenter", mock.Anything, "wp-1", "cc-1", "user-1").Return(nil).Once()

	w := doRequest(&suite.Suite, suite.router, http.MethodDelete, "/api/v1/workplaces/wp-1/cost-centers/cc-1", nil, "user-1")

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}
