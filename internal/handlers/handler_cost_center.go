package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/furniture_erp/internal/core/ports/services"
	"github.com/SscSPs/furniture_erp/internal/dto"
	"github.com/SscSPs/furniture_erp/internal/middleware"
	"github.com/gin-gonic/gin"
)

// costCenterHandler handles HTTP requests related to cost centers.
type costCenterHandler struct {
	costCenterService portssvc.CostCenterSvcFacade
}

func newCostCenterHandler(svc portssvc.CostCenterSvcFacade) *costCenterHandler {
	return &costCenterHandler{costCenterService: svc}
}

// RegisterCostCenterRoutes registers cost-center routes under a workplace group.
func RegisterCostCenterRoutes(rg *gin.RouterGroup, svc portssvc.CostCenterSvcFacade) {
	h := newCostCenterHandler(svc)

	costCenters := rg.Group("/cost-centers")
	{
		costCenters.POST("", h.createCostCenter)
		costCenters.GET("", h.listCostCenters)
		costCenters.GET("/:costCenterID", h.getCostCenter)
		costCenters.DELETE("/:costCenterID", h.archiveCostCenter)
	}
}

// createCostCenter godoc
// @Summary Create a cost center
// @Description Creates an analytical account that transaction lines can be attributed to
// @Tags cost-centers
// @Accept  json
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   costCenter body dto.CreateCostCenterRequest true "Cost center details"
// @Success 201 {object} dto.CostCenterResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Code already in use"
// @Failure 500 {object} map[string]string "Failed to create cost center"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/cost-centers [post]
func (h *costCenterHandler) createCostCenter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplaceID")

	var req dto.CreateCostCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCostCenter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	costCenter, err := h.costCenterService.CreateCostCenter(c.Request.Context(), workplaceID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create cost center")
		return
	}

	logger.Info("Cost center created", slog.String("cost_center_id", costCenter.CostCenterID))
	c.JSON(http.StatusCreated, dto.ToCostCenterResponse(costCenter))
}

// getCostCenter godoc
// @Summary Get a cost center
// @Tags cost-centers
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   costCenterID path string true "Cost center ID"
// @Success 200 {object} dto.CostCenterResponse
// @Failure 404 {object} map[string]string "Cost center not found"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/cost-centers/{costCenterID} [get]
func (h *costCenterHandler) getCostCenter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	costCenter, err := h.costCenterService.GetCostCenter(c.Request.Context(), c.Param("workplaceID"), c.Param("costCenterID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve cost center")
		return
	}
	c.JSON(http.StatusOK, dto.ToCostCenterResponse(costCenter))
}

// listCostCenters godoc
// @Summary List cost centers
// @Tags cost-centers
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   includeArchived query bool false "Include archived cost centers"
// @Success 200 {array} dto.CostCenterResponse
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/cost-centers [get]
func (h *costCenterHandler) listCostCenters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListCostCentersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListCostCenters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	costCenters, err := h.costCenterService.ListCostCenters(c.Request.Context(), c.Param("workplaceID"), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list cost centers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCostCenterResponse(costCenters))
}

// archiveCostCenter godoc
// @Summary Archive a cost center
// @Description Archived cost centers keep their history but cannot be targeted by new rules
// @Tags cost-centers
// @Param   workplaceID path string true "Workplace ID"
// @Param   costCenterID path string true "Cost center ID"
// @Success 204 "Archived"
// @Failure 404 {object} map[string]string "Cost center not found"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/cost-centers/{costCenterID} [delete]
func (h *costCenterHandler) archiveCostCenter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	costCenterID := c.Param("costCenterID")
	if err := h.costCenterService.ArchiveCostCenter(c.Request.Context(), c.Param("workplaceID"), costCenterID, userID); err != nil {
		respondError(c, logger, err, "Failed to archive cost center")
		return
	}

	logger.Info("Cost center archived", slog.String("cost_center_id", costCenterID))
	c.Status(http.StatusNoContent)
}
