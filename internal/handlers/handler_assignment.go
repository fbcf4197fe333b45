package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/furniture_erp/internal/core/ports/services"
	"github.com/SscSPs/furniture_erp/internal/dto"
	"github.com/SscSPs/furniture_erp/internal/middleware"
	"github.com/gin-gonic/gin"
)

type assignmentHandler struct {
	assignmentService portssvc.AssignmentSvcFacade
}

func newAssignmentHandler(svc portssvc.AssignmentSvcFacade) *assignmentHandler {
	return &assignmentHandler{assignmentService: svc}
}

// RegisterAssignmentRoutes registers rule evaluation and line assignment routes under a workplace group.
func RegisterAssignmentRoutes(rg *gin.RouterGroup, svc portssvc.AssignmentSvcFacade) {
	h := newAssignmentHandler(svc)

	assignments := rg.Group("/assignments")
	{
		assignments.POST("/evaluate", h.evaluate)
		assignments.POST("/evaluate-batch", h.evaluateBatch)
	}
	rg.POST("/documents/:documentID/assign-cost-centers", h.assignDocumentLines)
}

// evaluate godoc
// @Summary Evaluate one line against the active rules
// @Description Returns the winning rule and cost center. An unmatched line is a normal 200 response with matched=false.
// @Tags assignments
// @Accept  json
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   line body dto.EvaluateAssignmentRequest true "Line facts"
// @Success 200 {object} dto.MatchResultResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/assignments/evaluate [post]
func (h *assignmentHandler) evaluate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EvaluateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Evaluate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.assignmentService.Evaluate(c.Request.Context(), c.Param("workplaceID"), req.CounterpartyID, req.ItemID)
	if err != nil {
		respondError(c, logger, err, "Failed to evaluate assignment rules")
		return
	}
	c.JSON(http.StatusOK, dto.ToMatchResultResponse(result))
}

// evaluateBatch godoc
// @Summary Evaluate many lines against one fresh rule snapshot
// @Tags assignments
// @Accept  json
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   lines body dto.EvaluateBatchRequest true "Lines"
// @Success 200 {object} dto.LineAssignmentsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/assignments/evaluate-batch [post]
func (h *assignmentHandler) evaluateBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EvaluateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for EvaluateBatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	assignments, err := h.assignmentService.EvaluateBatch(c.Request.Context(), c.Param("workplaceID"), dto.ToLineInputs(req.Lines))
	if err != nil {
		respondError(c, logger, err, "Failed to evaluate assignment rules")
		return
	}

	logger.Info("Batch evaluated", slog.Int("lines", len(req.Lines)))
	c.JSON(http.StatusOK, dto.LineAssignmentsResponse{Assignments: assignments})
}

// assignDocumentLines godoc
// @Summary Assign cost centers to a document's lines
// @Description Writes the winning cost center onto lines that have none. Existing assignments are never overwritten.
// @Tags assignments
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   documentID path string true "Document ID"
// @Success 200 {object} dto.LineAssignmentsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/documents/{documentID}/assign-cost-centers [post]
func (h *assignmentHandler) assignDocumentLines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	documentID := c.Param("documentID")
	assignments, err := h.assignmentService.AssignTransactionLines(c.Request.Context(), c.Param("workplaceID"), documentID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to assign cost centers")
		return
	}

	logger.Info("Document lines assigned", slog.String("document_id", documentID), slog.Int("assigned", len(assignments)))
	c.JSON(http.StatusOK, dto.LineAssignmentsResponse{Assignments: assignments})
}
