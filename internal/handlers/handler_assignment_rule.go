package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/furniture_erp/internal/core/ports/services"
	"github.com/SscSPs/furniture_erp/internal/dto"
	"github.com/SscSPs/furniture_erp/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ruleHandler handles HTTP requests related to assignment rules.
type ruleHandler struct {
	ruleService portssvc.RuleSvcFacade
}

func newRuleHandler(svc portssvc.RuleSvcFacade) *ruleHandler {
	return &ruleHandler{ruleService: svc}
}

// RegisterAssignmentRuleRoutes registers assignment-rule routes under a workplace group.
func RegisterAssignmentRuleRoutes(rg *gin.RouterGroup, svc portssvc.RuleSvcFacade) {
	h := newRuleHandler(svc)

	rules := rg.Group("/assignment-rules")
	{
		rules.POST("", h.createRule)
		rules.GET("", h.listRules)
		rules.GET("/:ruleID", h.getRule)
		rules.PUT("/:ruleID", h.updateRule)
		rules.DELETE("/:ruleID", h.archiveRule)
	}
}

// createRule godoc
// @Summary Create an assignment rule
// @Description Maps optional match predicates to a cost center. At least one predicate is required.
// @Tags assignment-rules
// @Accept  json
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   rule body dto.CreateAssignmentRuleRequest true "Rule definition"
// @Success 201 {object} dto.AssignmentRuleResponse
// @Failure 400 {object} map[string]string "Invalid rule"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create rule"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/assignment-rules [post]
func (h *ruleHandler) createRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAssignmentRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	rule, err := h.ruleService.CreateRule(c.Request.Context(), c.Param("workplaceID"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create assignment rule")
		return
	}

	logger.Info("Assignment rule created", slog.String("rule_id", rule.RuleID), slog.Int("specificity", rule.Specificity))
	c.JSON(http.StatusCreated, dto.ToAssignmentRuleResponse(rule))
}

// getRule godoc
// @Summary Get an assignment rule
// @Tags assignment-rules
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   ruleID path string true "Rule ID"
// @Success 200 {object} dto.AssignmentRuleResponse
// @Failure 404 {object} map[string]string "Rule not found"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/assignment-rules/{ruleID} [get]
func (h *ruleHandler) getRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rule, err := h.ruleService.GetRule(c.Request.Context(), c.Param("workplaceID"), c.Param("ruleID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve assignment rule")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssignmentRuleResponse(rule))
}

// listRules godoc
// @Summary List assignment rules
// @Tags assignment-rules
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   includeArchived query bool false "Include archived rules"
// @Success 200 {array} dto.AssignmentRuleResponse
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/assignment-rules [get]
func (h *ruleHandler) listRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAssignmentRulesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListRules", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rules, err := h.ruleService.ListRules(c.Request.Context(), c.Param("workplaceID"), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list assignment rules")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAssignmentRuleResponse(rules))
}

// updateRule godoc
// @Summary Replace an assignment rule
// @Tags assignment-rules
// @Accept  json
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   ruleID path string true "Rule ID"
// @Param   rule body dto.UpdateAssignmentRuleRequest true "Rule definition"
// @Success 200 {object} dto.AssignmentRuleResponse
// @Failure 400 {object} map[string]string "Invalid rule"
// @Failure 404 {object} map[string]string "Rule not found"
// @Failure 409 {object} map[string]string "Rule is archived"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/assignment-rules/{ruleID} [put]
func (h *ruleHandler) updateRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateAssignmentRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	rule, err := h.ruleService.UpdateRule(c.Request.Context(), c.Param("workplaceID"), c.Param("ruleID"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update assignment rule")
		return
	}

	logger.Info("Assignment rule updated", slog.String("rule_id", rule.RuleID))
	c.JSON(http.StatusOK, dto.ToAssignmentRuleResponse(rule))
}

// archiveRule godoc
// @Summary Archive an assignment rule
// @Description The rule stops taking part in evaluation immediately
// @Tags assignment-rules
// @Param   workplaceID path string true "Workplace ID"
// @Param   ruleID path string true "Rule ID"
// @Success 204 "Archived"
// @Failure 404 {object} map[string]string "Rule not found"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/assignment-rules/{ruleID} [delete]
func (h *ruleHandler) archiveRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	ruleID := c.Param("ruleID")
	if err := h.ruleService.ArchiveRule(c.Request.Context(), c.Param("workplaceID"), ruleID, userID); err != nil {
		respondError(c, logger, err, "Failed to archive assignment rule")
		return
	}

	logger.Info("Assignment rule archived", slog.String("rule_id", ruleID))
	c.Status(http.StatusNoContent)
}
