package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
	portssvc "github.com/SscSPs/furniture_erp/internal/core/ports/services"
	"github.com/SscSPs/furniture_erp/internal/core/services"
	"github.com/SscSPs/furniture_erp/internal/dto"
	"github.com/SscSPs/furniture_erp/internal/middleware"
	"github.com/gin-gonic/gin"
)

type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(svc portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: svc}
}

// RegisterPaymentRoutes registers payment ledger routes under a workplace group.
func RegisterPaymentRoutes(rg *gin.RouterGroup, svc portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(svc)

	documents := rg.Group("/documents/:documentID")
	{
		documents.POST("/payments", h.createPayment)
		documents.GET("/payments", h.listPayments)
		documents.GET("/balance", h.getBalance)
	}
	rg.POST("/payments/:paymentID/reverse", h.reversePayment)
}

// createPayment godoc
// @Summary Record a payment against an invoice or bill
// @Description Appends a ledger entry and refreshes the document's paid amount and status.
// @Description 202 means the entry is recorded but the document's cached fields are stale until reconciliation.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   documentID path string true "Document ID"
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResultResponse
// @Success 202 {object} dto.PaymentResultResponse
// @Failure 400 {object} map[string]string "Invalid amount, overpayment or document not payable"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/documents/{documentID}/payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	result, err := h.paymentService.Pay(c.Request.Context(), c.Param("workplaceID"), c.Param("documentID"), req, userID)
	h.respondPaymentResult(c, logger, result, err, "Failed to record payment")
}

// reversePayment godoc
// @Summary Reverse a payment
// @Description Appends a compensating negative entry. The document's status may move back.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   paymentID path string true "Payment ID"
// @Param   reversal body dto.ReversePaymentRequest true "Reason"
// @Success 201 {object} dto.PaymentResultResponse
// @Success 202 {object} dto.PaymentResultResponse
// @Failure 400 {object} map[string]string "Entry cannot be reversed"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Payment already reversed"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/payments/{paymentID}/reverse [post]
func (h *paymentHandler) reversePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReversePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReversePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	result, err := h.paymentService.ReversePayment(c.Request.Context(), c.Param("workplaceID"), c.Param("paymentID"), req, userID)
	h.respondPaymentResult(c, logger, result, err, "Failed to reverse payment")
}

func (h *paymentHandler) respondPaymentResult(c *gin.Context, logger *slog.Logger, result *domain.PaymentResult, err error, failMsg string) {
	var gapErr *services.PersistenceGapError
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, dto.ToPaymentResultResponse(result))
	case errors.As(err, &gapErr) && result != nil:
		logger.Warn("Payment recorded with stale document fields",
			slog.String("payment_id", gapErr.PaymentID),
			slog.String("document_id", gapErr.DocumentID))
		c.JSON(http.StatusAccepted, dto.ToPaymentResultResponse(result))
	default:
		respondError(c, logger, err, failMsg)
	}
}

// getBalance godoc
// @Summary Get a document's balance
// @Description Recomputes the paid amount from the ledger
// @Tags payments
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentBalanceResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/documents/{documentID}/balance [get]
func (h *paymentHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balance, err := h.paymentService.GetBalance(c.Request.Context(), c.Param("workplaceID"), c.Param("documentID"))
	if err != nil {
		respondError(c, logger, err, "Failed to compute balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentBalanceResponse(balance))
}

// listPayments godoc
// @Summary List a document's ledger entries
// @Tags payments
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   documentID path string true "Document ID"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "Document not found"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/documents/{documentID}/payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListPayments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.paymentService.ListPayments(c.Request.Context(), c.Param("workplaceID"), c.Param("documentID"), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, resp)
}
