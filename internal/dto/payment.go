package dto

import (
	"time"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the data needed to record a payment against a document.
type CreatePaymentRequest struct {
	Amount    decimal.Decimal    `json:"amount" swaggertype:"string" example:"60000.00"`
	Mode      domain.PaymentMode `json:"mode" binding:"required,paymentmode"`
	Reference string             `json:"reference" binding:"max=120"`
	Notes     string             `json:"notes" binding:"max=1000"`
	PaidAt    *time.Time         `json:"paidAt"` // Defaults to now
}

// ReversePaymentRequest defines the data needed to reverse a payment.
type ReversePaymentRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	Limit     int     `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// PaymentResponse defines the data returned for a ledger entry.
type PaymentResponse struct {
	PaymentID         string             `json:"paymentID"`
	DocumentID        string             `json:"documentID"`
	PaymentNumber     string             `json:"paymentNumber"`
	Amount            decimal.Decimal    `json:"amount" swaggertype:"string"`
	Mode              domain.PaymentMode `json:"mode"`
	EntryStatus       domain.EntryStatus `json:"entryStatus"`
	Reference         string             `json:"reference"`
	Notes             string             `json:"notes"`
	ReversesPaymentID *string            `json:"reversesPaymentID,omitempty"`
	PaidAt            time.Time          `json:"paidAt"`
	CreatedAt         time.Time          `json:"createdAt"`
	CreatedBy         string             `json:"createdBy"`
}

// PaymentResultResponse defines the data returned after recording or reversing a payment.
type PaymentResultResponse struct {
	Payment            PaymentResponse       `json:"payment"`
	PaidAmount         decimal.Decimal       `json:"paidAmount" swaggertype:"string"`
	Balance            decimal.Decimal       `json:"balance" swaggertype:"string"`
	Status             domain.DocumentStatus `json:"status"`
	DerivedFieldsStale bool                  `json:"derivedFieldsStale"`
}

// ListPaymentsResponse defines a page of ledger entries.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// DocumentBalanceResponse defines the data returned for a balance query.
type DocumentBalanceResponse struct {
	DocumentID string                `json:"documentID"`
	Total      decimal.Decimal       `json:"total" swaggertype:"string"`
	Paid       decimal.Decimal       `json:"paid" swaggertype:"string"`
	Balance    decimal.Decimal       `json:"balance" swaggertype:"string"`
	Status     domain.DocumentStatus `json:"status"`
}

// ToPaymentResponse converts a domain.PaymentLedgerEntry to its response DTO
func ToPaymentResponse(e *domain.PaymentLedgerEntry) PaymentResponse {
	return PaymentResponse{
		PaymentID:         e.PaymentID,
		DocumentID:        e.DocumentID,
		PaymentNumber:     e.PaymentNumber,
		Amount:            e.Amount,
		Mode:              e.Mode,
		EntryStatus:       e.EntryStatus,
		Reference:         e.Reference,
		Notes:             e.Notes,
		ReversesPaymentID: e.ReversesPaymentID,
		PaidAt:            e.PaidAt,
		CreatedAt:         e.CreatedAt,
		CreatedBy:         e.CreatedBy,
	}
}

// ToPaymentResponses converts a slice of ledger entries to response DTOs
func ToPaymentResponses(entries []domain.PaymentLedgerEntry) []PaymentResponse {
	res := make([]PaymentResponse, len(entries))
	for i := range entries {
		res[i] = ToPaymentResponse(&entries[i])
	}
	return res
}

// ToPaymentResultResponse converts a domain.PaymentResult to its response DTO
func ToPaymentResultResponse(r *domain.PaymentResult) PaymentResultResponse {
	return PaymentResultResponse{
		Payment:            ToPaymentResponse(&r.Payment),
		PaidAmount:         r.PaidAmount,
		Balance:            r.Balance,
		Status:             r.Status,
		DerivedFieldsStale: r.DerivedFieldsStale,
	}
}

// ToDocumentBalanceResponse converts a domain.DocumentBalance to its response DTO
func ToDocumentBalanceResponse(b *domain.DocumentBalance) DocumentBalanceResponse {
	return DocumentBalanceResponse{
		DocumentID: b.DocumentID,
		Total:      b.Total,
		Paid:       b.Paid,
		Balance:    b.Balance,
		Status:     b.Status,
	}
}
