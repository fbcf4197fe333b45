package domain_test

import (
	"testing"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func stringPtr(s string) *string {
	return &s
}

func TestAssignmentRule_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rule    domain.AssignmentRule
		wantErr error
		errMsg  string
	}{
		{
			name: "valid tag rule",
			rule: domain.AssignmentRule{CounterpartyTagID: stringPtr("vip"), CostCenterID: "cc-1"},
		},
		{
			name:    "no predicates",
			rule:    domain.AssignmentRule{CostCenterID: "cc-1"},
			wantErr: domain.ErrRuleWithoutPredicates,
		},
		{
			name:    "empty string predicates count as wildcards",
			rule:    domain.AssignmentRule{CounterpartyID: stringPtr(""), CostCenterID: "cc-1"},
			wantErr: domain.ErrRuleWithoutPredicates,
		},
		{
			name:   "missing cost center",
			rule:   domain.AssignmentRule{ItemID: stringPtr("sku-1")},
			errMsg: "must target a cost center",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				assert.ErrorContains(t, err, tt.errMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestAssignmentRule_NormalizePredicates(t *testing.T) {
	r := domain.AssignmentRule{
		CounterpartyTagID: stringPtr(""),
		CounterpartyID:    stringPtr("cust-1"),
		ItemCategoryID:    stringPtr(""),
	}
	r.NormalizePredicates()

	assert.Nil(t, r.CounterpartyTagID)
	assert.Nil(t, r.ItemCategoryID)
	assert.Nil(t, r.ItemID)
	if assert.NotNil(t, r.CounterpartyID) {
		assert.Equal(t, "cust-1", *r.CounterpartyID)
	}
	assert.Equal(t, 1, r.PredicateCount())
}

func TestDocumentStatus_IsPayable(t *testing.T) {
	assert.False(t, domain.StatusDraft.IsPayable())
	assert.False(t, domain.StatusCancelled.IsPayable())
	assert.True(t, domain.StatusPosted.IsPayable())
	assert.True(t, domain.StatusPartiallyPaid.IsPayable())
	assert.True(t, domain.StatusPaid.IsPayable())
}

func TestPaymentMode_IsValid(t *testing.T) {
	for _, m := range []domain.PaymentMode{domain.ModeCash, domain.ModeBankTransfer, domain.ModeCheque, domain.ModeCard, domain.ModeUPI, domain.ModeOther} {
		assert.True(t, m.IsValid(), string(m))
	}
	assert.False(t, domain.PaymentMode("BARTER").IsValid())
	assert.False(t, domain.PaymentMode("").IsValid())
}
