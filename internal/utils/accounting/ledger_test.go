package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func entry(amount string, status domain.EntryStatus) domain.PaymentLedgerEntry {
	return domain.PaymentLedgerEntry{Amount: d(amount), EntryStatus: status}
}

func TestSumCompleted(t *testing.T) {
	tests := []struct {
		name    string
		entries []domain.PaymentLedgerEntry
		want    string
	}{
		{name: "no entries", entries: nil, want: "0"},
		{
			name: "only completed count",
			entries: []domain.PaymentLedgerEntry{
				entry("100", domain.EntryCompleted),
				entry("50", domain.EntryPending),
				entry("25", domain.EntryFailed),
			},
			want: "100",
		},
		{
			name: "reversal entries subtract",
			entries: []domain.PaymentLedgerEntry{
				entry("60000", domain.EntryCompleted),
				entry("58000", domain.EntryCompleted),
				entry("-58000", domain.EntryCompleted),
			},
			want: "60000",
		},
		{
			name: "fractional amounts keep exact precision",
			entries: []domain.PaymentLedgerEntry{
				entry("0.1", domain.EntryCompleted),
				entry("0.2", domain.EntryCompleted),
			},
			want: "0.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SumCompleted(tt.entries)
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestSumCompleted_Idempotent(t *testing.T) {
	entries := []domain.PaymentLedgerEntry{
		entry("10.50", domain.EntryCompleted),
		entry("3", domain.EntryPending),
		entry("7.25", domain.EntryCompleted),
	}
	first := SumCompleted(entries)
	second := SumCompleted(entries)
	assert.True(t, first.Equal(second))
	assert.True(t, first.Equal(d("17.75")))
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name  string
		total string
		paid  string
		want  domain.DocumentStatus
	}{
		{"nothing paid", "118000", "0", domain.StatusPosted},
		{"partially paid", "118000", "60000", domain.StatusPartiallyPaid},
		{"exactly paid", "118000", "118000", domain.StatusPaid},
		{"overpaid", "100", "101", domain.StatusPaid},
		{"negative paid after reversals", "100", "-5", domain.StatusPosted},
		{"zero total counts as paid", "0", "0", domain.StatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(d(tt.total), d(tt.paid)))
		})
	}
}

func TestDeriveStatus_MonotonicWithPositivePayments(t *testing.T) {
	rank := map[domain.DocumentStatus]int{
		domain.StatusPosted:        0,
		domain.StatusPartiallyPaid: 1,
		domain.StatusPaid:          2,
	}
	total := d("1000")
	paid := decimal.Zero
	prev := DeriveStatus(total, paid)
	for _, step := range []string{"1", "249", "250", "499.99", "0.01", "10"} {
		paid = paid.Add(d(step))
		next := DeriveStatus(total, paid)
		assert.GreaterOrEqual(t, rank[next], rank[prev], "status regressed at paid=%s", paid)
		prev = next
	}
	assert.Equal(t, domain.StatusPaid, prev)
}

func TestTwoPaymentScenario(t *testing.T) {
	total := d("118000")
	var entries []domain.PaymentLedgerEntry

	require.NoError(t, ValidatePayment(total, SumCompleted(entries), d("60000")))
	entries = append(entries, entry("60000", domain.EntryCompleted))
	paid := SumCompleted(entries)
	assert.True(t, paid.Equal(d("60000")))
	assert.Equal(t, domain.StatusPartiallyPaid, DeriveStatus(total, paid))
	assert.True(t, Balance(total, paid).Equal(d("58000")))

	require.NoError(t, ValidatePayment(total, paid, d("58000")))
	entries = append(entries, entry("58000", domain.EntryCompleted))
	paid = SumCompleted(entries)
	assert.True(t, paid.Equal(d("118000")))
	assert.Equal(t, domain.StatusPaid, DeriveStatus(total, paid))
	assert.True(t, Balance(total, paid).IsZero())
}

func TestValidatePayment(t *testing.T) {
	total := d("1000")

	assert.ErrorIs(t, ValidatePayment(total, decimal.Zero, decimal.Zero), ErrNonPositiveAmount)
	assert.ErrorIs(t, ValidatePayment(total, decimal.Zero, d("-1")), ErrNonPositiveAmount)
	assert.ErrorIs(t, ValidatePayment(total, d("1000"), d("1")), ErrFullyPaid)
	assert.ErrorIs(t, ValidatePayment(total, d("900"), d("100.01")), ErrExceedsBalance)
	assert.NoError(t, ValidatePayment(total, d("900"), d("100")))
	assert.ErrorIs(t, ValidatePayment(total, decimal.Zero, d("0.00001")), ErrAmountPrecision)
}

func TestCheckAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   error
	}{
		{"0.0001", nil},
		{"60000.5000", nil},
		{"118000", nil},
		{"0.00001", ErrAmountPrecision},
		{"0.00006", ErrAmountPrecision},
		{"10.12345", ErrAmountPrecision},
		{"0", ErrNonPositiveAmount},
		{"-0.00001", ErrNonPositiveAmount},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := CheckAmount(d(tt.amount))
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBalance(t *testing.T) {
	assert.True(t, Balance(d("100"), d("40")).Equal(d("60")))
	assert.True(t, Balance(d("100"), d("140")).IsZero())
}

func TestFormatPaymentNumber(t *testing.T) {
	at := time.Date(2024, time.March, 9, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "PAY-IN-2403-0001", FormatPaymentNumber("PAY-IN", at, 1))
	assert.Equal(t, "PAY-OUT-2403-0042", FormatPaymentNumber("PAY-OUT", at, 42))
	assert.Equal(t, "PAY-IN-2403-12345", FormatPaymentNumber("PAY-IN", at, 12345))
	assert.Equal(t, "2403", PeriodKey(at))
}
