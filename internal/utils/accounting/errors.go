package accounting

import "errors"

var (
	ErrNonPositiveAmount = errors.New("payment amount must be greater than zero")
	ErrAmountPrecision   = errors.New("payment amount has more than 4 decimal places")
	ErrFullyPaid         = errors.New("document is already fully paid")
	ErrExceedsBalance    = errors.New("payment exceeds outstanding balance")
)
