package handlers

import (
	"regexp"
	"sync"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// costCenterCodePattern accepts codes such as "CC-001" or "STORE_NORTH".
var costCenterCodePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,31}$`)

var registerValidatorsOnce sync.Once

// RegisterValidators installs the custom binding tags used by the request DTOs.
// It is safe to call more than once.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("costcentercode", validateCostCenterCode)
		_ = v.RegisterValidation("paymentmode", validatePaymentMode)
	})
}

func validateCostCenterCode(fl validator.FieldLevel) bool {
	return costCenterCodePattern.MatchString(fl.Field().String())
}

func validatePaymentMode(fl validator.FieldLevel) bool {
	return domain.PaymentMode(fl.Field().String()).IsValid()
}
