package handlers

import (
	"sync"

	"github.com/SscSPs/remittance_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validatorsOnce sync.Once

// registerValidators adds the binding tags used by the request DTOs:
// "region" accepts a region name or currency code, "txstatus" a lifecycle status.
func registerValidators() {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("region", func(fl validator.FieldLevel) bool {
			_, ok := domain.ParseRegion(fl.Field().String())
			return ok
		})
		_ = v.RegisterValidation("txstatus", func(fl validator.FieldLevel) bool {
			return domain.TransactionStatus(fl.Field().String()).IsValid()
		})
	})
}
