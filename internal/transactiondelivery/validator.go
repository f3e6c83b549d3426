package transactiondelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/ColtWarren/Users-Accounts-Application/internal/domain"
)

// ValidTransactionType validates whether the type code is recognized.
var ValidTransactionType validator.Func = func(fl validator.FieldLevel) bool {
	if t, ok := fl.Field().Interface().(string); ok {
		return domain.IsValidTransactionType(t)
	}
	return false
}
