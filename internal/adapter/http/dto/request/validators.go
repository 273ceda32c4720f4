package request

import (
	"errors"
	"strings"

	"marblecraft/internal/domain/catalog"
	"marblecraft/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var errValidatorEngine = errors.New("unexpected gin validator engine")

// RegisterValidators adds the catalog_category and price_band tags to gin's
// validator. Safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errValidatorEngine
	}
	if err := v.RegisterValidation("catalog_category", validCategory); err != nil {
		return err
	}
	return v.RegisterValidation("price_band", validPriceBand)
}

func validCategory(fl validator.FieldLevel) bool {
	return entities.ServiceCategory(normalize(fl.Field().String())).IsValid()
}

func validPriceBand(fl validator.FieldLevel) bool {
	return catalog.PriceBand(normalize(fl.Field().String())).IsValid()
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
