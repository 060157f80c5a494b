package utils

import (
	"Grocery-Tracker/domain"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	if Validate != nil {
		return
	}
	v := validator.New()
	_ = v.RegisterValidation("dietary_filter", func(fl validator.FieldLevel) bool {
		return domain.IsDietaryFilter(fl.Field().String())
	})
	_ = v.RegisterValidation("expiry_date", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseExpiryDate(fl.Field().String())
		return err == nil
	})
	Validate = v
}
