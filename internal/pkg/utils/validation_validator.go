package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("gender", validateGender)
	validate.RegisterValidation("bill_status", validateBillStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "male" || value == "female" || value == "other"
}

func validateBillStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "pending" || value == "paid" || value == "failed"
}
