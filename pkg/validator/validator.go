package validator

import (
	"lifesaver/internal/domain"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	RegisterCustomValidations(validate)
}

func RegisterCustomValidations(v *validator.Validate) {
	_ = v.RegisterValidation("lat", validateLat)
	_ = v.RegisterValidation("lng", validateLng)
	_ = v.RegisterValidation("emergency_type", validateEmergencyType)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

func validateEmergencyType(fl validator.FieldLevel) bool {
	return domain.EmergencyType(fl.Field().String()).Valid()
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
