package middleware

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/openpharm/backend/internal/domain/catalog"
)

// SetupValidator configures gin's validator to report field names from
// json/form tags instead of Go struct field names, and registers the
// medicineunit validation for the dispensing unit enum.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
		_ = v.RegisterValidation("medicineunit", validMedicineUnit)
	}
}

func validMedicineUnit(fl validator.FieldLevel) bool {
	unit := catalog.MedicineUnit(fl.Field().String())
	for _, u := range catalog.ValidUnits {
		if unit == u {
			return true
		}
	}
	return false
}

// ValidationMessage turns a binding error into a readable message.
// Non-validation errors pass through unchanged.
func ValidationMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fieldMessage(e))
	}
	return strings.Join(messages, "; ")
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field())
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param())
	case "medicineunit":
		units := make([]string, len(catalog.ValidUnits))
		for i, u := range catalog.ValidUnits {
			units[i] = string(u)
		}
		return fmt.Sprintf("%s must be one of: %s", e.Field(), strings.Join(units, ", "))
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
