package validator

import (
	"log"

	"atlasweb_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain validation tags. A failed
// registration aborts startup since it means a misspelled tag.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-contact-status", validateContactStatus)
	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-upload-method", validateUploadMethod)
}

func validateContactStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // emptiness is 'required's job
	}
	for _, s := range models.ValidContactStatuses {
		if value == string(s) {
			return true
		}
	}
	return false
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return value == string(models.UserRoleAdmin) || value == string(models.UserRoleEditor)
}

func validateUploadMethod(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return value == string(models.UploadMethodServer) || value == string(models.UploadMethodDirect)
}
