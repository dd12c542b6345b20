package userdelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-hanka/fit-studio/internal/domain"
)

// ValidRole checks that the bound role is one the platform knows.
var ValidRole validator.Func = func(fieldLevel validator.FieldLevel) bool {
	if role, ok := fieldLevel.Field().Interface().(string); ok {
		return role == domain.RoleClient || role == domain.RoleInstructor
	}

	return false
}
