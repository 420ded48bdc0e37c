package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// NormalizeEmail lowercases and trims so lookups match regardless of input casing.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmail checks address syntax only.
func IsEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}
