package Controllers

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// isUniqueViolation reports whether the store rejected a write for a declared
// uniqueness constraint, so handlers can answer 409 instead of 500.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "Duplicate entry")
}
