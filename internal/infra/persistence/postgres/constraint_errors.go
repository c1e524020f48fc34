package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return false
}

// isUndefinedRelation reports whether the error is PostgreSQL's
// undefined_table (42P01), raised when an optional source table such as
// order ratings has not been provisioned for this deployment.
func isUndefinedRelation(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "42p01") ||
		strings.Contains(errMsg, "does not exist")
}
