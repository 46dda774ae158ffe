package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether the error came from a unique
// constraint. GORM's translated error covers PostgreSQL; the message check
// covers drivers that do not translate (sqlite in tests).
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505")
}

// uniqueViolationColumn reports which unique column the violation names, so
// duplicate emails and duplicate logins map to distinct domain errors.
func uniqueViolationColumn(err error, column string) bool {
	return strings.Contains(strings.ToLower(err.Error()), column)
}
