package postgres

import (
	"coverd/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err is a duplicate key error.
// Relies on the driver's TranslateError support.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
