package dbsql

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pinboard/internal/apperr"
)

// Translate classifies a gorm error. Missing rows become NotFound and unique
// violations become Conflict, both described by what. Anything else is
// wrapped as an internal failure of op.
func Translate(err error, op, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.Wrap(apperr.KindNotFound, err, what+" not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Wrap(apperr.KindConflict, err, what+" already exists")
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}
