package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"rockethub/internal/http-api/dto"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound is returned when the addressed record does not exist.
var ErrNotFound = errors.New("record not found")

// ValidationError carries per-field messages for a rejected write.
type ValidationError struct {
	Fields dto.FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: dto.FieldErrors{field: msg}}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

const pgForeignKeyViolation = "23503"

// foreignKeyField reports which launch reference a postgres FK violation is
// about. It covers a parent deleted between the existence check and the write.
func foreignKeyField(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgForeignKeyViolation {
		return "", false
	}
	if strings.Contains(pgErr.ConstraintName, "cosmodrome") {
		return "cosmodrome", true
	}
	return "rocket", true
}
