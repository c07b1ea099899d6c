package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

// IsUniqueViolation reports whether err comes from a unique index rejecting a write.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// notFound maps gorm's missing-record error onto utilities.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utilities.ErrNotFound
	}
	return err
}

// likePattern lowercases term and escapes LIKE wildcards for use with likeClause.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(term)) + "%"
}

// likeClause is a case-insensitive substring match on column for the named gorm dialect.
// sqlite's LOWER only folds ASCII letters.
func likeClause(dialect, column string) string {
	if dialect == "postgres" {
		return column + " ILIKE ? ESCAPE '\\'"
	}
	return "LOWER(" + column + ") LIKE ? ESCAPE '\\'"
}
