package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
)

var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNotNull      = errors.New("not null constraint violated")
)

// ClassifyError wraps constraint violations from either driver in one of the
// package sentinels. Other errors are returned as is.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrDuplicateKey) || errors.Is(err, ErrNotNull) {
		return err
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
		case pgNotNullViolation:
			return fmt.Errorf("%w: column %s: %w", ErrNotNull, pgErr.ColumnName, err)
		}
		return err
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
		case sqlite3.ErrConstraintNotNull:
			return fmt.Errorf("%w: %w", ErrNotNull, err)
		}
	}

	return err
}
