package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/floating-librarian/internal/domain"
)

// MapError converts pgx/pgconn errors to domain.ErrPersistenceUnavailable,
// prefixed with the failing operation.
// context.DeadlineExceeded and context.Canceled are NOT mapped, they pass through.
func MapError(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w: %s (SQLSTATE %s)", op, domain.ErrPersistenceUnavailable, pgErr.Message, pgErr.Code)
	}

	return fmt.Errorf("%s: %w: %v", op, domain.ErrPersistenceUnavailable, err)
}
