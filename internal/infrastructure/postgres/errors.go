package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/cafehub/internal/domain/repository"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// mapError translates pgx errors to repository sentinels. Unique and
// foreign-key violations are expected outcomes here: the application-level
// existence checks race with concurrent inserts, and the schema constraints
// are the backstop.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return repository.ErrDuplicate
		case codeForeignKeyViolation:
			return repository.ErrMissingReference
		}
	}
	return err
}
