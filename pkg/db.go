package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgres error codes, https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgUniqueViolation     = "23505"
	PgForeignKeyViolation = "23503"
)

// PgErrorCode returns the SQLSTATE code of a postgres error anywhere in err's chain,
// or "" when err does not come from postgres.
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
