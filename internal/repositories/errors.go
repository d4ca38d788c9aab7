package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate is returned when an insert or update would violate a uniqueness
// constraint (duplicate email, occupied appointment slot).
var ErrDuplicate = errors.New("duplicate record")

// uniqueViolation reports whether err is a postgres unique-constraint violation.
func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
