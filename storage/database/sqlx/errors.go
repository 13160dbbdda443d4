package sqlxrepos

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// trapNoRows maps the driver's "no rows" error to the domain's not-found error.
func trapNoRows(err, notFound error, msg string) error {
	if err == sql.ErrNoRows {
		return notFound
	}
	return errors.Wrap(err, msg)
}

// trapUniqueViolation maps a unique-constraint violation to the domain's
// already-exists error.
func trapUniqueViolation(err, exists error, msg string) error {
	if pqErr, ok := errors.Cause(err).(*pq.Error); ok && pqErr.Code == "23505" {
		return exists
	}
	return errors.Wrap(err, msg)
}
