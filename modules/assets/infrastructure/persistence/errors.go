package persistence

import (
	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/itam-labs/assetdesk/pkg/serrors"
)

const uniqueViolation = "23505"

// mapDBError translates unique-constraint violations into conflict errors so
// the HTTP layer can answer 409 instead of 500.
func mapDBError(err error, message string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return serrors.Wrap(err, serrors.KindConflict, message)
	}
	return err
}
