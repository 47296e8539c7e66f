package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrSchemaMissing is returned when the ledger table has not been created.
var ErrSchemaMissing = errors.New("orphan ledger schema missing")

const codeUndefinedTable = "42P01"

// isUndefinedTable reports a query against a table that does not exist.
func isUndefinedTable(err error) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == codeUndefinedTable
}

