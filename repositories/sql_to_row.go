package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
)

// SqlToListOfRow executes the query and converts each row with the provided adapter.
func SqlToListOfRow[Model any](
	ctx context.Context,
	exec Executor,
	query squirrel.Sqlizer,
	adapter func(row pgx.CollectableRow) (Model, error),
) ([]Model, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build sql query")
	}
	return queryToListOfRow(ctx, exec, sql, args, adapter)
}

func queryToListOfRow[Model any](
	ctx context.Context,
	exec Executor,
	sql string,
	args []any,
	adapter func(row pgx.CollectableRow) (Model, error),
) ([]Model, error) {
	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error executing sql query")
	}
	models, err := pgx.CollectRows(rows, adapter)
	if err != nil {
		return nil, errors.Wrap(err, "error scanning rows")
	}
	return models, nil
}
