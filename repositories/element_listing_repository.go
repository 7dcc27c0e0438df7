package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
)

const elementIdColumn = "id"

type ElementListingRepository interface {
	ListRows(ctx context.Context, exec Executor, listing *Listing) ([]models.RowElement, error)
}

type ElementListingRepositoryPostgresql struct{}

// ListRows builds a fresh query from the listing, with every registered grid join applied,
// and reads each row into a RowElement. Joined aliases become attributes of the row.
func (repo *ElementListingRepositoryPostgresql) ListRows(
	ctx context.Context,
	exec Executor,
	listing *Listing,
) ([]models.RowElement, error) {
	qb, err := listing.NewQueryBuilder()
	if err != nil {
		return nil, err
	}
	sql, args, err := qb.ToFilteredSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build listing query")
	}

	rows, err := queryToListOfRow(ctx, exec, sql, args, func(row pgx.CollectableRow) (models.RowElement, error) {
		values, err := pgx.RowToMap(row)
		if err != nil {
			return models.RowElement{}, err
		}
		return adaptRowElement(values, listing.ColumnTargets())
	})
	switch {
	case IsUndefinedTableError(err):
		return nil, errors.Mark(errors.Wrapf(err, "no listing table %s", listing.TableName()), models.ErrConfiguration)
	case IsUndefinedColumnError(err):
		return nil, errors.Mark(errors.Wrapf(err, "unknown column in listing of %s", listing.TableName()),
			models.ErrConfiguration)
	}
	return rows, err
}

// adaptRowElement keeps every column as an attribute of the row. Columns with a target are
// also read back as their field, in its locale.
func adaptRowElement(values map[string]any, targets map[string]ColumnTarget) (models.RowElement, error) {
	var id int64
	switch v := values[elementIdColumn].(type) {
	case int64:
		id = v
	case int32:
		id = int64(v)
	case int:
		id = int64(v)
	default:
		return models.RowElement{}, errors.Newf("listing row without integer %s column: %v", elementIdColumn, v)
	}

	row := models.RowElement{
		ElementId:   id,
		ElementType: models.ElementTypeObject,
		Attributes:  make(map[string]any, len(values)),
	}
	for column, value := range values {
		if column == elementIdColumn {
			continue
		}
		row.Attributes[column] = value
	}

	for column, target := range targets {
		value, ok := values[column]
		if !ok {
			continue
		}
		if target.Locale == "" {
			if _, exists := row.Attributes[target.Key]; !exists {
				row.Attributes[target.Key] = value
			}
			continue
		}
		if row.Localized == nil {
			row.Localized = make(map[string]map[string]any)
		}
		if row.Localized[target.Locale] == nil {
			row.Localized[target.Locale] = make(map[string]any)
		}
		row.Localized[target.Locale][target.Key] = value
	}
	return row, nil
}
