package repositories

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/gosimple/slug"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/models/grid"
)

// FeatureFilterCondition builds the HAVING predicate filtering a joined classification
// store value.
func FeatureFilterCondition(alias string, operator models.FilterOperator, value any) (string, error) {
	if !models.IsValidIdentifier(alias) {
		return "", models.ConfigurationError("invalid filter alias %q", alias)
	}
	if operator == models.FilterOperatorLike {
		return fmt.Sprintf("%s LIKE %s", alias, quoteLiteral(containsPattern(models.CellValue(value)))), nil
	}
	literal, err := filterLiteral(value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s", alias, operator, literal), nil
}

// SlugFilterCondition matches url slugs containing the slugified search text. Each "/"
// separated part of the search is slugified on its own.
func SlugFilterCondition(alias string, search string) (string, error) {
	if !models.IsValidIdentifier(alias) {
		return "", models.ConfigurationError("invalid filter alias %q", alias)
	}
	parts := strings.Split(search, "/")
	for i, part := range parts {
		if part != "" {
			parts[i] = slug.Make(part)
		}
	}
	return fmt.Sprintf("%s LIKE %s", alias, quoteLiteral(containsPattern(strings.Join(parts, "/")))), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern is the LIKE pattern matching values containing search literally.
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

func filterLiteral(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return quoteLiteral(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		if v {
			return "1", nil
		}
		return "0", nil
	case time.Time:
		return quoteLiteral(v.Format(time.RFC3339)), nil
	}
	return "", models.ConfigurationError("unsupported filter value %v (%T)", value, value)
}

// CompileGridFilters routes each grid filter either to the HAVING predicates of the joined
// alias it addresses (classification store and url slug columns) or to a WHERE condition on
// the listing table.
func CompileGridFilters(
	listing *Listing,
	config grid.GridConfig,
	filters []models.GridFilter,
) (models.FilterConditions, error) {
	conditions := make(models.FilterConditions)

	for _, filter := range filters {
		if filter.Column < 0 || filter.Column >= len(config.Columns) {
			return nil, models.ConfigurationError("filter on unknown column %d", filter.Column)
		}
		spec, switchLocale, ok := config.Columns[filter.Column].FirstValueLeafWithLocale()
		if !ok {
			return nil, models.ConfigurationError("column %d has no field to filter on", filter.Column)
		}

		var (
			alias     string
			condition string
			err       error
		)
		switch {
		case spec.IsClassificationStoreKey():
			alias = config.FeatureJoin(spec, switchLocale).Alias()
			condition, err = FeatureFilterCondition(alias, filter.Operator, filter.Value)
		case spec.FieldType == models.FieldTypeSlug:
			alias = config.SlugJoin(spec, switchLocale).Alias()
			condition, err = SlugFilterCondition(alias, models.CellValue(filter.Value))
		default:
			table := listing.TableName()
			if join, ok := config.LocalizedFieldJoin(spec, switchLocale); ok {
				table = join.TableAlias()
			}
			err = addWhereFilter(table, listing, spec.Key, filter)
		}
		if err != nil {
			return nil, err
		}
		if alias == "" {
			continue
		}
		if existing, ok := conditions[alias]; ok {
			condition = existing + " AND " + condition
		}
		conditions[alias] = condition
	}
	return conditions, nil
}

func addWhereFilter(table string, listing *Listing, key string, filter models.GridFilter) error {
	if !models.IsValidIdentifier(key) {
		return models.ConfigurationError("invalid filter field %q", key)
	}
	column := table + "." + key

	var where squirrel.Sqlizer
	switch filter.Operator {
	case models.FilterOperatorLike:
		where = squirrel.Like{column: containsPattern(models.CellValue(filter.Value))}
	case models.FilterOperatorEqual:
		where = squirrel.Eq{column: filter.Value}
	case models.FilterOperatorNotEqual:
		where = squirrel.NotEq{column: filter.Value}
	case models.FilterOperatorLess:
		where = squirrel.Lt{column: filter.Value}
	case models.FilterOperatorLessEq:
		where = squirrel.LtOrEq{column: filter.Value}
	case models.FilterOperatorGreater:
		where = squirrel.Gt{column: filter.Value}
	case models.FilterOperatorGreaterEq:
		where = squirrel.GtOrEq{column: filter.Value}
	default:
		return models.ConfigurationError("unknown filter operator %q", filter.Operator)
	}
	listing.Where = append(listing.Where, where)
	return nil
}
