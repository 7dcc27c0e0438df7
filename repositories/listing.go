package repositories

import (
	"regexp"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
)

var orderByRegexp = regexp.MustCompile(`^[A-Za-z0-9_]+( (ASC|DESC|asc|desc))?$`)

// Listing describes a data object listing of one class. Grid compilers register callbacks
// that are applied to every query builder the listing creates.
type Listing struct {
	ClassId string
	// Locale selects the localized view of the class table. Empty lists the plain table.
	Locale string

	Where []squirrel.Sqlizer
	// OrderBy holds output column names, optionally followed by ASC or DESC.
	OrderBy []string
	Limit   uint64
	Offset  uint64

	callbacks []func(qb GridQueryBuilder) error
	// joined output columns holding a field in a given locale, by lowercased alias
	columnTargets map[string]ColumnTarget
}

// ColumnTarget is the field a joined output column is read back as. An empty Locale puts
// the value with the plain attributes of the row.
type ColumnTarget struct {
	Key    string
	Locale string
}

func NewListing(classId string, locale string) *Listing {
	return &Listing{ClassId: classId, Locale: locale}
}

func (l *Listing) TableName() string {
	if l.Locale == "" {
		return "object_" + l.ClassId
	}
	return "object_localized_" + l.ClassId + "_" + l.Locale
}

// setColumnTarget records the field an output column is read back as. Aliases are compared
// the way postgres folds unquoted identifiers.
func (l *Listing) setColumnTarget(alias string, target ColumnTarget) error {
	alias = strings.ToLower(alias)
	if l.columnTargets == nil {
		l.columnTargets = make(map[string]ColumnTarget)
	}
	if existing, ok := l.columnTargets[alias]; ok && existing != target {
		return models.ConfigurationError("listing: output column %s holds both %s (%s) and %s (%s)",
			alias, existing.Key, existing.Locale, target.Key, target.Locale)
	}
	l.columnTargets[alias] = target
	return nil
}

func (l *Listing) ColumnTargets() map[string]ColumnTarget {
	return l.columnTargets
}

func (l *Listing) OnCreateQueryBuilder(fn func(qb GridQueryBuilder) error) {
	l.callbacks = append(l.callbacks, fn)
}

// NewQueryBuilder creates a fresh query builder selecting the listing table and applies the
// registered callbacks to it, in registration order.
func (l *Listing) NewQueryBuilder() (*SquirrelGridQueryBuilder, error) {
	if !models.IsValidIdentifier(l.ClassId) {
		return nil, models.ConfigurationError("listing: invalid class id %q", l.ClassId)
	}
	if l.Locale != "" && !models.IsValidIdentifier(l.Locale) {
		return nil, models.ConfigurationError("listing: invalid locale %q", l.Locale)
	}

	table := l.TableName()
	base := NewQueryBuilder().
		Select(table + ".*").
		From(table)
	for _, where := range l.Where {
		base = base.Where(where)
	}
	for _, order := range l.OrderBy {
		if !orderByRegexp.MatchString(order) {
			return nil, models.ConfigurationError("listing: invalid order by %q", order)
		}
	}

	qb := NewGridQueryBuilder(base, Paging{OrderBy: l.OrderBy, Limit: l.Limit, Offset: l.Offset})
	for _, fn := range l.callbacks {
		if err := fn(qb); err != nil {
			return nil, errors.Wrap(err, "error building listing query")
		}
	}
	return qb, nil
}
