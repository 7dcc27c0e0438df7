package repositories

import (
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
)

// GridQueryBuilder accumulates the joins, computed columns and HAVING predicates of a grid
// listing query, and keeps them inspectable.
type GridQueryBuilder interface {
	AddJoin(join models.JoinDescriptor)
	AddSelect(expression string)
	AndHaving(condition string)

	Joins() []models.JoinDescriptor
	Selects() []string
	Having() string

	ToSql() (string, []any, error)
}

type SquirrelGridQueryBuilder struct {
	base    squirrel.SelectBuilder
	paging  Paging
	joins   []models.JoinDescriptor
	selects []string
	having  []string
}

type Paging struct {
	OrderBy []string
	Limit   uint64
	Offset  uint64
}

// NewGridQueryBuilder wraps base, which must use the dollar placeholder format. Paging is
// applied last, after the HAVING clause.
func NewGridQueryBuilder(base squirrel.SelectBuilder, paging Paging) *SquirrelGridQueryBuilder {
	return &SquirrelGridQueryBuilder{base: base, paging: paging}
}

func (b *SquirrelGridQueryBuilder) AddJoin(join models.JoinDescriptor) {
	b.joins = append(b.joins, join)
}

func (b *SquirrelGridQueryBuilder) AddSelect(expression string) {
	b.selects = append(b.selects, expression)
}

func (b *SquirrelGridQueryBuilder) AndHaving(condition string) {
	if condition == "" {
		return
	}
	b.having = append(b.having, condition)
}

func (b *SquirrelGridQueryBuilder) Joins() []models.JoinDescriptor {
	return append([]models.JoinDescriptor(nil), b.joins...)
}

func (b *SquirrelGridQueryBuilder) Selects() []string {
	return append([]string(nil), b.selects...)
}

func (b *SquirrelGridQueryBuilder) Having() string {
	return strings.Join(b.having, " AND ")
}

func (b *SquirrelGridQueryBuilder) ToSql() (string, []any, error) {
	query := b.joinedQuery()
	if having := b.Having(); having != "" {
		query = query.Having(escapePlaceholders(having))
	}
	return b.paging.apply(query).ToSql()
}

// ToFilteredSql renders the query for databases that do not resolve select aliases in HAVING:
// the joined query becomes a derived table and the HAVING predicates filter it in a WHERE.
func (b *SquirrelGridQueryBuilder) ToFilteredSql() (string, []any, error) {
	if len(b.having) == 0 {
		return b.paging.apply(b.joinedQuery()).ToSql()
	}
	query := NewQueryBuilder().
		Select("*").
		FromSelect(b.joinedQuery(), "grid_rows").
		Where(escapePlaceholders(b.Having()))
	return b.paging.apply(query).ToSql()
}

func (b *SquirrelGridQueryBuilder) joinedQuery() squirrel.SelectBuilder {
	query := b.base
	for _, join := range b.joins {
		clause := escapePlaceholders(join.Clause())
		switch join.Type {
		case models.JoinTypeInner:
			query = query.InnerJoin(clause)
		default:
			query = query.LeftJoin(clause)
		}
	}
	for _, expression := range b.selects {
		query = query.Column(escapePlaceholders(expression))
	}
	return query
}

func (p Paging) apply(query squirrel.SelectBuilder) squirrel.SelectBuilder {
	if len(p.OrderBy) > 0 {
		query = query.OrderBy(p.OrderBy...)
	}
	if p.Limit > 0 {
		query = query.Limit(p.Limit)
	}
	if p.Offset > 0 {
		query = query.Offset(p.Offset)
	}
	return query
}

// escapePlaceholders protects question marks of literal fragments from the dollar
// placeholder rewriting.
func escapePlaceholders(fragment string) string {
	return strings.ReplaceAll(fragment, "?", "??")
}
