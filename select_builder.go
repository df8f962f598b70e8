package sqltext

import (
	"strconv"

	"github.com/qjebbs/go-sqltext/internal/clauses"
	"github.com/qjebbs/go-sqltext/internal/util"
)

// SelectBuilder is the SELECT statement builder.
//
//	b := sqltext.NewSelectBuilder().
//		Select("id", "name").
//		From("users").
//		Where("age >= 18").
//		OrderBy("name").
//		Limit(10)
//	b.String() // select id, name from users where age >= 18 order by name limit 10
//
// A SelectBuilder is not safe for concurrent use.
type SelectBuilder struct {
	selects  *clauses.PrefixedList // select columns, joined with comma.
	distinct bool                  // select distinct
	from     *clauses.PrefixedList // from tables, joined with comma.

	joinType  string // only one join is kept, the last one wins.
	joinTable string

	on      *clauses.PrefixedList // join conditions, joined with AND.
	where   *clauses.PrefixedList // where conditions, joined with AND.
	groupby *clauses.PrefixedList // group by columns, joined with comma.
	having  *clauses.PrefixedList // having conditions, joined with AND.
	orderBy string
	limit   string
	offset  string

	sql    string // last rendered
	errors errorList

	debugger
}

// NewSelectBuilder returns a new SelectBuilder.
func NewSelectBuilder() *SelectBuilder {
	return &SelectBuilder{
		selects: clauses.NewPrefixedList("", ", "),
		from:    clauses.NewPrefixedList("from", ", "),
		on:      clauses.NewPrefixedList("on", " and "),
		where:   clauses.NewPrefixedList("where", " and "),
		groupby: clauses.NewPrefixedList("group by", ", "),
		having:  clauses.NewPrefixedList("having", " and "),
	}
}

// Select appends columns to the SELECT clause.
func (b *SelectBuilder) Select(columns ...string) *SelectBuilder {
	b.selects.Append(columns...)
	return b
}

// SelectExpr appends column expressions to the SELECT clause, e.g.:
//
//	b.SelectExpr(sqltext.Col("count(*)").As("total"))
//
// The expressions are rendered immediately.
func (b *SelectBuilder) SelectExpr(columns ...*Column) *SelectBuilder {
	b.selects.Append(util.Map(columns, (*Column).String)...)
	return b
}

// Distinct set the flag for SELECT DISTINCT.
func (b *SelectBuilder) Distinct() *SelectBuilder {
	b.distinct = true
	return b
}

// From appends tables to the FROM clause. Multiple tables are joined with comma:
//
//	b.From("a", "b") // from a, b
func (b *SelectBuilder) From(tables ...string) *SelectBuilder {
	b.from.Append(tables...)
	return b
}

// GroupBy appends group by columns.
func (b *SelectBuilder) GroupBy(columns ...string) *SelectBuilder {
	b.groupby.Append(columns...)
	return b
}

// OrderBy set the sorting order, replacing any previous one.
//
//	b.OrderBy("created_at desc, id")
func (b *SelectBuilder) OrderBy(order string) *SelectBuilder {
	b.orderBy = order
	return b
}

// Limit set the limit.
func (b *SelectBuilder) Limit(limit int64) *SelectBuilder {
	b.limit = strconv.FormatInt(limit, 10)
	return b
}

// LimitOffset set both the offset and the limit.
func (b *SelectBuilder) LimitOffset(offset, limit int64) *SelectBuilder {
	b.offset = strconv.FormatInt(offset, 10)
	b.limit = strconv.FormatInt(limit, 10)
	return b
}

// Offset set the offset.
func (b *SelectBuilder) Offset(offset int64) *SelectBuilder {
	b.offset = strconv.FormatInt(offset, 10)
	return b
}

// Reset clears all clauses so that the builder can be reused.
// Debug settings are kept.
func (b *SelectBuilder) Reset() *SelectBuilder {
	b.selects.Reset()
	b.distinct = false
	b.from.Reset()
	b.joinType = ""
	b.joinTable = ""
	b.on.Reset()
	b.where.Reset()
	b.groupby.Reset()
	b.having.Reset()
	b.orderBy = ""
	b.limit = ""
	b.offset = ""
	b.sql = ""
	b.errors = nil
	return b
}
