package sqltext

import (
	"github.com/qjebbs/go-sqltext/internal/clauses"
)

// DeleteBuilder is the DELETE statement builder.
//
//	b := sqltext.NewDeleteBuilder().
//		From("users").
//		Where("id = 1")
//	b.String() // delete from users where id = 1
//
// A DeleteBuilder is not safe for concurrent use.
type DeleteBuilder struct {
	from  *clauses.PrefixedList // target tables, joined with comma.
	where *clauses.PrefixedList // where conditions, joined with AND.

	sql    string // last rendered
	errors errorList

	debugger
}

// NewDeleteBuilder returns a new DeleteBuilder.
func NewDeleteBuilder() *DeleteBuilder {
	return &DeleteBuilder{
		from:  clauses.NewPrefixedList("", ", "),
		where: clauses.NewPrefixedList("where", " and "),
	}
}

// From appends the delete target tables. Multiple tables are joined with comma.
func (b *DeleteBuilder) From(tables ...string) *DeleteBuilder {
	b.from.Append(tables...)
	return b
}

// Where add a condition. Conditions are joined with AND, without
// parentheses, so an OR condition must be wrapped by the caller.
// See SelectBuilder.Where for the accepted condition kinds.
func (b *DeleteBuilder) Where(cond any) *DeleteBuilder {
	appendCondition(b.where, &b.errors, cond)
	return b
}

// WhereEquals is a helper func similar to Where(), which adds a simple equality condition.
func (b *DeleteBuilder) WhereEquals(column string, value any) *DeleteBuilder {
	return b.Where(Col(column).Eq(value))
}

// WhereNotEquals is a helper func similar to Where(), which adds a simple not-equal condition.
func (b *DeleteBuilder) WhereNotEquals(column string, value any) *DeleteBuilder {
	return b.Where(Col(column).Ne(value))
}

// WhereIn adds a where IN condition like `t.id in (1, 2, 3)`
func (b *DeleteBuilder) WhereIn(column string, values ...any) *DeleteBuilder {
	return b.Where(Col(column).In(values...))
}

// WhereNotIn adds a where NOT IN condition like `t.id not in (1, 2, 3)`
func (b *DeleteBuilder) WhereNotIn(column string, values ...any) *DeleteBuilder {
	return b.Where(Col(column).NotIn(values...))
}

// WhereIsNull adds a IS NULL condition like `t.deleted_at is null`
func (b *DeleteBuilder) WhereIsNull(column string) *DeleteBuilder {
	return b.Where(Col(column).IsNull())
}

// Reset clears the statement so that the builder can be reused.
// Debug settings are kept.
func (b *DeleteBuilder) Reset() *DeleteBuilder {
	b.from.Reset()
	b.where.Reset()
	b.sql = ""
	b.errors = nil
	return b
}
