package sqltext

import (
	"github.com/qjebbs/go-sqltext/internal/clauses"
)

// UpdateBuilder is the UPDATE statement builder.
//
//	b := sqltext.NewUpdateBuilder().
//		Update("users").
//		Set("age", 31).
//		Where("id = 1")
//	b.String() // update users set age = 31 where id = 1
//
// An UpdateBuilder is not safe for concurrent use.
type UpdateBuilder struct {
	target string
	sets   *clauses.PrefixedList // assignments, joined with comma.
	where  *clauses.PrefixedList // where conditions, joined with AND.

	sql    string // last rendered
	errors errorList

	debugger
}

// NewUpdateBuilder returns a new UpdateBuilder.
func NewUpdateBuilder() *UpdateBuilder {
	return &UpdateBuilder{
		sets:  clauses.NewPrefixedList("set", ", "),
		where: clauses.NewPrefixedList("where", " and "),
	}
}

// Update set the update target table.
func (b *UpdateBuilder) Update(table string) *UpdateBuilder {
	b.target = table
	return b
}

// Set adds an assignment `<column> = <value>`.
// Multiple calls will append the sets, for example:
//
//	b.Set("name", "Alice").Set("age", 30)
//
// Null or nil sets null, and Raw or *Column values are used verbatim:
//
//	b.Set("deleted_at", sqltext.Null)
//	b.Set("count", sqltext.Raw("count + 1"))
func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets.Append(column + " = " + Value(value))
	return b
}

// Reset clears the statement so that the builder can be reused.
// Debug settings are kept.
func (b *UpdateBuilder) Reset() *UpdateBuilder {
	b.target = ""
	b.sets.Reset()
	b.where.Reset()
	b.sql = ""
	b.errors = nil
	return b
}
