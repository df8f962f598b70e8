package sqltext

// InsertBuilder is the INSERT statement builder.
//
//	b := sqltext.NewInsertBuilder().
//		Insert("name", "Alice").
//		Insert("age", 30).
//		Into("users")
//	b.String() // insert into users(name, age) values('Alice', 30)
//
// An InsertBuilder is not safe for concurrent use.
type InsertBuilder struct {
	target  string
	replace bool     // insert or replace (SQLite)
	columns []string // columns, aligned with values.
	values  []string // formatted values.

	sql string // last rendered

	debugger
}

// NewInsertBuilder returns a new InsertBuilder.
func NewInsertBuilder() *InsertBuilder {
	return &InsertBuilder{}
}

// Insert adds a column and its value. The value is formatted
// immediately with Value, and Null or nil is inserted as null:
//
//	b.Insert("deleted_at", sqltext.Null) // null
//	b.Insert("note", "null")             // 'null'
func (b *InsertBuilder) Insert(column string, value any) *InsertBuilder {
	b.columns = append(b.columns, column)
	b.values = append(b.values, Value(value))
	return b
}

// Into sets the target table for insertion.
func (b *InsertBuilder) Into(table string) *InsertBuilder {
	b.target = table
	return b
}

// Replace toggles SQLite's `insert or replace into`.
func (b *InsertBuilder) Replace(replace bool) *InsertBuilder {
	b.replace = replace
	return b
}

// Reset clears the statement so that the builder can be reused.
// Debug settings are kept.
func (b *InsertBuilder) Reset() *InsertBuilder {
	b.target = ""
	b.replace = false
	b.columns = nil
	b.values = nil
	b.sql = ""
	return b
}
