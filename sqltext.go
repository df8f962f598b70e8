// Package sqltext is a fluent, in-memory SQL statement builder.
// It provides,
//   - SelectBuilder, InsertBuilder, UpdateBuilder and DeleteBuilder,
//     which accumulate clauses and render them into SQL text on demand.
//   - Column, a chainable condition expression for where / having / on clauses.
//   - Value, which formats Go values as SQL literals.
//
// The builders produce text only: values are inlined as literals, and table
// or column names are concatenated verbatim. Never pass untrusted input as
// names or Raw fragments.
//
// Builders are not safe for concurrent use. Confine one builder to one
// construction sequence at a time, or synchronize externally.
package sqltext

import (
	sq "github.com/Masterminds/squirrel"
)

// Builder is the interface for sql builders.
type Builder interface {
	sq.Sqlizer
	// String renders the statement.
	String() string
	// LastSQL returns the text of the last rendering.
	LastSQL() string
}

var (
	_ Builder = (*SelectBuilder)(nil)
	_ Builder = (*InsertBuilder)(nil)
	_ Builder = (*UpdateBuilder)(nil)
	_ Builder = (*DeleteBuilder)(nil)
)

// errorList records errors from conditions which failed to build.
type errorList []error

func (e *errorList) add(err error) {
	if err != nil {
		*e = append(*e, err)
	}
}

// anyError returns the first recorded error.
func (e errorList) anyError() error {
	if len(e) == 0 {
		return nil
	}
	return e[0]
}
