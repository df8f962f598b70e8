package clauses

import (
	"context"
	"strings"

	"github.com/qjebbs/go-sqlf/v4"
	"github.com/qjebbs/go-sqlf/v4/dialect"
)

var _ sqlf.Builder = (*PrefixedList)(nil)

// PrefixedList represents a SQL clause that consists of multiple fragments
// prefixed with a clause keyword, e.g., select, where, having, group by, etc.
//
// Fragments keep their insertion order.
type PrefixedList struct {
	prefix    string
	separator string
	elements  []string
}

// NewPrefixedList creates a new PrefixedList.
func NewPrefixedList(clause, separator string) *PrefixedList {
	return &PrefixedList{
		prefix:    clause,
		separator: separator,
	}
}

// SetPrefix sets the clause prefix.
func (b *PrefixedList) SetPrefix(clause string) *PrefixedList {
	b.prefix = clause
	return b
}

// Append add elements. e.g.:
//
//	where.Append("age >= 18", "name is not null")
func (b *PrefixedList) Append(s ...string) *PrefixedList {
	if s == nil {
		return b
	}
	b.elements = append(b.elements, s...)
	return b
}

// Elements returns the appended fragments.
func (b *PrefixedList) Elements() []string {
	if b == nil {
		return nil
	}
	return b.elements
}

// Len returns the number of elements.
func (b *PrefixedList) Len() int {
	if b == nil {
		return 0
	}
	return len(b.elements)
}

// Empty returns whether there is no element.
func (b *PrefixedList) Empty() bool {
	return b == nil || len(b.elements) == 0
}

// Reset drops all elements, keeping the prefix and separator.
func (b *PrefixedList) Reset() {
	b.elements = nil
}

// Joined returns the elements joined with the separator, without prefix.
func (b *PrefixedList) Joined() string {
	if b.Empty() {
		return ""
	}
	return strings.Join(b.elements, b.separator)
}

// BuildTo implements sqlf.Builder.
//
// Elements are joined as they are: unlike sqlf.Join, blank elements are
// neither trimmed nor skipped, and `?` in them is never a bind var.
func (b *PrefixedList) BuildTo(ctx sqlf.Context) (string, error) {
	if b.Empty() {
		return "", nil
	}
	joined := sqlf.Func(func(sqlf.Context) (string, error) {
		return b.Joined(), nil
	})
	if b.prefix == "" {
		return joined.BuildTo(ctx)
	}
	return sqlf.Prefix(b.prefix, joined).BuildTo(ctx)
}

// Build returns the prefixed clause, or "" if there is no element.
func (b *PrefixedList) Build() string {
	query, _, err := sqlf.Build(sqlf.NewContext(context.Background(), dialect.SQLite{}), b)
	if err != nil {
		// unreachable with a background context
		panic(err)
	}
	return query
}
