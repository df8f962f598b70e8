package sqltext

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/qjebbs/go-sqlf/v4/util"
)

var _ sq.Sqlizer = (*Column)(nil)

// Operator is a comparison operator.
type Operator string

// comparison operators
const (
	OpEq Operator = "="
	OpNe Operator = "!="
	OpGe Operator = ">="
	OpLe Operator = "<="
	OpGt Operator = ">"
	OpLt Operator = "<"
)

// Column is a condition expression built left to right, e.g.:
//
//	sqltext.Col("age").Ge(18)                    // age >= 18
//	sqltext.Col("id").In(1, 2, 3)                // id in (1, 2, 3)
//	sqltext.Col("a").Eq(1).Or(sqltext.Col("b").Eq(2)) // (a = 1) or (b = 2)
//
// Methods mutate the receiver and return it for chaining, except And and Or,
// which return a new Column and leave both operands untouched.
//
// A Column is not safe for concurrent use. Copying a Column copies its
// text, so the copy can be extended independently.
type Column struct {
	cond string
}

// Col starts a condition expression from a column name or fragment.
func Col(name string) *Column {
	return &Column{cond: name}
}

// Compare appends ` <op> <value>`.
func (c *Column) Compare(op Operator, value any) *Column {
	v := Value(value)
	c.cond += " " + string(op) + " " + v
	return c
}

// Eq appends ` = <value>`.
func (c *Column) Eq(value any) *Column {
	return c.Compare(OpEq, value)
}

// Ne appends ` != <value>`.
func (c *Column) Ne(value any) *Column {
	return c.Compare(OpNe, value)
}

// Ge appends ` >= <value>`.
func (c *Column) Ge(value any) *Column {
	return c.Compare(OpGe, value)
}

// Le appends ` <= <value>`.
func (c *Column) Le(value any) *Column {
	return c.Compare(OpLe, value)
}

// Gt appends ` > <value>`.
func (c *Column) Gt(value any) *Column {
	return c.Compare(OpGt, value)
}

// Lt appends ` < <value>`.
func (c *Column) Lt(value any) *Column {
	return c.Compare(OpLt, value)
}

// IsNull appends ` is null`.
func (c *Column) IsNull() *Column {
	c.cond += " is null"
	return c
}

// IsNotNull appends ` is not null`.
func (c *Column) IsNotNull() *Column {
	c.cond += " is not null"
	return c
}

// As appends ` as <name>`, for select column expressions.
func (c *Column) As(name string) *Column {
	c.cond += " as " + name
	return c
}

// In appends ` in (v1, v2, ...)`. Slice and array arguments are expanded,
// except []byte, which is a single value.
// With exactly one value it appends ` = v` instead.
//
// An empty list renders ` in ()`, which is not valid SQL.
func (c *Column) In(values ...any) *Column {
	return c.in(OpEq, "in", values)
}

// NotIn appends ` not in (v1, v2, ...)`. Arguments are expanded as in In.
// With exactly one value it appends ` != v` instead.
func (c *Column) NotIn(values ...any) *Column {
	return c.in(OpNe, "not in", values)
}

func (c *Column) in(single Operator, keyword string, values []any) *Column {
	args := make([]any, len(values))
	for i, v := range values {
		if bs, ok := v.([]byte); ok {
			v = string(bs)
		}
		args[i] = v
	}
	values = util.FlattenArgs(args...)
	if len(values) == 1 {
		return c.Compare(single, values[0])
	}
	c.cond += " " + keyword + " (" + strings.Join(Values(values...), ", ") + ")"
	return c
}

// And returns a new Column `(<c>) and (<other>)`.
func (c *Column) And(other *Column) *Column {
	return c.combine("and", other)
}

// Or returns a new Column `(<c>) or (<other>)`.
func (c *Column) Or(other *Column) *Column {
	return c.combine("or", other)
}

func (c *Column) combine(op string, other *Column) *Column {
	return &Column{cond: "(" + c.String() + ") " + op + " (" + other.String() + ")"}
}

// AndRaw appends ` and <text>` without parentheses.
func (c *Column) AndRaw(text string) *Column {
	c.cond += " and " + text
	return c
}

// OrRaw appends ` or <text>` without parentheses.
func (c *Column) OrRaw(text string) *Column {
	c.cond += " or " + text
	return c
}

// String returns the expression text.
func (c *Column) String() string {
	if c == nil {
		return ""
	}
	return c.cond
}

// ToSql implements squirrel.Sqlizer.
func (c *Column) ToSql() (string, []any, error) {
	return c.String(), nil, nil
}
