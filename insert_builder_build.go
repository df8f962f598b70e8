package sqltext

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// String renders the statement, which implements fmt.Stringer.
//
// With no column added, it renders `insert into t() values()`.
func (b *InsertBuilder) String() string {
	b.sql = b.buildInternal()
	b.printIfDebug(b.sql)
	return b.sql
}

// LastSQL returns the text of the last rendering.
func (b *InsertBuilder) LastSQL() string {
	return b.sql
}

// ToSql implements squirrel.Sqlizer.
func (b *InsertBuilder) ToSql() (string, []any, error) {
	return b.String(), nil, nil
}

// Debug enables debug mode which logs the rendered statement with logrus.
func (b *InsertBuilder) Debug(name ...string) *InsertBuilder {
	b.debugger.Debug(name...)
	return b
}

// DebugTo is like Debug, but logs to the given logger.
func (b *InsertBuilder) DebugTo(logger logrus.FieldLogger, name ...string) *InsertBuilder {
	b.debugger.DebugTo(logger, name...)
	return b
}

func (b *InsertBuilder) buildInternal() string {
	var sb strings.Builder
	if b.replace {
		sb.WriteString("insert or replace into ")
	} else {
		sb.WriteString("insert into ")
	}
	sb.WriteString(b.target)
	sb.WriteByte('(')
	sb.WriteString(strings.Join(b.columns, ", "))
	sb.WriteString(") values(")
	sb.WriteString(strings.Join(b.values, ", "))
	sb.WriteByte(')')
	return sb.String()
}
