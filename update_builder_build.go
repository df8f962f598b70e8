package sqltext

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// String renders the statement, which implements fmt.Stringer.
//
// A condition that failed to build is kept, with a /* comment */ in place
// of its broken part; use ToSql to get the error.
func (b *UpdateBuilder) String() string {
	b.sql = b.buildInternal()
	b.printIfDebug(b.sql)
	return b.sql
}

// LastSQL returns the text of the last rendering.
func (b *UpdateBuilder) LastSQL() string {
	return b.sql
}

// ToSql implements squirrel.Sqlizer.
func (b *UpdateBuilder) ToSql() (string, []any, error) {
	if err := b.errors.anyError(); err != nil {
		return "", nil, err
	}
	return b.String(), nil, nil
}

// Debug enables debug mode which logs the rendered statement with logrus.
func (b *UpdateBuilder) Debug(name ...string) *UpdateBuilder {
	b.debugger.Debug(name...)
	return b
}

// DebugTo is like Debug, but logs to the given logger.
func (b *UpdateBuilder) DebugTo(logger logrus.FieldLogger, name ...string) *UpdateBuilder {
	b.debugger.DebugTo(logger, name...)
	return b
}

func (b *UpdateBuilder) buildInternal() string {
	built := make([]string, 0, 4)
	// UPDATE target
	built = append(built, "update", b.target)
	// SET sets, rendered as `set` alone when empty
	if b.sets.Empty() {
		built = append(built, "set")
	} else {
		built = append(built, b.sets.Build())
	}
	if where := b.where.Build(); where != "" {
		built = append(built, where)
	}
	return strings.Join(built, " ")
}
