package sqltext

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// String renders the statement, which implements fmt.Stringer.
//
// A condition that failed to build is kept, with a /* comment */ in place
// of its broken part; use ToSql to get the error.
func (b *DeleteBuilder) String() string {
	b.sql = b.buildInternal()
	b.printIfDebug(b.sql)
	return b.sql
}

// LastSQL returns the text of the last rendering.
func (b *DeleteBuilder) LastSQL() string {
	return b.sql
}

// ToSql implements squirrel.Sqlizer.
func (b *DeleteBuilder) ToSql() (string, []any, error) {
	if err := b.errors.anyError(); err != nil {
		return "", nil, err
	}
	return b.String(), nil, nil
}

// Debug enables debug mode which logs the rendered statement with logrus.
func (b *DeleteBuilder) Debug(name ...string) *DeleteBuilder {
	b.debugger.Debug(name...)
	return b
}

// DebugTo is like Debug, but logs to the given logger.
func (b *DeleteBuilder) DebugTo(logger logrus.FieldLogger, name ...string) *DeleteBuilder {
	b.debugger.DebugTo(logger, name...)
	return b
}

func (b *DeleteBuilder) buildInternal() string {
	built := []string{"delete from", b.from.Joined()}
	if where := b.where.Build(); where != "" {
		built = append(built, where)
	}
	return strings.Join(built, " ")
}
