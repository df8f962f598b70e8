package sqltext

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// String renders the statement, which implements fmt.Stringer.
//
// A condition that failed to build is kept, with a /* comment */ in place
// of its broken part; use ToSql to get the error.
func (b *SelectBuilder) String() string {
	b.sql = b.buildInternal()
	b.printIfDebug(b.sql)
	return b.sql
}

// LastSQL returns the text of the last rendering, or "" if
// the builder is not rendered since created or reset.
func (b *SelectBuilder) LastSQL() string {
	return b.sql
}

// ToSql implements squirrel.Sqlizer. The statement has no args since
// values are inlined as literals.
func (b *SelectBuilder) ToSql() (string, []any, error) {
	if err := b.errors.anyError(); err != nil {
		return "", nil, err
	}
	return b.String(), nil, nil
}

// Debug enables debug mode which logs the rendered statement with logrus.
func (b *SelectBuilder) Debug(name ...string) *SelectBuilder {
	b.debugger.Debug(name...)
	return b
}

// DebugTo is like Debug, but logs to the given logger.
func (b *SelectBuilder) DebugTo(logger logrus.FieldLogger, name ...string) *SelectBuilder {
	b.debugger.DebugTo(logger, name...)
	return b
}

func (b *SelectBuilder) buildInternal() string {
	built := make([]string, 0, 11)
	if b.distinct {
		built = append(built, "select distinct")
	} else {
		built = append(built, "select")
	}
	if !b.selects.Empty() {
		built = append(built, b.selects.Build())
	}
	if from := b.from.Build(); from != "" {
		built = append(built, from)
	}
	if b.joinType != "" {
		built = append(built, b.joinType, b.joinTable)
	}
	for _, c := range []string{
		b.on.Build(),
		b.where.Build(),
		b.groupby.Build(),
		b.having.Build(),
	} {
		if c != "" {
			built = append(built, c)
		}
	}
	if b.orderBy != "" {
		built = append(built, "order by", b.orderBy)
	}
	if b.limit != "" {
		built = append(built, "limit", b.limit)
	}
	if b.offset != "" {
		built = append(built, "offset", b.offset)
	}
	return strings.Join(built, " ")
}
