package sqltext

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/qjebbs/go-sqlf/v4/dialect"
	"github.com/qjebbs/go-sqlf/v4/util"

	"github.com/qjebbs/go-sqltext/internal/clauses"
)

// appendCondition snapshots cond into list, recording build errors.
// A condition that failed to build is still appended, with the failure
// rendered as a /* comment */.
func appendCondition(list *clauses.PrefixedList, errs *errorList, cond any) {
	text, ok, err := conditionText(cond)
	if err != nil {
		errs.add(err)
	}
	if ok {
		list.Append(text)
	}
}

// conditionText snapshots a condition into text. Accepted kinds are
// string, Raw, *Column, fmt.Stringer and squirrel.Sqlizer. ok is false
// for nil conditions, which callers skip.
func conditionText(cond any) (text string, ok bool, err error) {
	switch c := cond.(type) {
	case nil:
		return "", false, nil
	case string:
		return c, true, nil
	case Raw:
		return string(c), true, nil
	case *Column:
		if c == nil {
			return "", false, nil
		}
		return c.String(), true, nil
	case sq.Sqlizer:
		return sqlizerText(c)
	case fmt.Stringer:
		return c.String(), true, nil
	default:
		return fmt.Sprint(c), true, nil
	}
}

// sqlizerText builds s and inlines its args into the bind vars, formatted
// by Value. Bind vars inside quoted text are left alone.
func sqlizerText(s sq.Sqlizer) (string, bool, error) {
	query, args, err := s.ToSql()
	if err != nil {
		err = fmt.Errorf("build condition: %w", err)
		return errorMarker(err), true, err
	}
	if query == "" && len(args) == 0 {
		return "", false, nil
	}
	literals := make([]any, len(args))
	for i, arg := range args {
		literals[i] = literal(Value(arg))
	}
	text, ok := util.Interpolate(query, literals, inlineDialect{})
	if !ok {
		return text, true, fmt.Errorf("build condition %q with %d args: %s", query, len(args), text)
	}
	if len(literals) > 0 {
		if _, fits := util.Interpolate(query, literals[:len(literals)-1], inlineDialect{}); fits {
			return text, true, fmt.Errorf("build condition %q: %d args given, not all used", query, len(args))
		}
	}
	return text, true, nil
}

// literal is an arg already formatted by Value.
type literal string

func (l literal) String() string { return string(l) }

var _ util.Dialect = inlineDialect{}

// inlineDialect writes literals as they are.
type inlineDialect struct {
	dialect.SQLite
}

func (inlineDialect) FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

func (inlineDialect) QuoteString(s string) string {
	return s
}
