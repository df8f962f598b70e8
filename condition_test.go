package sqltext_test

import (
	"errors"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qjebbs/go-sqltext"
)

func TestSqlizerConditions(t *testing.T) {
	testCases := []struct {
		name string
		cond sq.Sqlizer
		want string
	}{
		{"eq", sq.Eq{"id": 1}, "delete from t where id = 1"},
		{"eq string", sq.Eq{"name": "O'Brien"}, "delete from t where name = 'O''Brien'"},
		{"eq null", sq.Eq{"deleted_at": nil}, "delete from t where deleted_at IS NULL"},
		{"eq list", sq.Eq{"id": []int{1, 2}}, "delete from t where id IN (1,2)"},
		{"expr", sq.Expr("age BETWEEN ? AND ?", 18, 65), "delete from t where age BETWEEN 18 AND 65"},
		{"doubled question mark", sq.Expr("data ?? 'k' AND id = ?", 3), "delete from t where data ?? 'k' AND id = 3"},
		{"question mark in quotes", sq.Expr("note = 'why?'"), "delete from t where note = 'why?'"},
		{"quoted and bind var", sq.Expr("note <> '?' AND id = ?", 7), "delete from t where note <> '?' AND id = 7"},
		{"bool arg", sq.Eq{"active": true}, "delete from t where active = 1"},
		{"float arg", sq.Expr("score > ?", 9.5), "delete from t where score > 9.5"},
		{"named type arg", sq.Eq{"status": status(2)}, "delete from t where status = 2"},
		{"null arg", sq.Expr("a = ?", sqltext.Null), "delete from t where a = null"},
		{"and", sq.And{sq.Gt{"a": 1}, sq.Lt{"b": 2}}, "delete from t where (a > 1 AND b < 2)"},
		{"column", sqltext.Col("a").Eq(1), "delete from t where a = 1"},
		{"builder as condition", sqltext.NewSelectBuilder().Select("1"), "delete from t where select 1"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := sqltext.NewDeleteBuilder().From("t").Where(tc.cond)
			query, args, err := b.ToSql()
			require.NoError(t, err)
			assert.Empty(t, args)
			assert.Equal(t, tc.want, query)
		})
	}
}

func TestSqlizerConditionError(t *testing.T) {
	b := sqltext.NewSelectBuilder().
		Select("*").
		From("t").
		Where(sq.Expr("a = ? AND b = ?", 1)).
		Where("c = 3")
	assert.Equal(t, "select * from t where a = 1 AND b = /* bindvar index out of range: 2 */ and c = 3", b.String())
	_, _, err := b.ToSql()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bindvar index out of range: 2")

	failing := errors.New("boom")
	u := sqltext.NewUpdateBuilder().Update("t").Set("a", 1).Where(errSqlizer{failing})
	assert.Equal(t, "update t set a = 1 where /* build condition: boom */", u.String())
	_, _, err = u.ToSql()
	require.ErrorIs(t, err, failing)

	u.Reset()
	_, _, err = u.Update("t").Set("a", 1).ToSql()
	require.NoError(t, err)
}

func TestFailedConditionIsKept(t *testing.T) {
	b := sqltext.NewDeleteBuilder().From("users").Where(sq.Expr("id = ? AND org = ?", 1))
	assert.Equal(t, "delete from users where id = 1 AND org = /* bindvar index out of range: 2 */", b.String())
	_, _, err := b.ToSql()
	require.Error(t, err)

	b = sqltext.NewDeleteBuilder().From("users").Where(errSqlizer{errors.New("no */ way")})
	assert.Equal(t, "delete from users where /* build condition: no * / way */", b.String())
}

func TestSqlizerTooManyArgs(t *testing.T) {
	b := sqltext.NewDeleteBuilder().From("t").Where(sq.Expr("a = ?", 1, 2))
	assert.Equal(t, "delete from t where a = 1", b.String())
	_, _, err := b.ToSql()
	require.Error(t, err)
}

func TestBuildersAsSqlizer(t *testing.T) {
	sub := sqltext.NewSelectBuilder().Select("user_id").From("orders").Where(sqltext.Col("total").Gt(100))
	query, args, err := sq.Select("name").
		From("users").
		Where(sqltext.Col("active").Eq(true)).
		Where(sq.Expr("id IN ("+sub.String()+")")).
		ToSql()
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Equal(t, "SELECT name FROM users WHERE active = 1 AND id IN (select user_id from orders where total > 100)", query)
}

type errSqlizer struct{ err error }

func (e errSqlizer) ToSql() (string, []any, error) {
	return "", nil, e.err
}
