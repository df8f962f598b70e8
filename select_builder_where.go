package sqltext

// Where add a condition. Conditions are joined with AND. e.g.:
//
//	b.Where("age >= 18")
//	b.Where(sqltext.Col("id").In(1, 2, 3))
//	b.Where(squirrel.Eq{"status": "active"}) // status = 'active'
//
// The condition is one of string, Raw, *Column, fmt.Stringer or
// squirrel.Sqlizer, whose args are inlined as literals. It's rendered
// at once: later changes to a *Column do not affect the added condition.
// A nil condition is ignored.
//
// Conditions are not wrapped in parentheses, and AND binds tighter than OR:
//
//	b.Where(sqltext.Col("a").Eq(1).Or(sqltext.Col("b").Eq(2))).Where("c = 3")
//	// where (a = 1) or (b = 2) and c = 3
//
// Wrap a combined OR condition to keep it apart, e.g. with
// sqltext.Col("(" + or.String() + ")"), or And it with the others.
func (b *SelectBuilder) Where(cond any) *SelectBuilder {
	appendCondition(b.where, &b.errors, cond)
	return b
}

// WhereEquals is a helper func similar to Where(), which adds a simple equality condition.
func (b *SelectBuilder) WhereEquals(column string, value any) *SelectBuilder {
	return b.Where(Col(column).Eq(value))
}

// WhereNotEquals is a helper func similar to Where(), which adds a simple not-equal condition.
func (b *SelectBuilder) WhereNotEquals(column string, value any) *SelectBuilder {
	return b.Where(Col(column).Ne(value))
}

// WhereIn adds a where IN condition like `t.id in (1, 2, 3)`
func (b *SelectBuilder) WhereIn(column string, values ...any) *SelectBuilder {
	return b.Where(Col(column).In(values...))
}

// WhereNotIn adds a where NOT IN condition like `t.id not in (1, 2, 3)`
func (b *SelectBuilder) WhereNotIn(column string, values ...any) *SelectBuilder {
	return b.Where(Col(column).NotIn(values...))
}

// WhereIsNull adds a IS NULL condition like `t.deleted_at is null`
func (b *SelectBuilder) WhereIsNull(column string) *SelectBuilder {
	return b.Where(Col(column).IsNull())
}

// WhereIsNotNull adds a IS NOT NULL condition like `t.deleted_at is not null`
func (b *SelectBuilder) WhereIsNotNull(column string) *SelectBuilder {
	return b.Where(Col(column).IsNotNull())
}

// Having add a having condition. Conditions are joined with AND.
// See Where for the accepted condition kinds.
func (b *SelectBuilder) Having(cond any) *SelectBuilder {
	appendCondition(b.having, &b.errors, cond)
	return b
}
