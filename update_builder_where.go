package sqltext

// Where add a condition. Conditions are joined with AND, without
// parentheses, so an OR condition must be wrapped by the caller.
// See SelectBuilder.Where for the accepted condition kinds.
func (b *UpdateBuilder) Where(cond any) *UpdateBuilder {
	appendCondition(b.where, &b.errors, cond)
	return b
}

// WhereEquals is a helper func similar to Where(), which adds a simple equality condition.
func (b *UpdateBuilder) WhereEquals(column string, value any) *UpdateBuilder {
	return b.Where(Col(column).Eq(value))
}

// WhereIn adds a where IN condition like `t.id in (1, 2, 3)`
func (b *UpdateBuilder) WhereIn(column string, values ...any) *UpdateBuilder {
	return b.Where(Col(column).In(values...))
}

// WhereIsNull adds a IS NULL condition like `t.deleted_at is null`
func (b *UpdateBuilder) WhereIsNull(column string) *UpdateBuilder {
	return b.Where(Col(column).IsNull())
}
