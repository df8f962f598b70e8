package sqltext

// A SelectBuilder keeps a single join. Each join method replaces the
// join type and table set by any previous call; the ON conditions are
// appended with On().

// Join set a `join` table.
func (b *SelectBuilder) Join(table string) *SelectBuilder {
	return b.setJoin("join", table)
}

// LeftJoin set a `left join` table.
func (b *SelectBuilder) LeftJoin(table string) *SelectBuilder {
	return b.setJoin("left join", table)
}

// LeftOuterJoin set a `left outer join` table.
func (b *SelectBuilder) LeftOuterJoin(table string) *SelectBuilder {
	return b.setJoin("left outer join", table)
}

// RightJoin set a `right join` table.
func (b *SelectBuilder) RightJoin(table string) *SelectBuilder {
	return b.setJoin("right join", table)
}

// RightOuterJoin set a `right outer join` table.
func (b *SelectBuilder) RightOuterJoin(table string) *SelectBuilder {
	return b.setJoin("right outer join", table)
}

// FullJoin set a `full join` table.
func (b *SelectBuilder) FullJoin(table string) *SelectBuilder {
	return b.setJoin("full join", table)
}

// FullOuterJoin set a `full outer join` table.
func (b *SelectBuilder) FullOuterJoin(table string) *SelectBuilder {
	return b.setJoin("full outer join", table)
}

func (b *SelectBuilder) setJoin(typ, table string) *SelectBuilder {
	b.joinType = typ
	b.joinTable = table
	return b
}

// On add a join condition. Conditions are joined with AND.
// See Where for the accepted condition kinds.
func (b *SelectBuilder) On(cond any) *SelectBuilder {
	appendCondition(b.on, &b.errors, cond)
	return b
}
