package sqltext_test

import (
	"fmt"

	"github.com/qjebbs/go-sqltext"
)

func ExampleCol() {
	fmt.Println(sqltext.Col("age").Ge(18))
	fmt.Println(sqltext.Col("id").In(1, 2, 3))
	fmt.Println(sqltext.Col("id").In(1))
	fmt.Println(sqltext.Col("name").NotIn([]string{"a", "b"}))
	fmt.Println(sqltext.Col("deleted_at").IsNull())
	fmt.Println(sqltext.Col("count(*)").As("total"))
	// Output:
	// age >= 18
	// id in (1, 2, 3)
	// id = 1
	// name not in ('a', 'b')
	// deleted_at is null
	// count(*) as total
}

func ExampleColumn_And() {
	a := sqltext.Col("a").Eq(1)
	b := sqltext.Col("b").Ne("x")
	c := sqltext.Col("c").IsNotNull()
	fmt.Println(a.And(b).Or(c))
	// operands are left untouched
	fmt.Println(a)
	fmt.Println(a.AndRaw("d > 2"))
	// Output:
	// ((a = 1) and (b != 'x')) or (c is not null)
	// a = 1
	// a = 1 and d > 2
}

func ExampleValue() {
	fmt.Println(sqltext.Value(30))
	fmt.Println(sqltext.Value(2.5))
	fmt.Println(sqltext.Value("Alice"))
	fmt.Println(sqltext.Value("It's"))
	fmt.Println(sqltext.Value(sqltext.Raw("CURRENT_TIMESTAMP")))
	fmt.Println(sqltext.Value(sqltext.Null))
	fmt.Println(sqltext.Value("null"))
	// Output:
	// 30
	// 2.5
	// 'Alice'
	// 'It''s'
	// CURRENT_TIMESTAMP
	// null
	// 'null'
}
