package db_test

import (
	"fmt"

	"github.com/rlch/woql"
	"github.com/rlch/woql/db"
	"github.com/rlch/woql/query"
)

func ExampleSeq() {
	pattern := db.Seq(db.Pred("@schema:friend"), db.PathStar(db.Inv("@schema:parent")))
	fmt.Printf("%#v\n", pattern.(query.PathSequence).Sequence[0])
	// Output:
	// query.PathPredicate{Predicate:"@schema:friend"}
}

func ExampleTypeName() {
	q := woql.New().IsA("v:Post", db.TypeName("blog_post")).MustFinalize()
	fmt.Println(q.(query.IsA).Type)
	// Output:
	// @schema:BlogPost
}

func ExampleNotEquals() {
	q := db.NotEquals("v:Name", db.String("Bob")).MustFinalize()
	fmt.Printf("%T(%T)\n", q, q.(query.Not).Query)
	// Output:
	// query.Not(query.Equals)
}

func ExampleDict() {
	q := woql.New().
		Triple("v:Person", "@schema:name", "v:Name").
		Triple("v:Person", "@schema:age", "v:Age").
		GroupBy(
			db.Dict(db.Field("name", db.Var("Name")), db.Field("age", db.Var("Age"))),
			[]string{"v:Age"},
			"v:People",
		).
		OrderBy(db.Desc("Age")).
		MustFinalize()
	fmt.Println(query.Variables(q))
	// Output:
	// [Age Name People Person]
}
