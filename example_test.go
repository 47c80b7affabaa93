package woql_test

import (
	"fmt"
	"os"

	"github.com/rlch/woql"
	"github.com/rlch/woql/db"
	"github.com/rlch/woql/query"
)

func ExampleBuilder() {
	q := woql.New().
		Triple("v:Person", "@schema:name", "v:Name").
		Limit(1).
		MustFinalize()
	if err := woql.Render(os.Stdout, q, woql.FormatJSON); err != nil {
		panic(err)
	}
	// Output:
	// {
	//   "@type": "Limit",
	//   "limit": 1,
	//   "query": {
	//     "@type": "Triple",
	//     "subject": {
	//       "@type": "Variable",
	//       "name": "Person"
	//     },
	//     "predicate": {
	//       "@type": "Node",
	//       "node": "@schema:name"
	//     },
	//     "object": {
	//       "@type": "Variable",
	//       "name": "Name"
	//     },
	//     "graph": "instance"
	//   }
	// }
}

func ExampleBuilder_Or() {
	people := woql.New().IsA("v:X", "@schema:Person")
	robots := woql.New().IsA("v:X", "@schema:Robot")
	q := people.Or(robots).Select("v:X").MustFinalize()

	sel := q.(query.Select)
	fmt.Println(sel.Variables, len(sel.Query.(query.Or).Or))
	// Output:
	// [X] 2
}

func ExampleBuilder_Finalize() {
	_, err := woql.New().Triple(42, "@schema:age", "v:Age").Finalize()
	fmt.Println(err)
	// Output:
	// woql: Triple.subject: expected NodeValue, got Data: invalid conversion: Data cannot be used as NodeValue
}

func ExampleParse() {
	q, err := woql.Parse(`
		select([$Name], and(
			triple($Person, "@schema:name", $Name),
			triple($Person, "@schema:age", $Age),
			greater($Age, 30)
		))`)
	if err != nil {
		panic(err)
	}
	fmt.Println(query.Variables(q))
	// Output:
	// [Name Person Age]
}

func ExampleParse_trailingInput() {
	_, err := woql.Parse(`true() false`)
	fmt.Println(err)
	// Output:
	// woql: unexpected input at offset 7: "false"
}

func ExamplePath() {
	pattern := db.Seq(db.Pred("knows"), db.PathPlus(db.Inv("likes")))
	q := woql.Path("v:A", pattern, "v:B", "v:Edges").MustFinalize()
	fmt.Println(query.Variables(q))
	// Output:
	// [A B Edges]
}
