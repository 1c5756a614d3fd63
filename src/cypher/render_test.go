package cypher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderStatements(t *testing.T) {
	must := chain(t)

	tests := []struct {
		name  string
		query *Query
		want  string
	}{
		{
			"filtered match",
			func() *Query {
				q := must(Match(Node("p", "Person")))
				q = must(q.Where(Prop("p", "age").Gt(Lit(30))))
				q = must(q.Return(Item(Prop("p", "name"))))
				q = must(q.OrderBy(Asc(Prop("p", "age"))))
				return must(q.Limit(Lit(10)))
			}(),
			"MATCH (p:Person)\nWHERE p.age > 30\nRETURN p.name\nORDER BY p.age\nLIMIT 10",
		},
		{
			"multiple patterns in one match",
			func() *Query {
				q := must(Match(Node("a", "Person"), Node("b", "Person")))
				return must(q.Return(Item(Var("a")), Item(Var("b"))))
			}(),
			"MATCH (a:Person), (b:Person)\nRETURN a, b",
		},
		{
			"optional match",
			func() *Query {
				q := must(Match(Node("p", "Person")))
				q = must(q.OptionalMatch(MustPath(Node("p"), TypedRel(DirectionRight, "DIRECTED"), Node("m", "Movie"))))
				return must(q.Return(Item(Var("p")), Item(Prop("m", "title"))))
			}(),
			"MATCH (p:Person)\nOPTIONAL MATCH (p)-[:DIRECTED]->(m:Movie)\nRETURN p, m.title",
		},
		{
			"path in match",
			func() *Query {
				p := MustPath(Node("a", "Person"), TypedRel(DirectionRight, "KNOWS"), Node("b", "Person"))
				q := must(Match(p))
				return must(q.Return(Item(Var("a")), Item(Var("b"))))
			}(),
			"MATCH (a:Person)-[:KNOWS]->(b:Person)\nRETURN a, b",
		},
		{
			"named path",
			func() *Query {
				p := MustPath(Node("a"), TypedRel(DirectionRight, "KNOWS"), Node("b")).Named("route")
				q := must(Match(p))
				return must(q.Return(Item(Var("route"))))
			}(),
			"MATCH route = (a)-[:KNOWS]->(b)\nRETURN route",
		},
		{
			"quantified path in match",
			func() *Query {
				inner := MustPath(AnonNode(), TypedRel(DirectionRight, "NEXT"), AnonNode())
				qpp, err := inner.Quantify(1, 3)
				require.NoError(t, err)
				q := must(Match(qpp))
				return must(q.Return(Star()))
			}(),
			"MATCH (()-[:NEXT]->()){1,3}\nRETURN *",
		},
		{
			"with distinct projection",
			func() *Query {
				q := must(Match(Node("p", "Person")))
				q = must(q.WithDistinct(As(Prop("p", "city"), "city")))
				return must(q.Return(Item(Var("city"))))
			}(),
			"MATCH (p:Person)\nWITH DISTINCT p.city AS city\nRETURN city",
		},
		{
			"return distinct with aliases",
			func() *Query {
				q := must(Match(Node("p", "Person")))
				return must(q.ReturnDistinct(As(Prop("p", "name"), "name"), As(Prop("p", "age"), "age")))
			}(),
			"MATCH (p:Person)\nRETURN DISTINCT p.name AS name, p.age AS age",
		},
		{
			"unwind",
			func() *Query {
				q := must(Unwind(Param("ids"), "id"))
				q = must(q.Match(Node("n").Where(Prop("n", "id").Eq(Var("id")))))
				return must(q.Return(Item(Var("n"))))
			}(),
			"UNWIND $ids AS id\nMATCH (n WHERE n.id = id)\nRETURN n",
		},
		{
			"procedure call with yield",
			func() *Query {
				q := must(CallProcedure("db.labels"))
				q = must(q.Yield(Item(Var("label"))))
				q = must(q.Where(Var("label").StartsWith(Lit("P"))))
				return must(q.Return(Item(Var("label"))))
			}(),
			"CALL db.labels()\nYIELD label\nWHERE label STARTS WITH 'P'\nRETURN label",
		},
		{
			"procedure call with arguments",
			func() *Query {
				q := must(CallProcedure("db.index.fulltext.queryNodes", Lit("titles"), Param("term")))
				q = must(q.Yield(Item(Var("node")), Item(Var("score"))))
				return must(q.Return(Item(Var("node")), Item(Var("score"))))
			}(),
			"CALL db.index.fulltext.queryNodes('titles', $term)\nYIELD node, score\nRETURN node, score",
		},
		{
			"yield wildcard",
			func() *Query {
				q := must(CallProcedure("db.labels"))
				return must(q.YieldAll())
			}(),
			"CALL db.labels()\nYIELD *",
		},
		{
			"use prefix",
			func() *Query {
				q := must(Use("movies"))
				q = must(q.Match(Node("m", "Movie")))
				return must(q.Return(Item(Prop("m", "title"))))
			}(),
			"USE movies\nMATCH (m:Movie)\nRETURN m.title",
		},
		{
			"skip and limit",
			func() *Query {
				q := must(Match(Node("p", "Person")))
				q = must(q.Return(Item(Var("p"))))
				q = must(q.OrderBy(Desc(Prop("p", "age")), Asc(Prop("p", "name"))))
				q = must(q.Skip(Param("offset")))
				return must(q.Limit(Param("page_size")))
			}(),
			"MATCH (p:Person)\nRETURN p\nORDER BY p.age DESC, p.name\nSKIP $offset\nLIMIT $page_size",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render(tt.query)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestRenderSubquery(t *testing.T) {
	must := chain(t)

	body := must(Match(MustPath(Node("p"), TypedRel(DirectionRight, "ACTED_IN"), Node("m", "Movie"))))
	body = must(body.Return(As(Prop("m", "title"), "title")))

	t.Run("variable import scope", func(t *testing.T) {
		q := must(Match(Node("p", "Person")))
		q = must(q.CallSubquery(body, ImportVars("p")))
		q = must(q.Return(Item(Prop("p", "name")), Item(Var("title"))))

		out, err := Render(q)
		require.NoError(t, err)
		require.Equal(t,
			"MATCH (p:Person)\nCALL(p) {\n  MATCH (p)-[:ACTED_IN]->(m:Movie)\n  RETURN m.title AS title\n}\nRETURN p.name, title",
			out)
	})

	t.Run("import all", func(t *testing.T) {
		q := must(Match(Node("p", "Person")))
		q = must(q.CallSubquery(body, ImportAll()))
		q = must(q.Return(Item(Var("title"))))

		out, err := Render(q)
		require.NoError(t, err)
		require.Contains(t, out, "CALL(*) {")
	})

	t.Run("empty scope", func(t *testing.T) {
		sub := must(Match(Node("m", "Movie")))
		sub = must(sub.Return(As(Func("count", Var("m")), "total")))

		q := must(Match(Node("p", "Person")))
		q = must(q.CallSubquery(sub, ImportNone()))
		q = must(q.Return(Item(Var("total"))))

		out, err := Render(q)
		require.NoError(t, err)
		require.Contains(t, out, "CALL() {")
	})

	t.Run("optional call subquery", func(t *testing.T) {
		q := must(Match(Node("p", "Person")))
		q = must(q.OptionalCallSubquery(body, ImportVars("p")))
		q = must(q.Return(Item(Var("title"))))

		out, err := Render(q)
		require.NoError(t, err)
		require.Contains(t, out, "OPTIONAL CALL(p) {")
	})

	t.Run("nested bodies indent per level", func(t *testing.T) {
		innerBody := must(Match(Node("m", "Movie")))
		innerBody = must(innerBody.Return(As(Prop("m", "title"), "title")))

		mid := must(CallSubquery(innerBody, ImportNone()))
		mid = must(mid.Return(Item(Var("title"))))

		q := must(Match(Node("p", "Person")))
		q = must(q.CallSubquery(mid, ImportNone()))
		q = must(q.Return(Item(Var("title"))))

		out, err := Render(q)
		require.NoError(t, err)
		require.Equal(t,
			"MATCH (p:Person)\nCALL() {\n  CALL() {\n    MATCH (m:Movie)\n    RETURN m.title AS title\n  }\n  RETURN title\n}\nRETURN title",
			out)
	})

	t.Run("custom indent", func(t *testing.T) {
		q := must(Match(Node("p", "Person")))
		q = must(q.CallSubquery(body, ImportVars("p")))
		q = must(q.Return(Item(Var("title"))))

		out, err := RenderWithOptions(q, RenderOptions{Indent: "\t"})
		require.NoError(t, err)
		require.Contains(t, out, "\n\tMATCH (p)-[:ACTED_IN]->(m:Movie)\n")
	})
}

func TestRenderBareCall(t *testing.T) {
	must := chain(t)

	t.Run("sole zero-argument call", func(t *testing.T) {
		q := must(CallProcedure("db.labels"))

		out, err := Render(q)
		require.NoError(t, err)
		require.Equal(t, "CALL db.labels()", out)

		out, err = RenderWithOptions(q, RenderOptions{BareCall: true})
		require.NoError(t, err)
		require.Equal(t, "CALL db.labels", out)
	})

	t.Run("arguments keep the parentheses", func(t *testing.T) {
		q := must(CallProcedure("db.resampleIndex", Lit("idx")))
		out, err := RenderWithOptions(q, RenderOptions{BareCall: true})
		require.NoError(t, err)
		require.Equal(t, "CALL db.resampleIndex('idx')", out)
	})

	t.Run("longer chains keep the parentheses", func(t *testing.T) {
		q := must(CallProcedure("db.labels"))
		q = must(q.Yield(Item(Var("label"))))
		out, err := RenderWithOptions(q, RenderOptions{BareCall: true})
		require.NoError(t, err)
		require.Equal(t, "CALL db.labels()\nYIELD label", out)
	})
}

func TestRenderDeterminism(t *testing.T) {
	must := chain(t)

	q := must(Match(Node("p", "Person").WithProp("city", "Berlin").WithProp("age", 30)))
	q = must(q.Where(Or(Prop("p", "age").Gt(Lit(65)), Prop("p", "age").Lt(Lit(18)))))
	q = must(q.Return(Item(Var("p"))))

	first, err := Render(q)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := Render(q)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
	require.Equal(t,
		"MATCH (p:Person {age: 30, city: 'Berlin'})\nWHERE p.age > 65 OR p.age < 18\nRETURN p",
		first)
}

func TestRenderEmptyQuery(t *testing.T) {
	_, err := Render(nil)
	require.ErrorIs(t, err, ErrEmptyClause)
}

func TestCypherShorthand(t *testing.T) {
	must := chain(t)
	q := must(Match(Node("n")))
	q = must(q.Return(Item(Var("n"))))

	out, err := q.Cypher()
	require.NoError(t, err)
	require.Equal(t, "MATCH (n)\nRETURN n", out)
}
