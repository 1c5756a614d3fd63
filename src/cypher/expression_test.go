package cypher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiteralRendering(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"int64", int64(900719925474), "900719925474"},
		{"float", 3.14, "3.14"},
		{"whole float keeps fraction", 10.0, "10.0"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"null", nil, "null"},
		{"string", "Alice", "'Alice'"},
		{"string with quote", "It's", `'It\'s'`},
		{"string with backslash", `a\b`, `'a\\b'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, renderExpression(Lit(tt.value)))
		})
	}
}

func TestAtomRendering(t *testing.T) {
	require.Equal(t, "p.age", renderExpression(Prop("p", "age")))
	require.Equal(t, "friendCount", renderExpression(Var("friendCount")))
	require.Equal(t, "$min_age", renderExpression(Param("min_age")))
}

func TestComparisonRendering(t *testing.T) {
	tests := []struct {
		name string
		expr Expression
		want string
	}{
		{"eq", Prop("p", "age").Eq(Lit(30)), "p.age = 30"},
		{"ne", Prop("p", "age").Ne(Lit(30)), "p.age <> 30"},
		{"gt", Prop("p", "age").Gt(Param("min")), "p.age > $min"},
		{"lt", Prop("p", "age").Lt(Lit(18)), "p.age < 18"},
		{"gte", Prop("p", "age").Gte(Lit(21)), "p.age >= 21"},
		{"lte", Prop("p", "age").Lte(Lit(65)), "p.age <= 65"},
		{"contains", Prop("p", "name").Contains(Lit("li")), "p.name CONTAINS 'li'"},
		{"starts with", Prop("p", "name").StartsWith(Lit("A")), "p.name STARTS WITH 'A'"},
		{"ends with", Prop("p", "name").EndsWith(Lit("e")), "p.name ENDS WITH 'e'"},
		{"in", Prop("p", "age").In(Param("ages")), "p.age IN $ages"},
		{"is null", Prop("p", "deletedAt").IsNull(), "p.deletedAt IS NULL"},
		{"is not null", Prop("p", "name").IsNotNull(), "p.name IS NOT NULL"},
		{"variable comparison", Var("cnt").Gte(Lit(2)), "cnt >= 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, renderExpression(tt.expr))
		})
	}
}

func TestBooleanPrecedence(t *testing.T) {
	a := Prop("p", "a").Eq(Lit(1))
	b := Prop("p", "b").Eq(Lit(2))
	c := Prop("p", "c").Eq(Lit(3))

	tests := []struct {
		name string
		expr Expression
		want string
	}{
		{"and", And(a, b), "p.a = 1 AND p.b = 2"},
		{"or", Or(a, b), "p.a = 1 OR p.b = 2"},
		{"chained and needs no parens", And(And(a, b), c), "p.a = 1 AND p.b = 2 AND p.c = 3"},
		{"or under and", And(Or(a, b), c), "(p.a = 1 OR p.b = 2) AND p.c = 3"},
		{"and under or", Or(And(a, b), c), "p.a = 1 AND p.b = 2 OR p.c = 3"},
		{"not atom", Not(a), "NOT p.a = 1"},
		{"not parenthesizes and", Not(And(a, b)), "NOT (p.a = 1 AND p.b = 2)"},
		{"not under and", And(Not(a), b), "NOT p.a = 1 AND p.b = 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, renderExpression(tt.expr))
		})
	}
}

func TestArithmeticPrecedence(t *testing.T) {
	a := Prop("n", "a")
	b := Prop("n", "b")
	c := Prop("n", "c")

	tests := []struct {
		name string
		expr Expression
		want string
	}{
		{"plus", Plus(a, b), "n.a + n.b"},
		{"times binds tighter", Plus(a, Times(b, c)), "n.a + n.b * n.c"},
		{"plus under times", Times(Plus(a, b), c), "(n.a + n.b) * n.c"},
		{"left assoc minus", Minus(Minus(a, b), c), "n.a - n.b - n.c"},
		{"right nested minus", Minus(a, Minus(b, c)), "n.a - (n.b - n.c)"},
		{"right nested div", Div(a, Div(b, c)), "n.a / (n.b / n.c)"},
		{"mod", Mod(a, Lit(2)), "n.a % 2"},
		{"unary minus", Neg(a), "-n.a"},
		{"unary minus on sum", Neg(Plus(a, b)), "-(n.a + n.b)"},
		{"arithmetic in comparison", Gt(Plus(a, b), Lit(10)), "n.a + n.b > 10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, renderExpression(tt.expr))
		})
	}
}

func TestFunctionCallRendering(t *testing.T) {
	tests := []struct {
		name string
		expr Expression
		want string
	}{
		{"no args count", Func("count"), "count(*)"},
		{"single arg", Func("collect", Var("f")), "collect(f)"},
		{"multiple args", Func("coalesce", Prop("p", "nick"), Prop("p", "name")), "coalesce(p.nick, p.name)"},
		{"distinct", FuncDistinct("count", Var("p")), "count(DISTINCT p)"},
		{"nested", Func("size", Func("collect", Var("f"))), "size(collect(f))"},
		{"garbage name renders verbatim", Func("not an ident", Lit(1)), "not an ident(1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, renderExpression(tt.expr))
		})
	}
}

func TestComparisonOfFunctionCall(t *testing.T) {
	expr := Gt(Func("count", Var("f")), Param("min"))
	require.Equal(t, "count(f) > $min", renderExpression(expr))
}
