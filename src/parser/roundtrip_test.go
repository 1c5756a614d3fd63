package parser

import (
	"testing"

	"github.com/seuros/cypher-dsl/src/cypher"
)

// Round trips start from canonical renderer output, so parse followed by
// render must reproduce the input byte for byte.
func TestRoundtrip(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "simple match return",
			input: "MATCH (n:User)\nRETURN n.name",
		},
		{
			name:  "match with where",
			input: "MATCH (n:User)\nWHERE n.age > 30\nRETURN n.name",
		},
		{
			name:  "relationship pattern",
			input: "MATCH (a:Person)-[:KNOWS]->(b:Person)\nRETURN a, b",
		},
		{
			name:  "named path with hops",
			input: "MATCH route = (a)-[r:KNOWS*1..3]->(b)\nRETURN route",
		},
		{
			name:  "undirected bare relationship",
			input: "MATCH (a)--(b)\nRETURN a",
		},
		{
			name:  "label expression",
			input: "MATCH (n:Film|Series)\nRETURN n",
		},
		{
			name:  "negated label group",
			input: "MATCH (n:!(A|B))\nRETURN n",
		},
		{
			name:  "inline properties",
			input: "MATCH (p:Person {age: 30, name: 'Alice'})\nRETURN p",
		},
		{
			name:  "inline pattern predicate",
			input: "MATCH (p:Person WHERE p.age > 30)\nRETURN p",
		},
		{
			name:  "optional match",
			input: "MATCH (p:Person)\nOPTIONAL MATCH (p)-[:DIRECTED]->(m:Movie)\nRETURN p, m.title",
		},
		{
			name:  "with projection",
			input: "MATCH (p:Person)\nWITH p.city AS city, count(p) AS residents\nWHERE residents > 100\nRETURN city",
		},
		{
			name:  "with distinct",
			input: "MATCH (p:Person)\nWITH DISTINCT p.city AS city\nRETURN city",
		},
		{
			name:  "unwind",
			input: "UNWIND $ids AS id\nMATCH (n WHERE n.id = id)\nRETURN n",
		},
		{
			name:  "procedure call with yield",
			input: "CALL db.labels()\nYIELD label\nWHERE label STARTS WITH 'P'\nRETURN label",
		},
		{
			name:  "procedure call with arguments",
			input: "CALL db.index.fulltext.queryNodes('titles', $term)\nYIELD node, score\nRETURN node, score",
		},
		{
			name:  "yield wildcard",
			input: "CALL db.labels()\nYIELD *",
		},
		{
			name:  "use prefix",
			input: "USE movies\nMATCH (m:Movie)\nRETURN m.title",
		},
		{
			name:  "full suffix",
			input: "MATCH (p:Person)\nRETURN p.name\nORDER BY p.age DESC, p.name\nSKIP 5\nLIMIT 10",
		},
		{
			name:  "union",
			input: "MATCH (a:Actor)\nRETURN a.name AS name\nUNION\nMATCH (d:Director)\nRETURN d.name AS name",
		},
		{
			name:  "union all",
			input: "MATCH (a:Actor)\nRETURN a.name AS name\nUNION ALL\nMATCH (d:Director)\nRETURN d.name AS name",
		},
		{
			name:  "boolean precedence",
			input: "MATCH (p:Person)\nWHERE (p.age > 65 OR p.age < 18) AND p.active = true\nRETURN p",
		},
		{
			name:  "arithmetic",
			input: "MATCH (n)\nRETURN n.price * n.quantity AS total",
		},
		{
			name:  "null checks",
			input: "MATCH (p:Person)\nWHERE p.deletedAt IS NULL AND p.name IS NOT NULL\nRETURN p",
		},
		{
			name:  "distinct aggregate",
			input: "MATCH (p:Person)\nRETURN count(DISTINCT p.city) AS cities",
		},
		{
			name:  "float literal",
			input: "MATCH (m:Movie)\nWHERE m.rating >= 7.5\nRETURN m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := p.Parse(tt.input)
			if err != nil {
				t.Fatalf("failed to parse input: %v", err)
			}
			out, err := cypher.Render(q)
			if err != nil {
				t.Fatalf("failed to render parsed query: %v", err)
			}
			if out != tt.input {
				t.Errorf("roundtrip mismatch\n  input:  %q\n  output: %q", tt.input, out)
			}
		})
	}
}

// Single-line input normalizes to the one-clause-per-line canonical form.
func TestRoundtripNormalizes(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single line",
			input: "MATCH (n:User) WHERE n.age > 30 RETURN n.name",
			want:  "MATCH (n:User)\nWHERE n.age > 30\nRETURN n.name",
		},
		{
			name:  "suffix call order",
			input: "MATCH (n:User) RETURN n.name LIMIT 10 SKIP 5",
			want:  "MATCH (n:User)\nRETURN n.name\nSKIP 5\nLIMIT 10",
		},
		{
			name:  "lowercase keywords",
			input: "match (n:User) where n.age > 30 return n.name",
			want:  "MATCH (n:User)\nWHERE n.age > 30\nRETURN n.name",
		},
		{
			name:  "adjacent nodes get an implicit relationship",
			input: "MATCH (a)(b) RETURN a",
			want:  "MATCH (a)--(b)\nRETURN a",
		},
		{
			name:  "exact hop count",
			input: "MATCH (a)-[:KNOWS*3]->(b) RETURN a",
			want:  "MATCH (a)-[:KNOWS*3..3]->(b)\nRETURN a",
		},
		{
			name:  "property keys sort",
			input: "MATCH (p {name: 'Alice', age: 30}) RETURN p",
			want:  "MATCH (p {age: 30, name: 'Alice'})\nRETURN p",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := p.Parse(tt.input)
			if err != nil {
				t.Fatalf("failed to parse input: %v", err)
			}
			out, err := cypher.Render(q)
			if err != nil {
				t.Fatalf("failed to render parsed query: %v", err)
			}
			if out != tt.want {
				t.Errorf("normalization mismatch\n  input: %q\n  want:  %q\n  got:   %q", tt.input, tt.want, out)
			}
		})
	}
}
