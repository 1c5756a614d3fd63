package parser

import (
	"errors"
	"testing"

	"github.com/seuros/cypher-dsl/src/cypher"
)

func TestParserValidation(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}

	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{
			name:  "simple match",
			input: "MATCH (n) RETURN n",
			valid: true,
		},
		{
			name:  "bare void call",
			input: "CALL db.awaitIndexes()",
			valid: true,
		},
		{
			name:  "empty statement",
			input: "   ",
			valid: false,
		},
		{
			name:  "multiple statements",
			input: "MATCH (n) RETURN n; MATCH (m) RETURN m",
			valid: false,
		},
		{
			name:  "write clause",
			input: "CREATE (n:User) RETURN n",
			valid: false,
		},
		{
			name:  "unterminated node",
			input: "MATCH (n RETURN n",
			valid: false,
		},
		{
			name:  "double-ended relationship",
			input: "MATCH (a)<-[:KNOWS]->(b) RETURN a",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.input)
			if tt.valid && err != nil {
				t.Errorf("expected valid query to parse, got error: %v", err)
			}
			if !tt.valid && err == nil {
				t.Errorf("expected invalid query to fail parsing")
			}
		})
	}
}

// Text that tokenizes fine but breaks clause ordering is rejected by the
// builder during conversion, not silently accepted.
func TestParserRejectsClauseOrderViolations(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "where without source",
			input:   "WHERE n.age > 30 RETURN n",
			wantErr: cypher.ErrMisplacedClause,
		},
		{
			name:    "match after return",
			input:   "MATCH (n) RETURN n MATCH (m) RETURN m",
			wantErr: cypher.ErrAfterTerminal,
		},
		{
			name:    "limit without return",
			input:   "MATCH (n) LIMIT 10",
			wantErr: cypher.ErrMisplacedClause,
		},
		{
			name:    "yield without call",
			input:   "MATCH (n) YIELD x RETURN x",
			wantErr: cypher.ErrMisplacedClause,
		},
		{
			name:    "chaining after wildcard yield",
			input:   "CALL db.labels() YIELD * RETURN 1",
			wantErr: cypher.ErrAfterWildcardYield,
		},
		{
			name:    "union shape mismatch",
			input:   "MATCH (a) RETURN a.name AS name UNION MATCH (b) RETURN b.title AS title",
			wantErr: cypher.ErrUnionShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.input)
			if err == nil {
				t.Fatalf("expected parse to fail")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("wrong error: got %v, want %v", err, tt.wantErr)
			}
		})
	}
}
