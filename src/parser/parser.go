package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/seuros/cypher-dsl/src/cypher"
)

var cypherLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `'(?:\\.|[^'\\])*'`},
	{Name: "Param", Pattern: `\$[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Float", Pattern: `\d+\.\d+(?:[eE][+-]?\d+)?`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Range", Pattern: `\.\.`},
	{Name: "Operators", Pattern: `>=|<=|<>|>|<|=`},
	{Name: "Punct", Pattern: `[(){}\[\],.:|&!*+/%-]`},
	{Name: "whitespace", Pattern: `\s+`},
})

// Parser turns statement text back into a builder chain. It accepts the
// same read-only subset the builder emits, so parse and render compose
// into a formatter.
type Parser struct {
	parser *participle.Parser[Statement]
}

func New() (*Parser, error) {
	p, err := participle.Build[Statement](
		participle.Lexer(cypherLexer),
		participle.CaseInsensitive("Ident"),
		participle.UseLookahead(8),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: p}, nil
}

// Parse reads one statement and rebuilds it as a clause chain. Builder
// validation applies on the way through, so text that parses but breaks
// clause ordering still fails.
func (p *Parser) Parse(input string) (*cypher.Query, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	stmt, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return convertStatement(stmt)
}

func validateInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("empty statement")
	}
	if strings.Contains(input, ";") {
		return fmt.Errorf("multiple statements not allowed")
	}
	return nil
}
