package cypher

import (
	"fmt"
	"strconv"
	"strings"
)

// QuantifiedPathPattern repeats a sub-path between min and max times,
// rendered (inner){min,max} or with the * / + shorthand. Variables bound
// inside the quantified scope become group variables: list-valued outside,
// one entry per repetition. That semantics is documented, not simulated.
type QuantifiedPathPattern struct {
	path     PathPattern
	min      int // Unbounded when omitted
	max      int // Unbounded when omitted
	symbol   string
	variable string
}

// Quantify wraps the path in a repetition count. The inner path must
// contain at least one relationship and must not already contain a
// quantified sub-path; either fails at construction. Pass Unbounded to
// omit a bound: an omitted min defaults to zero repetitions, an omitted
// max is unbounded.
func (p PathPattern) Quantify(min, max int) (QuantifiedPathPattern, error) {
	if min < Unbounded || max < Unbounded {
		return QuantifiedPathPattern{}, fmt.Errorf("%w: negative bound in {%d,%d}",
			ErrInvalidQuantifier, min, max)
	}
	if min != Unbounded && max != Unbounded && min > max {
		return QuantifiedPathPattern{}, fmt.Errorf("%w: min %d exceeds max %d",
			ErrInvalidQuantifier, min, max)
	}
	if p.relationshipCount() == 0 {
		return QuantifiedPathPattern{}, ErrEmptyQuantifiedPath
	}
	if p.containsQuantified() {
		return QuantifiedPathPattern{}, ErrNestedQuantifier
	}
	return QuantifiedPathPattern{path: p, min: min, max: max}, nil
}

// ZeroOrMore quantifies the path with the * shorthand.
func (p PathPattern) ZeroOrMore() (QuantifiedPathPattern, error) {
	q, err := p.Quantify(0, Unbounded)
	if err != nil {
		return QuantifiedPathPattern{}, err
	}
	q.symbol = "*"
	return q, nil
}

// OneOrMore quantifies the path with the + shorthand.
func (p PathPattern) OneOrMore() (QuantifiedPathPattern, error) {
	q, err := p.Quantify(1, Unbounded)
	if err != nil {
		return QuantifiedPathPattern{}, err
	}
	q.symbol = "+"
	return q, nil
}

// Named binds the quantified path to a variable.
func (q QuantifiedPathPattern) Named(variable string) QuantifiedPathPattern {
	q.variable = variable
	return q
}

func (q QuantifiedPathPattern) quantifier() string {
	if q.symbol != "" {
		return q.symbol
	}
	var b strings.Builder
	b.WriteByte('{')
	if q.min != Unbounded {
		b.WriteString(strconv.Itoa(q.min))
	}
	b.WriteByte(',')
	if q.max != Unbounded {
		b.WriteString(strconv.Itoa(q.max))
	}
	b.WriteByte('}')
	return b.String()
}

func (q QuantifiedPathPattern) writePattern(b *strings.Builder) {
	if q.variable != "" {
		b.WriteString(q.variable)
		b.WriteString(" = ")
	}
	// A lone relationship keeps the shorthand position, no parentheses.
	if len(q.path.elements) == 1 {
		if rel, ok := q.path.elements[0].(RelationshipPattern); ok {
			rel.writePattern(b)
			b.WriteString(q.quantifier())
			return
		}
	}
	b.WriteByte('(')
	q.path.writePattern(b)
	b.WriteByte(')')
	b.WriteString(q.quantifier())
}

func (q QuantifiedPathPattern) patternPart() {}
