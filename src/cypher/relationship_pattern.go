package cypher

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction of a relationship pattern.
type Direction int

const (
	// DirectionEither matches in both directions, rendered -[]-.
	DirectionEither Direction = iota
	// DirectionRight matches left to right, rendered -[]->.
	DirectionRight
	// DirectionLeft matches right to left, rendered <-[]-.
	DirectionLeft
)

// Unbounded marks an omitted quantifier bound.
const Unbounded = -1

// hopRange is the shorthand variable-length quantifier on a relationship,
// rendered *min..max inside the brackets.
type hopRange struct {
	min int // Unbounded when omitted
	max int // Unbounded when omitted
}

// RelationshipPattern describes one relationship in a graph pattern: a
// direction, an optional variable, at most one relationship type, optional
// inline properties, an optional shorthand quantifier and an optional
// inline WHERE condition.
type RelationshipPattern struct {
	direction Direction
	variable  string
	relType   string
	props     propMap
	cond      Expression
	hops      *hopRange
}

// Rel creates a bare relationship pattern with the given direction.
func Rel(direction Direction) RelationshipPattern {
	return RelationshipPattern{direction: direction}
}

// TypedRel creates a relationship pattern with a direction and a single
// relationship type.
func TypedRel(direction Direction, relType string) RelationshipPattern {
	return RelationshipPattern{direction: direction, relType: relType}
}

// Named returns a copy bound to a variable.
func (r RelationshipPattern) Named(variable string) RelationshipPattern {
	r.variable = variable
	return r
}

// OfType returns a copy carrying the relationship type. A relationship
// holds at most one type; attaching a second fails.
func (r RelationshipPattern) OfType(relType string) (RelationshipPattern, error) {
	if r.relType != "" {
		return RelationshipPattern{}, fmt.Errorf("%w: has %q, cannot add %q",
			ErrMultipleRelTypes, r.relType, relType)
	}
	r.relType = relType
	return r, nil
}

// WithProp returns a copy with an inline property constraint added.
func (r RelationshipPattern) WithProp(key string, value any) RelationshipPattern {
	r.props = r.props.with(key, value)
	return r
}

// Where returns a copy with an inline WHERE condition.
func (r RelationshipPattern) Where(cond Expression) RelationshipPattern {
	r.cond = cond
	return r
}

// Hops returns a copy with a variable-length quantifier. Pass Unbounded to
// omit a bound: Hops(1, 3) renders *1..3, Hops(2, Unbounded) renders *2..,
// Hops(Unbounded, 5) renders *..5 and Hops(Unbounded, Unbounded) renders *.
func (r RelationshipPattern) Hops(min, max int) (RelationshipPattern, error) {
	if min < Unbounded || max < Unbounded {
		return RelationshipPattern{}, fmt.Errorf("%w: negative bound in [%d, %d]",
			ErrInvalidQuantifier, min, max)
	}
	if min != Unbounded && max != Unbounded && min > max {
		return RelationshipPattern{}, fmt.Errorf("%w: min %d exceeds max %d",
			ErrInvalidQuantifier, min, max)
	}
	r.hops = &hopRange{min: min, max: max}
	return r, nil
}

// Var references the relationship's variable in expressions.
func (r RelationshipPattern) Var() Variable { return Var(r.variable) }

// Prop references a property of the relationship's variable.
func (r RelationshipPattern) Prop(name string) Property { return Prop(r.variable, name) }

func (r RelationshipPattern) bare() bool {
	return r.variable == "" && r.relType == "" && len(r.props) == 0 &&
		r.cond == nil && r.hops == nil
}

func (r RelationshipPattern) writePattern(b *strings.Builder) {
	if r.bare() {
		switch r.direction {
		case DirectionLeft:
			b.WriteString("<--")
		case DirectionRight:
			b.WriteString("-->")
		default:
			b.WriteString("--")
		}
		return
	}

	var content strings.Builder
	content.WriteString(r.variable)
	if r.relType != "" {
		content.WriteByte(':')
		content.WriteString(r.relType)
	}
	if r.hops != nil {
		content.WriteByte('*')
		if r.hops.min != Unbounded || r.hops.max != Unbounded {
			if r.hops.min != Unbounded {
				content.WriteString(strconv.Itoa(r.hops.min))
			}
			content.WriteString("..")
			if r.hops.max != Unbounded {
				content.WriteString(strconv.Itoa(r.hops.max))
			}
		}
	}
	if len(r.props) > 0 {
		if content.Len() > 0 {
			content.WriteByte(' ')
		}
		r.props.writeTo(&content)
	}
	if r.cond != nil {
		if content.Len() > 0 {
			content.WriteByte(' ')
		}
		content.WriteString("WHERE ")
		r.cond.writeExpr(&content)
	}

	switch r.direction {
	case DirectionLeft:
		b.WriteString("<-[")
		b.WriteString(content.String())
		b.WriteString("]-")
	case DirectionRight:
		b.WriteString("-[")
		b.WriteString(content.String())
		b.WriteString("]->")
	default:
		b.WriteString("-[")
		b.WriteString(content.String())
		b.WriteString("]-")
	}
}

func (r RelationshipPattern) patternPart() {}
