package cypher

import (
	"fmt"
	"strings"
)

// PathPattern is an ordered sequence of nodes and relationships (and
// quantified sub-paths), beginning and ending on a node. Composition keeps
// the alternation invariant: consecutive node boundaries are either merged
// or bridged with an implicit undirected relationship.
type PathPattern struct {
	elements []pathElement
	variable string
}

// EmptyPath is the neutral element of concatenation.
func EmptyPath() PathPattern { return PathPattern{} }

// Path composes pattern parts into a path. Boundary nodes that denote the
// same variable, or that are both bare anonymous placeholders, collapse
// into a single occurrence; two adjacent nodes otherwise get an implicit
// undirected relationship between them. A relationship at the start or end
// of the finished path, or two relationships back to back, is rejected.
func Path(parts ...PatternPart) (PathPattern, error) {
	p := PathPattern{}
	var err error
	for _, part := range parts {
		p, err = p.concatPart(part)
		if err != nil {
			return PathPattern{}, err
		}
	}
	if len(p.elements) > 0 {
		if _, ok := p.elements[0].(RelationshipPattern); ok {
			return PathPattern{}, fmt.Errorf("%w: path begins with a relationship", ErrMalformedPath)
		}
		if _, ok := p.elements[len(p.elements)-1].(RelationshipPattern); ok {
			return PathPattern{}, fmt.Errorf("%w: path ends with a relationship", ErrMalformedPath)
		}
	}
	return p, nil
}

// MustPath is Path for statically known-good compositions; it panics on a
// malformed part list.
func MustPath(parts ...PatternPart) PathPattern {
	p, err := Path(parts...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p PathPattern) concatPart(part PatternPart) (PathPattern, error) {
	switch v := part.(type) {
	case NodePattern:
		return p.concatElements([]pathElement{v}, "")
	case RelationshipPattern:
		return p.concatElements([]pathElement{v}, "")
	case QuantifiedPathPattern:
		return p.concatElements([]pathElement{v}, "")
	case PathPattern:
		return p.Concat(v)
	default:
		return PathPattern{}, fmt.Errorf("%w: unsupported pattern part %T", ErrInternal, part)
	}
}

// Concat joins two paths. The receiver is never modified; an empty side
// returns the other side unchanged, so concatenation with EmptyPath is the
// identity.
func (p PathPattern) Concat(other PathPattern) (PathPattern, error) {
	return p.concatElements(other.elements, other.variable)
}

func (p PathPattern) concatElements(elems []pathElement, otherVar string) (PathPattern, error) {
	if len(elems) == 0 {
		return p, nil
	}
	if len(p.elements) == 0 {
		out := PathPattern{elements: elems, variable: p.variable}
		if out.variable == "" {
			out.variable = otherVar
		}
		return out, nil
	}

	last := p.elements[len(p.elements)-1]
	first := elems[0]

	joined := make([]pathElement, 0, len(p.elements)+len(elems)+1)
	joined = append(joined, p.elements...)

	switch l := last.(type) {
	case NodePattern:
		switch f := first.(type) {
		case NodePattern:
			if sameNodeBoundary(l, f) {
				joined[len(joined)-1] = mergeNodes(l, f)
				joined = append(joined, elems[1:]...)
			} else {
				joined = append(joined, Rel(DirectionEither))
				joined = append(joined, elems...)
			}
		default:
			joined = append(joined, elems...)
		}
	case RelationshipPattern:
		if _, ok := first.(RelationshipPattern); ok {
			return PathPattern{}, fmt.Errorf("%w: relationship follows relationship", ErrMalformedPath)
		}
		joined = append(joined, elems...)
	default:
		// Quantified sub-path boundaries attach directly on both sides.
		joined = append(joined, elems...)
	}

	out := PathPattern{elements: joined, variable: p.variable}
	if out.variable == "" {
		out.variable = otherVar
	}
	return out, nil
}

// sameNodeBoundary reports whether two boundary nodes denote the same
// graph element: an identical non-empty variable name, or two bare
// anonymous placeholders.
func sameNodeBoundary(a, b NodePattern) bool {
	if a.variable != "" && a.variable == b.variable {
		return true
	}
	return a.variable == "" && b.variable == "" && a.bare() && b.bare()
}

// Named binds the whole path to a variable, rendered v = (...)....
func (p PathPattern) Named(variable string) PathPattern {
	p.variable = variable
	return p
}

// Where attaches an inline condition to the last element of the path.
func (p PathPattern) Where(cond Expression) (PathPattern, error) {
	if len(p.elements) == 0 {
		return PathPattern{}, fmt.Errorf("%w: WHERE on empty path", ErrEmptyClause)
	}
	elems := make([]pathElement, len(p.elements))
	copy(elems, p.elements)
	switch last := elems[len(elems)-1].(type) {
	case NodePattern:
		elems[len(elems)-1] = last.Where(cond)
	case RelationshipPattern:
		elems[len(elems)-1] = last.Where(cond)
	default:
		return PathPattern{}, fmt.Errorf("%w: WHERE on quantified sub-path", ErrMisplacedClause)
	}
	return PathPattern{elements: elems, variable: p.variable}, nil
}

// relationshipCount counts direct relationship elements.
func (p PathPattern) relationshipCount() int {
	n := 0
	for _, e := range p.elements {
		if _, ok := e.(RelationshipPattern); ok {
			n++
		}
	}
	return n
}

// containsQuantified reports whether any element is a quantified sub-path.
func (p PathPattern) containsQuantified() bool {
	for _, e := range p.elements {
		if _, ok := e.(QuantifiedPathPattern); ok {
			return true
		}
	}
	return false
}

func (p PathPattern) writePattern(b *strings.Builder) {
	if p.variable != "" {
		b.WriteString(p.variable)
		b.WriteString(" = ")
	}
	for _, e := range p.elements {
		e.writePattern(b)
	}
}

func (p PathPattern) patternPart() {}
