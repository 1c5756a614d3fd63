package cypher

import "strings"

// PatternPart is anything that can participate in a MATCH pattern or a path
// composition: node patterns, relationship patterns, paths and quantified
// paths. The interface is sealed.
type PatternPart interface {
	patternPart()
}

// pathElement is the sealed set of elements a path is made of.
type pathElement interface {
	writePattern(b *strings.Builder)
}

// NodePattern describes one node in a graph pattern: an optional variable,
// an optional label expression, optional inline properties and an optional
// inline WHERE condition. Reusing a variable name across a query denotes
// the same graph element.
type NodePattern struct {
	variable string
	labels   LabelExpr
	props    propMap
	cond     Expression
}

// Node creates a node pattern. Plain label names are combined with AND;
// use WithLabelExpr for | and ! combinations. An empty variable renders an
// anonymous node.
func Node(variable string, labels ...string) NodePattern {
	n := NodePattern{variable: variable}
	for _, label := range labels {
		if n.labels.isZero() {
			n.labels = L(label)
		} else {
			n.labels = n.labels.And(L(label))
		}
	}
	return n
}

// AnonNode creates an anonymous node pattern.
func AnonNode(labels ...string) NodePattern { return Node("", labels...) }

// WithLabelExpr returns a copy carrying the label expression.
func (n NodePattern) WithLabelExpr(e LabelExpr) NodePattern {
	n.labels = e
	return n
}

// WithProp returns a copy with an inline property constraint added.
func (n NodePattern) WithProp(key string, value any) NodePattern {
	n.props = n.props.with(key, value)
	return n
}

// Where returns a copy with an inline WHERE condition.
func (n NodePattern) Where(cond Expression) NodePattern {
	n.cond = cond
	return n
}

// Var references the node's variable in expressions.
func (n NodePattern) Var() Variable { return Var(n.variable) }

// Prop references a property of the node's variable.
func (n NodePattern) Prop(name string) Property { return Prop(n.variable, name) }

// RelatesTo chains this node through a relationship to a target node,
// producing a three-element path.
func (n NodePattern) RelatesTo(rel RelationshipPattern, target NodePattern) PathPattern {
	return PathPattern{elements: []pathElement{n, rel, target}}
}

// bare reports whether the node carries nothing but its (possibly empty)
// variable. Two bare anonymous nodes are equivalent placeholders and merge
// during concatenation.
func (n NodePattern) bare() bool {
	return n.labels.isZero() && len(n.props) == 0 && n.cond == nil
}

func (n NodePattern) writePattern(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(n.variable)
	if !n.labels.isZero() {
		b.WriteByte(':')
		n.labels.writeLabel(b)
	}
	if len(n.props) > 0 {
		if n.variable != "" || !n.labels.isZero() {
			b.WriteByte(' ')
		}
		n.props.writeTo(b)
	}
	if n.cond != nil {
		if n.variable != "" || !n.labels.isZero() || len(n.props) > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("WHERE ")
		n.cond.writeExpr(b)
	}
	b.WriteByte(')')
}

func (n NodePattern) patternPart() {}

// mergeNodes collapses the boundary nodes of a concatenation into a single
// occurrence. Field-wise the left side wins; empty slots fall back to the
// right side so no labels, properties or conditions are silently dropped
// when only one side carries them.
func mergeNodes(a, b NodePattern) NodePattern {
	merged := a
	if merged.variable == "" {
		merged.variable = b.variable
	}
	if merged.labels.isZero() {
		merged.labels = b.labels
	}
	if len(merged.props) == 0 {
		merged.props = b.props
	}
	if merged.cond == nil {
		merged.cond = b.cond
	}
	return merged
}
