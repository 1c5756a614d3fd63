package cypher

import "strings"

// LabelExpr is a label expression tree: leaf labels combined with AND, OR
// and NOT. It is valid only in the label slot of a node pattern, never in a
// generic boolean filter.
type LabelExpr struct {
	op    labelOp
	name  string
	left  *LabelExpr
	right *LabelExpr
}

type labelOp int

const (
	labelAtom labelOp = iota
	labelAnd
	labelOr
	labelNot
)

// L creates a leaf label. The name is rendered verbatim.
func L(name string) LabelExpr { return LabelExpr{op: labelAtom, name: name} }

// And combines two label expressions, rendered with &.
func (l LabelExpr) And(other LabelExpr) LabelExpr {
	return LabelExpr{op: labelAnd, left: &l, right: &other}
}

// Or combines two label expressions, rendered with |.
func (l LabelExpr) Or(other LabelExpr) LabelExpr {
	return LabelExpr{op: labelOr, left: &l, right: &other}
}

// Not negates a label expression, rendered with !.
func (l LabelExpr) Not() LabelExpr {
	return LabelExpr{op: labelNot, left: &l}
}

func (l LabelExpr) isZero() bool {
	return l.op == labelAtom && l.name == ""
}

// NOT > AND > OR, atoms tightest.
func (l LabelExpr) labelPrecedence() int {
	switch l.op {
	case labelOr:
		return 1
	case labelAnd:
		return 2
	case labelNot:
		return 3
	default:
		return 4
	}
}

func (l LabelExpr) writeLabel(b *strings.Builder) {
	switch l.op {
	case labelAtom:
		b.WriteString(l.name)
	case labelNot:
		b.WriteByte('!')
		writeLabelOperand(b, *l.left, l.labelPrecedence())
	case labelAnd:
		writeLabelOperand(b, *l.left, l.labelPrecedence())
		b.WriteByte('&')
		writeLabelOperand(b, *l.right, l.labelPrecedence())
	case labelOr:
		writeLabelOperand(b, *l.left, l.labelPrecedence())
		b.WriteByte('|')
		writeLabelOperand(b, *l.right, l.labelPrecedence())
	}
}

func writeLabelOperand(b *strings.Builder, l LabelExpr, contextPrec int) {
	if l.labelPrecedence() < contextPrec {
		b.WriteByte('(')
		l.writeLabel(b)
		b.WriteByte(')')
		return
	}
	l.writeLabel(b)
}
