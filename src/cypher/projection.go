package cypher

import "strings"

// ProjectionItem is one entry in a RETURN, WITH or YIELD projection: an
// expression with an optional alias, a raw identifier carried through
// verbatim, or the * wildcard.
type ProjectionItem struct {
	expr  Expression
	alias string
	raw   string
	star  bool
}

// Item projects an expression.
func Item(e Expression) ProjectionItem { return ProjectionItem{expr: e} }

// As projects an expression under an alias.
func As(e Expression, alias string) ProjectionItem {
	return ProjectionItem{expr: e, alias: alias}
}

// RawItem projects a raw identifier string verbatim, e.g. "p". Validity of
// the identifier is the caller's responsibility.
func RawItem(s string) ProjectionItem { return ProjectionItem{raw: s} }

// Star projects everything in scope (the * wildcard).
func Star() ProjectionItem { return ProjectionItem{star: true} }

func (p ProjectionItem) writeTo(b *strings.Builder) {
	switch {
	case p.star:
		b.WriteByte('*')
		return
	case p.raw != "":
		b.WriteString(p.raw)
	default:
		p.expr.writeExpr(b)
	}
	if p.alias != "" {
		b.WriteString(" AS ")
		b.WriteString(p.alias)
	}
}

// columnName reports the statically known output column name, or false for
// the * wildcard. Used for best-effort UNION shape checking.
func (p ProjectionItem) columnName() (string, bool) {
	switch {
	case p.star:
		return "", false
	case p.alias != "":
		return p.alias, true
	case p.raw != "":
		return p.raw, true
	default:
		return renderExpression(p.expr), true
	}
}

func writeProjection(b *strings.Builder, items []ProjectionItem) {
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		item.writeTo(b)
	}
}

// SortKey is an ORDER BY entry: an expression plus sort direction.
type SortKey struct {
	expr       Expression
	descending bool
}

// Asc sorts by an expression in ascending order.
func Asc(e Expression) SortKey { return SortKey{expr: e} }

// Desc sorts by an expression in descending order.
func Desc(e Expression) SortKey { return SortKey{expr: e, descending: true} }

// AscRaw sorts by a raw identifier-string key, carried through verbatim.
func AscRaw(key string) SortKey { return SortKey{expr: Variable{Name: key}} }

// DescRaw sorts by a raw identifier-string key, descending.
func DescRaw(key string) SortKey { return SortKey{expr: Variable{Name: key}, descending: true} }

func (s SortKey) writeTo(b *strings.Builder) {
	s.expr.writeExpr(b)
	if s.descending {
		b.WriteString(" DESC")
	}
}
