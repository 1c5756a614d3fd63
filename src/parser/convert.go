package parser

import (
	"fmt"
	"strings"

	"github.com/seuros/cypher-dsl/src/cypher"
)

func convertStatement(stmt *Statement) (*cypher.Query, error) {
	q, err := convertSingle(stmt.First)
	if err != nil {
		return nil, err
	}
	for _, part := range stmt.Rest {
		side, err := convertSingle(part.Query)
		if err != nil {
			return nil, err
		}
		if part.All {
			q, err = cypher.UnionAll(q, side)
		} else {
			q, err = cypher.Union(q, side)
		}
		if err != nil {
			return nil, err
		}
	}
	return q, nil
}

func convertSingle(sq *SingleQuery) (*cypher.Query, error) {
	var q *cypher.Query
	var err error
	for _, c := range sq.Clauses {
		switch {
		case c.Use != nil:
			q, err = q.Use(joinName(c.Use.Target))
		case c.Match != nil:
			q, err = convertMatch(q, c.Match)
		case c.Where != nil:
			var cond cypher.Expression
			cond, err = convertExpr(c.Where.Cond)
			if err == nil {
				q, err = q.Where(cond)
			}
		case c.With != nil:
			var items []cypher.ProjectionItem
			items, err = convertProjection(c.With.Items)
			if err == nil {
				if c.With.Distinct {
					q, err = q.WithDistinct(items...)
				} else {
					q, err = q.With(items...)
				}
			}
		case c.Unwind != nil:
			var expr cypher.Expression
			expr, err = convertExpr(c.Unwind.Expr)
			if err == nil {
				q, err = q.Unwind(expr, c.Unwind.Alias)
			}
		case c.Call != nil:
			var args []cypher.Expression
			for _, a := range c.Call.Args {
				var e cypher.Expression
				e, err = convertExpr(a)
				if err != nil {
					return nil, err
				}
				args = append(args, e)
			}
			if c.Call.Optional {
				q, err = q.OptionalCallProcedure(joinName(c.Call.Name), args...)
			} else {
				q, err = q.CallProcedure(joinName(c.Call.Name), args...)
			}
		case c.Yield != nil:
			if c.Yield.Wildcard {
				q, err = q.YieldAll()
			} else {
				var items []cypher.ProjectionItem
				items, err = convertProjection(c.Yield.Items)
				if err == nil {
					q, err = q.Yield(items...)
				}
			}
		case c.Return != nil:
			var items []cypher.ProjectionItem
			items, err = convertProjection(c.Return.Items)
			if err == nil {
				if c.Return.Distinct {
					q, err = q.ReturnDistinct(items...)
				} else {
					q, err = q.Return(items...)
				}
			}
		case c.Order != nil:
			keys := make([]cypher.SortKey, 0, len(c.Order.Keys))
			for _, k := range c.Order.Keys {
				var e cypher.Expression
				e, err = convertExpr(k.Expr)
				if err != nil {
					return nil, err
				}
				if strings.EqualFold(k.Direction, "DESC") {
					keys = append(keys, cypher.Desc(e))
				} else {
					keys = append(keys, cypher.Asc(e))
				}
			}
			q, err = q.OrderBy(keys...)
		case c.Skip != nil:
			var e cypher.Expression
			e, err = convertExpr(c.Skip.Amount)
			if err == nil {
				q, err = q.Skip(e)
			}
		case c.Limit != nil:
			var e cypher.Expression
			e, err = convertExpr(c.Limit.Amount)
			if err == nil {
				q, err = q.Limit(e)
			}
		default:
			err = fmt.Errorf("empty clause alternative")
		}
		if err != nil {
			return nil, err
		}
	}
	return q, nil
}

func joinName(n *DottedName) string {
	return strings.Join(n.Parts, ".")
}

func convertMatch(q *cypher.Query, m *MatchClause) (*cypher.Query, error) {
	parts := make([]cypher.PatternPart, 0, len(m.Patterns))
	for _, pg := range m.Patterns {
		p, err := convertPath(pg)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	if m.Optional {
		return q.OptionalMatch(parts...)
	}
	return q.Match(parts...)
}

func convertPath(pg *PathGrammar) (cypher.PathPattern, error) {
	parts := make([]cypher.PatternPart, 0, len(pg.Elements))
	for _, el := range pg.Elements {
		switch {
		case el.Node != nil:
			n, err := convertNode(el.Node)
			if err != nil {
				return cypher.PathPattern{}, err
			}
			parts = append(parts, n)
		case el.Rel != nil:
			r, err := convertRel(el.Rel)
			if err != nil {
				return cypher.PathPattern{}, err
			}
			parts = append(parts, r)
		}
	}
	p, err := cypher.Path(parts...)
	if err != nil {
		return cypher.PathPattern{}, err
	}
	if pg.Variable != "" {
		p = p.Named(pg.Variable)
	}
	return p, nil
}

func convertNode(ng *NodeGrammar) (cypher.NodePattern, error) {
	n := cypher.Node(ng.Variable)
	if ng.Labels != nil {
		n = n.WithLabelExpr(convertLabelOr(ng.Labels))
	}
	if ng.Props != nil {
		for _, e := range ng.Props.Entries {
			v, err := convertExpr(e.Value)
			if err != nil {
				return cypher.NodePattern{}, err
			}
			n = n.WithProp(e.Key, v)
		}
	}
	if ng.Where != nil {
		cond, err := convertExpr(ng.Where)
		if err != nil {
			return cypher.NodePattern{}, err
		}
		n = n.Where(cond)
	}
	return n, nil
}

func convertLabelOr(l *LabelOr) cypher.LabelExpr {
	out := convertLabelAnd(l.Left)
	for _, r := range l.Right {
		out = out.Or(convertLabelAnd(r))
	}
	return out
}

func convertLabelAnd(l *LabelAnd) cypher.LabelExpr {
	out := convertLabelNot(l.Left)
	for _, r := range l.Right {
		out = out.And(convertLabelNot(r))
	}
	return out
}

func convertLabelNot(l *LabelNot) cypher.LabelExpr {
	var out cypher.LabelExpr
	if l.Group != nil {
		out = convertLabelOr(l.Group)
	} else {
		out = cypher.L(l.Atom)
	}
	if l.Negated {
		out = out.Not()
	}
	return out
}

func convertRel(rg *RelGrammar) (cypher.RelationshipPattern, error) {
	dir := cypher.DirectionEither
	switch {
	case rg.Left && rg.Right:
		return cypher.RelationshipPattern{}, fmt.Errorf("relationship cannot point both ways")
	case rg.Left:
		dir = cypher.DirectionLeft
	case rg.Right:
		dir = cypher.DirectionRight
	}
	r := cypher.Rel(dir)
	d := rg.Detail
	if d == nil {
		return r, nil
	}
	if d.Variable != "" {
		r = r.Named(d.Variable)
	}
	if d.Type != "" {
		var err error
		r, err = r.OfType(d.Type)
		if err != nil {
			return cypher.RelationshipPattern{}, err
		}
	}
	if d.Hops != nil {
		min, max := hopBounds(d.Hops)
		var err error
		r, err = r.Hops(min, max)
		if err != nil {
			return cypher.RelationshipPattern{}, err
		}
	}
	if d.Props != nil {
		for _, e := range d.Props.Entries {
			v, err := convertExpr(e.Value)
			if err != nil {
				return cypher.RelationshipPattern{}, err
			}
			r = r.WithProp(e.Key, v)
		}
	}
	if d.Where != nil {
		cond, err := convertExpr(d.Where)
		if err != nil {
			return cypher.RelationshipPattern{}, err
		}
		r = r.Where(cond)
	}
	return r, nil
}

func hopBounds(h *HopsGrammar) (int, int) {
	min, max := cypher.Unbounded, cypher.Unbounded
	if h.Min != nil {
		min = *h.Min
	}
	if h.Max != nil {
		max = *h.Max
	}
	if !h.Dots {
		// *n is the exact form.
		if h.Min != nil {
			return min, min
		}
		return cypher.Unbounded, cypher.Unbounded
	}
	return min, max
}

func convertProjection(items []*ProjectionExpr) ([]cypher.ProjectionItem, error) {
	out := make([]cypher.ProjectionItem, 0, len(items))
	for _, item := range items {
		if item.Star {
			out = append(out, cypher.Star())
			continue
		}
		e, err := convertExpr(item.Expr)
		if err != nil {
			return nil, err
		}
		if item.Alias != nil {
			out = append(out, cypher.As(e, *item.Alias))
		} else {
			out = append(out, cypher.Item(e))
		}
	}
	return out, nil
}

func convertExpr(e *Expr) (cypher.Expression, error) {
	return convertOr(e.Or)
}

func convertOr(o *OrExpr) (cypher.Expression, error) {
	out, err := convertAnd(o.Left)
	if err != nil {
		return nil, err
	}
	for _, r := range o.Right {
		right, err := convertAnd(r)
		if err != nil {
			return nil, err
		}
		out = cypher.Or(out, right)
	}
	return out, nil
}

func convertAnd(a *AndExpr) (cypher.Expression, error) {
	out, err := convertNot(a.Left)
	if err != nil {
		return nil, err
	}
	for _, r := range a.Right {
		right, err := convertNot(r)
		if err != nil {
			return nil, err
		}
		out = cypher.And(out, right)
	}
	return out, nil
}

func convertNot(n *NotExpr) (cypher.Expression, error) {
	out, err := convertComparison(n.Operand)
	if err != nil {
		return nil, err
	}
	for range n.Nots {
		out = cypher.Not(out)
	}
	return out, nil
}

func convertComparison(c *Comparison) (cypher.Expression, error) {
	out, err := convertAdd(c.Left)
	if err != nil {
		return nil, err
	}
	if c.Rest != nil {
		right, err := convertAdd(c.Rest.Right)
		if err != nil {
			return nil, err
		}
		switch strings.ToUpper(c.Rest.Op) {
		case "=":
			out = cypher.Eq(out, right)
		case "<>":
			out = cypher.Ne(out, right)
		case ">":
			out = cypher.Gt(out, right)
		case "<":
			out = cypher.Lt(out, right)
		case ">=":
			out = cypher.Gte(out, right)
		case "<=":
			out = cypher.Lte(out, right)
		case "IN":
			out = cypher.In(out, right)
		case "CONTAINS":
			out = cypher.Contains(out, right)
		default:
			switch strings.ToUpper(c.Rest.StartsEnd) {
			case "STARTS":
				out = cypher.StartsWith(out, right)
			case "ENDS":
				out = cypher.EndsWith(out, right)
			default:
				return nil, fmt.Errorf("unknown comparison operator %q", c.Rest.Op)
			}
		}
	}
	if c.NullCheck != nil {
		if c.NullCheck.Negated {
			out = cypher.IsNotNull(out)
		} else {
			out = cypher.IsNull(out)
		}
	}
	return out, nil
}

func convertAdd(a *AddExpr) (cypher.Expression, error) {
	out, err := convertMul(a.Left)
	if err != nil {
		return nil, err
	}
	for _, tail := range a.Right {
		right, err := convertMul(tail.Operand)
		if err != nil {
			return nil, err
		}
		if tail.Op == "+" {
			out = cypher.Plus(out, right)
		} else {
			out = cypher.Minus(out, right)
		}
	}
	return out, nil
}

func convertMul(m *MulExpr) (cypher.Expression, error) {
	out, err := convertUnary(m.Left)
	if err != nil {
		return nil, err
	}
	for _, tail := range m.Right {
		right, err := convertUnary(tail.Operand)
		if err != nil {
			return nil, err
		}
		switch tail.Op {
		case "*":
			out = cypher.Times(out, right)
		case "/":
			out = cypher.Div(out, right)
		default:
			out = cypher.Mod(out, right)
		}
	}
	return out, nil
}

func convertUnary(u *UnaryExpr) (cypher.Expression, error) {
	out, err := convertAtom(u.Operand)
	if err != nil {
		return nil, err
	}
	if u.Negated {
		out = cypher.Neg(out)
	}
	return out, nil
}

func convertAtom(a *Atom) (cypher.Expression, error) {
	switch {
	case a.Param != nil:
		return cypher.Param(strings.TrimPrefix(*a.Param, "$")), nil
	case a.String != nil:
		return cypher.Lit(unquoteSingle(*a.String)), nil
	case a.Float != nil:
		return cypher.Lit(*a.Float), nil
	case a.Int != nil:
		return cypher.Lit(*a.Int), nil
	case a.Keyword != "":
		switch strings.ToUpper(a.Keyword) {
		case "TRUE":
			return cypher.Lit(true), nil
		case "FALSE":
			return cypher.Lit(false), nil
		default:
			return cypher.Lit(nil), nil
		}
	case a.Func != nil:
		args := make([]cypher.Expression, 0, len(a.Func.Args))
		for _, arg := range a.Func.Args {
			e, err := convertExpr(arg)
			if err != nil {
				return nil, err
			}
			args = append(args, e)
		}
		if a.Func.Distinct {
			return cypher.FuncDistinct(joinName(a.Func.Name), args...), nil
		}
		return cypher.Func(joinName(a.Func.Name), args...), nil
	case a.Property != nil:
		return cypher.Prop(a.Property.Variable, a.Property.Name), nil
	case a.Variable != nil:
		return cypher.Var(*a.Variable), nil
	case a.Group != nil:
		return convertExpr(a.Group)
	}
	return nil, fmt.Errorf("empty expression atom")
}

// unquoteSingle strips the single-quote delimiters and resolves backslash
// escapes. The lexer guarantees the token shape.
func unquoteSingle(raw string) string {
	body := raw[1 : len(raw)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}
	var b strings.Builder
	b.Grow(len(body))
	escaped := false
	for _, r := range body {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
