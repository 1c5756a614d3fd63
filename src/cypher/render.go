package cypher

import (
	"fmt"
	"sort"
	"strings"
)

// RenderOptions controls formatting. Keywords are always uppercase; the
// options cover indentation of nested subquery bodies and the bare
// zero-argument CALL shorthand.
type RenderOptions struct {
	// Indent is the per-level indentation for subquery bodies.
	Indent string
	// BareCall omits the parentheses of a zero-argument procedure call
	// when that call is the entire statement.
	BareCall bool
}

// DefaultRenderOptions indents nested bodies with two spaces.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Indent: "  "}
}

// Render serializes a finished chain with default options. Rendering is a
// pure walk over immutable structure: identical chains produce
// byte-identical output.
func Render(q *Query) (string, error) {
	return RenderWithOptions(q, DefaultRenderOptions())
}

// RenderWithOptions serializes a finished chain.
func RenderWithOptions(q *Query, opts RenderOptions) (string, error) {
	if q == nil {
		return "", fmt.Errorf("%w: empty query", ErrEmptyClause)
	}
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	r := renderer{opts: opts}
	if err := r.renderChain(q, 0, true); err != nil {
		return "", err
	}
	return r.b.String(), nil
}

// Cypher renders the chain with default options.
func (q *Query) Cypher() (string, error) { return Render(q) }

type renderer struct {
	b    strings.Builder
	opts RenderOptions
}

func (r *renderer) indent(depth int) {
	for i := 0; i < depth; i++ {
		r.b.WriteString(r.opts.Indent)
	}
}

func (r *renderer) renderChain(q *Query, depth int, statement bool) error {
	cls := normalizeSuffix(q.clauses())

	// The parenthesis-free CALL shorthand applies only to a statement
	// consisting of a single zero-argument procedure call.
	if statement && r.opts.BareCall && len(cls) == 1 {
		if call, ok := cls[0].(callProcedureClause); ok && len(call.args) == 0 && !call.optional {
			r.b.WriteString("CALL ")
			r.b.WriteString(call.name)
			return nil
		}
	}

	for i, c := range cls {
		if i > 0 {
			r.b.WriteByte('\n')
		}
		// A union renders its sides as full chains which indent themselves.
		if _, ok := c.(unionClause); !ok {
			r.indent(depth)
		}
		if err := r.renderClause(c, depth); err != nil {
			return err
		}
	}
	return nil
}

// normalizeSuffix rewrites each run of suffix clauses into the canonical
// ORDER BY, SKIP, LIMIT order, independent of builder call order.
func normalizeSuffix(cls []clause) []clause {
	out := make([]clause, len(cls))
	copy(out, cls)
	for i := 0; i < len(out); {
		if !isSuffixKind(out[i].kind()) {
			i++
			continue
		}
		j := i
		for j < len(out) && isSuffixKind(out[j].kind()) {
			j++
		}
		sort.SliceStable(out[i:j], func(a, b int) bool {
			return suffixRank(out[i+a].kind()) < suffixRank(out[i+b].kind())
		})
		i = j
	}
	return out
}

func suffixRank(k clauseKind) int {
	switch k {
	case kindOrderBy:
		return 0
	case kindSkip:
		return 1
	default:
		return 2
	}
}

func (r *renderer) renderClause(c clause, depth int) error {
	switch v := c.(type) {
	case useClause:
		r.b.WriteString("USE ")
		r.b.WriteString(v.target)
	case matchClause:
		if v.optional {
			r.b.WriteString("OPTIONAL ")
		}
		r.b.WriteString("MATCH ")
		for i, p := range v.patterns {
			if i > 0 {
				r.b.WriteString(", ")
			}
			p.writePattern(&r.b)
		}
	case whereClause:
		r.b.WriteString("WHERE ")
		v.cond.writeExpr(&r.b)
	case withClause:
		r.b.WriteString("WITH ")
		if v.distinct {
			r.b.WriteString("DISTINCT ")
		}
		writeProjection(&r.b, v.items)
	case unwindClause:
		r.b.WriteString("UNWIND ")
		v.expr.writeExpr(&r.b)
		r.b.WriteString(" AS ")
		r.b.WriteString(v.alias)
	case callProcedureClause:
		if v.optional {
			r.b.WriteString("OPTIONAL ")
		}
		r.b.WriteString("CALL ")
		r.b.WriteString(v.name)
		r.b.WriteByte('(')
		for i, arg := range v.args {
			if i > 0 {
				r.b.WriteString(", ")
			}
			arg.writeExpr(&r.b)
		}
		r.b.WriteByte(')')
	case yieldClause:
		r.b.WriteString("YIELD ")
		if v.wildcard {
			r.b.WriteByte('*')
		} else {
			writeProjection(&r.b, v.items)
		}
	case returnClause:
		r.b.WriteString("RETURN ")
		if v.distinct {
			r.b.WriteString("DISTINCT ")
		}
		writeProjection(&r.b, v.items)
	case orderByClause:
		r.b.WriteString("ORDER BY ")
		for i, k := range v.keys {
			if i > 0 {
				r.b.WriteString(", ")
			}
			k.writeTo(&r.b)
		}
	case skipClause:
		r.b.WriteString("SKIP ")
		v.amount.writeExpr(&r.b)
	case limitClause:
		r.b.WriteString("LIMIT ")
		v.amount.writeExpr(&r.b)
	case callSubqueryClause:
		if v.optional {
			r.b.WriteString("OPTIONAL ")
		}
		r.b.WriteString("CALL")
		r.writeImportScope(v.scope)
		r.b.WriteString(" {\n")
		if err := r.renderChain(v.body, depth+1, false); err != nil {
			return err
		}
		r.b.WriteByte('\n')
		r.indent(depth)
		r.b.WriteByte('}')
	case unionClause:
		if err := r.renderChain(v.left, depth, false); err != nil {
			return err
		}
		r.b.WriteByte('\n')
		r.indent(depth)
		if v.all {
			r.b.WriteString("UNION ALL")
		} else {
			r.b.WriteString("UNION")
		}
		r.b.WriteByte('\n')
		if err := r.renderChain(v.right, depth, false); err != nil {
			return err
		}
	default:
		// Unreachable for chains built through the public API.
		return fmt.Errorf("%w: unknown clause %T", ErrInternal, c)
	}
	return nil
}

func (r *renderer) writeImportScope(s ImportScope) {
	switch {
	case s.all:
		r.b.WriteString("(*)")
	case len(s.vars) > 0:
		r.b.WriteByte('(')
		r.b.WriteString(strings.Join(s.vars, ", "))
		r.b.WriteByte(')')
	default:
		r.b.WriteString("()")
	}
}
