package cypher

import "fmt"

// Query is an immutable clause chain. Every builder call returns a new
// chain node pointing at the previous one; the shared prefix is never
// copied or mutated, so two continuations branched from the same partial
// query are independent and safe to build concurrently.
//
// The zero value for a chain is the nil *Query: package-level entry points
// (Match, Use, ...) start from it.
type Query struct {
	prev *Query
	c    clause
}

func (q *Query) lastClause() clause {
	if q == nil {
		return nil
	}
	return q.c
}

// clauses returns the chain in first-to-last order.
func (q *Query) clauses() []clause {
	n := q.Len()
	out := make([]clause, n)
	for cur := q; cur != nil; cur = cur.prev {
		n--
		out[n] = cur.c
	}
	return out
}

// Len reports the number of clauses in the chain.
func (q *Query) Len() int {
	n := 0
	for cur := q; cur != nil; cur = cur.prev {
		n++
	}
	return n
}

func isTerminalKind(k clauseKind) bool {
	switch k {
	case kindReturn, kindOrderBy, kindSkip, kindLimit, kindUnion:
		return true
	}
	return false
}

func isSuffixKind(k clauseKind) bool {
	return k == kindOrderBy || k == kindSkip || k == kindLimit
}

// checkAppend enforces the clause-ordering grammar. Violations surface at
// the builder call that introduces them; the existing chain is untouched.
func (q *Query) checkAppend(k clauseKind) error {
	last := q.lastClause()

	if last != nil {
		if y, ok := last.(yieldClause); ok && y.wildcard {
			return fmt.Errorf("%w: attempted to append %s", ErrAfterWildcardYield, k)
		}
		lk := last.kind()
		if isTerminalKind(lk) {
			if lk == kindUnion || !isSuffixKind(k) {
				return fmt.Errorf("%w: %s after %s", ErrAfterTerminal, k, lk)
			}
			// Suffix clauses may follow RETURN in any call order, but each
			// kind at most once per statement.
			for cur := q; cur != nil && isSuffixKind(cur.c.kind()); cur = cur.prev {
				if cur.c.kind() == k {
					return fmt.Errorf("%w: duplicate %s", ErrMisplacedClause, k)
				}
			}
			return nil
		}
	}

	switch k {
	case kindUse:
		if last != nil {
			return fmt.Errorf("%w: USE must be the first clause", ErrMisplacedClause)
		}
	case kindWhere:
		ok := false
		if last != nil {
			switch last.kind() {
			case kindMatch, kindUnwind, kindWith, kindYield:
				ok = true
			}
		}
		if !ok {
			return fmt.Errorf("%w: WHERE is only legal after MATCH, OPTIONAL MATCH, UNWIND, WITH or YIELD", ErrMisplacedClause)
		}
	case kindYield:
		if last == nil || last.kind() != kindCallProcedure {
			return fmt.Errorf("%w: YIELD is only legal after a procedure CALL", ErrMisplacedClause)
		}
	case kindOrderBy, kindSkip, kindLimit:
		// Reaching here means the previous clause is not RETURN.
		return fmt.Errorf("%w: %s requires a preceding RETURN", ErrMisplacedClause, k)
	}
	return nil
}

func (q *Query) append(c clause) (*Query, error) {
	if err := q.checkAppend(c.kind()); err != nil {
		return nil, err
	}
	return &Query{prev: q, c: c}, nil
}

// Use selects the target database; it must be the first clause of a chain.
func Use(target string) (*Query, error) { return (*Query)(nil).Use(target) }

// Use appends a USE clause.
func (q *Query) Use(target string) (*Query, error) {
	return q.append(useClause{target: target})
}

// Match starts a chain with a MATCH clause.
func Match(parts ...PatternPart) (*Query, error) { return (*Query)(nil).Match(parts...) }

// OptionalMatch starts a chain with an OPTIONAL MATCH clause. Rows without
// a match still flow downstream with the pattern variables bound to null;
// only the keyword differs structurally from Match.
func OptionalMatch(parts ...PatternPart) (*Query, error) {
	return (*Query)(nil).OptionalMatch(parts...)
}

// Match appends a MATCH clause over one or more patterns.
func (q *Query) Match(parts ...PatternPart) (*Query, error) {
	return q.appendMatch(false, parts)
}

// OptionalMatch appends an OPTIONAL MATCH clause.
func (q *Query) OptionalMatch(parts ...PatternPart) (*Query, error) {
	return q.appendMatch(true, parts)
}

func (q *Query) appendMatch(optional bool, parts []PatternPart) (*Query, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: MATCH requires at least one pattern", ErrEmptyClause)
	}
	patterns := make([]pathElement, 0, len(parts))
	for _, part := range parts {
		switch v := part.(type) {
		case NodePattern:
			patterns = append(patterns, v)
		case PathPattern:
			patterns = append(patterns, v)
		case QuantifiedPathPattern:
			patterns = append(patterns, v)
		case RelationshipPattern:
			return nil, fmt.Errorf("%w: a bare relationship cannot be matched", ErrMalformedPath)
		default:
			return nil, fmt.Errorf("%w: unsupported pattern part %T", ErrInternal, part)
		}
	}
	return q.append(matchClause{optional: optional, patterns: patterns})
}

// Where appends a WHERE clause filtering the preceding MATCH, OPTIONAL
// MATCH, UNWIND, WITH or YIELD.
func (q *Query) Where(cond Expression) (*Query, error) {
	if cond == nil {
		return nil, fmt.Errorf("%w: WHERE requires a condition", ErrEmptyClause)
	}
	return q.append(whereClause{cond: cond})
}

// With starts a chain with a WITH projection.
func With(items ...ProjectionItem) (*Query, error) { return (*Query)(nil).With(items...) }

// With appends a WITH projection.
func (q *Query) With(items ...ProjectionItem) (*Query, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: WITH requires at least one projection", ErrEmptyClause)
	}
	return q.append(withClause{items: items})
}

// WithDistinct appends a WITH DISTINCT projection.
func (q *Query) WithDistinct(items ...ProjectionItem) (*Query, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: WITH requires at least one projection", ErrEmptyClause)
	}
	return q.append(withClause{items: items, distinct: true})
}

// Unwind starts a chain with an UNWIND clause.
func Unwind(expr Expression, alias string) (*Query, error) {
	return (*Query)(nil).Unwind(expr, alias)
}

// Unwind appends UNWIND expr AS alias.
func (q *Query) Unwind(expr Expression, alias string) (*Query, error) {
	if expr == nil {
		return nil, fmt.Errorf("%w: UNWIND requires an expression", ErrEmptyClause)
	}
	return q.append(unwindClause{expr: expr, alias: alias})
}

// CallProcedure starts a chain with a procedure CALL. The name is a dotted
// identifier taken verbatim; its validity is the caller's responsibility.
func CallProcedure(name string, args ...Expression) (*Query, error) {
	return (*Query)(nil).CallProcedure(name, args...)
}

// CallProcedure appends a procedure CALL.
func (q *Query) CallProcedure(name string, args ...Expression) (*Query, error) {
	return q.append(callProcedureClause{name: name, args: args})
}

// OptionalCallProcedure appends an OPTIONAL CALL of a procedure.
func (q *Query) OptionalCallProcedure(name string, args ...Expression) (*Query, error) {
	return q.append(callProcedureClause{name: name, args: args, optional: true})
}

// Yield appends a YIELD selecting named procedure outputs.
func (q *Query) Yield(items ...ProjectionItem) (*Query, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: YIELD requires items or the wildcard", ErrEmptyClause)
	}
	return q.append(yieldClause{items: items})
}

// YieldAll appends YIELD *. Nothing may be chained after it in the same
// statement.
func (q *Query) YieldAll() (*Query, error) {
	return q.append(yieldClause{wildcard: true})
}

// CallSubquery starts a chain with a CALL subquery.
func CallSubquery(body *Query, scope ImportScope) (*Query, error) {
	return (*Query)(nil).CallSubquery(body, scope)
}

// CallSubquery appends a CALL subquery over an independently built chain.
// The body executes once per incoming row; a body without RETURN is a unit
// subquery that leaves row cardinality unchanged.
func (q *Query) CallSubquery(body *Query, scope ImportScope) (*Query, error) {
	if body == nil {
		return nil, fmt.Errorf("%w: CALL subquery requires a body", ErrEmptyClause)
	}
	return q.append(callSubqueryClause{body: body, scope: scope})
}

// OptionalCallSubquery appends an OPTIONAL CALL subquery.
func (q *Query) OptionalCallSubquery(body *Query, scope ImportScope) (*Query, error) {
	if body == nil {
		return nil, fmt.Errorf("%w: CALL subquery requires a body", ErrEmptyClause)
	}
	return q.append(callSubqueryClause{body: body, scope: scope, optional: true})
}

// Return starts a chain with a RETURN clause.
func Return(items ...ProjectionItem) (*Query, error) { return (*Query)(nil).Return(items...) }

// Return appends the terminal RETURN projection.
func (q *Query) Return(items ...ProjectionItem) (*Query, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: RETURN requires at least one projection", ErrEmptyClause)
	}
	return q.append(returnClause{items: items})
}

// ReturnDistinct appends RETURN DISTINCT.
func (q *Query) ReturnDistinct(items ...ProjectionItem) (*Query, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: RETURN requires at least one projection", ErrEmptyClause)
	}
	return q.append(returnClause{items: items, distinct: true})
}

// OrderBy appends sort keys to a terminal RETURN. Together with Skip and
// Limit it may be called in any order; rendering always emits the
// canonical ORDER BY, SKIP, LIMIT sequence.
func (q *Query) OrderBy(keys ...SortKey) (*Query, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: ORDER BY requires at least one key", ErrEmptyClause)
	}
	return q.append(orderByClause{keys: keys})
}

// Skip appends a SKIP row offset to a terminal RETURN.
func (q *Query) Skip(amount Expression) (*Query, error) {
	if amount == nil {
		return nil, fmt.Errorf("%w: SKIP requires an amount", ErrEmptyClause)
	}
	return q.append(skipClause{amount: amount})
}

// Limit appends a LIMIT row cap to a terminal RETURN.
func (q *Query) Limit(amount Expression) (*Query, error) {
	if amount == nil {
		return nil, fmt.Errorf("%w: LIMIT requires an amount", ErrEmptyClause)
	}
	return q.append(limitClause{amount: amount})
}

// Union combines two complete chains, discarding duplicate rows.
func Union(left, right *Query) (*Query, error) { return newUnion(left, right, false) }

// UnionAll combines two complete chains, keeping duplicate rows.
func UnionAll(left, right *Query) (*Query, error) { return newUnion(left, right, true) }

func newUnion(left, right *Query, all bool) (*Query, error) {
	if !left.isComplete() {
		return nil, fmt.Errorf("%w: left side", ErrIncompleteQuery)
	}
	if !right.isComplete() {
		return nil, fmt.Errorf("%w: right side", ErrIncompleteQuery)
	}
	// Best effort: the shape check is skipped when either side's columns
	// cannot be determined statically (wildcard projections).
	if lcols, ok := left.outputColumns(); ok {
		if rcols, rok := right.outputColumns(); rok {
			if !equalColumns(lcols, rcols) {
				return nil, fmt.Errorf("%w: %v vs %v", ErrUnionShape, lcols, rcols)
			}
		}
	}
	return &Query{c: unionClause{left: left, right: right, all: all}}, nil
}

func equalColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// isComplete reports whether the chain forms a full statement: it ends in
// RETURN (plus optional suffix), is itself a union, or is a void procedure
// call chain that behaves as an implicit WITH *.
func (q *Query) isComplete() bool {
	last := q.lastClause()
	if last == nil {
		return false
	}
	if isTerminalKind(last.kind()) {
		return true
	}
	hasCall := false
	for _, c := range q.clauses() {
		switch c.kind() {
		case kindCallProcedure:
			hasCall = true
		case kindUse, kindYield:
		default:
			return false
		}
	}
	return hasCall
}

// outputColumns reports the statically known projected column names of a
// complete chain. ok is false when the shape cannot be determined, e.g.
// RETURN * or YIELD *.
func (q *Query) outputColumns() ([]string, bool) {
	cur := q
	for cur != nil && isSuffixKind(cur.c.kind()) {
		cur = cur.prev
	}
	if cur == nil {
		return nil, false
	}
	switch c := cur.c.(type) {
	case returnClause:
		return projectionColumns(c.items)
	case yieldClause:
		if c.wildcard {
			return nil, false
		}
		return projectionColumns(c.items)
	case unionClause:
		return c.left.outputColumns()
	default:
		return nil, false
	}
}

func projectionColumns(items []ProjectionItem) ([]string, bool) {
	cols := make([]string, 0, len(items))
	for _, item := range items {
		name, ok := item.columnName()
		if !ok {
			return nil, false
		}
		cols = append(cols, name)
	}
	return cols, true
}
