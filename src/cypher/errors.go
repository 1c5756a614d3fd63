package cypher

import "errors"

// Structural violations surface at the exact builder call that introduced
// them. The offending values are carried in the wrapped message; the
// sentinel identifies the invariant so callers can match with errors.Is.
var (
	// ErrAfterTerminal is returned when a clause is appended to a chain
	// that already ended in RETURN (or a closed suffix).
	ErrAfterTerminal = errors.New("cypher: clause appended after terminal clause")

	// ErrMisplacedClause is returned when a clause is appended at a chain
	// position the clause grammar does not allow.
	ErrMisplacedClause = errors.New("cypher: clause not allowed at this position")

	// ErrMultipleRelTypes is returned when a second type is attached to a
	// relationship pattern. A relationship carries at most one type.
	ErrMultipleRelTypes = errors.New("cypher: relationship pattern already has a type")

	// ErrEmptyQuantifiedPath is returned when a path with no relationships
	// is quantified.
	ErrEmptyQuantifiedPath = errors.New("cypher: quantified path requires at least one relationship")

	// ErrNestedQuantifier is returned when a quantified path pattern would
	// contain another quantified path pattern.
	ErrNestedQuantifier = errors.New("cypher: quantified path patterns cannot nest")

	// ErrInvalidQuantifier is returned for inverted or negative bounds.
	ErrInvalidQuantifier = errors.New("cypher: invalid quantifier bounds")

	// ErrMalformedPath is returned when path concatenation would place two
	// relationship patterns back to back.
	ErrMalformedPath = errors.New("cypher: consecutive relationship patterns in path")

	// ErrAfterWildcardYield is returned when any clause follows YIELD *.
	ErrAfterWildcardYield = errors.New("cypher: no clause may follow YIELD *")

	// ErrIncompleteQuery is returned when a UNION side is not a complete
	// query (terminal RETURN or a void procedure call chain).
	ErrIncompleteQuery = errors.New("cypher: union side is not a complete query")

	// ErrUnionShape is returned when both UNION sides have statically known
	// projection columns and the column names differ.
	ErrUnionShape = errors.New("cypher: union sides project different columns")

	// ErrEmptyClause is returned when a clause that requires content is
	// constructed without any, e.g. MATCH with no patterns.
	ErrEmptyClause = errors.New("cypher: clause requires at least one item")

	// ErrInternal marks renderer-side invariant violations. Seeing it means
	// a defect in the chain-ordering layer, not caller error.
	ErrInternal = errors.New("cypher: internal invariant violation")
)
