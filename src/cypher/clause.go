package cypher

// clause is one segment of a query. The set of variants is closed; the
// renderer switches exhaustively over it.
type clause interface {
	kind() clauseKind
}

type clauseKind int

const (
	kindUse clauseKind = iota
	kindMatch
	kindWhere
	kindWith
	kindUnwind
	kindCallSubquery
	kindCallProcedure
	kindYield
	kindReturn
	kindOrderBy
	kindSkip
	kindLimit
	kindUnion
)

func (k clauseKind) String() string {
	switch k {
	case kindUse:
		return "USE"
	case kindMatch:
		return "MATCH"
	case kindWhere:
		return "WHERE"
	case kindWith:
		return "WITH"
	case kindUnwind:
		return "UNWIND"
	case kindCallSubquery:
		return "CALL {}"
	case kindCallProcedure:
		return "CALL"
	case kindYield:
		return "YIELD"
	case kindReturn:
		return "RETURN"
	case kindOrderBy:
		return "ORDER BY"
	case kindSkip:
		return "SKIP"
	case kindLimit:
		return "LIMIT"
	case kindUnion:
		return "UNION"
	default:
		return "UNKNOWN"
	}
}

type useClause struct {
	target string
}

func (useClause) kind() clauseKind { return kindUse }

type matchClause struct {
	optional bool
	patterns []pathElement
}

func (matchClause) kind() clauseKind { return kindMatch }

type whereClause struct {
	cond Expression
}

func (whereClause) kind() clauseKind { return kindWhere }

type withClause struct {
	items    []ProjectionItem
	distinct bool
}

func (withClause) kind() clauseKind { return kindWith }

type unwindClause struct {
	expr  Expression
	alias string
}

func (unwindClause) kind() clauseKind { return kindUnwind }

// ImportScope selects which outer variables a subquery body sees: none,
// all, or an explicit list.
type ImportScope struct {
	all  bool
	vars []string
}

// ImportNone makes no outer variables visible, rendered CALL () { ... }.
func ImportNone() ImportScope { return ImportScope{} }

// ImportAll makes every outer variable visible, rendered CALL (*) { ... }.
func ImportAll() ImportScope { return ImportScope{all: true} }

// ImportVars makes the named outer variables visible.
func ImportVars(names ...string) ImportScope { return ImportScope{vars: names} }

type callSubqueryClause struct {
	body     *Query
	scope    ImportScope
	optional bool
}

func (callSubqueryClause) kind() clauseKind { return kindCallSubquery }

type callProcedureClause struct {
	name     string
	args     []Expression
	optional bool
}

func (callProcedureClause) kind() clauseKind { return kindCallProcedure }

type yieldClause struct {
	items    []ProjectionItem
	wildcard bool
}

func (yieldClause) kind() clauseKind { return kindYield }

type returnClause struct {
	items    []ProjectionItem
	distinct bool
}

func (returnClause) kind() clauseKind { return kindReturn }

type orderByClause struct {
	keys []SortKey
}

func (orderByClause) kind() clauseKind { return kindOrderBy }

type skipClause struct {
	amount Expression
}

func (skipClause) kind() clauseKind { return kindSkip }

type limitClause struct {
	amount Expression
}

func (limitClause) kind() clauseKind { return kindLimit }

type unionClause struct {
	left  *Query
	right *Query
	all   bool
}

func (unionClause) kind() clauseKind { return kindUnion }
