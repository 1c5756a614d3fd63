package cypher

import "strings"

// Expression is any value that can appear in a Cypher statement: property
// references, variables, parameters, literals, function calls and operator
// trees. The interface is sealed; the variant set is closed by design so
// the renderer can switch exhaustively.
type Expression interface {
	// writeExpr renders the expression into the builder.
	writeExpr(b *strings.Builder)
	// precedence reports the binding strength used for parenthesization.
	precedence() int
}

// Operator precedence, loosest to tightest. A child is parenthesized when
// its precedence is lower than the context it is rendered in.
const (
	precOr = iota + 1
	precAnd
	precNot
	precComparison
	precAdditive
	precMultiplicative
	precUnary
	precAtom
)

// Property references a property on a bound variable, e.g. p.age.
type Property struct {
	Variable string
	Name     string
}

// Prop creates a property reference.
func Prop(variable, name string) Property {
	return Property{Variable: variable, Name: name}
}

func (p Property) writeExpr(b *strings.Builder) {
	b.WriteString(p.Variable)
	b.WriteByte('.')
	b.WriteString(p.Name)
}

func (p Property) precedence() int { return precAtom }

// Variable references a named value introduced by a pattern, WITH, UNWIND
// or YIELD.
type Variable struct {
	Name string
}

// Var creates a variable reference.
func Var(name string) Variable { return Variable{Name: name} }

func (v Variable) writeExpr(b *strings.Builder) { b.WriteString(v.Name) }

func (v Variable) precedence() int { return precAtom }

// Parameter references a query parameter, rendered with a leading $.
type Parameter struct {
	Name string
}

// Param creates a parameter reference. The name is taken verbatim; syntactic
// validity of the name is the caller's responsibility.
func Param(name string) Parameter { return Parameter{Name: name} }

func (p Parameter) writeExpr(b *strings.Builder) {
	b.WriteByte('$')
	b.WriteString(p.Name)
}

func (p Parameter) precedence() int { return precAtom }

// Literal is an inline literal value: nil, bool, integer, float or string.
type Literal struct {
	Value any
}

// Lit creates a literal value.
func Lit(value any) Literal { return Literal{Value: value} }

func (l Literal) writeExpr(b *strings.Builder) { b.WriteString(formatValue(l.Value)) }

func (l Literal) precedence() int { return precAtom }

// FunctionCall invokes a function by name over ordered arguments.
// The name is rendered verbatim, even when it is not identifier-shaped.
type FunctionCall struct {
	Name     string
	Args     []Expression
	Distinct bool
}

// Func creates a function call. count with no arguments renders count(*).
func Func(name string, args ...Expression) FunctionCall {
	return FunctionCall{Name: name, Args: args}
}

// FuncDistinct creates a function call with the DISTINCT modifier.
func FuncDistinct(name string, args ...Expression) FunctionCall {
	return FunctionCall{Name: name, Args: args, Distinct: true}
}

func (f FunctionCall) writeExpr(b *strings.Builder) {
	b.WriteString(f.Name)
	b.WriteByte('(')
	if len(f.Args) == 0 && strings.EqualFold(f.Name, "count") {
		b.WriteByte('*')
	} else {
		if f.Distinct {
			b.WriteString("DISTINCT ")
		}
		for i, arg := range f.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			arg.writeExpr(b)
		}
	}
	b.WriteByte(')')
}

func (f FunctionCall) precedence() int { return precAtom }

// As attaches an alias, producing a projection item for RETURN/WITH.
func (f FunctionCall) As(alias string) ProjectionItem { return As(f, alias) }

// binaryExpr is an infix operator applied to two expressions.
type binaryExpr struct {
	left  Expression
	op    string
	right Expression
	prec  int
	// assoc marks operators where chained same-precedence operands need no
	// parentheses on the right (AND, OR, +, *).
	assoc bool
}

func (e binaryExpr) writeExpr(b *strings.Builder) {
	writeOperand(b, e.left, e.prec)
	b.WriteByte(' ')
	b.WriteString(e.op)
	b.WriteByte(' ')
	rightCtx := e.prec + 1
	if e.assoc {
		rightCtx = e.prec
	}
	writeOperand(b, e.right, rightCtx)
}

func (e binaryExpr) precedence() int { return e.prec }

// unaryExpr is a prefix operator (NOT, unary minus).
type unaryExpr struct {
	op      string
	operand Expression
	prec    int
	spaced  bool
}

func (e unaryExpr) writeExpr(b *strings.Builder) {
	b.WriteString(e.op)
	if e.spaced {
		b.WriteByte(' ')
	}
	writeOperand(b, e.operand, e.prec)
}

func (e unaryExpr) precedence() int { return e.prec }

// nullCheckExpr is the postfix IS NULL / IS NOT NULL predicate.
type nullCheckExpr struct {
	operand Expression
	negated bool
}

func (e nullCheckExpr) writeExpr(b *strings.Builder) {
	writeOperand(b, e.operand, precComparison+1)
	if e.negated {
		b.WriteString(" IS NOT NULL")
	} else {
		b.WriteString(" IS NULL")
	}
}

func (e nullCheckExpr) precedence() int { return precComparison }

// writeOperand renders a child expression, parenthesizing it when its
// operator binds more loosely than the surrounding context requires.
func writeOperand(b *strings.Builder, e Expression, contextPrec int) {
	if e.precedence() < contextPrec {
		b.WriteByte('(')
		e.writeExpr(b)
		b.WriteByte(')')
		return
	}
	e.writeExpr(b)
}

// renderExpression returns the textual form of a single expression.
func renderExpression(e Expression) string {
	var b strings.Builder
	e.writeExpr(&b)
	return b.String()
}

func comparison(left Expression, op string, right Expression) Expression {
	return binaryExpr{left: left, op: op, right: right, prec: precComparison}
}

// Eq builds an equality comparison, rendered with =.
func Eq(left, right Expression) Expression { return comparison(left, "=", right) }

// Ne builds an inequality comparison, rendered with <>.
func Ne(left, right Expression) Expression { return comparison(left, "<>", right) }

// Gt builds a greater-than comparison.
func Gt(left, right Expression) Expression { return comparison(left, ">", right) }

// Lt builds a less-than comparison.
func Lt(left, right Expression) Expression { return comparison(left, "<", right) }

// Gte builds a greater-than-or-equal comparison.
func Gte(left, right Expression) Expression { return comparison(left, ">=", right) }

// Lte builds a less-than-or-equal comparison.
func Lte(left, right Expression) Expression { return comparison(left, "<=", right) }

// And combines two boolean expressions.
func And(left, right Expression) Expression {
	return binaryExpr{left: left, op: "AND", right: right, prec: precAnd, assoc: true}
}

// Or combines two boolean expressions.
func Or(left, right Expression) Expression {
	return binaryExpr{left: left, op: "OR", right: right, prec: precOr, assoc: true}
}

// Not negates a boolean expression.
func Not(e Expression) Expression {
	return unaryExpr{op: "NOT", operand: e, prec: precNot, spaced: true}
}

// Plus builds an addition.
func Plus(left, right Expression) Expression {
	return binaryExpr{left: left, op: "+", right: right, prec: precAdditive, assoc: true}
}

// Minus builds a subtraction.
func Minus(left, right Expression) Expression {
	return binaryExpr{left: left, op: "-", right: right, prec: precAdditive}
}

// Times builds a multiplication.
func Times(left, right Expression) Expression {
	return binaryExpr{left: left, op: "*", right: right, prec: precMultiplicative, assoc: true}
}

// Div builds a division.
func Div(left, right Expression) Expression {
	return binaryExpr{left: left, op: "/", right: right, prec: precMultiplicative}
}

// Mod builds a modulo operation.
func Mod(left, right Expression) Expression {
	return binaryExpr{left: left, op: "%", right: right, prec: precMultiplicative}
}

// Neg builds a unary minus.
func Neg(e Expression) Expression {
	return unaryExpr{op: "-", operand: e, prec: precUnary}
}

// Contains builds a CONTAINS string predicate.
func Contains(left, right Expression) Expression {
	return comparison(left, "CONTAINS", right)
}

// StartsWith builds a STARTS WITH string predicate.
func StartsWith(left, right Expression) Expression {
	return comparison(left, "STARTS WITH", right)
}

// EndsWith builds an ENDS WITH string predicate.
func EndsWith(left, right Expression) Expression {
	return comparison(left, "ENDS WITH", right)
}

// In builds a list membership predicate.
func In(left, right Expression) Expression {
	return comparison(left, "IN", right)
}

// IsNull builds an IS NULL check.
func IsNull(e Expression) Expression { return nullCheckExpr{operand: e} }

// IsNotNull builds an IS NOT NULL check.
func IsNotNull(e Expression) Expression { return nullCheckExpr{operand: e, negated: true} }
