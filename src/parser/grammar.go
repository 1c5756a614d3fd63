package parser

// The grammar mirrors the read-only clause surface of the builder: USE,
// MATCH, OPTIONAL MATCH, WHERE, WITH, UNWIND, CALL ... YIELD, RETURN and
// the ORDER BY / SKIP / LIMIT suffix, with UNION between statements.
// Quantified path patterns are builder-only and not parsed.

type Statement struct {
	First *SingleQuery `@@`
	Rest  []*UnionPart `@@*`
}

type UnionPart struct {
	All   bool         `"UNION" @"ALL"?`
	Query *SingleQuery `@@`
}

type SingleQuery struct {
	Clauses []*Clause `@@+`
}

type Clause struct {
	Use    *UseClause    `  @@`
	Match  *MatchClause  `| @@`
	Where  *WhereClause  `| @@`
	With   *WithClause   `| @@`
	Unwind *UnwindClause `| @@`
	Call   *CallClause   `| @@`
	Yield  *YieldClause  `| @@`
	Return *ReturnClause `| @@`
	Order  *OrderClause  `| @@`
	Skip   *SkipClause   `| @@`
	Limit  *LimitClause  `| @@`
}

type UseClause struct {
	Target *DottedName `"USE" @@`
}

type DottedName struct {
	Parts []string `@Ident ("." @Ident)*`
}

type MatchClause struct {
	Optional bool           `@"OPTIONAL"?`
	Patterns []*PathGrammar `"MATCH" @@ ("," @@)*`
}

type PathGrammar struct {
	Variable string         `(@Ident "=")?`
	Elements []*PathElement `@@+`
}

type PathElement struct {
	Node *NodeGrammar `  @@`
	Rel  *RelGrammar  `| @@`
}

type NodeGrammar struct {
	Variable string        `"(" @Ident?`
	Labels   *LabelOr      `(":" @@)?`
	Props    *PropsGrammar `@@?`
	Where    *Expr         `("WHERE" @@)? ")"`
}

// Label expressions: ! binds tighter than &, & tighter than |.

type LabelOr struct {
	Left  *LabelAnd   `@@`
	Right []*LabelAnd `("|" @@)*`
}

type LabelAnd struct {
	Left  *LabelNot   `@@`
	Right []*LabelNot `("&" @@)*`
}

type LabelNot struct {
	Negated bool     `@"!"?`
	Atom    string   `( @Ident`
	Group   *LabelOr `| "(" @@ ")" )`
}

type PropsGrammar struct {
	Entries []*PropEntry `"{" (@@ ("," @@)*)? "}"`
}

type PropEntry struct {
	Key   string `@Ident ":"`
	Value *Expr  `@@`
}

type RelGrammar struct {
	Left   bool       `@"<"? "-"`
	Detail *RelDetail `("[" @@ "]")?`
	Right  bool       `"-" @">"?`
}

type RelDetail struct {
	Variable string        `@Ident?`
	Type     string        `(":" @Ident)?`
	Hops     *HopsGrammar  `@@?`
	Props    *PropsGrammar `@@?`
	Where    *Expr         `("WHERE" @@)?`
}

type HopsGrammar struct {
	Star bool `@"*"`
	Min  *int `@Int?`
	Dots bool `@Range?`
	Max  *int `@Int?`
}

type WhereClause struct {
	Cond *Expr `"WHERE" @@`
}

type WithClause struct {
	Distinct bool              `"WITH" @"DISTINCT"?`
	Items    []*ProjectionExpr `@@ ("," @@)*`
}

type UnwindClause struct {
	Expr  *Expr  `"UNWIND" @@`
	Alias string `"AS" @Ident`
}

type CallClause struct {
	Optional bool        `@"OPTIONAL"?`
	Name     *DottedName `"CALL" @@`
	Args     []*Expr     `("(" (@@ ("," @@)*)? ")")?`
}

type YieldClause struct {
	Wildcard bool              `"YIELD" ( @"*"`
	Items    []*ProjectionExpr `| @@ ("," @@)* )`
}

type ReturnClause struct {
	Distinct bool              `"RETURN" @"DISTINCT"?`
	Items    []*ProjectionExpr `@@ ("," @@)*`
}

type ProjectionExpr struct {
	Star  bool    `  @"*"`
	Expr  *Expr   `| @@`
	Alias *string `("AS" @Ident)?`
}

type OrderClause struct {
	Keys []*SortKeyGrammar `"ORDER" "BY" @@ ("," @@)*`
}

type SortKeyGrammar struct {
	Expr      *Expr  `@@`
	Direction string `@("ASC" | "DESC")?`
}

type SkipClause struct {
	Amount *Expr `"SKIP" @@`
}

type LimitClause struct {
	Amount *Expr `"LIMIT" @@`
}

// Expressions, loosest to tightest binding.

type Expr struct {
	Or *OrExpr `@@`
}

type OrExpr struct {
	Left  *AndExpr   `@@`
	Right []*AndExpr `("OR" @@)*`
}

type AndExpr struct {
	Left  *NotExpr   `@@`
	Right []*NotExpr `("AND" @@)*`
}

type NotExpr struct {
	Nots    []string    `@"NOT"*`
	Operand *Comparison `@@`
}

type Comparison struct {
	Left      *AddExpr        `@@`
	Rest      *ComparisonRest `@@?`
	NullCheck *NullCheck      `@@?`
}

type ComparisonRest struct {
	Op        string   `( @(">=" | "<=" | "<>" | ">" | "<" | "=" | "IN" | "CONTAINS")`
	StartsEnd string   `| @("STARTS" | "ENDS") "WITH" )`
	Right     *AddExpr `@@`
}

type NullCheck struct {
	Negated bool `"IS" @"NOT"? "NULL"`
}

type AddExpr struct {
	Left  *MulExpr       `@@`
	Right []*AddExprTail `@@*`
}

type AddExprTail struct {
	Op      string   `@("+" | "-")`
	Operand *MulExpr `@@`
}

type MulExpr struct {
	Left  *UnaryExpr     `@@`
	Right []*MulExprTail `@@*`
}

type MulExprTail struct {
	Op      string     `@("*" | "/" | "%")`
	Operand *UnaryExpr `@@`
}

type UnaryExpr struct {
	Negated bool  `@"-"?`
	Operand *Atom `@@`
}

type Atom struct {
	Param    *string   `  @Param`
	String   *string   `| @String`
	Float    *float64  `| @Float`
	Int      *int      `| @Int`
	Keyword  string    `| @("TRUE" | "FALSE" | "NULL")`
	Func     *FuncCall `| @@`
	Property *PropRef  `| @@`
	Variable *string   `| @Ident`
	Group    *Expr     `| "(" @@ ")"`
}

type FuncCall struct {
	Name     *DottedName `@@`
	Distinct bool        `"(" @"DISTINCT"?`
	Star     bool        `( @"*"`
	Args     []*Expr     `| (@@ ("," @@)*)? ) ")"`
}

type PropRef struct {
	Variable string `@Ident`
	Name     string `"." @Ident`
}
