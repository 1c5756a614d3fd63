package cypher

// Fluent comparison and predicate methods, mirrored on Property and
// Variable so conditions read left to right:
//
//	Prop("p", "age").Gt(Lit(30))
//	Var("friendCount").Gte(Param("min"))

// Eq compares for equality.
func (p Property) Eq(other Expression) Expression { return Eq(p, other) }

// Ne compares for inequality.
func (p Property) Ne(other Expression) Expression { return Ne(p, other) }

// Gt compares with >.
func (p Property) Gt(other Expression) Expression { return Gt(p, other) }

// Lt compares with <.
func (p Property) Lt(other Expression) Expression { return Lt(p, other) }

// Gte compares with >=.
func (p Property) Gte(other Expression) Expression { return Gte(p, other) }

// Lte compares with <=.
func (p Property) Lte(other Expression) Expression { return Lte(p, other) }

// Contains builds a CONTAINS predicate on this property.
func (p Property) Contains(other Expression) Expression { return Contains(p, other) }

// StartsWith builds a STARTS WITH predicate on this property.
func (p Property) StartsWith(other Expression) Expression { return StartsWith(p, other) }

// EndsWith builds an ENDS WITH predicate on this property.
func (p Property) EndsWith(other Expression) Expression { return EndsWith(p, other) }

// In builds a list membership predicate on this property.
func (p Property) In(other Expression) Expression { return In(p, other) }

// IsNull checks the property for NULL.
func (p Property) IsNull() Expression { return IsNull(p) }

// IsNotNull checks the property for NOT NULL.
func (p Property) IsNotNull() Expression { return IsNotNull(p) }

// Plus builds an addition with this property on the left.
func (p Property) Plus(other Expression) Expression { return Plus(p, other) }

// Minus builds a subtraction with this property on the left.
func (p Property) Minus(other Expression) Expression { return Minus(p, other) }

// Times builds a multiplication with this property on the left.
func (p Property) Times(other Expression) Expression { return Times(p, other) }

// Div builds a division with this property on the left.
func (p Property) Div(other Expression) Expression { return Div(p, other) }

// As attaches an alias, producing a projection item.
func (p Property) As(alias string) ProjectionItem { return As(p, alias) }

// Asc orders by this property ascending.
func (p Property) Asc() SortKey { return Asc(p) }

// Desc orders by this property descending.
func (p Property) Desc() SortKey { return Desc(p) }

// Eq compares for equality.
func (v Variable) Eq(other Expression) Expression { return Eq(v, other) }

// Ne compares for inequality.
func (v Variable) Ne(other Expression) Expression { return Ne(v, other) }

// Gt compares with >.
func (v Variable) Gt(other Expression) Expression { return Gt(v, other) }

// Lt compares with <.
func (v Variable) Lt(other Expression) Expression { return Lt(v, other) }

// Gte compares with >=.
func (v Variable) Gte(other Expression) Expression { return Gte(v, other) }

// Lte compares with <=.
func (v Variable) Lte(other Expression) Expression { return Lte(v, other) }

// Contains builds a CONTAINS predicate on this variable.
func (v Variable) Contains(other Expression) Expression { return Contains(v, other) }

// StartsWith builds a STARTS WITH predicate on this variable.
func (v Variable) StartsWith(other Expression) Expression { return StartsWith(v, other) }

// EndsWith builds an ENDS WITH predicate on this variable.
func (v Variable) EndsWith(other Expression) Expression { return EndsWith(v, other) }

// In builds a list membership predicate on this variable.
func (v Variable) In(other Expression) Expression { return In(v, other) }

// IsNull checks the variable for NULL.
func (v Variable) IsNull() Expression { return IsNull(v) }

// IsNotNull checks the variable for NOT NULL.
func (v Variable) IsNotNull() Expression { return IsNotNull(v) }

// Prop references a property on this variable.
func (v Variable) Prop(name string) Property { return Prop(v.Name, name) }

// As attaches an alias, producing a projection item.
func (v Variable) As(alias string) ProjectionItem { return As(v, alias) }

// Asc orders by this variable ascending.
func (v Variable) Asc() SortKey { return Asc(v) }

// Desc orders by this variable descending.
func (v Variable) Desc() SortKey { return Desc(v) }
