// Package cypher builds read-only Cypher queries programmatically.
//
// Queries are assembled from immutable value objects: expressions,
// patterns and clauses. Every builder call returns a new object and never
// mutates its inputs, so a partial chain can be shared as the prefix of
// several independent continuations, from several goroutines, with no
// synchronization.
//
//	q, _ := cypher.Match(cypher.Node("p", "Person"))
//	q, _ = q.Where(cypher.Prop("p", "age").Gt(cypher.Lit(30)))
//	q, _ = q.Return(cypher.Item(cypher.Prop("p", "name")))
//	text, _ := cypher.Render(q)
//
//	// MATCH (p:Person)
//	// WHERE p.age > 30
//	// RETURN p.name
//
// The builder guarantees syntactic well-formedness only. Label, property,
// function and procedure names are carried verbatim into the output;
// checking them against a live schema is out of scope, as is executing the
// query anywhere.
package cypher
