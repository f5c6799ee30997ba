// Package fakeskema generates fake documents from a declarative schema.
//
// - A Schema is an ordered list of named Nodes; each Node carries a Kind tag,
//   nullability settings and a kind-specific Options payload.
// - An Interpreter walks the schema once, at construction, and caches the
//   resulting Document (field order follows declaration order).
// - Option values may be reference expressions ("#ref.<key>") resolved
//   against a caller-supplied References table.
// - Leaf values come from a Generator; the default one lives in faker/.
//
// Design policy:
// - Keep the interpreter and its public types in the root package.
// - Place schema loading under schemaio/, builders under dsl/, output sinks
//   under sink/ and the CLI under cmd/fakeskema.
// - Failures are reported as Issues with JSON Pointer paths.
//
// Typical usage:
//
//	s := dsl.Schema().
//		Field("id", dsl.NumericString(1, 99999)).
//		Field("tags", dsl.Array(dsl.Enum("a", "b"), 0, 3)).
//		MustBuildSchema()
//	in, err := fakeskema.New(s, 0.1, nil, fakeskema.WithSeed(42))
//	doc := in.Document()
package fakeskema
