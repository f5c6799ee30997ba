// Package dsl builds fakeskema schemas in Go code.
//
// Overview
//   - Leaves: Bool()/URL()/Enum()/EnumRef()/Timestamp()/Text()/NumericString()/Number()/File().
//   - Composites: Array(elem, min, max), Delimited(delim, parts...), Format(format, args...).
//   - Objects: Object().Field(...).Nullable(...).MustBuild() returns a Node;
//     Schema().Field(...).MustBuildSchema() returns a root Schema.
//   - References: Ref(key) yields "#ref.<key>" for any bound or option.
//
// Quickstart
//
//	s := dsl.Schema().
//		Field("name", dsl.Text(3, 20)).
//		Field("role", dsl.EnumRef("roles")).Nullable(0.2).
//		Field("address", dsl.Object().
//			Field("zip", dsl.NumericString(10000, 99999)).
//			MustBuild()).
//		MustBuildSchema()
package dsl
