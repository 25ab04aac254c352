// Package model provides the normalized representation of a CAD drawing.
//
// A [Document] is the single hand-off point between the decoder (package
// reader) and the encoders (packages writer and script). It holds an
// ordered list of [Entity] values and optional [Metadata].
//
// # Entities
//
// [Entity] is a closed sum type. The variants are:
//
//   - [Line], [Insert], [Circle], [Arc]
//   - [Polyline] (LWPOLYLINE and POLYLINE)
//   - [Text], [MText], [Dimension], [Ellipse], [Spline]
//   - [Unknown] for entity names without a variant, carrying the raw pairs
//
// Use a type switch to handle them:
//
//	for _, e := range doc.Entities {
//	    switch e := e.(type) {
//	    case *model.Line:
//	        fmt.Println(e.Start, e.End)
//	    case *model.Unknown:
//	        fmt.Println("skipping", e.Name)
//	    }
//	}
//
// The New* constructors return variants carrying the documented defaults:
// layer "0", unit scale, unit radius and so on.
//
// # Diagnostics
//
// Decoders and encoders never fail on defaultable problems. They return a
// list of [Warning] values instead. Structurally invalid input produces a
// [*SchemaError].
package model
