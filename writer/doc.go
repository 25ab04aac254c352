// Package writer encodes a [model.Document] as CAD interchange (DXF) text.
//
// The output always has the same outline: a HEADER with $ACADVER and
// $INSUNITS, a TABLES section holding one LAYER record per layer in
// [model.Document.Layers] order, the ENTITIES section and the EOF marker.
//
//	text, warnings, err := writer.Encode(doc)
//
// LINE, INSERT, CIRCLE, ARC, LWPOLYLINE and POLYLINE are written. Other
// kinds are skipped with a WarnUnsupportedKind warning, except that
// [WithPassThrough] writes [model.Unknown] entities back from their raw
// pairs.
//
// Numbers use the shortest decimal form that parses back to the same
// float64, so decoding the output reproduces the document exactly and
// encoding it again reproduces the same bytes.
package writer
