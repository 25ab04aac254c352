// Package reader decodes CAD interchange (DXF) text into a [model.Document].
//
// Decoding never fails. The text is tokenized into group-code pairs, the
// ENTITIES section is isolated by the section state machine in package
// core, and each entity is dispatched on its type name to a decoder that
// knows its group codes. Anything the decoder cannot use is reported as a
// [model.Warning]:
//
//	doc, warnings := reader.Decode(text)
//	if len(warnings) > 0 {
//	    log.Println(model.FormatWarnings(warnings))
//	}
//
// # Entity Types
//
// LINE, INSERT, CIRCLE, ARC, LWPOLYLINE, POLYLINE (with its VERTEX and
// SEQEND records), TEXT, MTEXT, DIMENSION, ELLIPSE and SPLINE decode into
// their [model] variants. Other names decode to [model.Unknown] with the
// layer and the raw pairs of the entity body.
//
// # Defaults
//
// A field whose group code is missing keeps the default of its variant
// (layer "0", unit scale, rotation 0, ...). A numeric value that does not
// parse, or parses to NaN or an infinity, also keeps the default and
// produces a WarnMalformedNumber warning.
//
// # Full Results
//
// [Parse] returns a [Result] with the HEADER variables, the section names
// and whether a dangling final line was dropped, in addition to the
// document and warnings.
package reader
