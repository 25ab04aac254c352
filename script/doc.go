// Package script encodes a [model.Document] as a procedural command script
// that a CAD application replays to rebuild the geometry.
//
// Each supported entity becomes one line:
//
//	LINE 0,0 10,0
//	-INSERT "CHAIR" 1,2 1 1 45
//	CIRCLE 5,5 2.5
//	PLINE 0,0 10,0 10,10 C
//
// The grammar is two-dimensional: Z coordinates and the Z scale factor are
// dropped. Polyline bulges are flattened to straight segments and reported
// with a WarnLossy warning. Every other kind is skipped with a
// WarnUnsupportedKind warning.
package script
