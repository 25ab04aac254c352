// Package core provides the low-level primitives of the CAD interchange
// (DXF) text format.
//
// The format is a sequence of line pairs. The first line of a pair is a
// numeric group code, the second is its value:
//
//	0
//	SECTION
//	2
//	ENTITIES
//
// # Tokenizing
//
// [Tokenize] splits text into [Pair] values. The [Lexer] type does the
// same over an io.Reader. A final line that has no value line is dropped
// silently; [TokenizeStats] and [Lexer.Dangling] report when that happened.
//
// # Sections
//
// [SectionMachine] is a small finite-state machine that tracks which
// section (HEADER, TABLES, BLOCKS, ENTITIES or any other named section) a
// pair belongs to. It recovers from missing ENDSEC markers so that a
// malformed section never desynchronizes the rest of the file.
// [SplitSections] groups a pair stream into [Section] payloads.
//
// # Numbers
//
// [ParseFloat] and [ParseInt] parse values and reject NaN and infinities.
// [FormatFloat] writes the shortest decimal that round-trips exactly.
package core
