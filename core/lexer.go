package core

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Pair is one group-code/value pair of the interchange format.
type Pair struct {
	Code  string
	Value string
}

// Is reports whether the pair has the given code and value.
func (p Pair) Is(code, value string) bool {
	return p.Code == code && p.Value == value
}

// CodeInt returns the group code as an integer.
func (p Pair) CodeInt() (int, bool) {
	n, err := strconv.Atoi(p.Code)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsEntityStart reports whether the pair is a 0-code record delimiter.
func (p Pair) IsEntityStart() bool {
	return p.Code == "0"
}

// Lexer splits interchange text into group-code pairs. Lines end at LF, CR
// or CR LF and are trimmed of surrounding whitespace.
type Lexer struct {
	reader   *bufio.Reader
	line     int
	dangling bool
	done     bool
}

// NewLexer creates a new lexer
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(r),
	}
}

// Next returns the next pair, or io.EOF when the input is exhausted. A final
// code line without a value line is dropped and recorded as dangling.
func (l *Lexer) Next() (Pair, error) {
	if l.done {
		return Pair{}, io.EOF
	}

	// Blank lines in code position carry nothing; skipping them keeps the
	// pairing aligned for hand-edited files.
	var code string
	for {
		s, ok, err := l.readLine()
		if err != nil {
			return Pair{}, err
		}
		if !ok {
			l.done = true
			return Pair{}, io.EOF
		}
		if s != "" {
			code = s
			break
		}
	}

	value, ok, err := l.readLine()
	if err != nil {
		return Pair{}, err
	}
	if !ok {
		l.done = true
		l.dangling = true
		return Pair{}, io.EOF
	}

	return Pair{Code: code, Value: value}, nil
}

// Line returns the number of lines consumed so far.
func (l *Lexer) Line() int {
	return l.line
}

// Dangling reports whether an unpaired final line was dropped.
func (l *Lexer) Dangling() bool {
	return l.dangling
}

// readLine reads one line. ok is false when no line remains.
func (l *Lexer) readLine() (string, bool, error) {
	var sb strings.Builder
	read := false
	for {
		b, err := l.reader.ReadByte()
		if err == io.EOF {
			if !read {
				return "", false, nil
			}
			break
		}
		if err != nil {
			return "", false, err
		}
		read = true

		if b == '\n' {
			break
		}
		if b == '\r' {
			// Handle CR LF sequence
			next, err := l.reader.Peek(1)
			if err == nil && next[0] == '\n' {
				l.reader.ReadByte()
			}
			break
		}
		sb.WriteByte(b)
	}

	l.line++
	return strings.TrimSpace(sb.String()), true, nil
}

// Tokenize splits text into an ordered list of pairs. Empty input yields an
// empty list and a dangling final line is discarded.
func Tokenize(text string) []Pair {
	pairs, _ := TokenizeStats(text)
	return pairs
}

// TokenizeStats is Tokenize that also reports whether a dangling final line
// was dropped.
func TokenizeStats(text string) ([]Pair, bool) {
	lexer := NewLexer(strings.NewReader(text))
	pairs := make([]Pair, 0, strings.Count(text, "\n")/2+1)
	for {
		p, err := lexer.Next()
		if err != nil {
			// strings.Reader never fails, so any error is io.EOF
			break
		}
		pairs = append(pairs, p)
	}
	return pairs, lexer.Dangling()
}
