// Package codepage converts raw interchange-file bytes into UTF-8 text.
//
// Files written by releases before AC1021 (2007) are encoded in the code
// page named by the $DWGCODEPAGE header variable and may carry non-ASCII
// characters as \U+XXXX escapes. Later releases are always UTF-8.
package codepage

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/tsawler/cadcodec/core"
)

// UTF8 is the name used for files that need no conversion.
const UTF8 = "UTF-8"

// firstUTF8Version is the first $ACADVER that is always UTF-8.
const firstUTF8Version = "AC1021"

// sniffLimit bounds how far into the file the header is searched.
const sniffLimit = 64 << 10

var codePages = map[string]encoding.Encoding{
	"ANSI_874":  charmap.Windows874,
	"ANSI_1250": charmap.Windows1250,
	"ANSI_1251": charmap.Windows1251,
	"ANSI_1252": charmap.Windows1252,
	"ANSI_1253": charmap.Windows1253,
	"ANSI_1254": charmap.Windows1254,
	"ANSI_1255": charmap.Windows1255,
	"ANSI_1256": charmap.Windows1256,
	"ANSI_1257": charmap.Windows1257,
	"ANSI_1258": charmap.Windows1258,
	"DOS437":    charmap.CodePage437,
	"DOS850":    charmap.CodePage850,
	"DOS852":    charmap.CodePage852,
	"DOS855":    charmap.CodePage855,
	"DOS860":    charmap.CodePage860,
	"DOS863":    charmap.CodePage863,
	"DOS865":    charmap.CodePage865,
	"DOS866":    charmap.CodePage866,
	"ISO8859-1": charmap.ISO8859_1,
	"ISO8859-2": charmap.ISO8859_2,
	"ISO8859-5": charmap.ISO8859_5,
	"ISO8859-7": charmap.ISO8859_7,
	"ISO8859-9": charmap.ISO8859_9,
}

// Lookup returns the encoding for a $DWGCODEPAGE name. Names are matched
// case-insensitively. UTF-8 returns a nil encoding and true.
func Lookup(name string) (encoding.Encoding, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	switch name {
	case "UTF-8", "UTF8":
		return nil, true
	}
	enc, ok := codePages[name]
	return enc, ok
}

// Header holds the header variables that decide the encoding.
type Header struct {
	Version  string
	CodePage string
}

// Sniff reads $ACADVER and $DWGCODEPAGE from the start of data. Both are
// ASCII so they can be found before the encoding is known.
func Sniff(data []byte) Header {
	if len(data) > sniffLimit {
		data = data[:sniffLimit]
	}

	var h Header
	pairs := core.Tokenize(string(data))
	for i := 0; i+1 < len(pairs); i++ {
		p := pairs[i]
		switch {
		case p.Is("9", "$ACADVER"):
			h.Version = pairs[i+1].Value
		case p.Is("9", "$DWGCODEPAGE"):
			h.CodePage = pairs[i+1].Value
		case p.Is("0", "ENDSEC"):
			return h
		}
	}
	return h
}

// Decode returns data as UTF-8 text and the name of the code page it was
// read as. The choice is, in order: UTF-8 when data has a UTF-8 byte order
// mark or the file version is AC1021 or later, the $DWGCODEPAGE of the
// file, fallback, UTF-8 when data is valid UTF-8, and ANSI_1252 otherwise.
// \U+XXXX escapes are expanded in files that are not UTF-8 by version.
func Decode(data []byte, fallback string) (string, string, error) {
	if rest, ok := bytes.CutPrefix(data, []byte{0xEF, 0xBB, 0xBF}); ok {
		return string(rest), UTF8, nil
	}

	h := Sniff(data)
	if h.Version >= firstUTF8Version {
		return string(data), UTF8, nil
	}

	name := ""
	for _, candidate := range []string{h.CodePage, fallback} {
		if _, ok := Lookup(candidate); ok {
			name = strings.ToUpper(strings.TrimSpace(candidate))
			break
		}
	}
	if name == "" {
		name = "ANSI_1252"
		if utf8.Valid(data) {
			name = UTF8
		}
	}

	text := string(data)
	if enc, _ := Lookup(name); enc != nil {
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", name, fmt.Errorf("codepage: decode %s: %w", name, err)
		}
		text = string(out)
	}
	return Unescape(text), name, nil
}

// Unescape expands \U+XXXX sequences into the characters they name.
// Malformed sequences are left as they are.
func Unescape(s string) string {
	if !strings.Contains(s, `\U+`) && !strings.Contains(s, `\u+`) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		if i+7 <= len(s) && s[i] == '\\' && (s[i+1] == 'U' || s[i+1] == 'u') && s[i+2] == '+' {
			if r, err := strconv.ParseUint(s[i+3:i+7], 16, 32); err == nil {
				sb.WriteRune(rune(r))
				i += 7
				continue
			}
		}
		sb.WriteByte(s[i])
		i++
	}
	return sb.String()
}
