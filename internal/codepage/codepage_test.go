package codepage

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func header(version, codepage string) string {
	s := "0\nSECTION\n2\nHEADER\n"
	if version != "" {
		s += "9\n$ACADVER\n1\n" + version + "\n"
	}
	if codepage != "" {
		s += "9\n$DWGCODEPAGE\n3\n" + codepage + "\n"
	}
	return s + "0\nENDSEC\n"
}

func TestSniff(t *testing.T) {
	h := Sniff([]byte(header("AC1015", "ANSI_1251") + "0\nSECTION\n2\nENTITIES\n"))
	if h.Version != "AC1015" || h.CodePage != "ANSI_1251" {
		t.Errorf("Sniff() = %+v", h)
	}

	// variables after the HEADER section are ignored
	h = Sniff([]byte(header("", "") + "9\n$DWGCODEPAGE\n3\nDOS850\n"))
	if h.CodePage != "" {
		t.Errorf("expected no code page, got %q", h.CodePage)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"ANSI_1252", true},
		{"ansi_1250", true},
		{" DOS437 ", true},
		{"UTF-8", true},
		{"utf8", true},
		{"ANSI_9999", false},
		{"", false},
	}
	for _, tt := range tests {
		if _, ok := Lookup(tt.name); ok != tt.ok {
			t.Errorf("Lookup(%q) ok = %v, want %v", tt.name, ok, tt.ok)
		}
	}
}

func TestDecode(t *testing.T) {
	body := "0\nSECTION\n2\nENTITIES\n0\nTEXT\n1\n"

	latin1, err := charmap.Windows1252.NewEncoder().String("Café")
	if err != nil {
		t.Fatal(err)
	}
	cyrillic, err := charmap.Windows1251.NewEncoder().String("Дом")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		data     []byte
		fallback string
		wantText string
		wantPage string
	}{
		{
			name:     "declared code page",
			data:     []byte(header("AC1015", "ANSI_1251") + body + cyrillic + "\n"),
			wantText: "Дом",
			wantPage: "ANSI_1251",
		},
		{
			name:     "fallback code page",
			data:     []byte(header("AC1015", "") + body + latin1 + "\n"),
			fallback: "ansi_1252",
			wantText: "Café",
			wantPage: "ANSI_1252",
		},
		{
			name:     "unrecognized code page uses fallback",
			data:     []byte(header("AC1015", "ANSI_9999") + body + cyrillic + "\n"),
			fallback: "ANSI_1251",
			wantText: "Дом",
			wantPage: "ANSI_1251",
		},
		{
			name:     "modern version is UTF-8",
			data:     []byte(header("AC1027", "ANSI_1252") + body + "Café\n"),
			wantText: "Café",
			wantPage: UTF8,
		},
		{
			name:     "valid UTF-8 without header",
			data:     []byte(body + "Café\n"),
			wantText: "Café",
			wantPage: UTF8,
		},
		{
			name:     "invalid UTF-8 without header",
			data:     []byte(body + latin1 + "\n"),
			wantText: "Café",
			wantPage: "ANSI_1252",
		},
		{
			name:     "byte order mark",
			data:     append([]byte{0xEF, 0xBB, 0xBF}, []byte(body+"Café\n")...),
			wantText: "Café",
			wantPage: UTF8,
		},
		{
			name:     "unicode escapes",
			data:     []byte(header("AC1015", "ANSI_1252") + body + `Caf\U+00E9` + "\n"),
			wantText: "Café",
			wantPage: "ANSI_1252",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, page, err := Decode(tt.data, tt.fallback)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if page != tt.wantPage {
				t.Errorf("code page = %q, want %q", page, tt.wantPage)
			}
			want := body + tt.wantText + "\n"
			if len(text) < len(want) || text[len(text)-len(want):] != want {
				t.Errorf("Decode() text ends %q, want suffix %q", text, want)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{`\U+00B0`, "°"},
		{`45\u+00b0 angle`, "45° angle"},
		{`\U+03A9\U+03A9`, "ΩΩ"},
		{`\U+ZZZZ`, `\U+ZZZZ`},
		{`\U+00`, `\U+00`},
		{`C:\Users`, `C:\Users`},
	}
	for _, tt := range tests {
		if got := Unescape(tt.in); got != tt.want {
			t.Errorf("Unescape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
