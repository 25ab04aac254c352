package format

import (
	"bytes"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{DXF, "DXF"},
		{Script, "Script"},
		{JSON, "JSON"},
		{YAML, "YAML"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{DXF, ".dxf"},
		{Script, ".scr"},
		{JSON, ".json"},
		{YAML, ".yaml"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"plan.dxf", DXF},
		{"plan.DXF", DXF},
		{"plan.Dxf", DXF},
		{"plan.scr", Script},
		{"plan.SCR", Script},
		{"plan.json", JSON},
		{"plan.yaml", YAML},
		{"plan.yml", YAML},
		{"plan.dwg", Unknown},
		{"plan", Unknown},
		{"", Unknown},
		{"/path/to/file.dxf", DXF},
		{"/path/to/file.v2.json", JSON},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"dxf", DXF, false},
		{"DXF", DXF, false},
		{"script", Script, false},
		{"scr", Script, false},
		{" json ", JSON, false},
		{"yml", YAML, false},
		{"pdf", Unknown, true},
		{"", Unknown, true},
	}

	for _, tt := range tests {
		got, err := ParseTarget(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTarget(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseTarget(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{
			name: "DXF section start",
			data: []byte("  0\nSECTION\n  2\nHEADER\n"),
			want: DXF,
		},
		{
			name: "DXF with CRLF",
			data: []byte("0\r\nSECTION\r\n"),
			want: DXF,
		},
		{
			name: "DXF comment",
			data: []byte("999\nexported\n0\nSECTION\n"),
			want: DXF,
		},
		{
			name: "DXF with BOM",
			data: append([]byte{0xEF, 0xBB, 0xBF}, []byte("0\nSECTION\n")...),
			want: DXF,
		},
		{
			name: "zero without section",
			data: []byte("0\nLINE\n"),
			want: Unknown,
		},
		{
			name: "JSON object",
			data: []byte("\n  {\"entities\": []}"),
			want: JSON,
		},
		{
			name: "YAML document marker",
			data: []byte("---\nentities: []\n"),
			want: YAML,
		},
		{
			name: "YAML entities key",
			data: []byte("entities:\n  - type: LINE\n"),
			want: YAML,
		},
		{
			name: "script insert",
			data: []byte("-INSERT \"CHAIR\" 1,2 1 1 45\n"),
			want: Script,
		},
		{
			name: "script line",
			data: []byte("LINE 0,0 10,0\n"),
			want: Script,
		},
		{
			name: "empty data",
			data: []byte{},
			want: Unknown,
		},
		{
			name: "random data",
			data: []byte{0x01, 0x02, 0x03, 0x04, 0x05},
			want: Unknown,
		},
		{
			name: "text file",
			data: []byte("Hello, World!"),
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader_DXF(t *testing.T) {
	data := []byte("0\nSECTION\n2\nENTITIES\n0\nENDSEC\n0\nEOF\n")

	format, err := DetectFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != DXF {
		t.Errorf("DetectFromReader() = %v, want DXF", format)
	}
}

func TestDetectFromReader_Long(t *testing.T) {
	data := append([]byte("{\"entities\": ["), bytes.Repeat([]byte(" "), 4096)...)

	format, err := DetectFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != JSON {
		t.Errorf("DetectFromReader() = %v, want JSON", format)
	}
}

func TestDetectFromReader_Unknown(t *testing.T) {
	data := []byte("Hello, World! This is plain text.")

	format, err := DetectFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != Unknown {
		t.Errorf("DetectFromReader() = %v, want Unknown", format)
	}
}
