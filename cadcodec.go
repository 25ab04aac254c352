// Package cadcodec converts CAD drawings between interchange (DXF) text,
// procedural command scripts and JSON or YAML document values.
//
// Basic usage:
//
//	text, warnings, err := cadcodec.Open("plan.dxf").Script()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", cadcodec.FormatWarnings(warnings))
//	}
//
// With options:
//
//	out, _, err := cadcodec.Open("legacy.dxf").
//	    CodePage("ANSI_1251").
//	    PassThrough().
//	    DXF()
//
// For direct access to the codec, the reader, writer, script and docvalue
// packages are also available.
package cadcodec

import (
	"errors"

	"github.com/tsawler/cadcodec/format"
	"github.com/tsawler/cadcodec/internal/codepage"
	"github.com/tsawler/cadcodec/model"
	"github.com/tsawler/cadcodec/reader"
	"github.com/tsawler/cadcodec/script"
	"github.com/tsawler/cadcodec/writer"
)

// Warning is a non-fatal problem found while decoding or encoding.
type Warning = model.Warning

// ErrUnsupportedFormat is returned when a format cannot be read or written.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Open returns a Converter that reads filename. The input format is taken
// from the file extension, or from the content when the extension is not
// recognized.
//
// Example:
//
//	doc, warnings, err := cadcodec.Open("plan.dxf").Document()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes returns a Converter over data. The input format is detected
// from the content unless set with From.
func FromBytes(data []byte) *Converter {
	return &Converter{
		data:    data,
		options: defaultOptions(),
	}
}

// FromDocument returns a Converter that encodes an existing document.
func FromDocument(doc *model.Document) *Converter {
	return &Converter{
		doc:     doc,
		hasDoc:  true,
		options: defaultOptions(),
	}
}

// Decode parses interchange text. It never fails; problems are returned as
// warnings.
func Decode(text string) (*model.Document, []Warning) {
	return reader.Decode(text)
}

// DecodeBytes parses interchange bytes, converting them to UTF-8 first
// according to the file's $DWGCODEPAGE and $ACADVER.
func DecodeBytes(data []byte) (*model.Document, []Warning, error) {
	text, _, err := codepage.Decode(data, "")
	if err != nil {
		return nil, nil, err
	}
	doc, warnings := reader.Decode(text)
	return doc, warnings, nil
}

// EncodeDXF writes doc as interchange text.
func EncodeDXF(doc *model.Document, opts ...writer.Option) (string, []Warning, error) {
	return writer.Encode(doc, opts...)
}

// EncodeScript writes doc as a command script.
func EncodeScript(doc *model.Document) (string, []Warning, error) {
	return script.Encode(doc)
}

// Convert reads data in one format and writes it in another. from may be
// format.Unknown to detect the input format from the content.
//
// Example:
//
//	out, warnings, err := cadcodec.Convert(dxfBytes, format.DXF, format.JSON)
func Convert(data []byte, from, to format.Format) ([]byte, []Warning, error) {
	return FromBytes(data).From(from).To(to)
}

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	return model.FormatWarnings(warnings)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := cadcodec.Must(docvalue.FromJSON(data))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to DXF() or Script() and panics
// if the error is non-nil. It discards warnings and returns just the value.
// It is intended for use in scripts or tests where error handling would be cumbersome.
//
// Example:
//
//	text := cadcodec.MustText(cadcodec.Open("plan.dxf").Script())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
