package cadcodec

import (
	"fmt"
	"os"

	"github.com/tsawler/cadcodec/docvalue"
	"github.com/tsawler/cadcodec/format"
	"github.com/tsawler/cadcodec/internal/codepage"
	"github.com/tsawler/cadcodec/model"
	"github.com/tsawler/cadcodec/reader"
	"github.com/tsawler/cadcodec/script"
	"github.com/tsawler/cadcodec/writer"
)

// Converter provides a fluent interface for reading a drawing in one format
// and writing it in another. Each configuration method returns a new
// Converter instance, making it safe for concurrent use and allowing method
// chaining.
type Converter struct {
	// Source (only one is set)
	filename string
	data     []byte
	doc      *model.Document
	hasDoc   bool

	// Input format; Unknown means detect
	from format.Format

	// Configuration
	options Options

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Converter with a copy of options.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename: c.filename,
		data:     c.data,
		doc:      c.doc,
		hasDoc:   c.hasDoc,
		from:     c.from,
		options:  c.options.clone(),
		err:      c.err,
	}
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// From sets the input format instead of detecting it.
//
// Example:
//
//	doc, _, err := cadcodec.FromBytes(data).From(format.YAML).Document()
func (c *Converter) From(f format.Format) *Converter {
	n := c.clone()
	n.from = f
	return n
}

// CodePage sets the code page used for interchange files that do not
// declare one in $DWGCODEPAGE.
func (c *Converter) CodePage(name string) *Converter {
	n := c.clone()
	if name != "" {
		if _, ok := codepage.Lookup(name); !ok {
			n.err = fmt.Errorf("unknown code page %q", name)
			return n
		}
	}
	n.options.codePage = name
	return n
}

// CodeWarnings enables or disables warnings for group codes the decoder
// does not use. They are enabled by default.
func (c *Converter) CodeWarnings(enabled bool) *Converter {
	n := c.clone()
	n.options.codeWarnings = enabled
	return n
}

// RawUnknown controls whether unrecognized entities keep their raw pairs.
// They do by default.
func (c *Converter) RawUnknown(enabled bool) *Converter {
	n := c.clone()
	n.options.rawUnknown = enabled
	return n
}

// DanglingWarning reports a dropped unpaired final line as a warning.
func (c *Converter) DanglingWarning() *Converter {
	n := c.clone()
	n.options.danglingWarning = true
	return n
}

// PassThrough writes unrecognized entities back to interchange text from
// their raw pairs instead of skipping them.
func (c *Converter) PassThrough() *Converter {
	n := c.clone()
	n.options.passThrough = true
	return n
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Document reads the source and returns the decoded document.
//
// Example:
//
//	doc, warnings, err := cadcodec.Open("plan.dxf").Document()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", cadcodec.FormatWarnings(warnings))
//	}
func (c *Converter) Document() (*model.Document, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}
	if c.hasDoc {
		return c.doc, nil, nil
	}

	data := c.data
	if c.filename != "" {
		b, err := os.ReadFile(c.filename)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", c.filename, err)
		}
		data = b
	}

	from := c.sourceFormat(data)
	switch from {
	case format.DXF:
		text, _, err := codepage.Decode(data, c.options.codePage)
		if err != nil {
			return nil, nil, err
		}
		res := reader.Parse(text, c.readerOptions()...)
		return res.Document, res.Warnings, nil

	case format.JSON:
		doc, err := docvalue.FromJSON(data)
		if err != nil {
			return nil, nil, err
		}
		return doc, nil, nil

	case format.YAML:
		doc, err := docvalue.FromYAML(data)
		if err != nil {
			return nil, nil, err
		}
		return doc, nil, nil

	default:
		return nil, nil, fmt.Errorf("%w: cannot read %s input", ErrUnsupportedFormat, from)
	}
}

// DXF reads the source and returns it as interchange text.
//
// Example:
//
//	text, warnings, err := cadcodec.Open("plan.json").DXF()
func (c *Converter) DXF() (string, []Warning, error) {
	out, warnings, err := c.To(format.DXF)
	return string(out), warnings, err
}

// Script reads the source and returns it as a command script.
//
// Example:
//
//	text, warnings, err := cadcodec.Open("plan.dxf").Script()
func (c *Converter) Script() (string, []Warning, error) {
	out, warnings, err := c.To(format.Script)
	return string(out), warnings, err
}

// JSON reads the source and returns it as a JSON document value.
func (c *Converter) JSON() ([]byte, []Warning, error) {
	return c.To(format.JSON)
}

// YAML reads the source and returns it as a YAML document value.
func (c *Converter) YAML() ([]byte, []Warning, error) {
	return c.To(format.YAML)
}

// To reads the source and writes it in the given format. The warnings of
// both directions are returned together, decoding first.
func (c *Converter) To(to format.Format) ([]byte, []Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return nil, nil, err
	}

	switch to {
	case format.DXF:
		var opts []writer.Option
		if c.options.passThrough {
			opts = append(opts, writer.WithPassThrough())
		}
		text, more, err := writer.Encode(doc, opts...)
		if err != nil {
			return nil, warnings, err
		}
		return []byte(text), append(warnings, more...), nil

	case format.Script:
		text, more, err := script.Encode(doc)
		if err != nil {
			return nil, warnings, err
		}
		return []byte(text), append(warnings, more...), nil

	case format.JSON:
		out, err := docvalue.ToJSON(doc)
		return out, warnings, err

	case format.YAML:
		out, err := docvalue.ToYAML(doc)
		return out, warnings, err

	default:
		return nil, warnings, fmt.Errorf("%w: cannot write %s output", ErrUnsupportedFormat, to)
	}
}

// Summary reads the source and returns the entity count per kind and the
// layers in table order.
func (c *Converter) Summary() (map[model.Kind]int, []string, []Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return nil, nil, nil, err
	}
	return doc.CountByKind(), doc.Layers(), warnings, nil
}

// sourceFormat resolves the input format: explicit, then by extension,
// then by content.
func (c *Converter) sourceFormat(data []byte) format.Format {
	if c.from != format.Unknown {
		return c.from
	}
	if c.filename != "" {
		if f := format.Detect(c.filename); f != format.Unknown {
			return f
		}
	}
	return format.DetectFromMagic(data)
}

func (c *Converter) readerOptions() []reader.Option {
	return []reader.Option{
		reader.WithCodeWarnings(c.options.codeWarnings),
		reader.WithRawUnknown(c.options.rawUnknown),
		reader.WithDanglingWarning(c.options.danglingWarning),
	}
}
