package writer

import (
	"fmt"
	"math"
	"strings"

	"github.com/tsawler/cadcodec/core"
	"github.com/tsawler/cadcodec/model"
)

// Format version and units written into every HEADER.
const (
	ACADVersion = "AC1015"
	// InsUnits 4 is millimeters.
	InsUnits = 4
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// Option configures encoding.
type Option func(*options)

type options struct {
	passThrough bool
}

// WithPassThrough writes Unknown entities back from their raw pairs
// instead of skipping them.
func WithPassThrough() Option {
	return func(o *options) { o.passThrough = true }
}

// Encode serializes doc as interchange text: a fixed HEADER, a TABLES
// section with one LAYER record per layer, the ENTITIES section and the
// EOF marker. Entities of kinds the encoder cannot write are skipped and
// reported as WarnUnsupportedKind warnings. A nil document, a nil entity
// or a non-finite coordinate returns a *model.SchemaError.
//
// Example:
//
//	text, warnings, err := writer.Encode(doc)
//	if err != nil {
//	    return err
//	}
func Encode(doc *model.Document, opts ...Option) (string, []model.Warning, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := doc.Validate(); err != nil {
		return "", nil, err
	}

	w := &emitter{opts: o}
	w.header()
	w.tables(doc.Layers())
	w.entities(doc.Entities)
	w.pair(0, "EOF")

	if w.err != nil {
		return "", nil, w.err
	}
	return w.sb.String(), w.warnings, nil
}

// Supported reports whether the encoder can write entities of kind k.
func Supported(k model.Kind) bool {
	switch k {
	case model.KindLine, model.KindInsert, model.KindCircle, model.KindArc,
		model.KindLWPolyline, model.KindPolyline:
		return true
	default:
		return false
	}
}

// emitter writes group-code lines. The first error stops further output.
type emitter struct {
	opts     options
	sb       strings.Builder
	warnings []model.Warning
	err      error

	// index of the entity being written
	index int
}

func (w *emitter) header() {
	w.pair(0, "SECTION")
	w.pair(2, "HEADER")
	w.pair(9, "$ACADVER")
	w.pair(1, ACADVersion)
	w.pair(9, "$INSUNITS")
	w.integer(70, InsUnits)
	w.pair(0, "ENDSEC")
}

func (w *emitter) tables(layers []string) {
	w.pair(0, "SECTION")
	w.pair(2, "TABLES")
	w.pair(0, "TABLE")
	w.pair(2, "LAYER")
	w.integer(70, len(layers))
	for _, name := range layers {
		w.pair(0, "LAYER")
		w.pair(2, name)
		w.integer(70, 0)
		w.integer(62, 7)
		w.pair(6, "CONTINUOUS")
	}
	w.pair(0, "ENDTAB")
	w.pair(0, "ENDSEC")
}

func (w *emitter) entities(entities []model.Entity) {
	w.pair(0, "SECTION")
	w.pair(2, "ENTITIES")
	for i, e := range entities {
		if w.err != nil {
			return
		}
		w.index = i
		w.entity(e)
	}
	w.pair(0, "ENDSEC")
}

func (w *emitter) skip(e model.Entity) {
	w.warnings = append(w.warnings, model.Warning{
		Kind:    model.WarnUnsupportedKind,
		Entity:  w.index,
		Message: fmt.Sprintf("%s cannot be written to DXF and was skipped", e.Kind()),
	})
}

// pair writes one code line and one value line. The value is normalized
// the way the tokenizer reads it back.
func (w *emitter) pair(code int, value string) {
	if w.err != nil {
		return
	}
	w.sb.WriteString(core.FormatInt(code))
	w.sb.WriteByte('\n')
	w.sb.WriteString(normalize(value))
	w.sb.WriteByte('\n')
}

// normalize replaces line breaks, which would split the pair, with spaces
// and trims the surrounding whitespace the tokenizer drops.
func normalize(value string) string {
	if strings.ContainsAny(value, "\r\n") {
		value = lineBreaks.Replace(value)
	}
	return strings.TrimSpace(value)
}

func (w *emitter) integer(code, value int) {
	w.pair(code, core.FormatInt(value))
}

// float writes a real value. field names the document field for the
// schema error raised on NaN or infinity.
func (w *emitter) float(code int, value float64, field string) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		if w.err == nil {
			w.err = &model.SchemaError{Index: w.index, Field: field, Message: fmt.Sprintf("%v is not a finite number", value)}
		}
		return
	}
	w.pair(code, core.FormatFloat(value))
}

// point writes code, code+10 and code+20 for the three components of v.
func (w *emitter) point(code int, v model.Vec3, field string) {
	w.float(code, v[0], field)
	w.float(code+10, v[1], field)
	w.float(code+20, v[2], field)
}

func (w *emitter) layer(name string) {
	w.pair(8, model.LayerOf(name))
}
