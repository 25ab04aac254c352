package reader

import (
	"fmt"

	"github.com/tsawler/cadcodec/core"
	"github.com/tsawler/cadcodec/model"
)

// record is one entity of the ENTITIES payload: the 0/NAME pair and the
// pairs up to the next 0 code.
type record struct {
	name  string
	pairs []core.Pair
}

// splitRecords cuts the ENTITIES payload at each 0 code. Pairs before the
// first 0 code belong to no entity and are dropped.
func splitRecords(pairs []core.Pair) []record {
	var records []record
	for _, p := range pairs {
		if p.IsEntityStart() {
			records = append(records, record{name: p.Value})
			continue
		}
		if len(records) == 0 {
			continue
		}
		cur := &records[len(records)-1]
		cur.pairs = append(cur.pairs, p)
	}
	return records
}

// decoder carries the warning list across one decode call.
type decoder struct {
	opts     options
	warnings []model.Warning

	// polyline receiving VERTEX records until SEQEND
	openPolyline *model.Polyline
}

func (d *decoder) decodeEntities(pairs []core.Pair) *model.Document {
	doc := model.NewDocument()

	for _, rec := range splitRecords(pairs) {
		index := doc.Len()

		switch rec.name {
		case "VERTEX":
			if d.openPolyline != nil {
				f := d.fields(index-1, rec.name)
				d.openPolyline.Vertices = append(d.openPolyline.Vertices, decodeVertex(f, rec.pairs))
				continue
			}
		case "SEQEND":
			if d.openPolyline != nil {
				d.openPolyline = nil
				continue
			}
		}
		d.openPolyline = nil

		decode, ok := lookup(rec.name)
		if !ok {
			doc.Add(d.decodeUnknown(index, rec))
			continue
		}

		e := decode(d.fields(index, rec.name), rec.pairs)
		if p, ok := e.(*model.Polyline); ok && !p.Lightweight {
			d.openPolyline = p
		}
		doc.Add(e)
	}

	return doc
}

func (d *decoder) decodeUnknown(index int, rec record) *model.Unknown {
	u := &model.Unknown{Name: rec.name, Layer: model.DefaultLayer}
	for _, p := range rec.pairs {
		if p.Code == "8" && p.Value != "" {
			u.Layer = p.Value
		}
	}
	if d.opts.rawUnknown {
		u.Pairs = append([]core.Pair(nil), rec.pairs...)
	}
	d.warn(model.Warning{
		Kind:    model.WarnUnknownEntity,
		Entity:  index,
		Message: fmt.Sprintf("entity type %q kept as UNKNOWN", rec.name),
	})
	return u
}

func (d *decoder) warn(w model.Warning) {
	d.warnings = append(d.warnings, w)
}

func (d *decoder) fields(index int, name string) *fields {
	return &fields{d: d, index: index, name: name}
}

// fields decodes the group codes of one entity and records warnings
// against its index.
type fields struct {
	d      *decoder
	index  int
	name   string
	warned map[string]bool
}

// layer returns the layer value, falling back to the default layer.
func (f *fields) layer(p core.Pair) string {
	if p.Value == "" {
		return model.DefaultLayer
	}
	return p.Value
}

// float parses p into dst. On failure dst keeps its current value.
func (f *fields) float(p core.Pair, dst *float64) {
	v, ok := core.ParseFloat(p.Value)
	if !ok {
		f.malformed(p)
		return
	}
	*dst = v
}

// integer parses p into dst. On failure dst keeps its current value.
func (f *fields) integer(p core.Pair, dst *int) {
	v, ok := core.ParseInt(p.Value)
	if !ok {
		f.malformed(p)
		return
	}
	*dst = v
}

// optFloat parses p into a new pointer, or nil when malformed.
func (f *fields) optFloat(p core.Pair) *float64 {
	v, ok := core.ParseFloat(p.Value)
	if !ok {
		f.malformed(p)
		return nil
	}
	return &v
}

func (f *fields) malformed(p core.Pair) {
	f.d.warn(model.Warning{
		Kind:    model.WarnMalformedNumber,
		Entity:  f.index,
		Field:   p.Code,
		Message: fmt.Sprintf("%s: %q is not a number, keeping default", f.name, p.Value),
	})
}

// ignore handles a code the decoder does not map. Codes that are common
// to all entities or listed in extra are skipped quietly; anything else
// is reported once per entity.
func (f *fields) ignore(p core.Pair, extra map[string]bool) {
	if !f.d.opts.codeWarnings || extra[p.Code] || isCommonCode(p) {
		return
	}
	if f.warned == nil {
		f.warned = make(map[string]bool)
	}
	if f.warned[p.Code] {
		return
	}
	f.warned[p.Code] = true
	f.d.warn(model.Warning{
		Kind:    model.WarnUnknownCode,
		Entity:  f.index,
		Field:   p.Code,
		Message: fmt.Sprintf("%s: group code %s ignored", f.name, p.Code),
	})
}

// commonCodes are attributes every entity may carry: handle, linetype,
// thickness, linetype scale, visibility, color, paper space, subclass
// markers, reactor groups, extrusion, owner pointers, lineweight, layout
// name and true color.
var commonCodes = map[string]bool{
	"5": true, "6": true, "39": true, "48": true, "60": true, "62": true,
	"67": true, "100": true, "102": true, "210": true, "220": true, "230": true,
	"330": true, "360": true, "370": true, "410": true, "420": true, "430": true,
	"440": true,
}

func isCommonCode(p core.Pair) bool {
	if commonCodes[p.Code] {
		return true
	}
	// extended entity data
	n, ok := p.CodeInt()
	return ok && n >= 1000 && n <= 1071
}

func codeSet(codes ...string) map[string]bool {
	m := make(map[string]bool, len(codes))
	for _, c := range codes {
		m[c] = true
	}
	return m
}
