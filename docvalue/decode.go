package docvalue

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/cadcodec/core"
	"github.com/tsawler/cadcodec/model"
)

// FromJSON parses a JSON document value.
func FromJSON(data []byte) (*model.Document, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("docvalue: parse JSON: %w", err)
	}
	return FromValue(v)
}

// FromYAML parses a YAML document value with the same shape as the JSON form.
func FromYAML(data []byte) (*model.Document, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("docvalue: parse YAML: %w", err)
	}
	return FromValue(v)
}

// FromValue builds a document from a value produced by a JSON or YAML
// decoder. The root must be an object.
func FromValue(v any) (*model.Document, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &model.SchemaError{Index: -1, Message: fmt.Sprintf("document must be an object, got %s", typeName(v))}
	}
	return FromMap(m)
}

// FromMap builds a document from its map form. A missing "entities" key
// is an empty document.
func FromMap(m map[string]any) (*model.Document, error) {
	doc := model.NewDocument()

	if raw, ok := m["entities"]; ok && raw != nil {
		list, ok := raw.([]any)
		if !ok {
			return nil, &model.SchemaError{Index: -1, Field: "entities", Message: fmt.Sprintf("must be a list, got %s", typeName(raw))}
		}
		for i, item := range list {
			e, err := entityFromValue(i, item)
			if err != nil {
				return nil, err
			}
			doc.Add(e)
		}
	}

	if raw, ok := m["metadata"]; ok && raw != nil {
		var shape metadataShape
		if err := decodeShape(raw, &shape); err != nil {
			return nil, schemaError(-1, err, "metadata")
		}
		doc.Metadata = &model.Metadata{
			Version:      shape.Version,
			LastModified: shape.LastModified,
			Filename:     shape.Filename,
		}
	}

	return doc, nil
}

func entityFromValue(index int, v any) (model.Entity, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &model.SchemaError{Index: index, Message: fmt.Sprintf("entity must be an object, got %s", typeName(v))}
	}

	raw, ok := m["type"]
	if !ok {
		return nil, &model.SchemaError{Index: index, Field: "type", Message: "missing"}
	}
	name, ok := raw.(string)
	if !ok {
		return nil, &model.SchemaError{Index: index, Field: "type", Message: fmt.Sprintf("must be a string, got %s", typeName(raw))}
	}

	kind := model.KindFromName(name)
	if kind == model.KindUnknown && name != model.KindUnknown.String() {
		return nil, &model.SchemaError{Index: index, Field: "type", Message: fmt.Sprintf("unrecognized entity type %q", name)}
	}

	b := &builder{index: index}
	e := b.build(kind, m)
	if b.err != nil {
		return nil, b.err
	}
	return e, nil
}

// builder converts one entity map. The first error is kept.
type builder struct {
	index int
	err   error
}

func (b *builder) build(kind model.Kind, m map[string]any) model.Entity {
	switch kind {
	case model.KindLine:
		var s lineShape
		b.decode(m, &s)
		e := model.NewLine()
		e.Layer = layer(s.Layer)
		e.Start = b.vec(s.Start, e.Start, "start")
		e.End = b.vec(s.End, e.End, "end")
		return e

	case model.KindInsert:
		var s insertShape
		b.decode(m, &s)
		e := model.NewInsert()
		e.Layer = layer(s.Layer)
		e.Block = s.Block
		e.InsertionPoint = b.vec(s.InsertionPoint, e.InsertionPoint, "insertion_point")
		e.Scale = b.vec(s.Scale, e.Scale, "scale")
		e.Rotation = b.num(s.Rotation, e.Rotation, "rotation")
		return e

	case model.KindCircle:
		var s circleShape
		b.decode(m, &s)
		e := model.NewCircle()
		e.Layer = layer(s.Layer)
		e.Center = b.vec(s.Center, e.Center, "center")
		e.Radius = b.num(s.Radius, e.Radius, "radius")
		return e

	case model.KindArc:
		var s arcShape
		b.decode(m, &s)
		e := model.NewArc()
		e.Layer = layer(s.Layer)
		e.Center = b.vec(s.Center, e.Center, "center")
		e.Radius = b.num(s.Radius, e.Radius, "radius")
		e.StartAngle = b.num(s.StartAngle, e.StartAngle, "start_angle")
		e.EndAngle = b.num(s.EndAngle, e.EndAngle, "end_angle")
		return e

	case model.KindLWPolyline, model.KindPolyline:
		var s polylineShape
		b.decode(m, &s)
		e := model.NewPolyline()
		if kind == model.KindLWPolyline {
			e = model.NewLWPolyline()
		}
		e.Layer = layer(s.Layer)
		e.Closed = s.Closed
		for _, v := range s.Vertices {
			e.Vertices = append(e.Vertices, model.Vertex{X: v.X, Y: v.Y, Z: v.Z, Bulge: v.Bulge})
		}
		return e

	case model.KindText:
		var s textShape
		b.decode(m, &s)
		e := model.NewText()
		e.Layer = layer(s.Layer)
		e.InsertionPoint = b.vec(s.InsertionPoint, e.InsertionPoint, "insertion_point")
		e.Height = b.num(s.Height, e.Height, "height")
		e.Value = s.Text
		e.Rotation = s.Rotation
		e.Style = s.Style
		return e

	case model.KindMText:
		var s textShape
		b.decode(m, &s)
		e := model.NewMText()
		e.Layer = layer(s.Layer)
		e.InsertionPoint = b.vec(s.InsertionPoint, e.InsertionPoint, "insertion_point")
		e.Height = b.num(s.Height, e.Height, "height")
		e.Width = s.Width
		e.Value = s.Text
		e.Rotation = s.Rotation
		return e

	case model.KindDimension:
		var s dimensionShape
		b.decode(m, &s)
		e := model.NewDimension()
		e.Layer = layer(s.Layer)
		e.Block = s.Block
		e.DefinitionPoint = b.vec(s.DefinitionPoint, e.DefinitionPoint, "definition_point")
		e.TextMidpoint = b.vec(s.TextMidpoint, e.TextMidpoint, "text_midpoint")
		e.DimType = s.DimType
		e.Text = s.Text
		return e

	case model.KindEllipse:
		var s ellipseShape
		b.decode(m, &s)
		e := model.NewEllipse()
		e.Layer = layer(s.Layer)
		e.Center = b.vec(s.Center, e.Center, "center")
		e.MajorAxis = b.vec(s.MajorAxis, e.MajorAxis, "major_axis")
		e.Ratio = b.num(s.Ratio, e.Ratio, "ratio")
		e.StartParam = s.StartParam
		e.EndParam = b.num(s.EndParam, e.EndParam, "end_param")
		return e

	case model.KindSpline:
		var s splineShape
		b.decode(m, &s)
		e := model.NewSpline()
		e.Layer = layer(s.Layer)
		if s.Degree != nil {
			e.Degree = *s.Degree
		}
		e.Flags = s.Flags
		e.Knots = s.Knots
		e.ControlPoints = b.vecs(s.ControlPoints, "control_points")
		e.FitPoints = b.vecs(s.FitPoints, "fit_points")
		return e

	default:
		var s unknownShape
		b.decode(m, &s)
		e := &model.Unknown{Name: s.Name, Layer: layer(s.Layer)}
		e.Pairs = b.pairs(s.Pairs)
		// the raw layer pair wins, as when decoding interchange text
		for _, p := range e.Pairs {
			if p.Code == "8" && p.Value != "" {
				e.Layer = p.Value
			}
		}
		return e
	}
}

func (b *builder) decode(m map[string]any, out any) {
	if err := decodeShape(m, out); err != nil {
		b.err = schemaError(b.index, err, "")
	}
}

func (b *builder) fail(field, format string, args ...any) {
	if b.err == nil {
		b.err = &model.SchemaError{Index: b.index, Field: field, Message: fmt.Sprintf(format, args...)}
	}
}

// vec converts a two or three component list. A missing list keeps def,
// and a two component list keeps the Z of def.
func (b *builder) vec(v []float64, def model.Vec3, field string) model.Vec3 {
	if v == nil {
		return def
	}
	if len(v) != 2 && len(v) != 3 {
		b.fail(field, "expected 2 or 3 components, got %d", len(v))
		return def
	}
	out := def
	out[0], out[1] = v[0], v[1]
	if len(v) == 3 {
		out[2] = v[2]
	}
	if !out.IsFinite() {
		b.fail(field, "components must be finite")
		return def
	}
	return out
}

func (b *builder) vecs(list [][]float64, field string) []model.Vec3 {
	if list == nil {
		return nil
	}
	out := make([]model.Vec3, 0, len(list))
	for i, v := range list {
		out = append(out, b.vec(v, model.Vec3{}, fmt.Sprintf("%s[%d]", field, i)))
	}
	return out
}

func (b *builder) num(v *float64, def float64, field string) float64 {
	if v == nil {
		return def
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		b.fail(field, "must be finite")
		return def
	}
	return *v
}

// pairs converts [[code, value], ...]. Codes may be integers or strings.
func (b *builder) pairs(list []any) []core.Pair {
	if list == nil {
		return nil
	}
	out := make([]core.Pair, 0, len(list))
	for i, item := range list {
		field := fmt.Sprintf("pairs[%d]", i)
		pair, ok := item.([]any)
		if !ok || len(pair) != 2 {
			b.fail(field, "expected a [code, value] list")
			return nil
		}
		code, ok := codeString(pair[0])
		if !ok {
			b.fail(field, "group code must be an integer, got %v", pair[0])
			return nil
		}
		out = append(out, core.Pair{Code: code, Value: valueString(pair[1])})
	}
	return out
}

func codeString(v any) (string, bool) {
	switch c := v.(type) {
	case int:
		return strconv.Itoa(c), true
	case int64:
		return strconv.FormatInt(c, 10), true
	case float64:
		if c != math.Trunc(c) || math.Abs(c) > math.MaxInt32 {
			return "", false
		}
		return strconv.Itoa(int(c)), true
	case string:
		if _, err := strconv.Atoi(c); err != nil {
			return "", false
		}
		return c, true
	default:
		return "", false
	}
}

func valueString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	case float64:
		return core.FormatFloat(s)
	default:
		return fmt.Sprint(s)
	}
}

func layer(name string) string {
	if name == "" {
		return model.DefaultLayer
	}
	return name
}

func decodeShape(input, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339),
		Result:     out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// schemaError maps a mapstructure error onto the field it names.
func schemaError(index int, err error, prefix string) *model.SchemaError {
	field := prefix
	var de *mapstructure.DecodeError
	if errors.As(err, &de) && de.Name() != "" {
		field = de.Name()
		if prefix != "" {
			field = prefix + "." + field
		}
	}
	return &model.SchemaError{Index: index, Field: field, Message: err.Error()}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "list"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
