package model

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/tsawler/cadcodec/core"
)

// ============================================================================
// Geometry Tests
// ============================================================================

func TestVec3(t *testing.T) {
	v := Vec3{1, 2, 3}
	if !v.IsFinite() {
		t.Error("expected finite vector")
	}
	if (Vec3{math.NaN(), 0, 0}).IsFinite() {
		t.Error("NaN vector reported finite")
	}
	if (Vec3{0, math.Inf(-1), 0}).IsFinite() {
		t.Error("Inf vector reported finite")
	}
}

func TestVertexBulge(t *testing.T) {
	if (Vertex{}).HasBulge() {
		t.Error("nil bulge is straight")
	}
	if (Vertex{Bulge: Float(0)}).HasBulge() {
		t.Error("zero bulge is straight")
	}
	if !(Vertex{Bulge: Float(0.5)}).HasBulge() {
		t.Error("expected bulge")
	}
}

// ============================================================================
// Entity Tests
// ============================================================================

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindLine, "LINE"},
		{KindInsert, "INSERT"},
		{KindCircle, "CIRCLE"},
		{KindArc, "ARC"},
		{KindLWPolyline, "LWPOLYLINE"},
		{KindPolyline, "POLYLINE"},
		{KindText, "TEXT"},
		{KindMText, "MTEXT"},
		{KindDimension, "DIMENSION"},
		{KindEllipse, "ELLIPSE"},
		{KindSpline, "SPLINE"},
		{KindUnknown, "UNKNOWN"},
		{Kind(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
		if tt.kind != Kind(99) && tt.kind != KindUnknown {
			if back := KindFromName(tt.want); back != tt.kind {
				t.Errorf("KindFromName(%q) = %v, want %v", tt.want, back, tt.kind)
			}
		}
	}

	if KindFromName("HATCH") != KindUnknown {
		t.Error("HATCH should map to KindUnknown")
	}
}

func TestConstructorDefaults(t *testing.T) {
	ins := NewInsert()
	if ins.Layer != "0" || ins.Scale != (Vec3{1, 1, 1}) || ins.Rotation != 0 || ins.Block != "" {
		t.Errorf("NewInsert() = %+v", ins)
	}

	line := NewLine()
	if line.Layer != "0" || line.Start != (Vec3{}) || line.End != (Vec3{}) {
		t.Errorf("NewLine() = %+v", line)
	}

	if c := NewCircle(); c.Radius != 1 {
		t.Errorf("NewCircle().Radius = %v, want 1", c.Radius)
	}
	if a := NewArc(); a.EndAngle != 360 {
		t.Errorf("NewArc().EndAngle = %v, want 360", a.EndAngle)
	}
	if e := NewEllipse(); e.Ratio != 1 || math.Abs(e.EndParam-2*math.Pi) > 1e-12 {
		t.Errorf("NewEllipse() = %+v", e)
	}
	if p := NewLWPolyline(); p.Kind() != KindLWPolyline {
		t.Errorf("NewLWPolyline().Kind() = %v", p.Kind())
	}
	if p := NewPolyline(); p.Kind() != KindPolyline {
		t.Errorf("NewPolyline().Kind() = %v", p.Kind())
	}
}

// ============================================================================
// Document Tests
// ============================================================================

func TestLayersDefaultOnly(t *testing.T) {
	doc := NewDocument()
	layers := doc.Layers()
	if len(layers) != 1 || layers[0] != "0" {
		t.Errorf("Layers() = %v, want [0]", layers)
	}
}

func TestLayersOrder(t *testing.T) {
	doc := NewDocument()
	doc.Add(
		&Line{Layer: "A"},
		&Circle{Layer: "B"},
		&Line{Layer: "A"},
		&Circle{Layer: "0"},
		&Text{Layer: ""},
	)

	got := strings.Join(doc.Layers(), ",")
	if got != "0,A,B" {
		t.Errorf("Layers() = %q, want %q", got, "0,A,B")
	}
}

func TestLayersTrimmed(t *testing.T) {
	doc := NewDocument()
	doc.Add(
		&Line{Layer: "   "},
		&Line{Layer: "A "},
		&Circle{Layer: " A"},
	)

	got := strings.Join(doc.Layers(), ",")
	if got != "0,A" {
		t.Errorf("Layers() = %q, want %q", got, "0,A")
	}
}

func TestLayerOf(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"WALLS", "WALLS"},
		{" WALLS\t", "WALLS"},
		{"", "0"},
		{"  ", "0"},
	}
	for _, tt := range tests {
		if got := LayerOf(tt.in); got != tt.want {
			t.Errorf("LayerOf(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCountByKind(t *testing.T) {
	doc := NewDocument()
	doc.Add(NewLine(), NewLine(), NewCircle(), &Unknown{Name: "HATCH", Layer: "0"})
	counts := doc.CountByKind()
	if counts[KindLine] != 2 || counts[KindCircle] != 1 || counts[KindUnknown] != 1 {
		t.Errorf("CountByKind() = %v", counts)
	}
	if doc.Len() != 4 {
		t.Errorf("Len() = %d, want 4", doc.Len())
	}
}

func TestClone(t *testing.T) {
	doc := NewDocument()
	doc.Metadata = &Metadata{Version: 3, LastModified: time.Unix(100, 0), Filename: "a.dxf"}
	poly := NewLWPolyline()
	poly.Vertices = []Vertex{{X: 1, Y: 2, Bulge: Float(0.5)}}
	unk := &Unknown{Name: "HATCH", Layer: "H", Pairs: []core.Pair{{Code: "2", Value: "SOLID"}}}
	doc.Add(poly, unk)

	cp := doc.Clone()

	*cp.Entities[0].(*Polyline).Vertices[0].Bulge = 9
	cp.Entities[1].(*Unknown).Pairs[0].Value = "CHANGED"
	cp.Metadata.Version = 4

	if *poly.Vertices[0].Bulge != 0.5 {
		t.Error("clone shares bulge storage")
	}
	if unk.Pairs[0].Value != "SOLID" {
		t.Error("clone shares raw pairs")
	}
	if doc.Metadata.Version != 3 {
		t.Error("clone shares metadata")
	}
}

func TestValidate(t *testing.T) {
	var nilDoc *Document
	err := nilDoc.Validate()
	var se *SchemaError
	if !errors.As(err, &se) || se.Index != -1 {
		t.Fatalf("expected document-level SchemaError, got %v", err)
	}

	doc := &Document{Entities: []Entity{NewLine(), nil}}
	err = doc.Validate()
	if !errors.As(err, &se) || se.Index != 1 || se.Field != "type" {
		t.Fatalf("expected SchemaError at index 1, got %v", err)
	}
	if !strings.Contains(err.Error(), "entities[1].type") {
		t.Errorf("error message %q does not name the entity", err.Error())
	}

	if err := NewDocument().Validate(); err != nil {
		t.Errorf("empty document should validate, got %v", err)
	}
}

// ============================================================================
// Warning Tests
// ============================================================================

func TestWarningString(t *testing.T) {
	w := Warning{Kind: WarnMalformedNumber, Entity: 2, Field: "10", Message: `"abc" is not a number`}
	want := `malformed-number entity 2 [10]: "abc" is not a number`
	if got := w.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	w = Warning{Kind: WarnDanglingLine, Entity: -1}
	if got := w.String(); got != "dangling-line" {
		t.Errorf("String() = %q", got)
	}
}

func TestFormatAndFilterWarnings(t *testing.T) {
	ws := []Warning{
		{Kind: WarnUnknownEntity, Entity: 0, Message: "HATCH"},
		{Kind: WarnUnsupportedKind, Entity: 1, Message: "TEXT"},
	}
	out := FormatWarnings(ws)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("FormatWarnings() = %q", out)
	}
	if got := FilterWarnings(ws, WarnUnsupportedKind); len(got) != 1 || got[0].Entity != 1 {
		t.Errorf("FilterWarnings() = %v", got)
	}
	if FormatWarnings(nil) != "" {
		t.Error("expected empty string for no warnings")
	}
}

func TestSchemaErrorMessages(t *testing.T) {
	tests := []struct {
		err  SchemaError
		want string
	}{
		{SchemaError{Index: -1, Message: "not an object"}, "schema error: not an object"},
		{SchemaError{Index: -1, Field: "entities", Message: "not a list"}, "schema error: entities: not a list"},
		{SchemaError{Index: 3, Message: "bad"}, "schema error: entities[3]: bad"},
		{SchemaError{Index: 0, Field: "start", Message: "bad"}, "schema error: entities[0].start: bad"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
