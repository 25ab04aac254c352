package model

import (
	"math"

	"github.com/tsawler/cadcodec/core"
)

// DefaultLayer is the layer every drawing has and every entity falls back to.
const DefaultLayer = "0"

// Kind identifies the variant of an Entity
type Kind int

const (
	KindUnknown Kind = iota
	KindLine
	KindInsert
	KindCircle
	KindArc
	KindLWPolyline
	KindPolyline
	KindText
	KindMText
	KindDimension
	KindEllipse
	KindSpline
)

// String returns the interchange-format entity name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "LINE"
	case KindInsert:
		return "INSERT"
	case KindCircle:
		return "CIRCLE"
	case KindArc:
		return "ARC"
	case KindLWPolyline:
		return "LWPOLYLINE"
	case KindPolyline:
		return "POLYLINE"
	case KindText:
		return "TEXT"
	case KindMText:
		return "MTEXT"
	case KindDimension:
		return "DIMENSION"
	case KindEllipse:
		return "ELLIPSE"
	case KindSpline:
		return "SPLINE"
	default:
		return "UNKNOWN"
	}
}

// KindFromName maps an entity name to its kind. Names without a variant
// map to KindUnknown.
func KindFromName(name string) Kind {
	switch name {
	case "LINE":
		return KindLine
	case "INSERT":
		return KindInsert
	case "CIRCLE":
		return KindCircle
	case "ARC":
		return KindArc
	case "LWPOLYLINE":
		return KindLWPolyline
	case "POLYLINE":
		return KindPolyline
	case "TEXT":
		return KindText
	case "MTEXT":
		return KindMText
	case "DIMENSION":
		return KindDimension
	case "ELLIPSE":
		return KindEllipse
	case "SPLINE":
		return KindSpline
	default:
		return KindUnknown
	}
}

// Entity is implemented by every drawing entity variant. The set of
// variants is closed: only types in this package satisfy it.
type Entity interface {
	Kind() Kind
	LayerName() string
	clone() Entity
}

// Line is a straight segment between two points
type Line struct {
	Layer string
	Start Vec3
	End   Vec3
}

// NewLine returns a LINE with default fields.
func NewLine() *Line {
	return &Line{Layer: DefaultLayer}
}

func (l *Line) Kind() Kind        { return KindLine }
func (l *Line) LayerName() string { return l.Layer }
func (l *Line) clone() Entity     { c := *l; return &c }

// Insert places a block definition with scale and rotation
type Insert struct {
	Layer          string
	Block          string
	InsertionPoint Vec3
	Scale          Vec3
	Rotation       float64 // degrees
}

// NewInsert returns an INSERT with unit scale and no rotation.
func NewInsert() *Insert {
	return &Insert{Layer: DefaultLayer, Scale: Vec3{1, 1, 1}}
}

func (i *Insert) Kind() Kind        { return KindInsert }
func (i *Insert) LayerName() string { return i.Layer }
func (i *Insert) clone() Entity     { c := *i; return &c }

// Circle is a full circle
type Circle struct {
	Layer  string
	Center Vec3
	Radius float64
}

// NewCircle returns a unit CIRCLE at the origin.
func NewCircle() *Circle {
	return &Circle{Layer: DefaultLayer, Radius: 1}
}

func (c *Circle) Kind() Kind        { return KindCircle }
func (c *Circle) LayerName() string { return c.Layer }
func (c *Circle) clone() Entity     { cp := *c; return &cp }

// Arc is a circular arc running counter-clockwise from StartAngle to
// EndAngle, both in degrees.
type Arc struct {
	Layer      string
	Center     Vec3
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// NewArc returns a unit ARC covering the full circle.
func NewArc() *Arc {
	return &Arc{Layer: DefaultLayer, Radius: 1, EndAngle: 360}
}

func (a *Arc) Kind() Kind        { return KindArc }
func (a *Arc) LayerName() string { return a.Layer }
func (a *Arc) clone() Entity     { c := *a; return &c }

// Polyline is an ordered list of vertices. Lightweight selects the
// LWPOLYLINE form, otherwise the POLYLINE/VERTEX/SEQEND form.
type Polyline struct {
	Layer       string
	Vertices    []Vertex
	Closed      bool
	Lightweight bool
}

// NewLWPolyline returns an empty open LWPOLYLINE.
func NewLWPolyline() *Polyline {
	return &Polyline{Layer: DefaultLayer, Lightweight: true}
}

// NewPolyline returns an empty open POLYLINE.
func NewPolyline() *Polyline {
	return &Polyline{Layer: DefaultLayer}
}

func (p *Polyline) Kind() Kind {
	if p.Lightweight {
		return KindLWPolyline
	}
	return KindPolyline
}
func (p *Polyline) LayerName() string { return p.Layer }
func (p *Polyline) clone() Entity {
	c := *p
	if p.Vertices != nil {
		c.Vertices = make([]Vertex, len(p.Vertices))
		for i, v := range p.Vertices {
			c.Vertices[i] = v.clone()
		}
	}
	return &c
}

// Text is a single line of text
type Text struct {
	Layer          string
	InsertionPoint Vec3
	Height         float64
	Value          string
	Rotation       float64
	Style          string
}

// NewText returns an empty TEXT of unit height.
func NewText() *Text {
	return &Text{Layer: DefaultLayer, Height: 1}
}

func (t *Text) Kind() Kind        { return KindText }
func (t *Text) LayerName() string { return t.Layer }
func (t *Text) clone() Entity     { c := *t; return &c }

// MText is a paragraph of formatted text. Value keeps the inline
// formatting codes as written.
type MText struct {
	Layer          string
	InsertionPoint Vec3
	Height         float64
	Width          float64
	Value          string
	Rotation       float64
}

// NewMText returns an empty MTEXT of unit height.
func NewMText() *MText {
	return &MText{Layer: DefaultLayer, Height: 1}
}

func (m *MText) Kind() Kind        { return KindMText }
func (m *MText) LayerName() string { return m.Layer }
func (m *MText) clone() Entity     { c := *m; return &c }

// Dimension references the anonymous block that draws a dimension
type Dimension struct {
	Layer           string
	Block           string
	DefinitionPoint Vec3
	TextMidpoint    Vec3
	DimType         int
	Text            string
}

// NewDimension returns a DIMENSION with default fields.
func NewDimension() *Dimension {
	return &Dimension{Layer: DefaultLayer}
}

func (d *Dimension) Kind() Kind        { return KindDimension }
func (d *Dimension) LayerName() string { return d.Layer }
func (d *Dimension) clone() Entity     { c := *d; return &c }

// Ellipse is given by its center, the endpoint of the major axis relative
// to the center, and the minor/major ratio. Params are in radians.
type Ellipse struct {
	Layer      string
	Center     Vec3
	MajorAxis  Vec3
	Ratio      float64
	StartParam float64
	EndParam   float64
}

// NewEllipse returns a full unit ELLIPSE (a circle) at the origin.
func NewEllipse() *Ellipse {
	return &Ellipse{Layer: DefaultLayer, MajorAxis: Vec3{1, 0, 0}, Ratio: 1, EndParam: 2 * math.Pi}
}

func (e *Ellipse) Kind() Kind        { return KindEllipse }
func (e *Ellipse) LayerName() string { return e.Layer }
func (e *Ellipse) clone() Entity     { c := *e; return &c }

// Spline is a NURBS curve
type Spline struct {
	Layer         string
	Degree        int
	Flags         int
	Knots         []float64
	ControlPoints []Vec3
	FitPoints     []Vec3
}

// NewSpline returns an empty cubic SPLINE.
func NewSpline() *Spline {
	return &Spline{Layer: DefaultLayer, Degree: 3}
}

func (s *Spline) Kind() Kind        { return KindSpline }
func (s *Spline) LayerName() string { return s.Layer }
func (s *Spline) clone() Entity {
	c := *s
	c.Knots = append([]float64(nil), s.Knots...)
	c.ControlPoints = append([]Vec3(nil), s.ControlPoints...)
	c.FitPoints = append([]Vec3(nil), s.FitPoints...)
	return &c
}

// Unknown is an entity type the decoder has no variant for. Pairs holds
// the raw entity body (without the leading 0/Name pair) so the entity can
// be written back verbatim.
type Unknown struct {
	Name  string
	Layer string
	Pairs []core.Pair
}

func (u *Unknown) Kind() Kind        { return KindUnknown }
func (u *Unknown) LayerName() string { return u.Layer }
func (u *Unknown) clone() Entity {
	c := *u
	c.Pairs = append([]core.Pair(nil), u.Pairs...)
	return &c
}

// Compile-time checks that every variant satisfies Entity.
var (
	_ Entity = (*Line)(nil)
	_ Entity = (*Insert)(nil)
	_ Entity = (*Circle)(nil)
	_ Entity = (*Arc)(nil)
	_ Entity = (*Polyline)(nil)
	_ Entity = (*Text)(nil)
	_ Entity = (*MText)(nil)
	_ Entity = (*Dimension)(nil)
	_ Entity = (*Ellipse)(nil)
	_ Entity = (*Spline)(nil)
	_ Entity = (*Unknown)(nil)
)
