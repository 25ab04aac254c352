package script

import (
	"fmt"
	"math"
	"strings"

	"github.com/tsawler/cadcodec/core"
	"github.com/tsawler/cadcodec/model"
)

// Command words of the script grammar.
const (
	CmdLine     = "LINE"
	CmdInsert   = "-INSERT"
	CmdCircle   = "CIRCLE"
	CmdPolyline = "PLINE"
	// CloseOption ends a PLINE that closes back to its first vertex.
	CloseOption = "C"
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// Encode writes one command line per supported entity of doc, in document
// order. Skipped and simplified entities are reported as warnings. A nil
// document, a nil entity or a non-finite coordinate returns a
// *model.SchemaError and no text.
func Encode(doc *model.Document) (string, []model.Warning, error) {
	if err := doc.Validate(); err != nil {
		return "", nil, err
	}

	s := &scripter{}
	for i, e := range doc.Entities {
		s.index = i
		s.entity(e)
		if s.err != nil {
			return "", nil, s.err
		}
	}
	return s.sb.String(), s.warnings, nil
}

// Supported reports whether the script grammar has a command for kind k.
func Supported(k model.Kind) bool {
	switch k {
	case model.KindLine, model.KindInsert, model.KindCircle,
		model.KindLWPolyline, model.KindPolyline:
		return true
	default:
		return false
	}
}

type scripter struct {
	sb       strings.Builder
	warnings []model.Warning
	err      error
	index    int
}

func (s *scripter) entity(e model.Entity) {
	switch e := e.(type) {
	case *model.Line:
		s.command(CmdLine, s.xy(e.Start, "start"), s.xy(e.End, "end"))

	case *model.Insert:
		s.command(CmdInsert,
			quote(e.Block),
			s.xy(e.InsertionPoint, "insertion_point"),
			s.number(e.Scale[0], "scale"),
			s.number(e.Scale[1], "scale"),
			s.number(e.Rotation, "rotation"),
		)

	case *model.Circle:
		s.command(CmdCircle, s.xy(e.Center, "center"), s.number(e.Radius, "radius"))

	case *model.Polyline:
		s.polyline(e)

	default:
		s.skip(e, fmt.Sprintf("%s has no script command and was skipped", e.Kind()))
	}
}

func (s *scripter) polyline(p *model.Polyline) {
	if len(p.Vertices) < 2 {
		s.skip(p, fmt.Sprintf("%s with %d vertices cannot be drawn and was skipped", p.Kind(), len(p.Vertices)))
		return
	}

	args := make([]string, 0, len(p.Vertices)+1)
	bulges := 0
	for _, v := range p.Vertices {
		args = append(args, s.pair(v.X, v.Y, "vertices"))
		if v.HasBulge() {
			bulges++
		}
	}
	if p.Closed {
		args = append(args, CloseOption)
	}
	s.command(CmdPolyline, args...)

	if bulges > 0 && s.err == nil {
		s.warnings = append(s.warnings, model.Warning{
			Kind:    model.WarnLossy,
			Entity:  s.index,
			Field:   "vertices",
			Message: fmt.Sprintf("%d arc segments written as straight segments", bulges),
		})
	}
}

func (s *scripter) skip(e model.Entity, msg string) {
	s.warnings = append(s.warnings, model.Warning{
		Kind:    model.WarnUnsupportedKind,
		Entity:  s.index,
		Message: msg,
	})
}

// command writes name and args as one line. Nothing is written once an
// argument has failed.
func (s *scripter) command(name string, args ...string) {
	if s.err != nil {
		return
	}
	s.sb.WriteString(name)
	for _, a := range args {
		s.sb.WriteByte(' ')
		s.sb.WriteString(a)
	}
	s.sb.WriteByte('\n')
}

func (s *scripter) number(f float64, field string) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if s.err == nil {
			s.err = &model.SchemaError{Index: s.index, Field: field, Message: fmt.Sprintf("%v is not a finite number", f)}
		}
		return ""
	}
	return core.FormatFloat(f)
}

func (s *scripter) pair(x, y float64, field string) string {
	return s.number(x, field) + "," + s.number(y, field)
}

func (s *scripter) xy(v model.Vec3, field string) string {
	return s.pair(v[0], v[1], field)
}

// quote wraps a block name in double quotes. Line breaks would end the
// command early, so they become spaces.
func quote(name string) string {
	return `"` + lineBreaks.Replace(name) + `"`
}
