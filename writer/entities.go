package writer

import (
	"fmt"
	"strconv"

	"github.com/tsawler/cadcodec/model"
)

// entity writes one entity record. Each case is the exact inverse of the
// matching decoder in package reader.
func (w *emitter) entity(e model.Entity) {
	switch e := e.(type) {
	case *model.Line:
		w.pair(0, "LINE")
		w.layer(e.Layer)
		w.point(10, e.Start, "start")
		w.point(11, e.End, "end")

	case *model.Insert:
		w.pair(0, "INSERT")
		w.layer(e.Layer)
		w.pair(2, e.Block)
		w.point(10, e.InsertionPoint, "insertion_point")
		w.float(41, e.Scale[0], "scale")
		w.float(42, e.Scale[1], "scale")
		w.float(43, e.Scale[2], "scale")
		w.float(50, e.Rotation, "rotation")

	case *model.Circle:
		w.pair(0, "CIRCLE")
		w.layer(e.Layer)
		w.point(10, e.Center, "center")
		w.float(40, e.Radius, "radius")

	case *model.Arc:
		w.pair(0, "ARC")
		w.layer(e.Layer)
		w.point(10, e.Center, "center")
		w.float(40, e.Radius, "radius")
		w.float(50, e.StartAngle, "start_angle")
		w.float(51, e.EndAngle, "end_angle")

	case *model.Polyline:
		if e.Lightweight {
			w.lwPolyline(e)
		} else {
			w.polyline(e)
		}

	case *model.Unknown:
		if !w.opts.passThrough {
			w.skip(e)
			return
		}
		w.raw(e)

	default:
		w.skip(e)
	}
}

func closedFlag(closed bool) int {
	if closed {
		return 1
	}
	return 0
}

func (w *emitter) lwPolyline(p *model.Polyline) {
	w.pair(0, "LWPOLYLINE")
	w.layer(p.Layer)
	w.integer(90, len(p.Vertices))
	w.integer(70, closedFlag(p.Closed))
	for _, v := range p.Vertices {
		w.vertex(v)
	}
}

func (w *emitter) polyline(p *model.Polyline) {
	w.pair(0, "POLYLINE")
	w.layer(p.Layer)
	w.integer(66, 1)
	w.integer(70, closedFlag(p.Closed))
	for _, v := range p.Vertices {
		w.pair(0, "VERTEX")
		w.layer(p.Layer)
		w.vertex(v)
	}
	w.pair(0, "SEQEND")
	w.layer(p.Layer)
}

func (w *emitter) vertex(v model.Vertex) {
	w.float(10, v.X, "vertices")
	w.float(20, v.Y, "vertices")
	if v.Z != nil {
		w.float(30, *v.Z, "vertices")
	}
	if v.Bulge != nil {
		w.float(42, *v.Bulge, "vertices")
	}
}

// raw writes an Unknown entity from its captured pairs. A layer is added
// when the pairs carry none.
func (w *emitter) raw(u *model.Unknown) {
	if u.Name == "" {
		if w.err == nil {
			w.err = &model.SchemaError{Index: w.index, Field: "name", Message: "unknown entity has no name"}
		}
		return
	}
	w.pair(0, u.Name)

	hasLayer := false
	for _, p := range u.Pairs {
		if p.Code == "8" {
			hasLayer = true
			break
		}
	}
	if !hasLayer {
		w.layer(u.Layer)
	}

	for _, p := range u.Pairs {
		if p.Code == "0" {
			if w.err == nil {
				w.err = &model.SchemaError{Index: w.index, Field: "pairs", Message: fmt.Sprintf("raw pair %q/%q would start a new entity", p.Code, p.Value)}
			}
			return
		}
		w.rawPair(p.Code, p.Value)
	}
}

// rawPair writes a captured pair. The code must still be numeric for the
// output to tokenize back into the same pairs.
func (w *emitter) rawPair(code, value string) {
	if w.err != nil {
		return
	}
	if _, err := strconv.Atoi(code); err != nil {
		w.err = &model.SchemaError{Index: w.index, Field: "pairs", Message: fmt.Sprintf("group code %q is not an integer", code)}
		return
	}
	w.sb.WriteString(code)
	w.sb.WriteByte('\n')
	w.sb.WriteString(normalize(value))
	w.sb.WriteByte('\n')
}
