package reader

import (
	"sort"

	"github.com/tsawler/cadcodec/core"
	"github.com/tsawler/cadcodec/model"
)

// decodeFunc builds one entity from its body pairs.
type decodeFunc func(f *fields, pairs []core.Pair) model.Entity

var registry = map[string]decodeFunc{
	"LINE":       decodeLine,
	"INSERT":     decodeInsert,
	"CIRCLE":     decodeCircle,
	"ARC":        decodeArc,
	"LWPOLYLINE": decodeLWPolyline,
	"POLYLINE":   decodePolyline,
	"TEXT":       decodeText,
	"MTEXT":      decodeMText,
	"DIMENSION":  decodeDimension,
	"ELLIPSE":    decodeEllipse,
	"SPLINE":     decodeSpline,
}

func lookup(name string) (decodeFunc, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// SupportedEntities returns the entity names the decoder has variants
// for, sorted.
func SupportedEntities() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// point assigns the x, y and z codes of a coordinate into v.
// It reports whether p was one of them.
func (f *fields) point(p core.Pair, x, y, z string, v *model.Vec3) bool {
	switch p.Code {
	case x:
		f.float(p, &v[0])
	case y:
		f.float(p, &v[1])
	case z:
		f.float(p, &v[2])
	default:
		return false
	}
	return true
}

func decodeLine(f *fields, pairs []core.Pair) model.Entity {
	e := model.NewLine()
	for _, p := range pairs {
		switch {
		case p.Code == "8":
			e.Layer = f.layer(p)
		case f.point(p, "10", "20", "30", &e.Start):
		case f.point(p, "11", "21", "31", &e.End):
		default:
			f.ignore(p, nil)
		}
	}
	return e
}

var insertExtra = codeSet("44", "45", "66", "70", "71")

func decodeInsert(f *fields, pairs []core.Pair) model.Entity {
	e := model.NewInsert()
	for _, p := range pairs {
		switch {
		case p.Code == "8":
			e.Layer = f.layer(p)
		case p.Code == "2":
			e.Block = p.Value
		case f.point(p, "10", "20", "30", &e.InsertionPoint):
		case f.point(p, "41", "42", "43", &e.Scale):
		case p.Code == "50":
			f.float(p, &e.Rotation)
		default:
			f.ignore(p, insertExtra)
		}
	}
	return e
}

func decodeCircle(f *fields, pairs []core.Pair) model.Entity {
	e := model.NewCircle()
	for _, p := range pairs {
		switch {
		case p.Code == "8":
			e.Layer = f.layer(p)
		case f.point(p, "10", "20", "30", &e.Center):
		case p.Code == "40":
			f.float(p, &e.Radius)
		default:
			f.ignore(p, nil)
		}
	}
	return e
}

func decodeArc(f *fields, pairs []core.Pair) model.Entity {
	e := model.NewArc()
	for _, p := range pairs {
		switch {
		case p.Code == "8":
			e.Layer = f.layer(p)
		case f.point(p, "10", "20", "30", &e.Center):
		case p.Code == "40":
			f.float(p, &e.Radius)
		case p.Code == "50":
			f.float(p, &e.StartAngle)
		case p.Code == "51":
			f.float(p, &e.EndAngle)
		default:
			f.ignore(p, nil)
		}
	}
	return e
}

var lwPolylineExtra = codeSet("38", "40", "41", "43", "90", "91")

// decodeLWPolyline reads vertices inline: each 10 starts a vertex and the
// following 20, 30 and 42 codes complete it.
func decodeLWPolyline(f *fields, pairs []core.Pair) model.Entity {
	e := model.NewLWPolyline()
	var cur *model.Vertex
	for _, p := range pairs {
		switch p.Code {
		case "8":
			e.Layer = f.layer(p)
		case "70":
			flags := 0
			f.integer(p, &flags)
			e.Closed = flags&1 != 0
		case "10":
			e.Vertices = append(e.Vertices, model.Vertex{})
			cur = &e.Vertices[len(e.Vertices)-1]
			f.float(p, &cur.X)
		case "20":
			if cur != nil {
				f.float(p, &cur.Y)
			}
		case "30":
			if cur != nil {
				cur.Z = f.optFloat(p)
			}
		case "42":
			if cur != nil {
				cur.Bulge = f.optFloat(p)
			}
		default:
			f.ignore(p, lwPolylineExtra)
		}
	}
	return e
}

var polylineExtra = codeSet("10", "20", "30", "40", "41", "66", "71", "72", "73", "74", "75")

// decodePolyline reads the POLYLINE header. Its vertices arrive as
// separate VERTEX records which the decoder folds in.
func decodePolyline(f *fields, pairs []core.Pair) model.Entity {
	e := model.NewPolyline()
	for _, p := range pairs {
		switch p.Code {
		case "8":
			e.Layer = f.layer(p)
		case "70":
			flags := 0
			f.integer(p, &flags)
			e.Closed = flags&1 != 0
		default:
			f.ignore(p, polylineExtra)
		}
	}
	return e
}

var vertexExtra = codeSet("8", "40", "41", "50", "70", "71", "72", "73", "74", "91")

func decodeVertex(f *fields, pairs []core.Pair) model.Vertex {
	var v model.Vertex
	for _, p := range pairs {
		switch p.Code {
		case "10":
			f.float(p, &v.X)
		case "20":
			f.float(p, &v.Y)
		case "30":
			v.Z = f.optFloat(p)
		case "42":
			v.Bulge = f.optFloat(p)
		default:
			f.ignore(p, vertexExtra)
		}
	}
	return v
}

var textExtra = codeSet("11", "21", "31", "41", "51", "71", "72", "73")

func decodeText(f *fields, pairs []core.Pair) model.Entity {
	e := model.NewText()
	for _, p := range pairs {
		switch {
		case p.Code == "8":
			e.Layer = f.layer(p)
		case f.point(p, "10", "20", "30", &e.InsertionPoint):
		case p.Code == "40":
			f.float(p, &e.Height)
		case p.Code == "1":
			e.Value = p.Value
		case p.Code == "50":
			f.float(p, &e.Rotation)
		case p.Code == "7":
			e.Style = p.Value
		default:
			f.ignore(p, textExtra)
		}
	}
	return e
}

var mtextExtra = codeSet("7", "11", "21", "31", "42", "43", "44", "46", "71", "72", "73")

// decodeMText joins the 3-code chunks and the final 1-code chunk in order.
func decodeMText(f *fields, pairs []core.Pair) model.Entity {
	e := model.NewMText()
	var chunks, tail string
	for _, p := range pairs {
		switch {
		case p.Code == "8":
			e.Layer = f.layer(p)
		case f.point(p, "10", "20", "30", &e.InsertionPoint):
		case p.Code == "40":
			f.float(p, &e.Height)
		case p.Code == "41":
			f.float(p, &e.Width)
		case p.Code == "3":
			chunks += p.Value
		case p.Code == "1":
			tail = p.Value
		case p.Code == "50":
			f.float(p, &e.Rotation)
		default:
			f.ignore(p, mtextExtra)
		}
	}
	e.Value = chunks + tail
	return e
}

var dimensionExtra = codeSet(
	"3", "13", "23", "33", "14", "24", "34", "15", "25", "35", "16", "26", "36",
	"40", "41", "42", "50", "51", "52", "53", "71", "72",
)

func decodeDimension(f *fields, pairs []core.Pair) model.Entity {
	e := model.NewDimension()
	for _, p := range pairs {
		switch {
		case p.Code == "8":
			e.Layer = f.layer(p)
		case p.Code == "2":
			e.Block = p.Value
		case f.point(p, "10", "20", "30", &e.DefinitionPoint):
		case f.point(p, "11", "21", "31", &e.TextMidpoint):
		case p.Code == "70":
			f.integer(p, &e.DimType)
		case p.Code == "1":
			e.Text = p.Value
		default:
			f.ignore(p, dimensionExtra)
		}
	}
	return e
}

func decodeEllipse(f *fields, pairs []core.Pair) model.Entity {
	e := model.NewEllipse()
	for _, p := range pairs {
		switch {
		case p.Code == "8":
			e.Layer = f.layer(p)
		case f.point(p, "10", "20", "30", &e.Center):
		case f.point(p, "11", "21", "31", &e.MajorAxis):
		case p.Code == "40":
			f.float(p, &e.Ratio)
		case p.Code == "41":
			f.float(p, &e.StartParam)
		case p.Code == "42":
			f.float(p, &e.EndParam)
		default:
			f.ignore(p, nil)
		}
	}
	return e
}

var splineExtra = codeSet("12", "22", "32", "13", "23", "33", "41", "42", "43", "44", "72", "73", "74")

// decodeSpline collects repeated codes: every 40 is a knot, every 10 starts
// a control point and every 11 starts a fit point.
func decodeSpline(f *fields, pairs []core.Pair) model.Entity {
	e := model.NewSpline()
	for _, p := range pairs {
		switch p.Code {
		case "8":
			e.Layer = f.layer(p)
		case "70":
			f.integer(p, &e.Flags)
		case "71":
			f.integer(p, &e.Degree)
		case "40":
			if v := f.optFloat(p); v != nil {
				e.Knots = append(e.Knots, *v)
			}
		case "10":
			e.ControlPoints = append(e.ControlPoints, model.Vec3{})
			f.float(p, &e.ControlPoints[len(e.ControlPoints)-1][0])
		case "20", "30":
			if n := len(e.ControlPoints); n > 0 {
				f.float(p, &e.ControlPoints[n-1][axis(p.Code)])
			}
		case "11":
			e.FitPoints = append(e.FitPoints, model.Vec3{})
			f.float(p, &e.FitPoints[len(e.FitPoints)-1][0])
		case "21", "31":
			if n := len(e.FitPoints); n > 0 {
				f.float(p, &e.FitPoints[n-1][axis(p.Code)])
			}
		default:
			f.ignore(p, splineExtra)
		}
	}
	return e
}

// axis maps a coordinate group code to its Vec3 index.
func axis(code string) int {
	switch code[0] {
	case '2':
		return 1
	case '3':
		return 2
	default:
		return 0
	}
}
