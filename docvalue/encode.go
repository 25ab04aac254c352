package docvalue

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/cadcodec/model"
)

// ToMap converts doc into its map form, the inverse of FromMap.
func ToMap(doc *model.Document) (map[string]any, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	entities := make([]any, 0, len(doc.Entities))
	for _, e := range doc.Entities {
		entities = append(entities, entityMap(e))
	}

	out := map[string]any{"entities": entities}
	if md := doc.Metadata; md != nil {
		meta := map[string]any{
			"version":  md.Version,
			"filename": md.Filename,
		}
		if !md.LastModified.IsZero() {
			meta["last_modified"] = md.LastModified.UTC().Format(time.RFC3339)
		}
		out["metadata"] = meta
	}
	return out, nil
}

// ToJSON encodes doc as indented JSON.
func ToJSON(doc *model.Document) ([]byte, error) {
	m, err := ToMap(doc)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("docvalue: encode JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// ToYAML encodes doc as YAML.
func ToYAML(doc *model.Document) ([]byte, error) {
	m, err := ToMap(doc)
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("docvalue: encode YAML: %w", err)
	}
	return data, nil
}

func vec(v model.Vec3) []float64 {
	return []float64{v[0], v[1], v[2]}
}

func entityMap(e model.Entity) map[string]any {
	m := map[string]any{
		"type":  e.Kind().String(),
		"layer": e.LayerName(),
	}

	switch e := e.(type) {
	case *model.Line:
		m["start"] = vec(e.Start)
		m["end"] = vec(e.End)

	case *model.Insert:
		m["block"] = e.Block
		m["insertion_point"] = vec(e.InsertionPoint)
		m["scale"] = vec(e.Scale)
		m["rotation"] = e.Rotation

	case *model.Circle:
		m["center"] = vec(e.Center)
		m["radius"] = e.Radius

	case *model.Arc:
		m["center"] = vec(e.Center)
		m["radius"] = e.Radius
		m["start_angle"] = e.StartAngle
		m["end_angle"] = e.EndAngle

	case *model.Polyline:
		vertices := make([]any, 0, len(e.Vertices))
		for _, v := range e.Vertices {
			vm := map[string]any{"x": v.X, "y": v.Y}
			if v.Z != nil {
				vm["z"] = *v.Z
			}
			if v.Bulge != nil {
				vm["bulge"] = *v.Bulge
			}
			vertices = append(vertices, vm)
		}
		m["vertices"] = vertices
		m["closed"] = e.Closed

	case *model.Text:
		m["insertion_point"] = vec(e.InsertionPoint)
		m["height"] = e.Height
		m["text"] = e.Value
		m["rotation"] = e.Rotation
		m["style"] = e.Style

	case *model.MText:
		m["insertion_point"] = vec(e.InsertionPoint)
		m["height"] = e.Height
		m["width"] = e.Width
		m["text"] = e.Value
		m["rotation"] = e.Rotation

	case *model.Dimension:
		m["block"] = e.Block
		m["definition_point"] = vec(e.DefinitionPoint)
		m["text_midpoint"] = vec(e.TextMidpoint)
		m["dim_type"] = e.DimType
		m["text"] = e.Text

	case *model.Ellipse:
		m["center"] = vec(e.Center)
		m["major_axis"] = vec(e.MajorAxis)
		m["ratio"] = e.Ratio
		m["start_param"] = e.StartParam
		m["end_param"] = e.EndParam

	case *model.Spline:
		m["degree"] = e.Degree
		m["flags"] = e.Flags
		if e.Knots != nil {
			m["knots"] = append([]float64(nil), e.Knots...)
		}
		if e.ControlPoints != nil {
			m["control_points"] = vecList(e.ControlPoints)
		}
		if e.FitPoints != nil {
			m["fit_points"] = vecList(e.FitPoints)
		}

	case *model.Unknown:
		m["name"] = e.Name
		if e.Pairs != nil {
			pairs := make([]any, 0, len(e.Pairs))
			for _, p := range e.Pairs {
				var code any = p.Code
				if n, err := strconv.Atoi(p.Code); err == nil {
					code = n
				}
				pairs = append(pairs, []any{code, p.Value})
			}
			m["pairs"] = pairs
		}
	}
	return m
}

func vecList(vs []model.Vec3) [][]float64 {
	out := make([][]float64, 0, len(vs))
	for _, v := range vs {
		out = append(out, vec(v))
	}
	return out
}
