// Package docvalue converts between a [model.Document] and the plain
// document value an editing surface exchanges: a JSON or YAML object of the
// form
//
//	{
//	  "entities": [
//	    {"type": "LINE", "layer": "0", "start": [0, 0, 0], "end": [10, 0, 0]}
//	  ],
//	  "metadata": {"version": 1, "last_modified": "2024-01-02T15:04:05Z", "filename": "plan.dxf"}
//	}
//
// Each entity carries a "type" tag naming its kind and the snake_case fields
// of that kind. Missing fields take the defaults of the model constructors;
// vectors may have two or three components. Any structural problem (a
// root that is not an object, a missing or unrecognized type tag, a field of
// the wrong type) is returned as a *model.SchemaError naming the entity index
// and field.
package docvalue
