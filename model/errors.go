package model

import "fmt"

// SchemaError reports a value that is not a well-formed document. Index is
// the offending entity index, or -1 for the document itself.
type SchemaError struct {
	Index   int
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	switch {
	case e.Index < 0 && e.Field == "":
		return fmt.Sprintf("schema error: %s", e.Message)
	case e.Index < 0:
		return fmt.Sprintf("schema error: %s: %s", e.Field, e.Message)
	case e.Field == "":
		return fmt.Sprintf("schema error: entities[%d]: %s", e.Index, e.Message)
	default:
		return fmt.Sprintf("schema error: entities[%d].%s: %s", e.Index, e.Field, e.Message)
	}
}
