package model

import (
	"strings"
	"time"
)

// Document is the normalized drawing: an ordered list of entities plus
// optional metadata.
type Document struct {
	Entities []Entity
	Metadata *Metadata
}

// Metadata contains document-level information supplied by the editing
// surface. The codec never derives it from interchange text.
type Metadata struct {
	Version      int
	LastModified time.Time
	Filename     string
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Entities: make([]Entity, 0),
	}
}

// Add appends entities in order.
func (d *Document) Add(entities ...Entity) {
	d.Entities = append(d.Entities, entities...)
}

// Len returns the number of entities
func (d *Document) Len() int {
	return len(d.Entities)
}

// LayerOf returns name without surrounding whitespace, or DefaultLayer
// when nothing is left.
func LayerOf(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultLayer
	}
	return name
}

// Layers returns the distinct layer names used by the document's
// entities. DefaultLayer is always first, even when no entity uses it;
// the rest follow in order of first use. Names are compared as LayerOf
// returns them.
func (d *Document) Layers() []string {
	layers := []string{DefaultLayer}
	seen := map[string]bool{DefaultLayer: true}
	for _, e := range d.Entities {
		if e == nil {
			continue
		}
		name := LayerOf(e.LayerName())
		if seen[name] {
			continue
		}
		seen[name] = true
		layers = append(layers, name)
	}
	return layers
}

// CountByKind returns the number of entities of each kind
func (d *Document) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for _, e := range d.Entities {
		if e != nil {
			counts[e.Kind()]++
		}
	}
	return counts
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{Entities: make([]Entity, len(d.Entities))}
	for i, e := range d.Entities {
		if e != nil {
			out.Entities[i] = e.clone()
		}
	}
	if d.Metadata != nil {
		m := *d.Metadata
		out.Metadata = &m
	}
	return out
}

// Validate checks the structural shape an encoder relies on: a non-nil
// document whose entity slots are all set.
func (d *Document) Validate() error {
	if d == nil {
		return &SchemaError{Index: -1, Message: "document is nil"}
	}
	for i, e := range d.Entities {
		if e == nil {
			return &SchemaError{Index: i, Field: "type", Message: "entity is nil"}
		}
	}
	return nil
}
