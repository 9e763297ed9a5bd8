// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the docdata steps:
// the runtime configuration and the records sent to the hosted search index.
package types

import "fmt"

// SearchRecord is one documented object as submitted to the hosted search
// index. Records are derived from the combined search index and are never
// written to disk.
type SearchRecord struct {
	// ObjectID is "module.object.type.alias" and identifies the record upstream.
	ObjectID string `json:"objectID" yaml:"objectID"`

	// Module is the owning module name.
	Module string `json:"module" yaml:"module"`

	// Object is the object name within the module.
	Object string `json:"object" yaml:"object"`

	// Path is the page path plus anchor, relative to the API docs root.
	Path string `json:"path" yaml:"path"`

	// Type is the display name of the object type (e.g. "class", "function").
	Type string `json:"type" yaml:"type"`

	// Alias is the explicit anchor for the object, or empty.
	Alias string `json:"alias" yaml:"alias"`
}

// RecordID builds the object ID for a record.
func RecordID(module, object, typ, alias string) string {
	return fmt.Sprintf("%s.%s.%s.%s", module, object, typ, alias)
}
