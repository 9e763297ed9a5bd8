// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package searchindex reads the combined search index produced by the
// documentation build. The index is columnar: objects refer to document
// names and object types by integer position. Modules and objects keep the
// order in which they appear in the source file.
package searchindex

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/buger/jsonparser"
)

// Entry is the fixed-size tuple stored for each object:
// [docnameIndex, typeIndex, priority, alias].
type Entry struct {
	DocIndex  int
	TypeIndex int
	Priority  json.RawMessage
	Alias     string
}

// UnmarshalJSON decodes the positional tuple form.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("decoding object entry: %w", err)
	}
	if len(fields) < 4 {
		return fmt.Errorf("object entry has %d fields, want 4", len(fields))
	}
	if err := json.Unmarshal(fields[0], &e.DocIndex); err != nil {
		return fmt.Errorf("decoding docname index: %w", err)
	}
	if err := json.Unmarshal(fields[1], &e.TypeIndex); err != nil {
		return fmt.Errorf("decoding type index: %w", err)
	}
	e.Priority = fields[2]
	if err := json.Unmarshal(fields[3], &e.Alias); err != nil {
		return fmt.Errorf("decoding alias: %w", err)
	}
	return nil
}

// Object is a documented code entity inside a module.
type Object struct {
	Name  string
	Entry Entry
}

// Module groups the objects documented under one module name.
type Module struct {
	Name    string
	Objects []Object
}

// Index is the parsed combined search index.
type Index struct {
	Docnames []string
	Modules  []Module
	Objnames map[string][]string
}

// Load reads and parses the combined search index at path.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading search index %s: %w", path, err)
	}
	idx, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing search index %s: %w", path, err)
	}
	return idx, nil
}

// Parse decodes a combined search index document.
func Parse(data []byte) (*Index, error) {
	var raw struct {
		Docnames []string            `json:"docnames"`
		Objnames map[string][]string `json:"objnames"`
		Objects  json.RawMessage     `json:"objects"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	idx := &Index{
		Docnames: raw.Docnames,
		Objnames: raw.Objnames,
	}
	if len(raw.Objects) == 0 || string(raw.Objects) == "null" {
		return idx, nil
	}

	// encoding/json loses key order on maps; walk the objects table directly.
	err := jsonparser.ObjectEach(raw.Objects, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		if dataType != jsonparser.Object {
			return fmt.Errorf("module %q: expected object", key)
		}
		mod := Module{Name: string(key)}
		err := jsonparser.ObjectEach(value, func(name, tuple []byte, _ jsonparser.ValueType, _ int) error {
			var e Entry
			if err := json.Unmarshal(tuple, &e); err != nil {
				return fmt.Errorf("object %s.%s: %w", mod.Name, name, err)
			}
			mod.Objects = append(mod.Objects, Object{Name: string(name), Entry: e})
			return nil
		})
		if err != nil {
			return err
		}
		idx.Modules = append(idx.Modules, mod)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// Docname returns the document path at position i.
func (idx *Index) Docname(i int) (string, error) {
	if i < 0 || i >= len(idx.Docnames) {
		return "", fmt.Errorf("docname index %d out of range (%d docnames)", i, len(idx.Docnames))
	}
	return idx.Docnames[i], nil
}

// TypeName returns the display name of the object type at position i.
func (idx *Index) TypeName(i int) (string, error) {
	names, ok := idx.Objnames[strconv.Itoa(i)]
	if !ok || len(names) < 2 {
		return "", fmt.Errorf("no object type name for index %d", i)
	}
	return names[1], nil
}

// ObjectCount returns the total number of objects across all modules.
func (idx *Index) ObjectCount() int {
	n := 0
	for _, m := range idx.Modules {
		n += len(m.Objects)
	}
	return n
}
