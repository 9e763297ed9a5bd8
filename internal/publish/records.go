// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package publish

import (
	"fmt"
	"strings"

	"github.com/pdiddy/docdata/internal/searchindex"
	"github.com/pdiddy/docdata/pkg/types"
)

const apidocsPrefix = "sections/api/apidocs/"

// BuildRecords flattens the combined search index into one record per
// (module, object) pair, in source order. A dangling docname or type index
// is an error.
func BuildRecords(idx *searchindex.Index) ([]types.SearchRecord, error) {
	records := make([]types.SearchRecord, 0, idx.ObjectCount())
	for _, mod := range idx.Modules {
		for _, obj := range mod.Objects {
			rec, err := buildRecord(idx, mod.Name, obj)
			if err != nil {
				return nil, fmt.Errorf("building record for %s.%s: %w", mod.Name, obj.Name, err)
			}
			records = append(records, rec)
		}
	}
	return records, nil
}

func buildRecord(idx *searchindex.Index, module string, obj searchindex.Object) (types.SearchRecord, error) {
	typ, err := idx.TypeName(obj.Entry.TypeIndex)
	if err != nil {
		return types.SearchRecord{}, err
	}
	docname, err := idx.Docname(obj.Entry.DocIndex)
	if err != nil {
		return types.SearchRecord{}, err
	}

	alias := obj.Entry.Alias
	relativePath := strings.Replace(docname, apidocsPrefix, "", 1)
	anchor := module + "." + obj.Name
	if alias != "" {
		anchor = alias
	}

	return types.SearchRecord{
		ObjectID: types.RecordID(module, obj.Name, typ, alias),
		Module:   module,
		Object:   obj.Name,
		Path:     relativePath + "#" + anchor,
		Type:     typ,
		Alias:    alias,
	}, nil
}
