// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index derives the two lookup files consumed by the docs front end:
// the list of module pages and the module-to-objects map.
package index

import (
	"strings"

	"github.com/rs/zerolog"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/pdiddy/docdata/internal/searchindex"
	"github.com/pdiddy/docdata/internal/tree"
	"github.com/pdiddy/docdata/pkg/types"
)

// ModuleIndex is the document written inside the module subtree.
type ModuleIndex struct {
	Docnames []string `json:"docnames"`
}

// Result holds the outcome of an index build.
type Result struct {
	Docnames []string
	Modules  int
}

// Build writes both the module index and the export index.
func Build(cfg types.Config, idx *searchindex.Index, log zerolog.Logger) (Result, error) {
	docnames, err := BuildModuleIndex(cfg)
	if err != nil {
		return Result{}, err
	}

	exported := ExportIndex(idx)
	if err := tree.WriteJSON(cfg.ExportIndexPath(), exported); err != nil {
		return Result{}, err
	}

	log.Info().
		Int("docnames", len(docnames)).
		Int("modules", exported.Len()).
		Msg("generated list of all list and module files")
	return Result{Docnames: docnames, Modules: exported.Len()}, nil
}

// BuildModuleIndex lists every JSON page below the module subtree, skipping
// the files that sit directly at its root, and writes the names (relative,
// without extension) to cfg.ModuleIndexPath().
func BuildModuleIndex(cfg types.Config) ([]string, error) {
	root := cfg.ModulesPath()

	all, err := tree.Glob(root, "**/*.json")
	if err != nil {
		return nil, err
	}
	top, err := tree.Glob(root, "*.json")
	if err != nil {
		return nil, err
	}
	exclude := make(map[string]bool, len(top))
	for _, rel := range top {
		exclude[rel] = true
	}

	docnames := make([]string, 0, len(all))
	for _, rel := range all {
		if exclude[rel] {
			continue
		}
		docnames = append(docnames, strings.Replace(rel, ".json", "", 1))
	}

	if err := tree.WriteJSON(cfg.ModuleIndexPath(), ModuleIndex{Docnames: docnames}); err != nil {
		return nil, err
	}
	return docnames, nil
}

// ExportIndex maps each module to its object names, both in source order.
// Modules without objects are omitted.
func ExportIndex(idx *searchindex.Index) *orderedmap.OrderedMap[string, []string] {
	byModule := orderedmap.New[string, []string]()
	if idx == nil {
		return byModule
	}
	for _, mod := range idx.Modules {
		for _, obj := range mod.Objects {
			names, _ := byModule.Get(mod.Name)
			byModule.Set(mod.Name, append(names, obj.Name))
		}
	}
	return byModule
}
