// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package links rewrites relative hyperlinks inside the HTML body of
// exported JSON documents. Content pages and module pages follow different
// rules; both are plain string transforms over the href attributes.
package links

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/pdiddy/docdata/internal/tree"
	"github.com/pdiddy/docdata/pkg/types"
)

const bodyField = "body"

// Result holds the outcome of a rewrite run.
type Result struct {
	Documents int
	Modules   int
	Skipped   int
}

// Total returns the number of files visited.
func (r Result) Total() int {
	return r.Documents + r.Modules + r.Skipped
}

// Rewrite applies TransformDocLink to every JSON file under cfg.DataDir
// outside the module subtree, then TransformModuleLink to every JSON file
// inside it. Files are processed one at a time; the first read, parse or
// write error aborts the run and leaves earlier files rewritten.
func Rewrite(cfg types.Config, log zerolog.Logger) (Result, error) {
	var result Result

	docs, err := tree.Glob(cfg.DataDir, "**/*.json")
	if err != nil {
		return result, err
	}
	for _, rel := range docs {
		if tree.IsUnder(rel, cfg.ModulesDir) {
			continue
		}
		changed, err := ApplyTransform(tree.Join(cfg.DataDir, rel), rel, TransformDocLink)
		if err != nil {
			return result, err
		}
		if changed {
			result.Documents++
		} else {
			result.Skipped++
		}
	}

	modules, err := tree.Glob(cfg.ModulesPath(), "**/*.json")
	if err != nil {
		return result, err
	}
	for _, rel := range modules {
		changed, err := ApplyTransform(tree.Join(cfg.ModulesPath(), rel), rel, TransformModuleLink)
		if err != nil {
			return result, err
		}
		if changed {
			result.Modules++
		} else {
			result.Skipped++
		}
	}

	log.Info().
		Int("documents", result.Documents).
		Int("modules", result.Modules).
		Int("skipped", result.Skipped).
		Msg("re-wrote all relative links")
	return result, nil
}

// ApplyTransform loads the JSON document at path, runs fn over its body and
// writes it back. Documents without a body, or with an empty one, are left
// untouched and reported as unchanged. Every other field keeps its value and
// its position.
func ApplyTransform(path, relPath string, fn TransformFunc) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] != '{' {
		// Arrays and scalars carry no body.
		if !json.Valid(trimmed) {
			return false, fmt.Errorf("parsing %s: invalid JSON", path)
		}
		return false, nil
	}

	doc := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, doc); err != nil {
		return false, fmt.Errorf("parsing %s: %w", path, err)
	}

	raw, ok := doc.Get(bodyField)
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return false, nil
	}
	var body string
	if err := json.Unmarshal(raw, &body); err != nil {
		return false, fmt.Errorf("parsing body of %s: %w", path, err)
	}
	if body == "" {
		return false, nil
	}

	encoded, err := tree.MarshalJSON(fn(relPath, body))
	if err != nil {
		return false, fmt.Errorf("encoding body of %s: %w", path, err)
	}
	doc.Set(bodyField, encoded)

	if err := tree.WriteObject(path, doc); err != nil {
		return false, err
	}
	return true, nil
}
