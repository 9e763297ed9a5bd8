// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tree provides the filesystem helpers shared by the processing
// steps: globbing a content tree and writing JSON documents back to disk.
package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Glob returns the regular files under root matching pattern. Returned paths
// are slash-separated and relative to root, in directory traversal order.
// Hidden files and directories are not matched. A missing root yields no
// matches.
func Glob(root, pattern string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern,
		doublestar.WithFilesOnly(),
		doublestar.WithNoHidden(),
		doublestar.WithFailOnIOErrors(),
	)
	if err != nil {
		return nil, fmt.Errorf("globbing %s under %s: %w", pattern, root, err)
	}
	return matches, nil
}

// Join converts a slash-separated path returned by Glob into a filesystem
// path under root.
func Join(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

// IsUnder reports whether the slash-separated rel lies inside dir. Both are
// relative to the same root; dir may be written in any equivalent form
// ("_modules", "./_modules/").
func IsUnder(rel, dir string) bool {
	dir = strings.Trim(path.Clean(filepath.ToSlash(dir)), "/")
	if dir == "" || dir == "." || dir == ".." || strings.HasPrefix(dir, "../") {
		return false
	}
	return strings.HasPrefix(path.Clean(rel), dir+"/")
}

// MarshalJSON encodes v compactly without escaping HTML characters, so
// bodies containing markup survive a read/write cycle unchanged.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// MarshalObject encodes an ordered JSON object compactly, keeping key order
// and leaving HTML characters in the raw values unescaped.
func MarshalObject(obj *orderedmap.OrderedMap[string, json.RawMessage]) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		key, err := MarshalJSON(pair.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := json.Compact(&buf, pair.Value); err != nil {
			return nil, fmt.Errorf("field %q: %w", pair.Key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteObject writes obj to path as compact JSON in key order.
func WriteObject(path string, obj *orderedmap.OrderedMap[string, json.RawMessage]) error {
	data, err := MarshalObject(obj)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteJSON writes v to path as compact JSON.
func WriteJSON(path string, v any) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
