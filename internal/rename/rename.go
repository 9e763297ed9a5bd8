// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rename converts exported document files from the builder's
// source extension to the extension consumed downstream.
package rename

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/docdata/internal/tree"
	"github.com/pdiddy/docdata/pkg/types"
)

// Result holds the outcome of a rename run.
type Result struct {
	Renamed []string
}

// Rename renames every file under cfg.DataDir ending in cfg.SourceExt so that
// it ends in cfg.TargetExt instead. Directory and base name are preserved.
// The first I/O error aborts the run.
func Rename(cfg types.Config, log zerolog.Logger) (Result, error) {
	if cfg.SourceExt == "" || cfg.TargetExt == "" {
		return Result{}, fmt.Errorf("rename: source and target extensions are required")
	}

	entries, err := tree.Glob(cfg.DataDir, "**/*"+cfg.SourceExt)
	if err != nil {
		return Result{}, err
	}

	var result Result
	for _, rel := range entries {
		from := tree.Join(cfg.DataDir, rel)
		to := TargetPath(from, cfg.SourceExt, cfg.TargetExt)
		if err := os.Rename(from, to); err != nil {
			return result, fmt.Errorf("renaming %s: %w", from, err)
		}
		log.Debug().Str("from", from).Str("to", to).Msg("renamed")
		result.Renamed = append(result.Renamed, to)
	}

	log.Info().Int("files", len(result.Renamed)).
		Msgf("converted %s files to %s", cfg.SourceExt, cfg.TargetExt)
	return result, nil
}

// TargetPath swaps the trailing sourceExt of path for targetExt. Paths that
// do not end in sourceExt are returned unchanged.
func TargetPath(path, sourceExt, targetExt string) string {
	if !strings.HasSuffix(path, sourceExt) {
		return path
	}
	return strings.TrimSuffix(path, sourceExt) + targetExt
}
