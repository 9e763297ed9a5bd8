// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package publish pushes per-object search records to the hosted search
// index. Publishing is gated on production mode and on credentials; both
// gates and upstream failures are soft, so local builds never break on them.
package publish

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pdiddy/docdata/internal/searchindex"
	"github.com/pdiddy/docdata/pkg/types"
)

// Saver submits a batch of records to the hosted index.
type Saver interface {
	SaveRecords(ctx context.Context, records []types.SearchRecord) error
}

// SaverFactory builds a Saver from the publish settings. It is only called
// once both gates have passed.
type SaverFactory func(cfg types.PublishConfig) (Saver, error)

// Outcome describes how a publish run ended.
type Outcome string

const (
	OutcomeSkippedMode        Outcome = "skipped-mode"
	OutcomeSkippedCredentials Outcome = "skipped-credentials"
	OutcomePublished          Outcome = "published"
	OutcomeFailed             Outcome = "failed"
)

// Result holds the outcome of a publish run.
type Result struct {
	Outcome Outcome
	Records int
}

// Publish builds records from idx and saves them in one batch through the
// Saver returned by newSaver. Skips and submission failures are logged and
// reported in the Result; only a malformed index returns an error.
func Publish(ctx context.Context, cfg types.Config, idx *searchindex.Index, newSaver SaverFactory, log zerolog.Logger) (Result, error) {
	if !cfg.IsProduction() {
		log.Warn().Str("mode", cfg.Mode).
			Msg("skipping Algolia index update because environment is not production; ignore this if you are building the docs locally")
		return Result{Outcome: OutcomeSkippedMode}, nil
	}

	if !cfg.Publish.HasCredentials() {
		log.Error().
			Msg("NEXT_ALGOLIA_APP_ID or NEXT_ALGOLIA_ADMIN_KEY not set; use NODE_ENV=development if you are not deploying the docs")
		return Result{Outcome: OutcomeSkippedCredentials}, nil
	}

	records, err := BuildRecords(idx)
	if err != nil {
		return Result{}, err
	}

	saver, err := newSaver(cfg.Publish)
	if err != nil {
		log.Error().Err(err).Msg("failed to update Algolia index")
		return Result{Outcome: OutcomeFailed, Records: len(records)}, nil
	}

	if err := saver.SaveRecords(ctx, records); err != nil {
		log.Error().Err(err).Int("records", len(records)).Msg("failed to update Algolia index")
		return Result{Outcome: OutcomeFailed, Records: len(records)}, nil
	}

	log.Info().Int("records", len(records)).Str("index", cfg.Publish.IndexName).Msg("updated Algolia index")
	return Result{Outcome: OutcomePublished, Records: len(records)}, nil
}
