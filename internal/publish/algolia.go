// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package publish

import (
	"context"
	"fmt"

	"github.com/algolia/algoliasearch-client-go/v3/algolia/opt"
	"github.com/algolia/algoliasearch-client-go/v3/algolia/search"

	"github.com/pdiddy/docdata/internal/httputil"
	"github.com/pdiddy/docdata/pkg/types"
)

// AlgoliaSaver writes records to an Algolia index.
type AlgoliaSaver struct {
	name  string
	index *search.Index
}

// NewAlgoliaSaver connects to the Algolia application in cfg. Requests go
// through a requester that backs off on HTTP 429.
func NewAlgoliaSaver(cfg types.PublishConfig) (Saver, error) {
	if !cfg.HasCredentials() {
		return nil, fmt.Errorf("algolia: application ID and admin key are required")
	}
	client := search.NewClientWithConfig(search.Configuration{
		AppID:     cfg.AppID,
		APIKey:    cfg.AdminKey,
		Requester: httputil.NewRetryRequester(cfg.Timeout, cfg.MaxRetries),
	})
	return &AlgoliaSaver{name: cfg.IndexName, index: client.InitIndex(cfg.IndexName)}, nil
}

// SaveRecords saves all records in one bulk call. Object IDs are generated
// upstream only when a record lacks one.
func (s *AlgoliaSaver) SaveRecords(ctx context.Context, records []types.SearchRecord) error {
	if _, err := s.index.SaveObjects(records, opt.AutoGenerateObjectIDIfNotExist(true), ctx); err != nil {
		return fmt.Errorf("saving %d records to %s: %w", len(records), s.name, err)
	}
	return nil
}
