// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package publish

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docdata/internal/searchindex"
	"github.com/pdiddy/docdata/pkg/types"
)

const pkgIndex = `{
	"docnames": ["sections/api/apidocs/pkg"],
	"objects": {"pkg": {"Obj": [0, 1, null, ""]}},
	"objnames": {"1": ["cls", "class"]}
}`

// fakeSaver records submitted batches and returns a canned error.
type fakeSaver struct {
	batches [][]types.SearchRecord
	err     error
}

func (f *fakeSaver) SaveRecords(_ context.Context, records []types.SearchRecord) error {
	f.batches = append(f.batches, records)
	return f.err
}

// factory returns a SaverFactory handing out saver and counting calls.
func factory(saver Saver, calls *int) SaverFactory {
	return func(types.PublishConfig) (Saver, error) {
		*calls++
		return saver, nil
	}
}

func parse(t *testing.T, data string) *searchindex.Index {
	t.Helper()
	idx, err := searchindex.Parse([]byte(data))
	require.NoError(t, err)
	return idx
}

func productionConfig() types.Config {
	cfg := types.DefaultConfig("data")
	cfg.Mode = types.ProductionMode
	cfg.Publish.AppID = "APP"
	cfg.Publish.AdminKey = "KEY"
	return cfg
}

func TestBuildRecords(t *testing.T) {
	records, err := BuildRecords(parse(t, pkgIndex))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, types.SearchRecord{
		ObjectID: "pkg.Obj.class.",
		Module:   "pkg",
		Object:   "Obj",
		Path:     "pkg#pkg.Obj",
		Type:     "class",
		Alias:    "",
	}, records[0])
}

func TestBuildRecords_Alias(t *testing.T) {
	idx := parse(t, `{
		"docnames": ["sections/api/apidocs/execution", "overview"],
		"objects": {
			"dagster": {"execute_pipeline": [0, 0, 1, "dagster.execute_pipeline"]},
			"dagster.cli": {"run": [1, 0, 1, ""]}
		},
		"objnames": {"0": ["py", "function", "Python function"]}
	}`)

	records, err := BuildRecords(idx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "execution#dagster.execute_pipeline", records[0].Path)
	assert.Equal(t, "dagster.execute_pipeline.function.dagster.execute_pipeline", records[0].ObjectID)
	assert.Equal(t, "overview#dagster.cli.run", records[1].Path)
	assert.Equal(t, "dagster.cli.run.function.", records[1].ObjectID)
}

func TestBuildRecords_DanglingIndexes(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "docname", data: `{"docnames":[],"objects":{"pkg":{"Obj":[3,1,null,""]}},"objnames":{"1":["cls","class"]}}`},
		{name: "type", data: `{"docnames":["a"],"objects":{"pkg":{"Obj":[0,7,null,""]}},"objnames":{"1":["cls","class"]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildRecords(parse(t, tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "pkg.Obj")
		})
	}
}

func TestPublish_Gates(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(cfg *types.Config)
		wantOutcome Outcome
		wantLog     string
	}{
		{
			name:        "mode unset",
			mutate:      func(cfg *types.Config) { cfg.Mode = "" },
			wantOutcome: OutcomeSkippedMode,
			wantLog:     `"level":"warn"`,
		},
		{
			name:        "development mode",
			mutate:      func(cfg *types.Config) { cfg.Mode = "development" },
			wantOutcome: OutcomeSkippedMode,
			wantLog:     "not production",
		},
		{
			name:        "missing app id",
			mutate:      func(cfg *types.Config) { cfg.Publish.AppID = "" },
			wantOutcome: OutcomeSkippedCredentials,
			wantLog:     `"level":"error"`,
		},
		{
			name:        "missing admin key",
			mutate:      func(cfg *types.Config) { cfg.Publish.AdminKey = "" },
			wantOutcome: OutcomeSkippedCredentials,
			wantLog:     "NEXT_ALGOLIA_ADMIN_KEY",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := productionConfig()
			tt.mutate(&cfg)

			var buf bytes.Buffer
			calls := 0
			saver := &fakeSaver{}
			result, err := Publish(context.Background(), cfg, parse(t, pkgIndex), factory(saver, &calls), zerolog.New(&buf))

			require.NoError(t, err)
			assert.Equal(t, tt.wantOutcome, result.Outcome)
			assert.Zero(t, calls, "no client may be created")
			assert.Empty(t, saver.batches)
			assert.Contains(t, buf.String(), tt.wantLog)
		})
	}
}

func TestPublish_SavesOneBatch(t *testing.T) {
	calls := 0
	saver := &fakeSaver{}
	result, err := Publish(context.Background(), productionConfig(), parse(t, pkgIndex), factory(saver, &calls), zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, OutcomePublished, result.Outcome)
	assert.Equal(t, 1, result.Records)
	assert.Equal(t, 1, calls)
	require.Len(t, saver.batches, 1)
	assert.Equal(t, "pkg.Obj.class.", saver.batches[0][0].ObjectID)
}

func TestPublish_SubmissionErrorIsSoft(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	saver := &fakeSaver{err: errors.New("upstream 503")}
	result, err := Publish(context.Background(), productionConfig(), parse(t, pkgIndex), factory(saver, &calls), zerolog.New(&buf))

	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, result.Outcome)
	assert.Contains(t, buf.String(), "upstream 503")
}

func TestPublish_FactoryErrorIsSoft(t *testing.T) {
	failing := func(types.PublishConfig) (Saver, error) { return nil, errors.New("bad config") }
	result, err := Publish(context.Background(), productionConfig(), parse(t, pkgIndex), failing, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, result.Outcome)
}

func TestPublish_MalformedIndexIsFatal(t *testing.T) {
	calls := 0
	idx := parse(t, `{"docnames":[],"objects":{"pkg":{"Obj":[0,1,null,""]}},"objnames":{}}`)
	_, err := Publish(context.Background(), productionConfig(), idx, factory(&fakeSaver{}, &calls), zerolog.Nop())

	require.Error(t, err)
	assert.Zero(t, calls)
}

func TestNewAlgoliaSaver_RequiresCredentials(t *testing.T) {
	_, err := NewAlgoliaSaver(types.PublishConfig{AppID: "APP"})
	require.Error(t, err)
}
