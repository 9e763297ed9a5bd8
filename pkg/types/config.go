// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"path/filepath"
	"time"
)

// ProductionMode is the execution mode under which search records are published.
const ProductionMode = "production"

// PublishConfig holds settings for the search publishing step.
type PublishConfig struct {
	// AppID is the Algolia application ID (NEXT_ALGOLIA_APP_ID).
	AppID string `json:"app_id" yaml:"app_id" mapstructure:"app_id"`

	// AdminKey is the Algolia admin API key (NEXT_ALGOLIA_ADMIN_KEY).
	AdminKey string `json:"-" yaml:"-" mapstructure:"admin_key"`

	// IndexName is the hosted index that receives the records (default "docs").
	IndexName string `json:"index_name" yaml:"index_name" mapstructure:"index_name"`

	// MaxRetries is the number of retries on HTTP 429 responses (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`

	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// HasCredentials reports whether both the application ID and admin key are set.
func (c PublishConfig) HasCredentials() bool {
	return c.AppID != "" && c.AdminKey != ""
}

// Config holds every path and environment-derived setting used by the
// processing steps. It is built once at startup and passed to each step.
type Config struct {
	// DataDir is the content root holding the exported documents.
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`

	// ModulesDir is the module subtree, relative to DataDir.
	ModulesDir string `json:"modules_dir" yaml:"modules_dir" mapstructure:"modules_dir"`

	// SearchIndex is the combined search index file. Empty means
	// DataDir/searchindex.json.
	SearchIndex string `json:"search_index" yaml:"search_index" mapstructure:"search_index"`

	// ModuleIndex is the file name of the module index written inside the module subtree.
	ModuleIndex string `json:"module_index" yaml:"module_index" mapstructure:"module_index"`

	// ExportIndex is the file name of the module-to-objects index written at DataDir.
	ExportIndex string `json:"export_index" yaml:"export_index" mapstructure:"export_index"`

	// SourceExt and TargetExt drive the rename step (".fjson" -> ".json").
	SourceExt string `json:"source_ext" yaml:"source_ext" mapstructure:"source_ext"`
	TargetExt string `json:"target_ext" yaml:"target_ext" mapstructure:"target_ext"`

	// Mode is the execution mode (NODE_ENV). Publishing only runs in production.
	Mode string `json:"mode" yaml:"mode" mapstructure:"mode"`

	Publish PublishConfig `json:"publish" yaml:"publish" mapstructure:"publish"`
}

// DefaultConfig returns a Config rooted at dataDir with the stock file names.
func DefaultConfig(dataDir string) Config {
	return Config{
		DataDir:     dataDir,
		ModulesDir:  "_modules",
		ModuleIndex: "searchindex.json",
		ExportIndex: "exportindex.json",
		SourceExt:   ".fjson",
		TargetExt:   ".json",
		Publish: PublishConfig{
			IndexName:  "docs",
			MaxRetries: 5,
			Timeout:    60 * time.Second,
		},
	}
}

// ModulesPath returns the path of the module subtree.
func (c Config) ModulesPath() string {
	return filepath.Join(c.DataDir, c.ModulesDir)
}

// SearchIndexPath returns the combined search index location.
func (c Config) SearchIndexPath() string {
	if c.SearchIndex != "" {
		return c.SearchIndex
	}
	return filepath.Join(c.DataDir, "searchindex.json")
}

// ModuleIndexPath returns where the module index is written.
func (c Config) ModuleIndexPath() string {
	return filepath.Join(c.ModulesPath(), c.ModuleIndex)
}

// ExportIndexPath returns where the module-to-objects index is written.
func (c Config) ExportIndexPath() string {
	return filepath.Join(c.DataDir, c.ExportIndex)
}

// IsProduction reports whether the execution mode allows publishing.
func (c Config) IsProduction() bool {
	return c.Mode == ProductionMode
}
