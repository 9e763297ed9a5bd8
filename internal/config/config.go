// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config assembles the runtime configuration from defaults, an
// optional docdata.yaml file, the environment and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/pdiddy/docdata/pkg/types"
)

// Environment variables read under their literal names.
const (
	EnvMode     = "NODE_ENV"
	EnvAppID    = "NEXT_ALGOLIA_APP_ID"
	EnvAdminKey = "NEXT_ALGOLIA_ADMIN_KEY"
)

// EnvPrefix prefixes every other setting in the environment (DOCDATA_DATA_DIR, ...).
const EnvPrefix = "DOCDATA"

// New returns a viper instance with defaults and environment bindings in
// place. cfgFile, when set, names an explicit config file; otherwise
// docdata.yaml is looked up in . and ~/.config/docdata.
func New(cfgFile string) *viper.Viper {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("docdata")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "docdata"))
		}
	}

	def := types.DefaultConfig("data")
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("modules_dir", def.ModulesDir)
	v.SetDefault("search_index", "")
	v.SetDefault("module_index", def.ModuleIndex)
	v.SetDefault("export_index", def.ExportIndex)
	v.SetDefault("source_ext", def.SourceExt)
	v.SetDefault("target_ext", def.TargetExt)
	v.SetDefault("mode", "")
	v.SetDefault("publish.app_id", "")
	v.SetDefault("publish.admin_key", "")
	v.SetDefault("publish.index_name", def.Publish.IndexName)
	v.SetDefault("publish.max_retries", def.Publish.MaxRetries)
	v.SetDefault("publish.timeout", def.Publish.Timeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The build environment sets these without our prefix.
	_ = v.BindEnv("mode", EnvMode)
	_ = v.BindEnv("publish.app_id", EnvAppID)
	_ = v.BindEnv("publish.admin_key", EnvAdminKey)

	return v
}

// ReadFile loads the config file if one exists. It returns the file used,
// or "" when none was found.
func ReadFile(v *viper.Viper) (string, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return "", nil
		}
		return "", fmt.Errorf("reading config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Decode converts the merged settings into a Config.
func Decode(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return types.Config{}, fmt.Errorf("creating config decoder: %w", err)
	}
	if err := decoder.Decode(v.AllSettings()); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings every step depends on.
func Validate(cfg types.Config) error {
	if cfg.DataDir == "" {
		return fmt.Errorf("config: data_dir is required")
	}
	modules := filepath.Clean(cfg.ModulesDir)
	if cfg.ModulesDir == "" || filepath.IsAbs(cfg.ModulesDir) || modules == "." ||
		modules == ".." || strings.HasPrefix(modules, ".."+string(filepath.Separator)) {
		return fmt.Errorf("config: modules_dir must be a directory inside data_dir, got %q", cfg.ModulesDir)
	}
	if !strings.HasPrefix(cfg.SourceExt, ".") || !strings.HasPrefix(cfg.TargetExt, ".") {
		return fmt.Errorf("config: source_ext and target_ext must start with a dot")
	}
	return nil
}
