// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docdata CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pdiddy/docdata/internal/config"
	"github.com/pdiddy/docdata/internal/logger"
	"github.com/pdiddy/docdata/internal/pipeline"
	"github.com/pdiddy/docdata/internal/secrets"
	"github.com/pdiddy/docdata/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// appState holds what every command needs, built once in PersistentPreRunE.
type appState struct {
	cfg types.Config
	log zerolog.Logger
}

var app appState

// rootCmd is the base command for the docdata CLI.
var rootCmd = &cobra.Command{
	Use:   "docdata",
	Short: "Post-process exported documentation data",
	Long: `docdata post-processes the JSON files exported by the documentation build.

Without arguments it runs every step in order: rename exported .fjson files to
.json, rewrite relative links in page bodies, build the module and export
indexes, and publish search records to Algolia. Publishing only happens when
NODE_ENV=production and NEXT_ALGOLIA_APP_ID and NEXT_ALGOLIA_ADMIN_KEY are set.

Use --local to run every step except publishing, or a step subcommand to run
a single step.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: setup,
	RunE:              runRoot,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./docdata.yaml or ~/.config/docdata/docdata.yaml)")
	flags.String("data-dir", "", "content root holding the exported documents (default data)")
	flags.String("modules-dir", "", "module subtree, relative to the data dir (default _modules)")
	flags.String("search-index", "", "combined search index (default <data-dir>/searchindex.json)")
	flags.String("secrets-dir", ".secrets/", "directory holding algolia-app-id and algolia-admin-key files")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "console", "log format: console or json")

	rootCmd.Flags().Bool("local", false, "run every step except publishing")
}

// setup builds the logger and configuration shared by every command.
func setup(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	level, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")
	app.log = logger.New(logger.Config{Level: level, Format: format, Output: os.Stderr})

	cfgFile, _ := cmd.Flags().GetString("config")
	v := config.New(cfgFile)
	for key, flag := range map[string]string{
		"data_dir":     "data-dir",
		"modules_dir":  "modules-dir",
		"search_index": "search-index",
	} {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	used, err := config.ReadFile(v)
	if err != nil {
		return err
	}
	if used != "" {
		app.log.Debug().Str("file", used).Msg("using config file")
	}

	cfg, err := config.Decode(v)
	if err != nil {
		return err
	}

	secretsDir, _ := cmd.Flags().GetString("secrets-dir")
	s, err := secrets.Load(secretsDir, app.log)
	if err != nil {
		return err
	}
	if len(s) > 0 {
		keys := make([]string, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		app.log.Debug().Strs("keys", keys).Msg("loaded secrets")
	}
	secrets.FillCredentials(&cfg.Publish, s)

	app.cfg = cfg
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	steps := pipeline.AllSteps
	if local, _ := cmd.Flags().GetBool("local"); local {
		steps = pipeline.LocalSteps
	}
	return runSteps(cmd.Context(), steps)
}

// runSteps runs steps sequentially with the shared configuration.
func runSteps(ctx context.Context, steps []pipeline.Step) error {
	p, err := pipeline.New(app.cfg, app.log, steps)
	if err != nil {
		return err
	}
	return p.Run(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
