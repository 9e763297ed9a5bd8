// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/docdata/internal/pipeline"
)

// stepCommands describes the single-step subcommands.
var stepCommands = []struct {
	step  pipeline.Step
	short string
	long  string
}{
	{
		step:  pipeline.StepRename,
		short: "Rename exported .fjson files to .json",
		long: `Rename finds every file under the data dir ending in the source extension
(.fjson) and renames it to the target extension (.json) in place.`,
	},
	{
		step:  pipeline.StepLinks,
		short: "Rewrite relative links in page bodies",
		long: `Links loads every JSON page, rewrites the relative hrefs in its "body" field
and writes it back. Pages under the module subtree use the module rules;
every other page uses the content rules.`,
	},
	{
		step:  pipeline.StepIndex,
		short: "Build the module index and the module-to-objects index",
		long: `Index writes the list of module pages to <modules-dir>/searchindex.json and
the map of module names to object names to <data-dir>/exportindex.json.`,
	},
	{
		step:  pipeline.StepPublish,
		short: "Publish search records to Algolia",
		long: `Publish flattens the combined search index into one record per object and
saves them to Algolia in a single batch. It is skipped unless NODE_ENV is
production and both Algolia credentials are set; upstream errors are logged
but do not fail the command.`,
	},
}

func init() {
	for _, sc := range stepCommands {
		step := sc.step
		rootCmd.AddCommand(&cobra.Command{
			Use:   string(step),
			Short: sc.short,
			Long:  sc.long,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runSteps(cmd.Context(), []pipeline.Step{step})
			},
		})
	}
}
