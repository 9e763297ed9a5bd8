// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docdata/internal/publish"
	"github.com/pdiddy/docdata/internal/searchindex"
	"github.com/pdiddy/docdata/pkg/types"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Print the search records that publish would send",
	Long: `Records flattens the combined search index into search records and prints
them to stdout without contacting Algolia. Use it to inspect what a
production publish would upload.`,
	Args: cobra.NoArgs,
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().String("format", "json", "output format: json or yaml")

	rootCmd.AddCommand(recordsCmd)
}

func runRecords(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	idx, err := searchindex.Load(app.cfg.SearchIndexPath())
	if err != nil {
		return err
	}
	records, err := publish.BuildRecords(idx)
	if err != nil {
		return err
	}
	return writeRecords(os.Stdout, records, format)
}

func writeRecords(w io.Writer, records []types.SearchRecord, format string) error {
	switch format {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(records)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}
