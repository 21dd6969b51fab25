package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/arqui-vision/trackfusion/tracks"
	"github.com/arqui-vision/trackfusion/trackstore"
)

var (
	exportRunID  string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print a previously built run's tracks",
	Long: `export loads the TrackMap saved under --run-id from the configured
SQLite store and writes it to stdout, either as JSON or as a plain
"image feature" listing grouped by track.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportRunID, "run-id", "", "run id to export (required)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "text", "output format: text or json")
	_ = exportCmd.MarkFlagRequired("run-id")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	ctx := cmd.Context()

	store, err := trackstore.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("export: open store: %w", err)
	}
	defer store.Close()

	tm, err := store.LoadTracks(ctx, exportRunID)
	if err != nil {
		return fmt.Errorf("export: load run %s: %w", exportRunID, err)
	}

	switch exportFormat {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(tm)
	case "text":
		ids := make([]tracks.TrackId, 0, len(tm))
		for id := range tm {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		nameOf := func(s string) string { return s }
		for _, id := range ids {
			if err := tracks.FormatTrackText(cmd.OutOrStdout(), id, tm[id], nameOf); err != nil {
				return fmt.Errorf("export: write track %d: %w", id, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("export: unknown format %q (want text or json)", exportFormat)
	}
}
