package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/arqui-vision/trackfusion/tracks"
	"github.com/arqui-vision/trackfusion/trackcloud"
	"github.com/arqui-vision/trackfusion/trackmetrics"
	"github.com/arqui-vision/trackfusion/trackstore"
)

var (
	buildMinTrackLength     int
	buildMinPairOccurrences int
	buildUploadKey          string
)

var buildCmd = &cobra.Command{
	Use:   "build <matches.json>",
	Short: "Build tracks from a JSON file of image-pair matches",
	Long: `build reads a JSON array of image pairs (each carrying its list of
train/query feature-index matches), fuses them into tracks, applies the
conflict and pairwise-support filters, and persists the result to the
configured SQLite store. If cloud.bucket is set, the same export is also
uploaded to S3.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().IntVar(&buildMinTrackLength, "min-track-length", 0, "minimum track length (0 uses the configured default)")
	buildCmd.Flags().IntVar(&buildMinPairOccurrences, "min-pair-occurrences", 0, "minimum pairwise-support occurrences (0 uses the configured default; the filter runs only when the resulting value is > 0)")
	buildCmd.Flags().StringVar(&buildUploadKey, "upload-key", "", "S3 object key to upload to (requires cloud.bucket); defaults to <cloud.prefix><run-id>.ndjson.deflate")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	ctx := cmd.Context()

	pairs, err := readImagePairs(args[0])
	if err != nil {
		return err
	}

	minTrackLength := cfg.Fusion.MinTrackLength
	if buildMinTrackLength > 0 {
		minTrackLength = buildMinTrackLength
	}
	minPairOccurrences := cfg.Fusion.MinPairOccurrences
	if buildMinPairOccurrences > 0 {
		minPairOccurrences = buildMinPairOccurrences
	}

	metrics := trackmetrics.NewRecorder(cfg.Metrics.Namespace)
	builder := tracks.NewBuilder[string](
		tracks.WithLogger[string](slog.Default()),
		tracks.WithMetrics[string](metrics),
	)

	if err := builder.Build(pairs); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	if err := builder.Filter(minTrackLength); err != nil {
		return fmt.Errorf("build: filter: %w", err)
	}
	if minPairOccurrences > 0 {
		if err := builder.FilterPairWiseMinimumMatches(minPairOccurrences); err != nil {
			return fmt.Errorf("build: pairwise filter: %w", err)
		}
	}

	tm, manifest := builder.ExportWithManifest()
	slog.Info("build complete", "runID", manifest.RunID, "tracks", manifest.TrackCount, "nodes", manifest.NodeCount)

	store, err := trackstore.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("build: open store: %w", err)
	}
	defer store.Close()

	if err := store.SaveTracks(ctx, manifest, tm); err != nil {
		return fmt.Errorf("build: save tracks: %w", err)
	}

	if cfg.Cloud.Bucket != "" {
		if err := uploadToCloud(ctx, cfg.Cloud.Bucket, cfg.Cloud.Prefix, manifest, tm); err != nil {
			return fmt.Errorf("build: upload: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d tracks over %d nodes\n", manifest.RunID, manifest.TrackCount, manifest.NodeCount)
	return nil
}

func uploadToCloud(ctx context.Context, bucket, prefix string, manifest tracks.ExportManifest[string], tm tracks.TrackMap[string]) error {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}

	key := buildUploadKey
	if key == "" {
		key = prefix + manifest.RunID + ".ndjson.deflate"
	}

	uploader := trackcloud.NewUploader(s3.NewFromConfig(awsCfg))
	return uploader.Upload(ctx, bucket, key, manifest, tm)
}

func readImagePairs(path string) ([]tracks.ImagePair[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var pairs []tracks.ImagePair[string]
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return pairs, nil
}
