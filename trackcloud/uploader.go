package trackcloud

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/klauspost/compress/flate"

	"github.com/arqui-vision/trackfusion/tracks"
)

// Uploader ships exported tracks to S3.
type Uploader struct {
	client *s3.Client
}

// NewUploader wraps an S3 client for use as an Uploader.
func NewUploader(client *s3.Client) *Uploader {
	return &Uploader{client: client}
}

// Upload writes manifest and every track in tm to bucket/key as
// flate-compressed newline-delimited JSON, streaming the encode directly
// into the multipart upload rather than materializing the object first.
func (u *Uploader) Upload(ctx context.Context, bucket, key string, manifest tracks.ExportManifest[string], tm tracks.TrackMap[string]) error {
	if len(tm) == 0 {
		return ErrEmptyTrackMap
	}

	pr, pw := io.Pipe()
	uploader := manager.NewUploader(u.client)

	go func() {
		err := encodeTracks(pw, manifest, tm)
		_ = pw.CloseWithError(err)
	}()

	_, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:          aws.String(bucket),
		Key:             aws.String(key),
		Body:            pr,
		ContentEncoding: aws.String("deflate"),
		ContentType:     aws.String("application/x-ndjson"),
	})
	if err != nil {
		return fmt.Errorf("trackcloud: upload s3://%s/%s: %w", bucket, key, err)
	}

	return nil
}

func encodeTracks(w io.Writer, manifest tracks.ExportManifest[string], tm tracks.TrackMap[string]) error {
	fw, err := flate.NewWriter(w, flate.BestSpeed)
	if err != nil {
		return fmt.Errorf("trackcloud: create flate writer: %w", err)
	}

	enc := json.NewEncoder(fw)
	if err := enc.Encode(manifestRecord{Kind: recordKindManifest, Manifest: manifest}); err != nil {
		fw.Close()
		return fmt.Errorf("trackcloud: encode manifest: %w", err)
	}

	for trackID, obs := range tm {
		if err := enc.Encode(newTrackRecord(trackID, obs)); err != nil {
			fw.Close()
			return fmt.Errorf("trackcloud: encode track %d: %w", trackID, err)
		}
	}

	return fw.Close()
}
