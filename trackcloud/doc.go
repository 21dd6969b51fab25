// Package trackcloud uploads exported tracks to S3 as a compressed
// newline-delimited JSON object: one manifest record followed by one record
// per track. Upload streams through an io.Pipe into an
// aws-sdk-go-v2/feature/s3/manager.Uploader rather than buffering the whole
// object in memory first.
package trackcloud
