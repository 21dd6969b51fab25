// Package trackfusion fuses pairwise feature-match correspondences into
// tracks: chains of the same physical point observed across multiple
// images.
//
// The pipeline's four stages (registration, union, filtering, export) live
// in three packages:
//
//	registry/  — interns (image, feature) observations into dense NodeIds
//	unionfind/ — an enumerable disjoint-set structure over those NodeIds
//	tracks/    — drives the two, uniting matched observations, then filters
//	             out conflicting or under-supported classes and exports them
//
// Two adapters persist and ship exported tracks without touching the core
// algorithm:
//
//	trackstore/  — a SQLite-backed store for exported runs
//	trackcloud/  — streams an exported run to S3 as compressed NDJSON
//
// cmd/trackfusion wires all of the above behind a CLI with build, export,
// and serve-metrics subcommands.
package trackfusion
