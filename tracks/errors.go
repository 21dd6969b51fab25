package tracks

import "errors"

// Sentinel errors for track-fusion precondition violations. Real failure
// modes are limited to these and to allocation, which the Go runtime
// surfaces on its own; there is no partial-failure or retry model.
var (
	// ErrAlreadyBuilt indicates Build was called a second time on the same
	// Builder. A Builder is a single-use pipeline.
	ErrAlreadyBuilt = errors.New("tracks: Build already called")

	// ErrNotBuilt indicates Filter, FilterPairWiseMinimumMatches, or
	// ExportToStream was called before Build. ExportToSTL and
	// ExportWithManifest have no error result and panic when called before
	// Build.
	ErrNotBuilt = errors.New("tracks: Build has not been called")
)
