package trackstore

import "errors"

// ErrRunNotFound is returned by LoadTracks when no run with the given id
// has been saved.
var ErrRunNotFound = errors.New("trackstore: run not found")
