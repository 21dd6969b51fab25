package trackcloud

import "errors"

// ErrEmptyTrackMap is returned by Upload when given a TrackMap with no
// tracks; there is nothing worth shipping to S3.
var ErrEmptyTrackMap = errors.New("trackcloud: empty track map")
