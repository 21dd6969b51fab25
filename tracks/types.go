package tracks

import (
	"cmp"

	"github.com/arqui-vision/trackfusion/registry"
)

// FeatIdx identifies a keypoint within one image.
type FeatIdx = registry.FeatIdx

// TrackId is the contiguous, zero-based id a surviving class is assigned at
// export time. It is only stable within one Export call: a later filter
// pass followed by another Export may renumber tracks.
type TrackId int

// IndMatch is one correspondence inside an ImagePair: the query image's
// feature is matched against the train image's feature. Which image plays
// query and which plays train is fixed by ImagePair.First/Second, not by
// this type.
type IndMatch struct {
	QueryIdx FeatIdx
	TrainIdx FeatIdx
}

// ImagePair carries every match found between two images. By convention
// fixed by the upstream matcher, First is associated with each IndMatch's
// TrainIdx and Second with its QueryIdx.
type ImagePair[I cmp.Ordered] struct {
	First   I
	Second  I
	Matches []IndMatch
}

// TrackMap is the canonical export shape: each surviving track maps to the
// single feature index it was observed at in every image that contributed
// to it.
type TrackMap[I cmp.Ordered] map[TrackId]map[I]FeatIdx

// ExportManifest summarizes one Export call: how many nodes and tracks it
// covers and which filter parameters had been applied beforehand. It is
// metadata about an export, not part of the track data itself.
type ExportManifest[I cmp.Ordered] struct {
	RunID               string
	NodeCount           int
	TrackCount          int
	MinTrackLength      int
	MinPairOccurrences  int
}

// DefaultMinTrackLength is the conventional length threshold for callers to
// pass to Filter. Filter itself always uses the value it is given.
const DefaultMinTrackLength = 2
