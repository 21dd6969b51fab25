package trackcloud

import "github.com/arqui-vision/trackfusion/tracks"

type recordKind string

const (
	recordKindManifest recordKind = "manifest"
	recordKindTrack    recordKind = "track"
)

type manifestRecord struct {
	Kind     recordKind                    `json:"kind"`
	Manifest tracks.ExportManifest[string] `json:"manifest"`
}

type trackRecord struct {
	Kind         recordKind     `json:"kind"`
	TrackID      int            `json:"track_id"`
	Observations map[string]int `json:"observations"`
}

func newTrackRecord(id tracks.TrackId, obs map[string]tracks.FeatIdx) trackRecord {
	flat := make(map[string]int, len(obs))
	for image, feat := range obs {
		flat[image] = int(feat)
	}
	return trackRecord{Kind: recordKindTrack, TrackID: int(id), Observations: flat}
}
