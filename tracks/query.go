package tracks

import "cmp"

// ImagesInTracks returns the set of ImageIds referenced anywhere in tm.
func ImagesInTracks[I cmp.Ordered](tm TrackMap[I]) map[I]struct{} {
	images := make(map[I]struct{})
	for _, obs := range tm {
		for img := range obs {
			images[img] = struct{}{}
		}
	}
	return images
}

// TracksInImages returns the ids of tracks that have an observation in
// every image listed in imageIDs. An empty imageIDs returns no tracks.
func TracksInImages[I cmp.Ordered](tm TrackMap[I], imageIDs []I) []TrackId {
	if len(imageIDs) == 0 {
		return nil
	}

	var matches []TrackId
	for trackID, obs := range tm {
		ok := true
		for _, img := range imageIDs {
			if _, present := obs[img]; !present {
				ok = false
				break
			}
		}
		if ok {
			matches = append(matches, trackID)
		}
	}
	return matches
}

// FeatIndicesForImage returns the feature index observed by image img for
// every track in tm that observes it, keyed by TrackId.
func FeatIndicesForImage[I cmp.Ordered](tm TrackMap[I], img I) map[TrackId]FeatIdx {
	out := make(map[TrackId]FeatIdx)
	for trackID, obs := range tm {
		if feat, ok := obs[img]; ok {
			out[trackID] = feat
		}
	}
	return out
}

// TrackLengthHistogram returns, for each observed track length, how many
// tracks in tm have that length.
func TrackLengthHistogram[I cmp.Ordered](tm TrackMap[I]) map[int]int {
	hist := make(map[int]int)
	for _, obs := range tm {
		hist[len(obs)]++
	}
	return hist
}
