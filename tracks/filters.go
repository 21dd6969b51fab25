package tracks

import (
	"cmp"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/arqui-vision/trackfusion/registry"
)

// Filter erases every current class that is conflicting - contains two
// members observed in the same image, which is geometrically impossible for
// one scene point - or shorter than minTrackLength. There is no safe way to
// split a conflicting class post hoc, so it is dropped outright rather than
// repaired. A class of length exactly minTrackLength survives;
// minTrackLength <= 1 is accepted but vacuous, since a length-1 class can
// never conflict.
//
// Filter must be called after Build. It may be called any number of times;
// each call only ever erases classes, never resurrects one, so NbTracks is
// non-increasing across calls.
func (b *Builder[I]) Filter(minTrackLength int) error {
	if !b.built {
		return ErrNotBuilt
	}

	seenImages := make(map[I]struct{})
	erased := 0
	for repr := range b.uf.Classes() {
		clear(seenImages)
		length := 0
		for member := range b.uf.Items(repr) {
			key, err := b.reg.Resolve(registry.NodeId(member))
			if err != nil {
				return err
			}
			seenImages[key.Image] = struct{}{}
			length++
		}

		if len(seenImages) != length || len(seenImages) < minTrackLength {
			b.uf.Erase(repr)
			erased++
		}
	}

	b.minTrackLength = minTrackLength
	b.metrics.ObserveFilter("conflict", erased)
	b.logger.Debug("tracks: conflict filter complete",
		"minTrackLength", minTrackLength,
		"erased", erased,
		"remaining", b.uf.NbClasses(),
	)

	return nil
}

// FilterPairWiseMinimumMatches erases every current class whose supporting
// image pair shares fewer than minOccurrences co-observed tracks. For every
// image I it first computes TracksByImage[I], the set of class
// representatives that include a node from I, as a roaring bitmap keyed by
// representative id. Then for every unordered pair (I, J) with I <= J -
// including the diagonal I == J, which imposes the threshold on each
// image's own track count too - it intersects TracksByImage[I] and
// TracksByImage[J]; any track in an intersection smaller than
// minOccurrences is marked. All marked tracks are erased once every pair
// has been considered.
//
// FilterPairWiseMinimumMatches must be called after Build.
func (b *Builder[I]) FilterPairWiseMinimumMatches(minOccurrences int) error {
	if !b.built {
		return ErrNotBuilt
	}

	tracksByImage := make(map[I]*roaring.Bitmap)
	for repr := range b.uf.Classes() {
		for member := range b.uf.Items(repr) {
			key, err := b.reg.Resolve(registry.NodeId(member))
			if err != nil {
				return err
			}
			bm, ok := tracksByImage[key.Image]
			if !ok {
				bm = roaring.New()
				tracksByImage[key.Image] = bm
			}
			bm.Add(uint32(repr))
		}
	}

	images := imageKeysSorted(tracksByImage)
	toErase := roaring.New()
	for i, imgI := range images {
		for _, imgJ := range images[i:] {
			shared := roaring.And(tracksByImage[imgI], tracksByImage[imgJ])
			if shared.GetCardinality() < uint64(minOccurrences) {
				toErase.Or(shared)
			}
		}
	}

	erased := 0
	it := toErase.Iterator()
	for it.HasNext() {
		b.uf.Erase(int(it.Next()))
		erased++
	}

	b.minPairOccurrences = minOccurrences
	b.metrics.ObserveFilter("pairwise", erased)
	b.logger.Debug("tracks: pairwise-support filter complete",
		"minOccurrences", minOccurrences,
		"erased", erased,
		"remaining", b.uf.NbClasses(),
	)

	return nil
}

func imageKeysSorted[I cmp.Ordered](m map[I]*roaring.Bitmap) []I {
	keys := make([]I, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
