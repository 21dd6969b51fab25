package tracks

import (
	"cmp"
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"

	"github.com/arqui-vision/trackfusion/registry"
)

// ExportToSTL renumbers every surviving class to a contiguous TrackId
// starting at 0, in representative-iteration order, and returns the
// resulting TrackMap. Two resolutions landing on the same ImageId inside one
// class is a postcondition violation - Filter guarantees it cannot happen -
// and is reported by panicking, matching the "internal error" language of
// §4.F rather than a recoverable error return.
func (b *Builder[I]) ExportToSTL() TrackMap[I] {
	order := b.exportOrder()
	out := make(TrackMap[I], len(order))
	for trackID, repr := range order {
		out[TrackId(trackID)] = b.resolveClass(repr)
	}

	if b.metrics != nil {
		b.metrics.SetTracksExported(len(out))
	}

	return out
}

// ExportWithManifest is ExportToSTL plus a lightweight header describing the
// export: a fresh run id, node/track counts, and the filter parameters
// applied so far. It is intended for adapters (trackstore, trackcloud) that
// need to tag what they persist without re-deriving these values.
func (b *Builder[I]) ExportWithManifest() (TrackMap[I], ExportManifest[I]) {
	tm := b.ExportToSTL()
	manifest := ExportManifest[I]{
		RunID:              uuid.NewString(),
		NodeCount:          b.reg.Size(),
		TrackCount:         len(tm),
		MinTrackLength:     b.minTrackLength,
		MinPairOccurrences: b.minPairOccurrences,
	}

	return tm, manifest
}

// ExportToStream writes a diagnostic text rendering of every surviving
// class, in the same representative-iteration order ExportToSTL uses, so
// class indices agree between the two exporters when run back to back:
//
//	Class: <cptClass>
//		track length: <L>
//	<imageName1>  <featIdx1>
//	...
//
// nameOf converts an ImageId to the display name used on each observation
// line; callers without a naming scheme can pass fmt.Sprint.
func (b *Builder[I]) ExportToStream(w io.Writer, nameOf func(I) string) error {
	if !b.built {
		return ErrNotBuilt
	}
	for cptClass, repr := range b.exportOrder() {
		keys, err := b.classMembers(repr)
		if err != nil {
			return err
		}

		obs := make(map[I]FeatIdx, len(keys))
		for _, key := range keys {
			obs[key.Image] = key.Feat
		}
		if err := FormatTrackText(w, TrackId(cptClass), obs, nameOf); err != nil {
			return err
		}
	}

	return nil
}

// FormatTrackText writes one track's diagnostic text block:
//
//	Class: <id>
//		track length: <L>
//	<imageName1>  <featIdx1>
//	...
//
// Observations are printed in ascending ImageId order for determinism.
// ExportToStream and any adapter re-emitting a persisted TrackMap (see
// trackstore, and cmd/trackfusion's export command) both call this so the
// two can never drift apart.
func FormatTrackText[I cmp.Ordered](w io.Writer, trackID TrackId, obs map[I]FeatIdx, nameOf func(I) string) error {
	if _, err := fmt.Fprintf(w, "Class: %d\n", trackID); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\ttrack length: %d\n", len(obs)); err != nil {
		return err
	}

	images := make([]I, 0, len(obs))
	for img := range obs {
		images = append(images, img)
	}
	sort.Slice(images, func(i, j int) bool { return images[i] < images[j] })

	for _, img := range images {
		if _, err := fmt.Fprintf(w, "%s  %d\n", nameOf(img), obs[img]); err != nil {
			return err
		}
	}

	return nil
}

func (b *Builder[I]) classMembers(repr int) ([]registry.NodeKey[I], error) {
	var keys []registry.NodeKey[I]
	for member := range b.uf.Items(repr) {
		key, err := b.reg.Resolve(registry.NodeId(member))
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (b *Builder[I]) resolveClass(repr int) map[I]FeatIdx {
	inner := make(map[I]FeatIdx)
	for member := range b.uf.Items(repr) {
		key, err := b.reg.Resolve(registry.NodeId(member))
		if err != nil {
			panic(fmt.Sprintf("tracks: internal error: %v", err))
		}
		if _, dup := inner[key.Image]; dup {
			panic(fmt.Sprintf("tracks: internal error: image %v observed twice in one exported track", key.Image))
		}
		inner[key.Image] = key.Feat
	}
	return inner
}
