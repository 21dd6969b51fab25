package trackstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arqui-vision/trackfusion/tracks"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_SaveAndLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	manifest := tracks.ExportManifest[string]{
		RunID:              "run-1",
		NodeCount:          4,
		TrackCount:         2,
		MinTrackLength:     2,
		MinPairOccurrences: 0,
	}
	tm := tracks.TrackMap[string]{
		0: {"A": 1, "B": 10},
		1: {"A": 2, "C": 30},
	}

	require.NoError(t, s.SaveTracks(ctx, manifest, tm))

	got, err := s.LoadTracks(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, tm, got)
}

func TestStore_LoadUnknownRunReturnsErrRunNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.LoadTracks(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestStore_SaveTwiceWithSameRunIDFails(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	manifest := tracks.ExportManifest[string]{RunID: "dup", NodeCount: 1, TrackCount: 1, MinTrackLength: 1}
	tm := tracks.TrackMap[string]{0: {"A": 1}}

	require.NoError(t, s.SaveTracks(ctx, manifest, tm))
	assert.Error(t, s.SaveTracks(ctx, manifest, tm))
}
