package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_InternIsIdempotent(t *testing.T) {
	b := NewBuilder[string]()
	key := NodeKey[string]{Image: "A", Feat: 1}

	b.Intern(key)
	b.Intern(key)
	b.Intern(key)

	assert.Equal(t, 1, b.Len())
}

func TestBuilder_FreezeAssignsDeterministicSortedIds(t *testing.T) {
	b := NewBuilder[string]()
	b.Intern(NodeKey[string]{Image: "B", Feat: 5})
	b.Intern(NodeKey[string]{Image: "A", Feat: 10})
	b.Intern(NodeKey[string]{Image: "A", Feat: 1})

	reg := b.Freeze()
	require.Equal(t, 3, reg.Size())

	idA1, ok := reg.Lookup(NodeKey[string]{Image: "A", Feat: 1})
	require.True(t, ok)
	idA10, ok := reg.Lookup(NodeKey[string]{Image: "A", Feat: 10})
	require.True(t, ok)
	idB5, ok := reg.Lookup(NodeKey[string]{Image: "B", Feat: 5})
	require.True(t, ok)

	assert.Less(t, idA1, idA10)
	assert.Less(t, idA10, idB5)
}

func TestRegistry_LookupUnknownKey(t *testing.T) {
	reg := NewBuilder[string]().Freeze()
	_, ok := reg.Lookup(NodeKey[string]{Image: "X", Feat: 0})
	assert.False(t, ok)
}

func TestRegistry_ResolveRoundTrip(t *testing.T) {
	b := NewBuilder[string]()
	keys := []NodeKey[string]{
		{Image: "cam0", Feat: 3},
		{Image: "cam1", Feat: 0},
		{Image: "cam0", Feat: 7},
	}
	for _, k := range keys {
		b.Intern(k)
	}
	reg := b.Freeze()

	for _, k := range keys {
		id, ok := reg.Lookup(k)
		require.True(t, ok)
		resolved, err := reg.Resolve(id)
		require.NoError(t, err)
		assert.Equal(t, k, resolved)
	}
}

func TestRegistry_ResolveUnknownId(t *testing.T) {
	reg := NewBuilder[string]().Freeze()
	_, err := reg.Resolve(0)
	assert.ErrorIs(t, err, ErrUnknownNode)

	b := NewBuilder[string]()
	b.Intern(NodeKey[string]{Image: "A", Feat: 0})
	reg = b.Freeze()
	_, err = reg.Resolve(-1)
	assert.ErrorIs(t, err, ErrUnknownNode)
	_, err = reg.Resolve(1)
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestRegistry_IntegerImageIds(t *testing.T) {
	b := NewBuilder[int]()
	b.Intern(NodeKey[int]{Image: 2, Feat: 0})
	b.Intern(NodeKey[int]{Image: 1, Feat: 9})
	reg := b.Freeze()

	id1, ok := reg.Lookup(NodeKey[int]{Image: 1, Feat: 9})
	require.True(t, ok)
	id2, ok := reg.Lookup(NodeKey[int]{Image: 2, Feat: 0})
	require.True(t, ok)
	assert.Less(t, id1, id2)
}
