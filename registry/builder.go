package registry

import (
	"cmp"
	"sort"
)

// Builder collects the distinct NodeKeys referenced by a scan of the input
// before any NodeId is handed out. It corresponds to phase one of §4.A:
// interning is idempotent, and no id is assigned until Freeze runs phase two.
type Builder[I cmp.Ordered] struct {
	seen map[NodeKey[I]]struct{}
	keys []NodeKey[I]
}

// NewBuilder returns an empty registry builder.
func NewBuilder[I cmp.Ordered]() *Builder[I] {
	return &Builder[I]{
		seen: make(map[NodeKey[I]]struct{}),
	}
}

// Intern records key as referenced. Repeated interning of an equal key is a
// no-op, so callers may intern the same key from every match that touches it
// without tracking which keys they have already seen.
func (b *Builder[I]) Intern(key NodeKey[I]) {
	if _, ok := b.seen[key]; ok {
		return
	}
	b.seen[key] = struct{}{}
	b.keys = append(b.keys, key)
}

// Len reports the number of distinct keys interned so far.
func (b *Builder[I]) Len() int {
	return len(b.keys)
}

// Freeze materializes phase two: it sorts the deduplicated keys and returns
// an immutable Registry whose NodeIds are the keys' sorted positions. The
// Builder should not be reused after Freeze.
func (b *Builder[I]) Freeze() *Registry[I] {
	sort.Slice(b.keys, func(i, j int) bool {
		return compare(b.keys[i], b.keys[j]) < 0
	})

	return &Registry[I]{keys: b.keys}
}
