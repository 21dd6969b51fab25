package registry

import (
	"cmp"
	"errors"
	"sort"
)

// ErrUnknownNode indicates Resolve was called with an id outside [0, Size()).
// Resolving an unknown id is a precondition violation: once a Registry is
// frozen, only ids it produced are ever legal to resolve.
var ErrUnknownNode = errors.New("registry: unknown node id")

// Registry is the immutable, dense NodeKey<->NodeId bijection produced by
// Builder.Freeze. A single sorted slice backs both directions: Lookup does a
// binary search over it, and Resolve indexes into it directly, since ids are
// exactly the keys' positions in sort order.
type Registry[I cmp.Ordered] struct {
	keys []NodeKey[I]
}

// Size returns N, the number of distinct nodes in the registry.
func (r *Registry[I]) Size() int {
	return len(r.keys)
}

// Lookup returns the NodeId assigned to key, or (-1, false) if key was never
// interned. Complexity: O(log N).
func (r *Registry[I]) Lookup(key NodeKey[I]) (NodeId, bool) {
	n := len(r.keys)
	idx := sort.Search(n, func(i int) bool {
		return compare(r.keys[i], key) >= 0
	})
	if idx < n && r.keys[idx] == key {
		return NodeId(idx), true
	}
	return -1, false
}

// Resolve returns the NodeKey that id was assigned to. It fails only when id
// falls outside [0, Size()), which is a precondition violation by the caller.
// Complexity: O(1).
func (r *Registry[I]) Resolve(id NodeId) (NodeKey[I], error) {
	if id < 0 || int(id) >= len(r.keys) {
		return NodeKey[I]{}, ErrUnknownNode
	}
	return r.keys[id], nil
}
