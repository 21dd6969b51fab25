// Package registry assigns dense, stable integer ids to the (ImageId, FeatIdx)
// pairs referenced by a set of pairwise feature matches.
//
// Interning happens in two phases, matching the two-pass discipline required
// by the track-fusion builder: a Builder accumulates distinct NodeKeys via
// Intern while scanning the input once, then Freeze materializes an immutable
// Registry backed by a single sorted slice. Because ids are assigned by the
// slice's sort order, the same slice serves both as the key->id lookup
// (binary search) and the id->key lookup (direct index), so there is no
// separate reverse map to keep in sync.
//
// A Registry is read-only once frozen: NodeId<->NodeKey bijections never
// change for the remainder of the owning builder's lifetime.
package registry
