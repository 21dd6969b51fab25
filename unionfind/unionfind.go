package unionfind

import "iter"

// UnionFind is a disjoint-set structure over the dense integer domain
// [0, N). Union and Find run in near-O(alpha(N)) via union-by-rank plus path
// compression. Storage is flat int32/uint8 slices rather than maps, since N
// is expected to reach into the millions and cache locality matters more
// than the extra generality a map would buy.
type UnionFind struct {
	parent []int32 // parent[x]; parent[x] == x means x is a root
	rank   []uint8 // rank[x], meaningful only while x is a root

	memHead []int32 // memHead[x]: head of x's member list, meaningful only while x is a root
	memTail []int32 // memTail[x]: tail of x's member list, meaningful only while x is a root
	memNext []int32 // memNext[x]: next member after x in its class's list, -1 if last

	rootPrev []int32 // doubly linked list of live roots, in original index order
	rootNext []int32
	firstRoot int32
	lastRoot  int32

	numClasses int
}

// New allocates a UnionFind of n singleton classes {0}, {1}, ..., {n-1}.
func New(n int) *UnionFind {
	uf := &UnionFind{
		parent:     make([]int32, n),
		rank:       make([]uint8, n),
		memHead:    make([]int32, n),
		memTail:    make([]int32, n),
		memNext:    make([]int32, n),
		rootPrev:   make([]int32, n),
		rootNext:   make([]int32, n),
		numClasses: n,
	}
	for i := 0; i < n; i++ {
		id := int32(i)
		uf.parent[i] = id
		uf.memHead[i] = id
		uf.memTail[i] = id
		uf.memNext[i] = -1
		uf.rootPrev[i] = id - 1
		uf.rootNext[i] = id + 1
	}
	if n > 0 {
		uf.firstRoot = 0
		uf.lastRoot = int32(n - 1)
		uf.rootPrev[0] = -1
		uf.rootNext[n-1] = -1
	} else {
		uf.firstRoot, uf.lastRoot = -1, -1
	}

	return uf
}

// Size returns N, the fixed size of the node universe.
func (uf *UnionFind) Size() int {
	return len(uf.parent)
}

// NbClasses returns the number of currently live classes.
func (uf *UnionFind) NbClasses() int {
	return uf.numClasses
}

// Find returns the canonical representative of a's class, compressing the
// path from a to the root along the way.
func (uf *UnionFind) Find(a int) int {
	root := int32(a)
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for int32(a) != root {
		next := uf.parent[a]
		uf.parent[a] = root
		a = int(next)
	}

	return int(root)
}

// Unite merges the classes containing a and b. It is a no-op if they are
// already in the same class. Unite must not be called after Erase has been
// invoked on any class; the builder that owns a UnionFind enforces this by
// calling Unite only during Build.
func (uf *UnionFind) Unite(a, b int) {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return
	}

	x, y := int32(ra), int32(rb)
	if uf.rank[x] < uf.rank[y] {
		x, y = y, x
	}
	// Attach the shorter (or equal-rank) tree y under the taller tree x.
	uf.parent[y] = x
	if uf.rank[x] == uf.rank[y] {
		uf.rank[x]++
	}

	// Splice y's member list onto the tail of x's member list.
	uf.memNext[uf.memTail[x]] = uf.memHead[y]
	uf.memTail[x] = uf.memTail[y]

	// y is no longer a root; unlink it from the live-root list.
	uf.unlinkRoot(y)
	uf.numClasses--
}

// Erase deletes the entire class represented by repr. Future Classes calls
// will skip it. repr must currently be a live class representative.
func (uf *UnionFind) Erase(repr int) {
	uf.unlinkRoot(int32(repr))
	uf.numClasses--
}

func (uf *UnionFind) unlinkRoot(r int32) {
	prev, next := uf.rootPrev[r], uf.rootNext[r]
	if prev != -1 {
		uf.rootNext[prev] = next
	} else {
		uf.firstRoot = next
	}
	if next != -1 {
		uf.rootPrev[next] = prev
	} else {
		uf.lastRoot = prev
	}
}

// Classes iterates the representatives of every currently live class, in
// increasing order of the id each class was rooted at. Erasing the
// currently-yielded class from within the loop body is safe.
func (uf *UnionFind) Classes() iter.Seq[int] {
	return func(yield func(int) bool) {
		for r := uf.firstRoot; r != -1; {
			next := uf.rootNext[r]
			if !yield(int(r)) {
				return
			}
			r = next
		}
	}
}

// Items iterates every node id belonging to the class rooted at repr. repr
// must be (or, at call time, have been) a class representative.
func (uf *UnionFind) Items(repr int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for m := int32(repr); m != -1; m = uf.memNext[m] {
			if !yield(int(m)) {
				return
			}
		}
	}
}
